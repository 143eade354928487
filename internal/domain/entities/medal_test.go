package entities

import "testing"

func TestMedalForScore(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected Medal
	}{
		{"nota 10 vira ouro", 10, MedalGold},
		{"nota 9 vira ouro", 9, MedalGold},
		{"nota 8 vira prata", 8, MedalSilver},
		{"nota 7 vira prata", 7, MedalSilver},
		{"nota 6 vira bronze", 6, MedalBronze},
		{"nota 5 vira bronze", 5, MedalBronze},
		{"nota 4 não ganha medalha", 4, MedalNone},
		{"nota 0 não ganha medalha", 0, MedalNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MedalForScore(tt.score); got != tt.expected {
				t.Errorf("para nota %d, esperava %s, obteve %s", tt.score, tt.expected, got)
			}
		})
	}
}

func TestHighestMedal(t *testing.T) {
	t.Run("sem avaliações não há medalha", func(t *testing.T) {
		if got := HighestMedal(nil); got != MedalNone {
			t.Errorf("esperava %s, obteve %s", MedalNone, got)
		}
	})

	t.Run("medalha vem da maior nota", func(t *testing.T) {
		evaluations := []*Evaluation{
			{Score: 6},
			{Score: 9},
			{Score: 4},
		}
		if got := HighestMedal(evaluations); got != MedalGold {
			t.Errorf("esperava %s, obteve %s", MedalGold, got)
		}
	})

	t.Run("uma única avaliação abaixo do corte", func(t *testing.T) {
		evaluations := []*Evaluation{{Score: 3}}
		if got := HighestMedal(evaluations); got != MedalNone {
			t.Errorf("esperava %s, obteve %s", MedalNone, got)
		}
	})

	t.Run("notas iguais no corte de prata", func(t *testing.T) {
		evaluations := []*Evaluation{{Score: 7}, {Score: 7}}
		if got := HighestMedal(evaluations); got != MedalSilver {
			t.Errorf("esperava %s, obteve %s", MedalSilver, got)
		}
	})
}
