package entities

// Medal é a classificação derivada da nota de uma avaliação.
// Nunca é persistida; sempre calculada a partir da nota.
type Medal string

const (
	MedalGold   Medal = "gold"
	MedalSilver Medal = "silver"
	MedalBronze Medal = "bronze"
	MedalNone   Medal = "none"
)

// MedalForScore mapeia uma nota para a medalha correspondente.
// Ouro: nota >= 9, Prata: >= 7, Bronze: >= 5, senão nenhuma.
func MedalForScore(score int) Medal {
	switch {
	case score >= 9:
		return MedalGold
	case score >= 7:
		return MedalSilver
	case score >= 5:
		return MedalBronze
	default:
		return MedalNone
	}
}

// HighestMedal retorna a medalha da maior nota entre as avaliações.
// Lista vazia ou nula resulta em MedalNone.
func HighestMedal(evaluations []*Evaluation) Medal {
	if len(evaluations) == 0 {
		return MedalNone
	}
	max := evaluations[0].Score
	for _, e := range evaluations[1:] {
		if e.Score > max {
			max = e.Score
		}
	}
	return MedalForScore(max)
}
