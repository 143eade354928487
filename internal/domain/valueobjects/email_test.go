package valueobjects

import (
	"errors"
	"testing"
)

func TestNewEmail(t *testing.T) {
	t.Run("normaliza maiúsculas e espaços", func(t *testing.T) {
		email, err := NewEmail("  Ana.Silva@Example.COM ")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if email.String() != "ana.silva@example.com" {
			t.Errorf("esperava ana.silva@example.com, obteve %s", email.String())
		}
	})

	t.Run("formatos inválidos são rejeitados", func(t *testing.T) {
		invalids := []string{
			"",
			"sem-arroba",
			"@example.com",
			"ana@",
			"ana@example",
			"ana silva@example.com",
		}
		for _, raw := range invalids {
			if _, err := NewEmail(raw); !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("esperava ErrInvalidEmail para %q, obteve %v", raw, err)
			}
		}
	})
}
