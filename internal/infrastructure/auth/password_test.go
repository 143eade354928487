package auth

import "testing"

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher()

	t.Run("hash verifica a senha original", func(t *testing.T) {
		hash, err := hasher.Hash("segredo123")
		if err != nil {
			t.Fatalf("falha ao hashear: %v", err)
		}
		if hash == "segredo123" {
			t.Error("hash não deveria ser a senha em texto puro")
		}
		if !hasher.Verify("segredo123", hash) {
			t.Error("senha correta deveria verificar")
		}
	})

	t.Run("senha errada não verifica", func(t *testing.T) {
		hash, err := hasher.Hash("segredo123")
		if err != nil {
			t.Fatalf("falha ao hashear: %v", err)
		}
		if hasher.Verify("outra-senha", hash) {
			t.Error("senha errada não deveria verificar")
		}
	})
}
