package ports

// PasswordHasher abstrai o hash e a verificação de senhas
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
