package ports

import "github.com/simplyinvite/showcase-backend/internal/domain/entities"

// TokenIssuer define a interface para emissão de tokens de acesso
type TokenIssuer interface {
	Generate(user *entities.User) (string, error)
}
