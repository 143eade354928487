package services

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// AuthService contém a lógica de autenticação
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login valida as credenciais e emite um token de acesso.
// Email desconhecido e senha errada retornam o mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !s.hasher.Verify(password, user.PasswordHash) {
		s.logger.Warn("login failed", "email", email)
		return nil, "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("login succeeded", "user_id", user.ID, "role", string(user.Role))
	return user, token, nil
}
