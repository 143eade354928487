package auth

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	domainerrors "github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/infrastructure/config"
)

const defaultExpiry = 24 * time.Hour

// Claims são as claims do token de acesso: subject é o email do usuário
// e role o tipo de perfil no momento da emissão
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager emite e valida tokens JWT assinados com HMAC
type Manager struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

// NewManager cria um Manager a partir da configuração.
// Sem JWT_SECRET configurado, uma chave aleatória é gerada no startup;
// nesse caso um restart do processo invalida todos os tokens emitidos.
func NewManager(cfg config.JWTConfig, log ports.Logger) (*Manager, error) {
	expiry := defaultExpiry
	if cfg.Expiry != "" {
		d, err := time.ParseDuration(cfg.Expiry)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRY %q: %w", cfg.Expiry, err)
		}
		expiry = d
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 64)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
		log.Warn("JWT_SECRET not set, generated a random signing key; tokens will not survive a restart")
	}

	return &Manager{
		secret: secret,
		expiry: expiry,
		now:    time.Now,
	}, nil
}

// Generate emite um token para o usuário com expiração fixa a partir de agora
func (m *Manager) Generate(user *entities.User) (string, error) {
	now := m.now()
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse valida assinatura e expiração e retorna as claims do token
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return m.now() }))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrUnauthorized
	}

	if claims.Subject == "" {
		return nil, domainerrors.ErrUnauthorized
	}

	return claims, nil
}

var _ ports.TokenIssuer = (*Manager)(nil)
