package dto

import (
	"time"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta do login
type LoginResponse struct {
	Token       string              `json:"token"`
	Role        string              `json:"role"`
	UserProfile UserSummaryResponse `json:"userProfile"`
}

// MeResponse representa a resposta de /auth/me
type MeResponse struct {
	UserProfile UserSummaryResponse `json:"userProfile"`
	Role        string              `json:"role"`
}

// UserSummaryResponse é o resumo de usuário devolvido no login,
// em /auth/me e ao concluir o onboarding
type UserSummaryResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"fullName"`
	Role               string    `json:"role"`
	AvatarURL          *string   `json:"avatarUrl,omitempty"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUserSummary converte uma entidade User para UserSummaryResponse
func ToUserSummary(user *entities.User) UserSummaryResponse {
	return UserSummaryResponse{
		ID:                 user.ID,
		Email:              user.Email.String(),
		FullName:           user.FullName,
		Role:               string(user.Role),
		AvatarURL:          user.AvatarURL,
		OnboardingComplete: user.OnboardingComplete,
		CreatedAt:          user.CreatedAt,
	}
}
