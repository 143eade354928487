package dto

import (
	"time"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8,max=72"`
	FullName  string  `json:"fullName" binding:"required,min=2,max=100"`
	Role      string  `json:"role" binding:"required"`
	AvatarURL *string `json:"avatarUrl" binding:"omitempty,max=500"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	City      *string `json:"city" binding:"omitempty,max=255"`
	State     *string `json:"state" binding:"omitempty,max=255"`
	BirthDate *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	JobTitle  *string `json:"jobTitle" binding:"omitempty,max=255"`
	CompanyID *string `json:"companyId" binding:"omitempty,uuid"`
}

// ToInput converte a requisição para o input do serviço
func (r *CreateUserRequest) ToInput() services.CreateUserInput {
	return services.CreateUserInput{
		Email:     r.Email,
		Password:  r.Password,
		FullName:  r.FullName,
		Role:      r.Role,
		AvatarURL: r.AvatarURL,
		Phone:     r.Phone,
		City:      r.City,
		State:     r.State,
		BirthDate: parseBirthDate(r.BirthDate),
		JobTitle:  r.JobTitle,
		CompanyID: r.CompanyID,
	}
}

// UpdateUserRequest representa a requisição para atualizar um usuário
type UpdateUserRequest struct {
	FullName      *string `json:"fullName" binding:"omitempty,min=2,max=100"`
	AvatarURL     *string `json:"avatarUrl" binding:"omitempty,max=500"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	City          *string `json:"city" binding:"omitempty,max=255"`
	State         *string `json:"state" binding:"omitempty,max=255"`
	Bio           *string `json:"bio"`
	LinkedinURL   *string `json:"linkedinUrl" binding:"omitempty,max=500"`
	GithubURL     *string `json:"githubUrl" binding:"omitempty,max=500"`
	BirthDate     *string `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	InterestAreas *string `json:"interestAreas" binding:"omitempty,max=1000"`
	MainSkills    *string `json:"mainSkills" binding:"omitempty,max=1000"`
	JobTitle      *string `json:"jobTitle" binding:"omitempty,max=255"`
	CompanyID     *string `json:"companyId" binding:"omitempty,uuid"`
}

// ToInput converte a requisição para o input do serviço
func (r *UpdateUserRequest) ToInput() services.UpdateUserInput {
	return services.UpdateUserInput{
		FullName:      r.FullName,
		AvatarURL:     r.AvatarURL,
		Phone:         r.Phone,
		City:          r.City,
		State:         r.State,
		Bio:           r.Bio,
		LinkedinURL:   r.LinkedinURL,
		GithubURL:     r.GithubURL,
		BirthDate:     parseBirthDate(r.BirthDate),
		InterestAreas: r.InterestAreas,
		MainSkills:    r.MainSkills,
		JobTitle:      r.JobTitle,
		CompanyID:     r.CompanyID,
	}
}

// OnboardingRequest representa a requisição de conclusão de onboarding
type OnboardingRequest struct {
	EducationalBackground *string `json:"educationalBackground"`
	Experiences           *string `json:"experiences"`
	PortfolioLinks        *string `json:"portfolioLinks"`
}

// ToInput converte a requisição para o input do serviço
func (r *OnboardingRequest) ToInput() services.OnboardingInput {
	return services.OnboardingInput{
		EducationalBackground: r.EducationalBackground,
		Experiences:           r.Experiences,
		PortfolioLinks:        r.PortfolioLinks,
	}
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	FullName           string    `json:"fullName"`
	Role               string    `json:"role"`
	AvatarURL          *string   `json:"avatarUrl,omitempty"`
	Phone              *string   `json:"phone,omitempty"`
	City               *string   `json:"city,omitempty"`
	State              *string   `json:"state,omitempty"`
	Bio                *string   `json:"bio,omitempty"`
	LinkedinURL        *string   `json:"linkedinUrl,omitempty"`
	GithubURL          *string   `json:"githubUrl,omitempty"`
	JobTitle           *string   `json:"jobTitle,omitempty"`
	CompanyID          *string   `json:"companyId,omitempty"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:                 user.ID,
		Email:              user.Email.String(),
		FullName:           user.FullName,
		Role:               string(user.Role),
		AvatarURL:          user.AvatarURL,
		Phone:              user.Phone,
		City:               user.City,
		State:              user.State,
		Bio:                user.Bio,
		LinkedinURL:        user.LinkedinURL,
		GithubURL:          user.GithubURL,
		JobTitle:           user.JobTitle,
		CompanyID:          user.CompanyID,
		OnboardingComplete: user.OnboardingComplete,
		CreatedAt:          user.CreatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

// parseBirthDate converte a data do formato da API (2006-01-02).
// O formato já foi validado pelo binding.
func parseBirthDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
