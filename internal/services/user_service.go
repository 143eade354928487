package services

import (
	"context"
	"time"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
	"github.com/simplyinvite/showcase-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários e perfis
type UserService struct {
	userRepo    repositories.UserRepository
	companyRepo repositories.CompanyRepository
	hasher      ports.PasswordHasher
	logger      ports.Logger
	now         func() time.Time
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		hasher:      hasher,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Email     string
	Password  string
	FullName  string
	Role      string
	AvatarURL *string
	Phone     *string
	City      *string
	State     *string
	BirthDate *time.Time
	JobTitle  *string
	CompanyID *string
}

// CreateUser cria um novo usuário com a senha hasheada
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         entities.Role(input.Role),
		AvatarURL:    input.AvatarURL,
		Phone:        input.Phone,
		City:         input.City,
		State:        input.State,
		BirthDate:    input.BirthDate,
		JobTitle:     input.JobTitle,
		CompanyID:    input.CompanyID,
	}

	if err := user.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Title:   "error.validation.title",
			Message: err.Error(),
			Err:     entities.ErrInvalidUserData,
		}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "role", string(user.Role))
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUserInput representa os campos atualizáveis de um usuário
type UpdateUserInput struct {
	FullName      *string
	AvatarURL     *string
	Phone         *string
	City          *string
	State         *string
	Bio           *string
	LinkedinURL   *string
	GithubURL     *string
	BirthDate     *time.Time
	InterestAreas *string
	MainSkills    *string
	JobTitle      *string
	CompanyID     *string
}

// UpdateUser aplica uma atualização parcial a um usuário existente
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.AvatarURL != nil {
		user.AvatarURL = input.AvatarURL
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.City != nil {
		user.City = input.City
	}
	if input.State != nil {
		user.State = input.State
	}
	if input.Bio != nil {
		user.Bio = input.Bio
	}
	if input.LinkedinURL != nil {
		user.LinkedinURL = input.LinkedinURL
	}
	if input.GithubURL != nil {
		user.GithubURL = input.GithubURL
	}
	if input.BirthDate != nil {
		user.BirthDate = input.BirthDate
	}
	if input.InterestAreas != nil {
		user.InterestAreas = *input.InterestAreas
	}
	if input.MainSkills != nil {
		user.MainSkills = *input.MainSkills
	}
	if input.JobTitle != nil {
		user.JobTitle = input.JobTitle
	}
	if input.CompanyID != nil {
		user.CompanyID = input.CompanyID
	}

	if err := user.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Title:   "error.validation.title",
			Message: err.Error(),
			Err:     entities.ErrInvalidUserData,
		}
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser remove um usuário
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if _, err := s.GetUser(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

// GetProfile carrega o usuário e projeta o perfil conforme o role.
// Talento recebe idade derivada e listas de interesses/habilidades;
// RH e Gestor recebem cargo e os dados denormalizados da empresa.
// Role desconhecido é tratado como perfil inexistente.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*ProfileProjection, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	switch {
	case user.Role.Is(entities.RoleTalent):
		return &ProfileProjection{
			Role: entities.RoleTalent,
			Talent: &TalentProfile{
				ID:            user.ID,
				FullName:      user.FullName,
				Email:         user.Email.String(),
				AvatarURL:     user.AvatarURL,
				City:          user.City,
				State:         user.State,
				Bio:           user.Bio,
				LinkedinURL:   user.LinkedinURL,
				GithubURL:     user.GithubURL,
				Age:           user.Age(s.now()),
				InterestAreas: user.InterestAreaList(),
				MainSkills:    user.MainSkillList(),
			},
		}, nil

	case user.Role.Is(entities.RoleHR), user.Role.Is(entities.RoleManager):
		staff := &StaffProfile{
			ID:        user.ID,
			FullName:  user.FullName,
			Email:     user.Email.String(),
			AvatarURL: user.AvatarURL,
			JobTitle:  user.JobTitle,
		}
		if user.CompanyID != nil {
			company, err := s.companyRepo.FindByID(ctx, *user.CompanyID)
			if err != nil {
				return nil, err
			}
			staff.Company = company
		}
		role := entities.RoleHR
		if user.Role.Is(entities.RoleManager) {
			role = entities.RoleManager
		}
		return &ProfileProjection{Role: role, Staff: staff}, nil

	default:
		s.logger.Warn("unknown role on profile projection", "user_id", user.ID, "role", string(user.Role))
		return nil, errors.ErrProfileNotFound
	}
}

// OnboardingInput representa os dados do formulário de onboarding.
// EducationalBackground é aceito mas ainda não tem campo próprio
// no perfil, então não é persistido.
type OnboardingInput struct {
	EducationalBackground *string
	Experiences           *string
	PortfolioLinks        *string
}

// CompleteOnboarding grava os dados de onboarding e marca o fluxo como
// concluído. Experiências viram a bio e links de portfólio a URL do GitHub.
func (s *UserService) CompleteOnboarding(ctx context.Context, user *entities.User, input OnboardingInput) (*entities.User, error) {
	if input.Experiences != nil {
		user.Bio = input.Experiences
	}
	if input.PortfolioLinks != nil {
		user.GithubURL = input.PortfolioLinks
	}

	user.OnboardingComplete = true

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("onboarding completed", "user_id", user.ID)
	return user, nil
}
