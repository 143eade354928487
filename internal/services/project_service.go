package services

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// ProjectService contém a lógica de projeção de projetos
type ProjectService struct {
	projectRepo    repositories.ProjectRepository
	userRepo       repositories.UserRepository
	evaluationRepo repositories.EvaluationRepository
	logger         ports.Logger
}

// NewProjectService cria um novo ProjectService
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	evaluationRepo repositories.EvaluationRepository,
	logger ports.Logger,
) *ProjectService {
	return &ProjectService{
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		evaluationRepo: evaluationRepo,
		logger:         logger,
	}
}

// GetProject busca um projeto por ID e monta sua projeção
func (s *ProjectService) GetProject(ctx context.Context, id string) (*ProjectView, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound
	}
	return s.toView(ctx, project)
}

// ListProjects lista todos os projetos projetados
func (s *ProjectService) ListProjects(ctx context.Context) ([]*ProjectView, error) {
	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, projects)
}

// ListProjectsByUser lista os projetos de um usuário.
// Usuário sem projetos resulta em lista vazia, não em erro.
func (s *ProjectService) ListProjectsByUser(ctx context.Context, userID string) ([]*ProjectView, error) {
	projects, err := s.projectRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, projects)
}

// toView monta a projeção de um projeto: autor denormalizado (tolerando
// autor inexistente) e campos derivados das avaliações
func (s *ProjectService) toView(ctx context.Context, project *entities.Project) (*ProjectView, error) {
	view := &ProjectView{
		Project: project,
		Medal:   entities.MedalNone,
	}

	if project.UserID != "" {
		author, err := s.userRepo.FindByID(ctx, project.UserID)
		if err != nil {
			return nil, err
		}
		// Autor ausente não é erro: os campos ficam vazios
		if author != nil {
			view.AuthorName = &author.FullName
			view.AuthorAvatarURL = author.AvatarURL
		}
	}

	evaluations, err := s.evaluationRepo.FindByProjectID(ctx, project.ID)
	if err != nil {
		return nil, err
	}
	view.FeedbackCount = len(evaluations)
	view.HasFeedback = len(evaluations) > 0
	view.Medal = entities.HighestMedal(evaluations)

	return view, nil
}

func (s *ProjectService) toViews(ctx context.Context, projects []*entities.Project) ([]*ProjectView, error) {
	views := make([]*ProjectView, 0, len(projects))
	for _, project := range projects {
		view, err := s.toView(ctx, project)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
