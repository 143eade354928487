package services

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// EvaluationService contém a lógica de projeção de avaliações
type EvaluationService struct {
	evaluationRepo repositories.EvaluationRepository
	projectRepo    repositories.ProjectRepository
	userRepo       repositories.UserRepository
	companyRepo    repositories.CompanyRepository
	logger         ports.Logger
}

// NewEvaluationService cria um novo EvaluationService
func NewEvaluationService(
	evaluationRepo repositories.EvaluationRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	logger ports.Logger,
) *EvaluationService {
	return &EvaluationService{
		evaluationRepo: evaluationRepo,
		projectRepo:    projectRepo,
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		logger:         logger,
	}
}

// ListByProject lista as avaliações de um projeto, projetadas.
// Projeto sem avaliações resulta em lista vazia, não em erro.
func (s *EvaluationService) ListByProject(ctx context.Context, projectID string) ([]*EvaluationView, error) {
	evaluations, err := s.evaluationRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(evaluations) == 0 {
		return []*EvaluationView{}, nil
	}

	// O título do projeto é o mesmo para todas as avaliações da lista
	var projectTitle string
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project != nil {
		projectTitle = project.Title
	}

	views := make([]*EvaluationView, 0, len(evaluations))
	for _, evaluation := range evaluations {
		view, err := s.toView(ctx, evaluation, projectTitle)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// toView monta a projeção de uma avaliação: avaliador denormalizado,
// rótulo cargo/empresa composto e medalha derivada da própria nota
func (s *EvaluationService) toView(ctx context.Context, evaluation *entities.Evaluation, projectTitle string) (*EvaluationView, error) {
	view := &EvaluationView{
		Evaluation:   evaluation,
		ProjectTitle: projectTitle,
		Medal:        evaluation.Medal(),
	}

	if evaluation.EvaluatorID == "" {
		return view, nil
	}

	evaluator, err := s.userRepo.FindByID(ctx, evaluation.EvaluatorID)
	if err != nil {
		return nil, err
	}
	if evaluator == nil {
		return view, nil
	}

	view.EvaluatorName = &evaluator.FullName
	view.EvaluatorAvatarURL = evaluator.AvatarURL
	view.EvaluatorTitle, err = s.evaluatorTitle(ctx, evaluator)
	if err != nil {
		return nil, err
	}

	return view, nil
}

// evaluatorTitle compõe o rótulo de exibição do avaliador.
// Quatro casos: cargo e empresa -> "<cargo> @ <empresa>"; só um deles ->
// o valor presente; nenhum -> vazio (a camada HTTP aplica o fallback).
func (s *EvaluationService) evaluatorTitle(ctx context.Context, evaluator *entities.User) (string, error) {
	var jobTitle, companyName string
	if evaluator.JobTitle != nil {
		jobTitle = *evaluator.JobTitle
	}
	if evaluator.CompanyID != nil {
		company, err := s.companyRepo.FindByID(ctx, *evaluator.CompanyID)
		if err != nil {
			return "", err
		}
		if company != nil {
			companyName = company.Name
		}
	}

	switch {
	case jobTitle != "" && companyName != "":
		return jobTitle + " @ " + companyName, nil
	case jobTitle != "":
		return jobTitle, nil
	case companyName != "":
		return companyName, nil
	default:
		return "", nil
	}
}
