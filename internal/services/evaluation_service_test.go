package services

import (
	"context"
	"testing"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

func newEvaluationServiceForTest() (*EvaluationService, *fakeEvaluationRepo, *fakeProjectRepo, *fakeUserRepo, *fakeCompanyRepo) {
	evaluationRepo := newFakeEvaluationRepo()
	projectRepo := newFakeProjectRepo()
	userRepo := newFakeUserRepo()
	companyRepo := newFakeCompanyRepo()
	svc := NewEvaluationService(evaluationRepo, projectRepo, userRepo, companyRepo, nopLogger{})
	return svc, evaluationRepo, projectRepo, userRepo, companyRepo
}

func TestEvaluationService_ListByProject(t *testing.T) {
	ctx := context.Background()

	setupProject := func(projectRepo *fakeProjectRepo) {
		projectRepo.projects["proj-1"] = &entities.Project{
			ID:    "proj-1",
			Title: "App de carona",
		}
	}

	t.Run("projeto sem avaliações resulta em lista vazia", func(t *testing.T) {
		svc, _, projectRepo, _, _ := newEvaluationServiceForTest()
		setupProject(projectRepo)

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if views == nil || len(views) != 0 {
			t.Errorf("esperava lista vazia, obteve %v", views)
		}
	})

	t.Run("avaliação traz medalha da própria nota", func(t *testing.T) {
		svc, evaluationRepo, projectRepo, _, _ := newEvaluationServiceForTest()
		setupProject(projectRepo)

		evaluationRepo.evaluations["proj-1"] = []*entities.Evaluation{
			{ID: "ev-1", ProjectID: "proj-1", Score: 8, Comment: "Muito bom"},
		}

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if len(views) != 1 {
			t.Fatalf("esperava 1 avaliação, obteve %d", len(views))
		}
		if views[0].Medal != entities.MedalSilver {
			t.Errorf("esperava medalha %s, obteve %s", entities.MedalSilver, views[0].Medal)
		}
		if views[0].ProjectTitle != "App de carona" {
			t.Errorf("esperava título do projeto, obteve %q", views[0].ProjectTitle)
		}
	})

	t.Run("rótulo do avaliador com cargo e empresa", func(t *testing.T) {
		svc, evaluationRepo, projectRepo, userRepo, companyRepo := newEvaluationServiceForTest()
		setupProject(projectRepo)

		companyRepo.companies["company-1"] = &entities.Company{ID: "company-1", Name: "Acme Ltda", TaxID: "123"}
		userRepo.users["hr-1"] = &entities.User{
			ID:        "hr-1",
			Email:     mustEmail(t, "rh@acme.com"),
			FullName:  "Carla Mendes",
			Role:      entities.RoleHR,
			JobTitle:  strPtr("Analista de RH"),
			CompanyID: strPtr("company-1"),
		}
		evaluationRepo.evaluations["proj-1"] = []*entities.Evaluation{
			{ID: "ev-1", ProjectID: "proj-1", EvaluatorID: "hr-1", Score: 7},
		}

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if views[0].EvaluatorTitle != "Analista de RH @ Acme Ltda" {
			t.Errorf("esperava rótulo composto, obteve %q", views[0].EvaluatorTitle)
		}
	})

	t.Run("rótulo só com cargo", func(t *testing.T) {
		svc, evaluationRepo, projectRepo, userRepo, _ := newEvaluationServiceForTest()
		setupProject(projectRepo)

		userRepo.users["hr-1"] = &entities.User{
			ID:       "hr-1",
			Email:    mustEmail(t, "rh@acme.com"),
			FullName: "Carla Mendes",
			Role:     entities.RoleHR,
			JobTitle: strPtr("Analista de RH"),
		}
		evaluationRepo.evaluations["proj-1"] = []*entities.Evaluation{
			{ID: "ev-1", ProjectID: "proj-1", EvaluatorID: "hr-1", Score: 7},
		}

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if views[0].EvaluatorTitle != "Analista de RH" {
			t.Errorf("esperava só o cargo, obteve %q", views[0].EvaluatorTitle)
		}
	})

	t.Run("rótulo só com empresa", func(t *testing.T) {
		svc, evaluationRepo, projectRepo, userRepo, companyRepo := newEvaluationServiceForTest()
		setupProject(projectRepo)

		companyRepo.companies["company-1"] = &entities.Company{ID: "company-1", Name: "Acme Ltda", TaxID: "123"}
		userRepo.users["hr-1"] = &entities.User{
			ID:        "hr-1",
			Email:     mustEmail(t, "rh@acme.com"),
			FullName:  "Carla Mendes",
			Role:      entities.RoleHR,
			CompanyID: strPtr("company-1"),
		}
		evaluationRepo.evaluations["proj-1"] = []*entities.Evaluation{
			{ID: "ev-1", ProjectID: "proj-1", EvaluatorID: "hr-1", Score: 7},
		}

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if views[0].EvaluatorTitle != "Acme Ltda" {
			t.Errorf("esperava só a empresa, obteve %q", views[0].EvaluatorTitle)
		}
	})

	t.Run("avaliador sem cargo nem empresa fica com rótulo vazio", func(t *testing.T) {
		svc, evaluationRepo, projectRepo, userRepo, _ := newEvaluationServiceForTest()
		setupProject(projectRepo)

		userRepo.users["hr-1"] = &entities.User{
			ID:       "hr-1",
			Email:    mustEmail(t, "rh@acme.com"),
			FullName: "Carla Mendes",
			Role:     entities.RoleHR,
		}
		evaluationRepo.evaluations["proj-1"] = []*entities.Evaluation{
			{ID: "ev-1", ProjectID: "proj-1", EvaluatorID: "hr-1", Score: 7},
		}

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if views[0].EvaluatorTitle != "" {
			t.Errorf("esperava rótulo vazio para a camada HTTP localizar, obteve %q", views[0].EvaluatorTitle)
		}
	})

	t.Run("avaliador inexistente não derruba a listagem", func(t *testing.T) {
		svc, evaluationRepo, projectRepo, _, _ := newEvaluationServiceForTest()
		setupProject(projectRepo)

		evaluationRepo.evaluations["proj-1"] = []*entities.Evaluation{
			{ID: "ev-1", ProjectID: "proj-1", EvaluatorID: "fantasma", Score: 5},
		}

		views, err := svc.ListByProject(ctx, "proj-1")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if views[0].EvaluatorName != nil {
			t.Error("esperava nome do avaliador ausente")
		}
	})
}
