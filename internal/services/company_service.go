package services

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// CompanyService contém a lógica de negócio para empresas
type CompanyService struct {
	companyRepo repositories.CompanyRepository
	logger      ports.Logger
}

// NewCompanyService cria um novo CompanyService
func NewCompanyService(companyRepo repositories.CompanyRepository, logger ports.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// CompanyInput representa os dados para criar ou atualizar uma empresa
type CompanyInput struct {
	Name        string
	TaxID       string
	Sector      *string
	Location    *string
	Description *string
}

// CreateCompany cria uma nova empresa
func (s *CompanyService) CreateCompany(ctx context.Context, input CompanyInput) (*entities.Company, error) {
	company := &entities.Company{
		Name:        input.Name,
		TaxID:       input.TaxID,
		Sector:      input.Sector,
		Location:    input.Location,
		Description: input.Description,
	}

	if err := company.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Title:   "error.validation.title",
			Message: err.Error(),
		}
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	s.logger.Info("company created", "company_id", company.ID)
	return company, nil
}

// GetCompany busca uma empresa por ID
func (s *CompanyService) GetCompany(ctx context.Context, id string) (*entities.Company, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, errors.ErrCompanyNotFound
	}
	return company, nil
}

// ListCompanies lista todas as empresas
func (s *CompanyService) ListCompanies(ctx context.Context) ([]*entities.Company, error) {
	return s.companyRepo.List(ctx)
}

// UpdateCompany substitui os dados de uma empresa existente
func (s *CompanyService) UpdateCompany(ctx context.Context, id string, input CompanyInput) (*entities.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = input.Name
	company.TaxID = input.TaxID
	company.Sector = input.Sector
	company.Location = input.Location
	company.Description = input.Description

	if err := company.Validate(); err != nil {
		return nil, &errors.DomainError{
			Type:    errors.ProblemTypeValidation,
			Title:   "error.validation.title",
			Message: err.Error(),
		}
	}

	if err := s.companyRepo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany remove uma empresa
func (s *CompanyService) DeleteCompany(ctx context.Context, id string) error {
	if _, err := s.GetCompany(ctx, id); err != nil {
		return err
	}
	return s.companyRepo.Delete(ctx, id)
}
