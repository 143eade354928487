package dto

import (
	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// CreateCompanyRequest representa os dados para criação de uma empresa
type CreateCompanyRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100" example:"Acme Ltda"`
	TaxID       string  `json:"taxId" binding:"required,min=11,max=18" example:"12.345.678/0001-90"`
	Sector      *string `json:"sector,omitempty" example:"Tecnologia"`
	Location    *string `json:"location,omitempty" example:"São Paulo, SP"`
	Description *string `json:"description,omitempty"`
}

// ToInput converte a requisição para a entrada do serviço
func (r *CreateCompanyRequest) ToInput() services.CompanyInput {
	return services.CompanyInput{
		Name:        r.Name,
		TaxID:       r.TaxID,
		Sector:      r.Sector,
		Location:    r.Location,
		Description: r.Description,
	}
}

// UpdateCompanyRequest representa os dados para substituição de uma empresa.
// A atualização é integral: campos omitidos são limpos.
type UpdateCompanyRequest struct {
	Name        string  `json:"name" binding:"required,min=2,max=100"`
	TaxID       string  `json:"taxId" binding:"required,min=11,max=18"`
	Sector      *string `json:"sector,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToInput converte a requisição para a entrada do serviço
func (r *UpdateCompanyRequest) ToInput() services.CompanyInput {
	return services.CompanyInput{
		Name:        r.Name,
		TaxID:       r.TaxID,
		Sector:      r.Sector,
		Location:    r.Location,
		Description: r.Description,
	}
}

// CompanyResponse representa uma empresa na API
type CompanyResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	TaxID       string  `json:"taxId"`
	Sector      *string `json:"sector,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ToCompanyResponse converte a entidade para o formato da API
func ToCompanyResponse(c *entities.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		TaxID:       c.TaxID,
		Sector:      c.Sector,
		Location:    c.Location,
		Description: c.Description,
	}
}

// ToCompanyResponses converte uma lista de entidades
func ToCompanyResponses(companies []*entities.Company) []CompanyResponse {
	responses := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		responses = append(responses, ToCompanyResponse(c))
	}
	return responses
}
