package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/handlers/dto"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// CompanyHandler lida com requisições HTTP relacionadas a empresas
type CompanyHandler struct {
	companyService *services.CompanyService
}

// NewCompanyHandler cria um novo CompanyHandler
func NewCompanyHandler(companyService *services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// CreateCompany cria uma nova empresa
//
//	@Summary		Cria uma empresa
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateCompanyRequest	true	"Dados da empresa"
//	@Success		201		{object}	dto.CompanyResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Router			/api/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	company, err := h.companyService.CreateCompany(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// GetCompany busca uma empresa por ID
//
//	@Summary		Busca uma empresa
//	@Tags			companies
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID da empresa"
//	@Success		200	{object}	dto.CompanyResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	company, err := h.companyService.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// ListCompanies lista todas as empresas
//
//	@Summary		Lista empresas
//	@Tags			companies
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	dto.CompanyResponse
//	@Router			/api/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	companies, err := h.companyService.ListCompanies(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponses(companies))
}

// UpdateCompany substitui os dados de uma empresa
//
//	@Summary		Atualiza uma empresa
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"ID da empresa"
//	@Param			request	body		dto.UpdateCompanyRequest	true	"Dados da empresa"
//	@Success		200		{object}	dto.CompanyResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/api/companies/{id} [put]
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	company, err := h.companyService.UpdateCompany(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompanyResponse(company))
}

// DeleteCompany remove uma empresa
//
//	@Summary		Remove uma empresa
//	@Tags			companies
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID da empresa"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	if err := h.companyService.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
