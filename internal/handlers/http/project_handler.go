package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/handlers/dto"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// ProjectHandler lida com requisições HTTP relacionadas a projetos
type ProjectHandler struct {
	projectService    *services.ProjectService
	evaluationService *services.EvaluationService
}

// NewProjectHandler cria um novo ProjectHandler
func NewProjectHandler(projectService *services.ProjectService, evaluationService *services.EvaluationService) *ProjectHandler {
	return &ProjectHandler{
		projectService:    projectService,
		evaluationService: evaluationService,
	}
}

// ListProjects lista todos os projetos com medalha e contagem de feedback
//
//	@Summary		Lista projetos
//	@Description	Cada projeto vem com medalha derivada da maior nota e contagem de avaliações
//	@Tags			projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}	dto.ProjectResponse
//	@Router			/api/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	views, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(views))
}

// GetProject busca um projeto por ID
//
//	@Summary		Busca um projeto
//	@Tags			projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do projeto"
//	@Success		200	{object}	dto.ProjectResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	view, err := h.projectService.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(view))
}

// ListUserProjects lista os projetos de um usuário
//
//	@Summary		Projetos de um usuário
//	@Tags			projects
//	@Produce		json
//	@Security		BearerAuth
//	@Param			userId	path	string	true	"ID do usuário"
//	@Success		200		{array}	dto.ProjectResponse
//	@Router			/api/projects/user/{userId} [get]
func (h *ProjectHandler) ListUserProjects(c *gin.Context) {
	views, err := h.projectService.ListProjectsByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(views))
}

// ListMyProjects lista os projetos do usuário autenticado
//
//	@Summary		Meus projetos
//	@Tags			projects
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ProjectResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/users/me/projects [get]
func (h *ProjectHandler) ListMyProjects(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	views, err := h.projectService.ListProjectsByUser(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(views))
}

// ListProjectEvaluations lista as avaliações de um projeto
//
//	@Summary		Avaliações de um projeto
//	@Description	Cada avaliação vem com a medalha da nota e o rótulo do avaliador
//	@Tags			evaluations
//	@Produce		json
//	@Security		BearerAuth
//	@Param			projectId	path		string	true	"ID do projeto"
//	@Success		200			{array}		dto.EvaluationResponse
//	@Failure		404			{object}	dto.ErrorResponse
//	@Router			/api/evaluations/project/{projectId} [get]
func (h *ProjectHandler) ListProjectEvaluations(c *gin.Context) {
	views, err := h.evaluationService.ListByProject(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEvaluationResponses(c, views))
}
