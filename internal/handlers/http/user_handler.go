package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
	"github.com/simplyinvite/showcase-backend/internal/handlers/dto"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser registra um novo usuário
//
//	@Summary		Cria um usuário
//	@Description	Registra um usuário com email único e role fixo
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateUserRequest	true	"Dados do usuário"
//	@Success		201		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
//
//	@Summary		Busca um usuário
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.UserResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com filtro por role e paginação
//
//	@Summary		Lista usuários
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			role		query		string	false	"Filtra por role (talent, hr, manager)"
//	@Param			page		query		int		false	"Página (começa em 1)"
//	@Param			pageSize	query		int		false	"Itens por página"
//	@Success		200			{array}		dto.UserResponse
//	@Router			/api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	filters := repositories.UserFilters{}

	if roleParam := c.Query("role"); roleParam != "" {
		role := entities.Role(roleParam)
		filters.Role = &role
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filters.Page = page
	}
	if pageSize, err := strconv.Atoi(c.Query("pageSize")); err == nil {
		filters.PageSize = pageSize
	}

	users, err := h.userService.ListUsers(c.Request.Context(), filters)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser atualiza parcialmente um usuário
//
//	@Summary		Atualiza um usuário
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"ID do usuário"
//	@Param			request	body		dto.UpdateUserRequest	true	"Campos a atualizar"
//	@Success		200		{object}	dto.UserResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/api/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove um usuário
//
//	@Summary		Remove um usuário
//	@Tags			users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"ID do usuário"
//	@Success		204
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		dto.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfile retorna o perfil projetado conforme o role do usuário
//
//	@Summary		Perfil de um usuário
//	@Description	Retorna o perfil no formato do role: talento com idade e habilidades, RH/gestor com dados da empresa
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"ID do usuário"
//	@Success		200	{object}	dto.ProfileResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/api/users/{id}/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	projection, err := h.userService.GetProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(projection))
}

// MyProfile retorna o perfil projetado do usuário autenticado
//
//	@Summary		Perfil do usuário autenticado
//	@Tags			users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.ProfileResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/users/me/profile [get]
func (h *UserHandler) MyProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	projection, err := h.userService.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(projection))
}

// CompleteOnboarding registra os dados do formulário de onboarding
//
//	@Summary		Conclui o onboarding
//	@Description	Grava os dados do formulário inicial e marca o onboarding como concluído
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.OnboardingRequest	true	"Dados do onboarding"
//	@Success		200		{object}	dto.UserSummaryResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Router			/api/users/me/onboarding [put]
func (h *UserHandler) CompleteOnboarding(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	updated, err := h.userService.CompleteOnboarding(c.Request.Context(), user, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserSummary(updated))
}
