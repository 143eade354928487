package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/handlers/dto"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// AuthHandler lida com autenticação
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login autentica um usuário por email e senha
//
//	@Summary		Autentica um usuário
//	@Description	Valida email e senha e retorna um token JWT
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequest	true	"Credenciais"
//	@Success		200		{object}	dto.LoginResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:       token,
		Role:        string(user.Role),
		UserProfile: dto.ToUserSummary(user),
	})
}

// Me retorna o usuário autenticado
//
//	@Summary		Usuário autenticado
//	@Description	Retorna o resumo do usuário dono do token
//	@Tags			auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.MeResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		UserProfile: dto.ToUserSummary(user),
		Role:        string(user.Role),
	})
}
