package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/handlers/dto"
	"github.com/simplyinvite/showcase-backend/internal/handlers/middleware"
	"github.com/simplyinvite/showcase-backend/internal/services"
)

// InvitationHandler lida com requisições HTTP relacionadas a convites
type InvitationHandler struct {
	invitationService *services.InvitationService
}

// NewInvitationHandler cria um novo InvitationHandler
func NewInvitationHandler(invitationService *services.InvitationService) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
	}
}

// CreateInvitation cria um convite para um talento
//
//	@Summary		Cria um convite
//	@Description	RH ou gestor envia um convite a um talento, opcionalmente ligado a um projeto
//	@Tags			invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		dto.CreateInvitationRequest	true	"Dados do convite"
//	@Success		201		{object}	dto.InvitationResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/api/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	view, err := h.invitationService.CreateInvitation(c.Request.Context(), user, req.ToInput())
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvitationResponse(view))
}

// RespondInvitation registra a resposta do talento a um convite
//
//	@Summary		Responde um convite
//	@Description	O destinatário aceita ou recusa um convite pendente
//	@Tags			invitations
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"ID do convite"
//	@Param			request	body		dto.RespondInvitationRequest	true	"Resposta"
//	@Success		200		{object}	dto.InvitationResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		403		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/api/invitations/{id}/respond [post]
func (h *InvitationHandler) RespondInvitation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	var req dto.RespondInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.RespondBindingError(c, err)
		return
	}

	status := entities.InvitationStatus(req.Status)
	view, err := h.invitationService.RespondInvitation(c.Request.Context(), user, c.Param("id"), status)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(view))
}

// ListReceivedInvitations lista os convites recebidos pelo usuário autenticado
//
//	@Summary		Convites recebidos
//	@Tags			invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.InvitationResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/invitations/received [get]
func (h *InvitationHandler) ListReceivedInvitations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	views, err := h.invitationService.ListReceived(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponses(views))
}

// ListSentInvitations lista os convites enviados pelo usuário autenticado
//
//	@Summary		Convites enviados
//	@Tags			invitations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.InvitationResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Router			/api/invitations/sent [get]
func (h *InvitationHandler) ListSentInvitations(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	views, err := h.invitationService.ListSent(c.Request.Context(), user.ID)
	if err != nil {
		dto.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponses(views))
}
