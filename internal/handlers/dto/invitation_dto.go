package dto

import (
	"time"

	"github.com/simplyinvite/showcase-backend/internal/services"
)

// CreateInvitationRequest representa os dados para criar um convite
type CreateInvitationRequest struct {
	Title       string  `json:"title" binding:"required,min=5,max=100" example:"Entrevista para vaga de estágio"`
	Message     string  `json:"message" binding:"required,min=10,max=2000"`
	RecipientID string  `json:"recipientId" binding:"required,uuid"`
	ProjectID   *string `json:"projectId,omitempty" binding:"omitempty,uuid"`
}

// ToInput converte a requisição para a entrada do serviço
func (r *CreateInvitationRequest) ToInput() services.CreateInvitationInput {
	return services.CreateInvitationInput{
		Title:       r.Title,
		Message:     r.Message,
		RecipientID: r.RecipientID,
		ProjectID:   r.ProjectID,
	}
}

// RespondInvitationRequest representa a resposta de um talento a um convite
type RespondInvitationRequest struct {
	Status string `json:"status" binding:"required,oneof=ACCEPTED DECLINED" example:"ACCEPTED"`
}

// InvitationResponse representa um convite na API, com os dados
// denormalizados de remetente, destinatário e projeto
type InvitationResponse struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Message             string     `json:"message"`
	Status              string     `json:"status"`
	SentAt              time.Time  `json:"sentAt"`
	RespondedAt         *time.Time `json:"respondedAt,omitempty"`
	SenderID            string     `json:"senderId"`
	SenderName          *string    `json:"senderName,omitempty"`
	SenderAvatarURL     *string    `json:"senderAvatarUrl,omitempty"`
	SenderJobTitle      *string    `json:"senderJobTitle,omitempty"`
	SenderCompanyName   *string    `json:"senderCompanyName,omitempty"`
	RecipientID         string     `json:"recipientId"`
	RecipientName       *string    `json:"recipientName,omitempty"`
	RecipientAvatarURL  *string    `json:"recipientAvatarUrl,omitempty"`
	ProjectID           *string    `json:"projectId,omitempty"`
	ProjectTitle        *string    `json:"projectTitle,omitempty"`
	ProjectThumbnailURL *string    `json:"projectThumbnailUrl,omitempty"`
}

// ToInvitationResponse converte a projeção de convite para o formato da API
func ToInvitationResponse(v *services.InvitationView) InvitationResponse {
	return InvitationResponse{
		ID:                  v.Invitation.ID,
		Title:               v.Invitation.Title,
		Message:             v.Invitation.Message,
		Status:              string(v.Invitation.Status),
		SentAt:              v.Invitation.SentAt,
		RespondedAt:         v.Invitation.RespondedAt,
		SenderID:            v.Invitation.SenderID,
		SenderName:          v.SenderName,
		SenderAvatarURL:     v.SenderAvatarURL,
		SenderJobTitle:      v.SenderJobTitle,
		SenderCompanyName:   v.SenderCompanyName,
		RecipientID:         v.Invitation.RecipientID,
		RecipientName:       v.RecipientName,
		RecipientAvatarURL:  v.RecipientAvatarURL,
		ProjectID:           v.Invitation.ProjectID,
		ProjectTitle:        v.ProjectTitle,
		ProjectThumbnailURL: v.ProjectThumbnailURL,
	}
}

// ToInvitationResponses converte uma lista de projeções
func ToInvitationResponses(views []*services.InvitationView) []InvitationResponse {
	responses := make([]InvitationResponse, 0, len(views))
	for _, v := range views {
		responses = append(responses, ToInvitationResponse(v))
	}
	return responses
}
