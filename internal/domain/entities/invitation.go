package entities

import (
	"time"

	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
)

// InvitationStatus representa o estado do ciclo de vida de um convite
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// IsTerminal verifica se o status é final (aceito ou recusado)
func (s InvitationStatus) IsTerminal() bool {
	return s == InvitationAccepted || s == InvitationDeclined
}

// Invitation representa um convite de RH/Gestor para um talento,
// opcionalmente ligado a um projeto
type Invitation struct {
	ID          string
	Title       string
	Message     string
	SenderID    string // RH ou Gestor
	RecipientID string // deve ser um talento
	ProjectID   *string
	Status      InvitationStatus
	SentAt      time.Time
	RespondedAt *time.Time
}

// Respond aplica a resposta do destinatário ao convite.
// Transições válidas: PENDING -> ACCEPTED e PENDING -> DECLINED.
// Convites já respondidos nunca voltam a PENDING nem mudam de resposta.
func (i *Invitation) Respond(respondingUserID string, status InvitationStatus, now time.Time) error {
	if i.RecipientID != respondingUserID {
		return errors.ErrInvitationNotRecipient
	}
	if i.Status != InvitationPending {
		return errors.ErrInvitationResolved
	}
	if !status.IsTerminal() {
		return errors.ErrInvalidResponseStatus
	}

	i.Status = status
	i.RespondedAt = &now
	return nil
}
