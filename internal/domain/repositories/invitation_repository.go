package repositories

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

// InvitationRepository define a interface para persistência de convites
type InvitationRepository interface {
	Create(ctx context.Context, invitation *entities.Invitation) error
	FindByID(ctx context.Context, id string) (*entities.Invitation, error)
	FindByRecipientID(ctx context.Context, recipientID string) ([]*entities.Invitation, error)
	FindBySenderID(ctx context.Context, senderID string) ([]*entities.Invitation, error)
	Update(ctx context.Context, invitation *entities.Invitation) error
}
