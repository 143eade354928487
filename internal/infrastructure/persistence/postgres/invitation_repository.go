package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// InvitationRepository implementa repositories.InvitationRepository
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository cria um novo InvitationRepository
func NewInvitationRepository(db *gorm.DB) repositories.InvitationRepository {
	return &InvitationRepository{db: db}
}

func (r *InvitationRepository) Create(ctx context.Context, invitation *entities.Invitation) error {
	if invitation.ID == "" {
		invitation.ID = uuid.NewString()
	}
	model := r.toModel(invitation)

	db := getDB(ctx, r.db)
	if err := db.Create(model).Error; err != nil {
		return err
	}

	// SentAt é definido pelo store na criação
	invitation.SentAt = time.Unix(model.SentAt, 0)
	return nil
}

func (r *InvitationRepository) FindByID(ctx context.Context, id string) (*entities.Invitation, error) {
	var model InvitationModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *InvitationRepository) FindByRecipientID(ctx context.Context, recipientID string) ([]*entities.Invitation, error) {
	return r.findWhere(ctx, "recipient_id = ?", recipientID)
}

func (r *InvitationRepository) FindBySenderID(ctx context.Context, senderID string) ([]*entities.Invitation, error) {
	return r.findWhere(ctx, "sender_id = ?", senderID)
}

func (r *InvitationRepository) Update(ctx context.Context, invitation *entities.Invitation) error {
	model := r.toModel(invitation)

	db := getDB(ctx, r.db)
	return db.Save(model).Error
}

func (r *InvitationRepository) findWhere(ctx context.Context, query string, arg any) ([]*entities.Invitation, error) {
	var models []*InvitationModel

	db := getDB(ctx, r.db)
	if err := db.Where(query, arg).Order("sent_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}

	invitations := make([]*entities.Invitation, 0, len(models))
	for _, model := range models {
		invitations = append(invitations, r.toEntity(model))
	}
	return invitations, nil
}

// Conversores
func (r *InvitationRepository) toModel(invitation *entities.Invitation) *InvitationModel {
	model := &InvitationModel{
		ID:          invitation.ID,
		Title:       invitation.Title,
		Message:     invitation.Message,
		SenderID:    invitation.SenderID,
		RecipientID: invitation.RecipientID,
		ProjectID:   invitation.ProjectID,
		Status:      string(invitation.Status),
		RespondedAt: unixPtr(invitation.RespondedAt),
	}
	// SentAt zero fica a cargo do autoCreateTime do GORM
	if !invitation.SentAt.IsZero() {
		model.SentAt = invitation.SentAt.Unix()
	}
	return model
}

func (r *InvitationRepository) toEntity(model *InvitationModel) *entities.Invitation {
	return &entities.Invitation{
		ID:          model.ID,
		Title:       model.Title,
		Message:     model.Message,
		SenderID:    model.SenderID,
		RecipientID: model.RecipientID,
		ProjectID:   model.ProjectID,
		Status:      entities.InvitationStatus(model.Status),
		SentAt:      time.Unix(model.SentAt, 0),
		RespondedAt: timePtr(model.RespondedAt),
	}
}
