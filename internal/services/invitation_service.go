package services

import (
	"context"
	"time"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/errors"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// Tipos de evento publicados pelo workflow de convites
const (
	EventInvitationReceived = "invitation.received"
	EventInvitationAnswered = "invitation.answered"
)

// InvitationService contém o workflow de convites
type InvitationService struct {
	invitationRepo repositories.InvitationRepository
	userRepo       repositories.UserRepository
	companyRepo    repositories.CompanyRepository
	projectRepo    repositories.ProjectRepository
	uow            ports.UnitOfWork
	notifier       ports.Notifier
	logger         ports.Logger
	now            func() time.Time
}

// NewInvitationService cria um novo InvitationService
func NewInvitationService(
	invitationRepo repositories.InvitationRepository,
	userRepo repositories.UserRepository,
	companyRepo repositories.CompanyRepository,
	projectRepo repositories.ProjectRepository,
	uow ports.UnitOfWork,
	notifier ports.Notifier,
	logger ports.Logger,
) *InvitationService {
	return &InvitationService{
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		projectRepo:    projectRepo,
		uow:            uow,
		notifier:       notifier,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateInvitationInput representa os dados para criar um convite
type CreateInvitationInput struct {
	Title       string
	Message     string
	RecipientID string
	ProjectID   *string
}

// CreateInvitation valida remetente, destinatário e projeto e persiste um
// convite PENDING. A sequência de checagens roda dentro de uma transação.
func (s *InvitationService) CreateInvitation(ctx context.Context, sender *entities.User, input CreateInvitationInput) (*InvitationView, error) {
	if !sender.Role.CanSendInvitations() {
		return nil, errors.ErrSenderNotAllowed
	}

	var invitation *entities.Invitation
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		recipient, err := s.userRepo.FindByID(txCtx, input.RecipientID)
		if err != nil {
			return err
		}
		if recipient == nil {
			return errors.ErrRecipientNotFound
		}
		if !recipient.Role.Is(entities.RoleTalent) {
			return errors.ErrInvalidRecipient
		}

		if input.ProjectID != nil {
			project, err := s.projectRepo.FindByID(txCtx, *input.ProjectID)
			if err != nil {
				return err
			}
			if project == nil {
				return errors.ErrProjectNotFound
			}
		}

		invitation = &entities.Invitation{
			Title:       input.Title,
			Message:     input.Message,
			SenderID:    sender.ID,
			RecipientID: recipient.ID,
			ProjectID:   input.ProjectID,
			Status:      entities.InvitationPending,
		}
		return s.invitationRepo.Create(txCtx, invitation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invitation created",
		"invitation_id", invitation.ID,
		"sender_id", sender.ID,
		"recipient_id", invitation.RecipientID,
	)

	view, err := s.toView(ctx, invitation)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(invitation.RecipientID, ports.Notification{
		Type:    EventInvitationReceived,
		Payload: map[string]string{"invitationId": invitation.ID, "title": invitation.Title},
	})

	return view, nil
}

// RespondInvitation aplica a resposta do destinatário: somente o
// destinatário responde, somente convites PENDING, e a resposta deve ser
// ACCEPTED ou DECLINED. Roda dentro de uma transação para que a leitura,
// a validação e a escrita não se intercalem com outra resposta.
func (s *InvitationService) RespondInvitation(ctx context.Context, user *entities.User, invitationID string, status entities.InvitationStatus) (*InvitationView, error) {
	var invitation *entities.Invitation
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		invitation, err = s.invitationRepo.FindByID(txCtx, invitationID)
		if err != nil {
			return err
		}
		if invitation == nil {
			return errors.ErrInvitationNotFound
		}

		if err := invitation.Respond(user.ID, status, s.now()); err != nil {
			return err
		}

		return s.invitationRepo.Update(txCtx, invitation)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("invitation answered",
		"invitation_id", invitation.ID,
		"status", string(invitation.Status),
	)

	view, err := s.toView(ctx, invitation)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(invitation.SenderID, ports.Notification{
		Type:    EventInvitationAnswered,
		Payload: map[string]string{"invitationId": invitation.ID, "status": string(invitation.Status)},
	})

	return view, nil
}

// ListReceived lista os convites recebidos por um usuário, projetados
func (s *InvitationService) ListReceived(ctx context.Context, userID string) ([]*InvitationView, error) {
	invitations, err := s.invitationRepo.FindByRecipientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, invitations)
}

// ListSent lista os convites enviados por um usuário, projetados
func (s *InvitationService) ListSent(ctx context.Context, userID string) ([]*InvitationView, error) {
	invitations, err := s.invitationRepo.FindBySenderID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, invitations)
}

// toView monta a projeção de um convite com remetente (e sua empresa),
// destinatário e projeto denormalizados. Referências quebradas são
// toleradas: os campos correspondentes ficam vazios.
func (s *InvitationService) toView(ctx context.Context, invitation *entities.Invitation) (*InvitationView, error) {
	view := &InvitationView{Invitation: invitation}

	sender, err := s.userRepo.FindByID(ctx, invitation.SenderID)
	if err != nil {
		return nil, err
	}
	if sender != nil {
		view.SenderName = &sender.FullName
		view.SenderAvatarURL = sender.AvatarURL
		view.SenderJobTitle = sender.JobTitle
		if sender.CompanyID != nil {
			company, err := s.companyRepo.FindByID(ctx, *sender.CompanyID)
			if err != nil {
				return nil, err
			}
			if company != nil {
				view.SenderCompanyName = &company.Name
			}
		}
	}

	recipient, err := s.userRepo.FindByID(ctx, invitation.RecipientID)
	if err != nil {
		return nil, err
	}
	if recipient != nil {
		view.RecipientName = &recipient.FullName
		view.RecipientAvatarURL = recipient.AvatarURL
	}

	if invitation.ProjectID != nil {
		project, err := s.projectRepo.FindByID(ctx, *invitation.ProjectID)
		if err != nil {
			return nil, err
		}
		if project != nil {
			view.ProjectTitle = &project.Title
			view.ProjectThumbnailURL = project.ThumbnailURL
		}
	}

	return view, nil
}

func (s *InvitationService) toViews(ctx context.Context, invitations []*entities.Invitation) ([]*InvitationView, error) {
	views := make([]*InvitationView, 0, len(invitations))
	for _, invitation := range invitations {
		view, err := s.toView(ctx, invitation)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}
