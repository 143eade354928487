package repositories

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

// ProjectRepository define a interface para persistência de projetos
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Project, error)
	FindByUserID(ctx context.Context, userID string) ([]*entities.Project, error)
	List(ctx context.Context) ([]*entities.Project, error)
}
