package repositories

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

// EvaluationRepository define a interface para persistência de avaliações
type EvaluationRepository interface {
	FindByProjectID(ctx context.Context, projectID string) ([]*entities.Evaluation, error)
}
