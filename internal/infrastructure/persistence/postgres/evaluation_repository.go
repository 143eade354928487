package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// EvaluationRepository implementa repositories.EvaluationRepository
type EvaluationRepository struct {
	db *gorm.DB
}

// NewEvaluationRepository cria um novo EvaluationRepository
func NewEvaluationRepository(db *gorm.DB) repositories.EvaluationRepository {
	return &EvaluationRepository{db: db}
}

func (r *EvaluationRepository) FindByProjectID(ctx context.Context, projectID string) ([]*entities.Evaluation, error) {
	var models []*EvaluationModel

	db := getDB(ctx, r.db)
	if err := db.Where("project_id = ?", projectID).Find(&models).Error; err != nil {
		return nil, err
	}

	evaluations := make([]*entities.Evaluation, 0, len(models))
	for _, model := range models {
		evaluations = append(evaluations, r.toEntity(model))
	}
	return evaluations, nil
}

// Conversores
func (r *EvaluationRepository) toEntity(model *EvaluationModel) *entities.Evaluation {
	return &entities.Evaluation{
		ID:          model.ID,
		ProjectID:   model.ProjectID,
		EvaluatorID: model.EvaluatorID,
		Comment:     model.Comment,
		Score:       model.Score,
		EvaluatedAt: timePtr(model.EvaluatedAt),
	}
}
