package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// ProjectRepository implementa repositories.ProjectRepository
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository cria um novo ProjectRepository
func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entities.Project, error) {
	var model ProjectModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ProjectRepository) FindByUserID(ctx context.Context, userID string) ([]*entities.Project, error) {
	var models []*ProjectModel

	db := getDB(ctx, r.db)
	if err := db.Where("user_id = ?", userID).Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*entities.Project, error) {
	var models []*ProjectModel

	db := getDB(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models), nil
}

// Conversores
func (r *ProjectRepository) toEntity(model *ProjectModel) *entities.Project {
	return &entities.Project{
		ID:               model.ID,
		Title:            model.Title,
		Description:      model.Description,
		UserID:           model.UserID,
		VideoURL:         model.VideoURL,
		ExternalLink:     model.ExternalLink,
		Category:         model.Category,
		SubmissionStatus: model.SubmissionStatus,
		SubmittedAt:      timePtr(model.SubmittedAt),
		ThumbnailURL:     model.ThumbnailURL,
	}
}

func (r *ProjectRepository) toEntities(models []*ProjectModel) []*entities.Project {
	projects := make([]*entities.Project, 0, len(models))
	for _, model := range models {
		projects = append(projects, r.toEntity(model))
	}
	return projects
}
