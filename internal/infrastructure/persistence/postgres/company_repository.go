package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// CompanyRepository implementa repositories.CompanyRepository
type CompanyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository cria um novo CompanyRepository
func NewCompanyRepository(db *gorm.DB) repositories.CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	if company.ID == "" {
		company.ID = uuid.NewString()
	}
	model := r.toModel(company)

	db := getDB(ctx, r.db)
	return db.Create(model).Error
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entities.Company, error) {
	var model CompanyModel

	db := getDB(ctx, r.db)
	if err := db.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *entities.Company) error {
	model := r.toModel(company)

	db := getDB(ctx, r.db)
	return db.Save(model).Error
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	db := getDB(ctx, r.db)
	return db.Where("id = ?", id).Delete(&CompanyModel{}).Error
}

func (r *CompanyRepository) List(ctx context.Context) ([]*entities.Company, error) {
	var models []*CompanyModel

	db := getDB(ctx, r.db)
	if err := db.Find(&models).Error; err != nil {
		return nil, err
	}

	companies := make([]*entities.Company, 0, len(models))
	for _, model := range models {
		companies = append(companies, r.toEntity(model))
	}
	return companies, nil
}

// Conversores
func (r *CompanyRepository) toModel(company *entities.Company) *CompanyModel {
	return &CompanyModel{
		ID:          company.ID,
		Name:        company.Name,
		TaxID:       company.TaxID,
		Sector:      company.Sector,
		Location:    company.Location,
		Description: company.Description,
	}
}

func (r *CompanyRepository) toEntity(model *CompanyModel) *entities.Company {
	return &entities.Company{
		ID:          model.ID,
		Name:        model.Name,
		TaxID:       model.TaxID,
		Sector:      model.Sector,
		Location:    model.Location,
		Description: model.Description,
	}
}
