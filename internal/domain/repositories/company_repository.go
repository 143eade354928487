package repositories

import (
	"context"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
)

// CompanyRepository define a interface para persistência de empresas
type CompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	FindByID(ctx context.Context, id string) (*entities.Company, error)
	Update(ctx context.Context, company *entities.Company) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entities.Company, error)
}
