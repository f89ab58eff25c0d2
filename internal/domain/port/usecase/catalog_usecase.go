package usecase

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// CatalogUseCase lists the read-only reference data
type CatalogUseCase interface {
	ListBanners(ctx context.Context) ([]*entity.Banner, error)
	ListServices(ctx context.Context) ([]*entity.Service, error)
}
