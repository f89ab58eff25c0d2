package catalog

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/persistence"
)

// CatalogUseCase serves the read-only banner and service listings
type CatalogUseCase struct {
	bannerRepo  persistence.BannerRepository
	serviceRepo persistence.ServiceRepository
}

// NewCatalogUseCase creates a new CatalogUseCase
func NewCatalogUseCase(bannerRepo persistence.BannerRepository, serviceRepo persistence.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{
		bannerRepo:  bannerRepo,
		serviceRepo: serviceRepo,
	}
}

// ListBanners returns all banners
func (c *CatalogUseCase) ListBanners(ctx context.Context) ([]*entity.Banner, error) {
	return c.bannerRepo.List(ctx)
}

// ListServices returns all services
func (c *CatalogUseCase) ListServices(ctx context.Context) ([]*entity.Service, error) {
	return c.serviceRepo.List(ctx)
}
