package persistence

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
)

// BannerRepository reads the banner reference data
type BannerRepository interface {
	// List returns every banner in insertion order
	List(ctx context.Context) ([]*entity.Banner, error)
}

// ServiceRepository reads the payable service catalog
type ServiceRepository interface {
	// List returns every service in insertion order
	List(ctx context.Context) ([]*entity.Service, error)

	// GetByCode retrieves a service by its code
	//
	// Possible errors:
	// - ErrServiceNotFound: if no service has the code
	GetByCode(ctx context.Context, code string) (*entity.Service, error)
}
