package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sims-ppob/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// BannerRepository reads banners using GORM
type BannerRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewBannerRepository creates a new BannerRepository instance
func NewBannerRepository(db *gorm.DB, logger coreport.Logger) *BannerRepository {
	return &BannerRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// List returns every banner in insertion order
func (r *BannerRepository) List(ctx context.Context) ([]*entity.Banner, error) {
	var rows []model.Banner
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, wrapDatabaseError(r.logger, r.errorClassifier, "listing banners", err, nil)
	}

	banners := make([]*entity.Banner, 0, len(rows))
	for _, row := range rows {
		banners = append(banners, &entity.Banner{
			ID:          row.ID,
			Name:        row.BannerName,
			Image:       row.BannerImage,
			Description: row.Description,
		})
	}
	return banners, nil
}

// ServiceRepository reads the service catalog using GORM
type ServiceRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewServiceRepository creates a new ServiceRepository instance
func NewServiceRepository(db *gorm.DB, logger coreport.Logger) *ServiceRepository {
	return &ServiceRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func serviceModelToEntity(m *model.Service) *entity.Service {
	return &entity.Service{
		ID:     m.ID,
		Code:   m.ServiceCode,
		Name:   m.ServiceName,
		Icon:   m.ServiceIcon,
		Tariff: m.ServiceTariff,
	}
}

// List returns every service in insertion order
func (r *ServiceRepository) List(ctx context.Context) ([]*entity.Service, error) {
	var rows []model.Service
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, wrapDatabaseError(r.logger, r.errorClassifier, "listing services", err, nil)
	}

	services := make([]*entity.Service, 0, len(rows))
	for i := range rows {
		services = append(services, serviceModelToEntity(&rows[i]))
	}
	return services, nil
}

// GetByCode retrieves a service by its exact, case-sensitive code
func (r *ServiceRepository) GetByCode(ctx context.Context, code string) (*entity.Service, error) {
	var row model.Service
	err := r.db.WithContext(ctx).Where("service_code = ?", code).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", errs.ErrServiceNotFound, code)
		}
		return nil, wrapDatabaseError(r.logger, r.errorClassifier, "getting service", err, map[string]any{"service_code": code})
	}
	return serviceModelToEntity(&row), nil
}
