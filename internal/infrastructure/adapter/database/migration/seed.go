package migration

import (
	"context"

	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/model"
)

const dummyImage = "https://nutech-integrasi.app/dummy.jpg"

// defaultBanners are inserted in this order, which is the order they are listed in
var defaultBanners = []model.Banner{
	{BannerName: "Banner 1", BannerImage: dummyImage, Description: "Lerem Ipsum Dolor sit amet"},
	{BannerName: "Banner 2", BannerImage: dummyImage, Description: "Lerem Ipsum Dolor sit amet"},
	{BannerName: "Banner 3", BannerImage: dummyImage, Description: "Lerem Ipsum Dolor sit amet"},
	{BannerName: "Banner 4", BannerImage: dummyImage, Description: "Lerem Ipsum Dolor sit amet"},
	{BannerName: "Banner 5", BannerImage: dummyImage, Description: "Lerem Ipsum Dolor sit amet"},
	{BannerName: "Banner 6", BannerImage: dummyImage, Description: "Lerem Ipsum Dolor sit amet"},
}

var defaultServices = []model.Service{
	{ServiceCode: "PAJAK", ServiceName: "Pajak PBB", ServiceIcon: dummyImage, ServiceTariff: 40000},
	{ServiceCode: "PLN", ServiceName: "Listrik", ServiceIcon: dummyImage, ServiceTariff: 10000},
	{ServiceCode: "PDAM", ServiceName: "PDAM Berlangganan", ServiceIcon: dummyImage, ServiceTariff: 40000},
	{ServiceCode: "PULSA", ServiceName: "Pulsa", ServiceIcon: dummyImage, ServiceTariff: 40000},
	{ServiceCode: "PGN", ServiceName: "PGN Berlangganan", ServiceIcon: dummyImage, ServiceTariff: 50000},
	{ServiceCode: "MUSIK", ServiceName: "Musik Berlangganan", ServiceIcon: dummyImage, ServiceTariff: 50000},
	{ServiceCode: "TV", ServiceName: "TV Berlangganan", ServiceIcon: dummyImage, ServiceTariff: 50000},
	{ServiceCode: "PAKET_DATA", ServiceName: "Paket data", ServiceIcon: dummyImage, ServiceTariff: 50000},
	{ServiceCode: "VOUCHER_GAME", ServiceName: "Voucher Game", ServiceIcon: dummyImage, ServiceTariff: 100000},
	{ServiceCode: "VOUCHER_MAKANAN", ServiceName: "Voucher Makanan", ServiceIcon: dummyImage, ServiceTariff: 100000},
	{ServiceCode: "QURBAN", ServiceName: "Qurban", ServiceIcon: dummyImage, ServiceTariff: 200000},
	{ServiceCode: "ZAKAT", ServiceName: "Zakat", ServiceIcon: dummyImage, ServiceTariff: 300000},
}

// SeedCatalog inserts the default banners and services that are missing.
// Existing rows are matched by banner name and service code and left untouched.
func (m *MigrationManager) SeedCatalog(ctx context.Context) error {
	m.logger.Info("Seeding catalog", nil)

	db := m.db.WithContext(ctx)
	for _, banner := range defaultBanners {
		row := banner
		result := db.Where(model.Banner{BannerName: banner.BannerName}).Attrs(banner).FirstOrCreate(&row)
		if result.Error != nil {
			m.logger.Error("Failed to seed banner", map[string]any{
				"banner_name": banner.BannerName,
				"error":       result.Error.Error(),
			})
			return result.Error
		}
	}

	for _, service := range defaultServices {
		row := service
		result := db.Where(model.Service{ServiceCode: service.ServiceCode}).Attrs(service).FirstOrCreate(&row)
		if result.Error != nil {
			m.logger.Error("Failed to seed service", map[string]any{
				"service_code": service.ServiceCode,
				"error":        result.Error.Error(),
			})
			return result.Error
		}
	}

	m.logger.Info("Catalog seeded", map[string]any{
		"banners":  len(defaultBanners),
		"services": len(defaultServices),
	})
	return nil
}
