package model

// Banner represents the database model for promotional banners
type Banner struct {
	ID          uint64 `gorm:"primaryKey;autoIncrement"`
	BannerName  string `gorm:"not null;size:100"`
	BannerImage string `gorm:"not null;size:512"`
	Description string `gorm:"not null;type:text"`
}

// TableName specifies the table name for Banner
func (Banner) TableName() string {
	return "banners"
}

// Service represents the database model for payable services
type Service struct {
	ID            uint64 `gorm:"primaryKey;autoIncrement"`
	ServiceCode   string `gorm:"uniqueIndex:idx_services_service_code;not null;size:50"`
	ServiceName   string `gorm:"not null;size:100"`
	ServiceIcon   string `gorm:"not null;size:512"`
	ServiceTariff int64  `gorm:"not null;check:chk_services_tariff,service_tariff >= 0"`
}

// TableName specifies the table name for Service
func (Service) TableName() string {
	return "services"
}
