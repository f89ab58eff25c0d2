package dto

import "github.com/amirhossein-jamali/sims-ppob/internal/domain/entity"

// BannerResponse represents one promotional banner
type BannerResponse struct {
	BannerName  string `json:"banner_name"`
	BannerImage string `json:"banner_image"`
	Description string `json:"description"`
}

// ServiceResponse represents one payable service
type ServiceResponse struct {
	ServiceCode   string `json:"service_code"`
	ServiceName   string `json:"service_name"`
	ServiceIcon   string `json:"service_icon"`
	ServiceTariff int64  `json:"service_tariff"`
}

// NewBannerResponses maps banners in order
func NewBannerResponses(banners []*entity.Banner) []BannerResponse {
	out := make([]BannerResponse, 0, len(banners))
	for _, b := range banners {
		out = append(out, BannerResponse{BannerName: b.Name, BannerImage: b.Image, Description: b.Description})
	}
	return out
}

// NewServiceResponses maps services in order
func NewServiceResponses(services []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ServiceCode:   s.Code,
			ServiceName:   s.Name,
			ServiceIcon:   s.Icon,
			ServiceTariff: s.Tariff,
		})
	}
	return out
}

// HealthResponse is returned by the root endpoint
type HealthResponse struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
