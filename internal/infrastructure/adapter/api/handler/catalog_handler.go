package handler

import (
	"github.com/amirhossein-jamali/sims-ppob/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/response"
	"github.com/gin-gonic/gin"
)

// CatalogHandler serves banners and services
type CatalogHandler struct {
	catalog usecase.CatalogUseCase
}

// NewCatalogHandler creates a new catalog handler instance
func NewCatalogHandler(catalog usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListBanners handles the public GET /banner endpoint
func (h *CatalogHandler) ListBanners(c *gin.Context) {
	banners, err := h.catalog.ListBanners(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Sukses", dto.NewBannerResponses(banners))
}

// ListServices handles the GET /services endpoint
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Sukses", dto.NewServiceResponses(services))
}
