package handler

import (
	"time"

	coreport "github.com/amirhossein-jamali/sims-ppob/internal/domain/port/core"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/sims-ppob/internal/infrastructure/adapter/api/response"
	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the health endpoint
const APIVersion = "1.0.0"

// HealthHandler answers liveness probes
type HealthHandler struct {
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{timeProvider: timeProvider}
}

// Health handles the GET / endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	response.Success(c, "SIMS PPOB API is running", dto.HealthResponse{
		Version:   APIVersion,
		Timestamp: h.timeProvider.Now().UTC().Format(time.RFC3339Nano),
	})
}
