package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/click-ai/cal.com/pkg/utils"
)

var startTime = time.Now()

type HealthHandler struct {
	db *gorm.DB
}

type HealthStatus struct {
	Status      string            `json:"status"`
	Timestamp   time.Time         `json:"timestamp"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Services    map[string]string `json:"services"`
	Uptime      string            `json:"uptime"`
}

type ReadinessStatus struct {
	Ready    bool              `json:"ready"`
	Services map[string]string `json:"services"`
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// Health reports overall service health including database connectivity.
func (h *HealthHandler) Health(c *gin.Context) {
	services := make(map[string]string)
	services["database"] = h.checkDatabase()

	status := "healthy"
	for _, serviceStatus := range services {
		if serviceStatus != "healthy" {
			status = "degraded"
			break
		}
	}

	healthStatus := HealthStatus{
		Status:      status,
		Timestamp:   time.Now(),
		Version:     "1.0.0",
		Environment: gin.Mode(),
		Services:    services,
		Uptime:      time.Since(startTime).String(),
	}

	statusCode := http.StatusOK
	if status == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	utils.JSONResponse(c, statusCode, healthStatus)
}

// Readiness reports whether the service can accept requests.
func (h *HealthHandler) Readiness(c *gin.Context) {
	services := make(map[string]string)
	services["database"] = h.checkDatabase()

	ready := true
	for _, serviceStatus := range services {
		if serviceStatus != "healthy" {
			ready = false
			break
		}
	}

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	utils.JSONResponse(c, statusCode, ReadinessStatus{
		Ready:    ready,
		Services: services,
	})
}

// Liveness reports that the process is running.
func (h *HealthHandler) Liveness(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) checkDatabase() string {
	sqlDB, err := h.db.DB()
	if err != nil {
		return "unhealthy"
	}
	if err := sqlDB.Ping(); err != nil {
		return "unhealthy"
	}
	return "healthy"
}
