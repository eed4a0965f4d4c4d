package settings

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"glassworks/internal/middleware"
	"glassworks/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
}

func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	rg.PUT("/settings", h.Update)
}

func (h *Handler) Get(c *gin.Context) {
	cfg, err := h.service.Get(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Error(c, http.StatusNotFound, "NOT_CONFIGURED", "Settings are not configured")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load settings")
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cfg, err := h.service.Update(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid settings")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update settings")
		return
	}
	response.Success(c, http.StatusOK, cfg)
}
