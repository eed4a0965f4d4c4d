package quote

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
	rg.POST("/quotes/dimensions", h.ComputeDimensions)
	rg.POST("/quotes/price", h.ComputePrice)
}

func (h *Handler) ComputeDimensions(c *gin.Context) {
	var req DimensionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.ComputeDimensions(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid dimensions input")
		case errors.Is(err, ErrTemplateNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute dimensions")
		}
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ComputePrice(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.ComputePrice(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrConfigurationMissing):
			response.Error(c, http.StatusConflict, "CONFIGURATION_MISSING", "Tenant settings are not configured")
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid pricing input")
		case errors.Is(err, ErrTemplateNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute price")
		}
		return
	}
	response.Success(c, http.StatusOK, b)
}
