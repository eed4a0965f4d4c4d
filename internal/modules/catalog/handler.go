package catalog

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.GET("/catalog/glass", h.ListGlass)
	rg.GET("/catalog/hardware", h.ListHardware)
	rg.GET("/catalog/services", h.ListServices)
	rg.GET("/catalog/base-costs", h.ListBaseCosts)
}

func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	rg.POST("/catalog/glass", h.CreateGlass)
	rg.PUT("/catalog/glass/:id", h.UpdateGlass)
	rg.DELETE("/catalog/glass/:id", h.DeleteGlass)

	rg.POST("/catalog/hardware", h.CreateHardware)
	rg.PUT("/catalog/hardware/:id", h.UpdateHardware)
	rg.DELETE("/catalog/hardware/:id", h.DeleteHardware)

	rg.POST("/catalog/services", h.CreateService)
	rg.PUT("/catalog/services/:id", h.UpdateService)
	rg.DELETE("/catalog/services/:id", h.DeleteService)

	rg.POST("/catalog/base-costs", h.CreateBaseCost)
	rg.PUT("/catalog/base-costs/:id", h.UpdateBaseCost)
	rg.DELETE("/catalog/base-costs/:id", h.DeleteBaseCost)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func writeCatalogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Prices cannot be negative")
	case errors.Is(err, ErrDuplicate):
		response.Error(c, http.StatusConflict, "DUPLICATE", "Catalog entry already exists")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Catalog entry not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

/* ---------- GLASS ---------- */

func (h *Handler) ListGlass(c *gin.Context) {
	list, err := h.service.ListGlass(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list glass prices")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateGlass(c *gin.Context) {
	var req GlassPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	g, err := h.service.CreateGlass(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		writeCatalogError(c, err, "Failed to create glass price")
		return
	}
	response.Success(c, http.StatusCreated, g)
}

func (h *Handler) UpdateGlass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req GlassPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	g, err := h.service.UpdateGlass(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		writeCatalogError(c, err, "Failed to update glass price")
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) DeleteGlass(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteGlass(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		writeCatalogError(c, err, "Failed to delete glass price")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- HARDWARE ---------- */

func (h *Handler) ListHardware(c *gin.Context) {
	list, err := h.service.ListHardware(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hardware")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateHardware(c *gin.Context) {
	var req HardwareItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	item, err := h.service.CreateHardware(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		writeCatalogError(c, err, "Failed to create hardware item")
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateHardware(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req HardwareItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	item, err := h.service.UpdateHardware(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		writeCatalogError(c, err, "Failed to update hardware item")
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteHardware(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteHardware(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		writeCatalogError(c, err, "Failed to delete hardware item")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- SERVICES ---------- */

func (h *Handler) ListServices(c *gin.Context) {
	list, err := h.service.ListServices(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req ServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	item, err := h.service.CreateService(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		writeCatalogError(c, err, "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req ServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	item, err := h.service.UpdateService(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		writeCatalogError(c, err, "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteService(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		writeCatalogError(c, err, "Failed to delete service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

/* ---------- BASE COSTS ---------- */

func (h *Handler) ListBaseCosts(c *gin.Context) {
	list, err := h.service.ListBaseCosts(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list base costs")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) CreateBaseCost(c *gin.Context) {
	var req BaseCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.CreateBaseCost(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		writeCatalogError(c, err, "Failed to create base cost")
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) UpdateBaseCost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req BaseCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.UpdateBaseCost(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		writeCatalogError(c, err, "Failed to update base cost")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) DeleteBaseCost(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteBaseCost(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		writeCatalogError(c, err, "Failed to delete base cost")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
