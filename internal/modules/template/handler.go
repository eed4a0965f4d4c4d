package template

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
	rg.GET("/templates/resolve", h.Resolve)
	rg.GET("/templates", h.List)
	rg.GET("/templates/:id", h.Get)
}

func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	rg.POST("/templates", h.Create)
	rg.PUT("/templates/:id", h.Update)
	rg.DELETE("/templates/:id", h.Delete)
}

func (h *Handler) Resolve(c *gin.Context) {
	selector := c.Query("selector")
	if selector == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "selector is required")
		return
	}

	tpl, err := h.service.Resolve(c.Request.Context(), middleware.CompanyID(c), selector)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve template")
		return
	}
	response.Success(c, http.StatusOK, tpl)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list templates")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid template id")
		return
	}

	tpl, err := h.service.Get(c.Request.Context(), middleware.CompanyID(c), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load template")
		return
	}
	response.Success(c, http.StatusOK, tpl)
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tpl, err := h.service.Create(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid template")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create template")
		return
	}
	response.Success(c, http.StatusCreated, tpl)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid template id")
		return
	}

	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tpl, err := h.service.Update(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update template")
		return
	}
	response.Success(c, http.StatusOK, tpl)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid template id")
		return
	}

	err = h.service.Delete(c.Request.Context(), middleware.CompanyID(c), id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
	case errors.Is(err, ErrSystemTemplate):
		response.Error(c, http.StatusConflict, "SYSTEM_TEMPLATE", "System templates cannot be deleted")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete template")
	default:
		response.Success(c, http.StatusOK, gin.H{"deleted": true})
	}
}
