package project

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glassworks/internal/middleware"
	"glassworks/internal/modules/quote"
	"glassworks/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/projects", h.List)
	rg.GET("/projects/:id", h.Get)
}

func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	rg.POST("/projects", h.Create)
	rg.PUT("/projects/:id", h.Update)
	rg.PATCH("/projects/:id/status", h.SetStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		h.writeError(c, err, "Failed to create project")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project id")
		return
	}

	var req SaveProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update project")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) SetStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project id")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.SetStatus(c.Request.Context(), middleware.CompanyID(c), id, req.StatusID)
	if err != nil {
		h.writeError(c, err, "Failed to change project status")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project id")
		return
	}

	p, err := h.service.Get(c.Request.Context(), middleware.CompanyID(c), id)
	if err != nil {
		h.writeError(c, err, "Failed to load project")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) List(c *gin.Context) {
	var statusID *int64
	if raw := c.Query("status_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status_id")
			return
		}
		statusID = &id
	}

	list, err := h.service.List(c.Request.Context(), middleware.CompanyID(c), statusID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list projects")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Project not found")
	case errors.Is(err, ErrStatusNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Status not found")
	case errors.Is(err, ErrNoStatuses):
		response.Error(c, http.StatusConflict, "CONFIGURATION_MISSING", "Company has no statuses configured")
	case errors.Is(err, quote.ErrConfigurationMissing):
		response.Error(c, http.StatusConflict, "CONFIGURATION_MISSING", "Tenant settings are not configured")
	case errors.Is(err, quote.ErrTemplateNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Template not found")
	case errors.Is(err, ErrValidation), errors.Is(err, quote.ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid project input")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
