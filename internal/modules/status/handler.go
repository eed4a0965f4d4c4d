package status

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
	rg.GET("/statuses", h.List)
}

func (h *Handler) RegisterWriteRoutes(rg *gin.RouterGroup) {
	rg.POST("/statuses", h.Create)
	rg.PUT("/statuses/reorder", h.Reorder)
	rg.PUT("/statuses/:id", h.Update)
	rg.DELETE("/statuses/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list statuses")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Create(c *gin.Context) {
	var req SaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	st, err := h.service.Create(c.Request.Context(), middleware.CompanyID(c), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create status")
		return
	}
	response.Success(c, http.StatusCreated, st)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status id")
		return
	}

	var req SaveStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	st, err := h.service.Update(c.Request.Context(), middleware.CompanyID(c), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Status not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		return
	}
	response.Success(c, http.StatusOK, st)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status id")
		return
	}

	err = h.service.Delete(c.Request.Context(), middleware.CompanyID(c), id)
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Status not found")
	case errors.Is(err, ErrInUse):
		response.Error(c, http.StatusConflict, "STATUS_IN_USE", "Status has projects assigned")
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete status")
	default:
		response.Success(c, http.StatusOK, gin.H{"deleted": true})
	}
}

func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	list, err := h.service.Reorder(c.Request.Context(), middleware.CompanyID(c), req.IDs)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Status not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reorder statuses")
		return
	}
	response.Success(c, http.StatusOK, list)
}
