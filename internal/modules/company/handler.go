package company

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

// RegisterAdminRoutes mounts endpoints for the current tenant's admin.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/company", h.GetOwn)
	rg.GET("/company/users", h.ListUsers)
}

// RegisterSuperadminRoutes mounts cross-tenant management endpoints.
func (h *Handler) RegisterSuperadminRoutes(rg *gin.RouterGroup) {
	rg.GET("/companies", h.List)
	rg.GET("/companies/:id", h.Get)
	rg.POST("/companies", h.Provision)
}

func (h *Handler) GetOwn(c *gin.Context) {
	company, err := h.service.Get(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load company")
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list companies")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid company id")
		return
	}

	company, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load company")
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) Provision(c *gin.Context) {
	var req ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, admin, err := h.service.Provision(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			response.Error(c, http.StatusConflict, "EMAIL_TAKEN", "Email already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to provision company")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"company": company, "admin": admin})
}
