package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"wellbook/internal/middleware"
	"wellbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes mounts the unauthenticated catalog browse endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/categories", h.PublicCategories)
	rg.GET("/public/services", h.PublicServices)
	rg.GET("/public/services/:id/providers", h.PublicServiceProviders)
}

// RegisterRoutes mounts the catalog management endpoints. Super admin only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("", middleware.SuperAdminOnly())
	admin.POST("/categories", h.CreateCategory)
	admin.GET("/categories", h.ListCategories)
	admin.GET("/categories/:id", h.GetCategory)
	admin.PATCH("/categories/:id", h.UpdateCategory)
	admin.DELETE("/categories/:id", h.DeactivateCategory)

	admin.POST("/services", h.CreateService)
	admin.GET("/services", h.ListServices)
	admin.GET("/services/:id", h.GetService)
	admin.PATCH("/services/:id", h.UpdateService)
	admin.DELETE("/services/:id", h.DeactivateService)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cat, err := h.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) ListCategories(c *gin.Context) {
	onlyActive := c.Query("is_active") == "true"
	categories, err := h.service.ListCategories(c.Request.Context(), onlyActive)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) DeactivateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cat, err := h.service.DeactivateCategory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) GetService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc, err := h.service.GetService(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) ListServices(c *gin.Context) {
	q, ok := bindServiceQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListServices(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) DeactivateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	svc, err := h.service.DeactivateService(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) PublicCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context(), true)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, categories)
}

func (h *Handler) PublicServices(c *gin.Context) {
	q, ok := bindServiceQuery(c)
	if !ok {
		return
	}

	active := true
	q.IsActive = &active

	res, err := h.service.ListServices(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) PublicServiceProviders(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	providers, err := h.service.ServiceProviders(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, providers)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCategoryNotFound):
		response.Error(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A category with this name already exists")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func bindServiceQuery(c *gin.Context) (ServiceListQuery, bool) {
	var q ServiceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return q, false
	}
	return q, true
}
