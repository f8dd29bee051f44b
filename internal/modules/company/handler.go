package company

import (
	"errors"
	"net/http"
	"strconv"

	"wellbook/internal/domain"
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

// RegisterPublicRoutes mounts the unauthenticated read endpoints.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/public/companies", h.ListPublic)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/companies", middleware.SuperAdminOnly(), h.Create)
	rg.GET("/companies", middleware.SuperAdminOnly(), h.List)
	rg.GET("/companies/:companyId", h.Get)
	rg.PATCH("/companies/:companyId",
		middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleCompanyAdmin),
		middleware.CompanyScope(),
		h.Update)
	rg.DELETE("/companies/:companyId", middleware.SuperAdminOnly(), h.Deactivate)

	offerings := rg.Group("/companies/:companyId/services")
	offerings.GET("", h.ListOfferings)
	offerings.POST("",
		middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleCompanyAdmin),
		middleware.CompanyScope(),
		h.AddOffering)
	offerings.PATCH("/:id",
		middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleCompanyAdmin),
		middleware.CompanyScope(),
		h.UpdateOffering)
	offerings.DELETE("/:id",
		middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleCompanyAdmin),
		middleware.CompanyScope(),
		h.RemoveOffering)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, company)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}

	company, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// ListPublic returns active companies only, regardless of query filters.
func (h *Handler) ListPublic(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}

	active := true
	q.IsActive = &active

	res, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	company, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}

	company, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, company)
}

func (h *Handler) AddOffering(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}

	var req AddOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cs, err := h.service.AddOffering(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cs)
}

func (h *Handler) ListOfferings(c *gin.Context) {
	id, ok := companyID(c)
	if !ok {
		return
	}

	onlyActive := c.Query("is_active") != "false"
	offerings, err := h.service.ListOfferings(c.Request.Context(), id, onlyActive)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, offerings)
}

func (h *Handler) UpdateOffering(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	oid, ok := offeringID(c)
	if !ok {
		return
	}

	var req UpdateOfferingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cs, err := h.service.UpdateOffering(c.Request.Context(), cid, oid, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cs)
}

func (h *Handler) RemoveOffering(c *gin.Context) {
	cid, ok := companyID(c)
	if !ok {
		return
	}
	oid, ok := offeringID(c)
	if !ok {
		return
	}

	cs, err := h.service.RemoveOffering(c.Request.Context(), cid, oid)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cs)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "COMPANY_NOT_FOUND", "Company not found")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found or inactive")
	case errors.Is(err, ErrOfferingNotFound):
		response.Error(c, http.StatusNotFound, "COMPANY_SERVICE_NOT_FOUND", "Company service not found")
	case errors.Is(err, ErrSlugTaken):
		response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A company with this name already exists")
	case errors.Is(err, ErrOfferingExists):
		response.Error(c, http.StatusConflict, "COMPANY_SERVICE_EXISTS", "Company already offers this service")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func companyID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return 0, false
	}
	return id, true
}

func offeringID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company service ID")
		return 0, false
	}
	return id, true
}
