package booking

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", middleware.RequireRole(domain.RoleCustomer), h.Create)
	rg.GET("/bookings/my", middleware.RequireRole(domain.RoleCustomer), h.ListMine)
	rg.GET("/bookings", middleware.SuperAdminOnly(), h.ListAll)
	rg.GET("/bookings/requests", middleware.SuperAdminOnly(), h.ListRequests)
	rg.GET("/bookings/company-assigned", middleware.RequireRole(domain.RoleCompanyAdmin), h.ListCompanyAssigned)
	rg.GET("/bookings/assigned-to-me", middleware.RequireRole(domain.RoleMember), h.ListAssignedToMe)
	rg.GET("/bookings/company-members", middleware.RequireRole(domain.RoleCompanyAdmin), h.CompanyMembers)
	rg.GET("/bookings/company/:companyId/members",
		middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleCompanyAdmin),
		middleware.CompanyScope(),
		h.MembersByCompany)
	rg.GET("/bookings/:id", h.Get)
	rg.PATCH("/bookings/:id/status",
		middleware.RequireRole(domain.RoleSuperAdmin, domain.RoleCompanyAdmin, domain.RoleMember),
		h.UpdateStatus)
	rg.PATCH("/bookings/:id/assign", middleware.SuperAdminOnly(), h.Assign)
	rg.PATCH("/bookings/:id/notes", middleware.SuperAdminOnly(), h.UpdateNotes)
	rg.PATCH("/bookings/:id/assign-member", middleware.RequireRole(domain.RoleCompanyAdmin), h.AssignToMember)
	rg.PATCH("/bookings/:id/cancel", h.Cancel)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) ListMine(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListAll(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListAll(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListRequests(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListRequests(c.Request.Context(), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListCompanyAssigned(c *gin.Context) {
	companyID := middleware.CallerCompanyID(c)
	if companyID == nil {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No company associated with this account")
		return
	}

	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListCompanyAssigned(c.Request.Context(), *companyID, q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListAssignedToMe(c *gin.Context) {
	q, ok := bindListQuery(c)
	if !ok {
		return
	}

	res, err := h.service.ListAssignedToMe(c.Request.Context(), c.GetInt64("user_id"), q)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CompanyMembers(c *gin.Context) {
	companyID := middleware.CallerCompanyID(c)
	if companyID == nil {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No company associated with this account")
		return
	}

	members, err := h.service.CompanyMembers(c.Request.Context(), *companyID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

func (h *Handler) MembersByCompany(c *gin.Context) {
	companyID, err := strconv.ParseInt(c.Param("companyId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
		return
	}

	members, err := h.service.CompanyMembers(c.Request.Context(), companyID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, members)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Assign(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Assign(c.Request.Context(), id, req, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) UpdateNotes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateNotes(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) AssignToMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	companyID := middleware.CallerCompanyID(c)
	if companyID == nil {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "No company associated with this account")
		return
	}

	var req AssignToMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.AssignToMember(c.Request.Context(), id, req, *companyID, c.GetInt64("user_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), id, actorFrom(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "BOOKING_NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found or inactive")
	case errors.Is(err, ErrCompanyNotFound):
		response.Error(c, http.StatusNotFound, "COMPANY_NOT_FOUND", "Company not found")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have access to this booking")
	case errors.Is(err, ErrTimeConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Time slot conflicts with existing booking")
	case errors.Is(err, ErrInvalidStatusTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_STATUS_TRANSITION", "Invalid status transition")
	case errors.Is(err, ErrDurationTooLong):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Total booking duration cannot exceed 8 hours")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		UserID:    c.GetInt64("user_id"),
		Role:      domain.UserRole(c.GetString("role")),
		CompanyID: middleware.CallerCompanyID(c),
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return 0, false
	}
	return id, true
}

func bindListQuery(c *gin.Context) (ListQuery, bool) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return q, false
	}
	return q, true
}
