package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workflow-hq/workflow-api/internal/dto"
	apierrors "github.com/workflow-hq/workflow-api/internal/errors"
	"github.com/workflow-hq/workflow-api/internal/middleware"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/services"
	"github.com/workflow-hq/workflow-api/internal/utils"
)

// EmployeeHandler coordinates admin-facing employee management.
type EmployeeHandler struct {
	authService *services.AuthService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(authService *services.AuthService) *EmployeeHandler {
	return &EmployeeHandler{
		authService: authService,
	}
}

// ListEmployees returns the admin's organization's employees, optionally
// filtered by status (?status=pending|approved|rejected).
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var status *models.EmployeeStatus
	if raw := c.Query("status"); raw != "" {
		switch s := models.EmployeeStatus(raw); s {
		case models.EmployeeStatusPending, models.EmployeeStatusApproved, models.EmployeeStatusRejected:
			status = &s
		default:
			apierrors.BadRequest(c, "Invalid status filter")
			return
		}
	}

	params := utils.GetPaginationParams(c)

	employees, total, err := h.authService.ListEmployees(actor, status, params)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeListResponse(employees, params, total))
}

// ApproveEmployee flips a pending employee to approved, assigning their
// unique employee id.
func (h *EmployeeHandler) ApproveEmployee(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	employeeID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid employee ID")
		return
	}

	employee, err := h.authService.ApproveEmployee(actor, employeeID)
	if err != nil {
		respondEmployeeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee))
}

func respondEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrAdminRequired):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrNoOrganizationContext):
		apierrors.ForbiddenWithCode(c, apierrors.ErrCodeMissingOrgContext, err.Error())
	case errors.Is(err, services.ErrEmployeeNotFound),
		errors.Is(err, services.ErrWrongOrganization):
		// Cross-organization lookups read as not-found so employee ids are
		// not leaked between tenants.
		apierrors.NotFound(c, services.ErrEmployeeNotFound.Error())
	case errors.Is(err, services.ErrEmployeeNotPending):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
