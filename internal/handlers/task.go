package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workflow-hq/workflow-api/internal/dto"
	apierrors "github.com/workflow-hq/workflow-api/internal/errors"
	"github.com/workflow-hq/workflow-api/internal/lifecycle"
	"github.com/workflow-hq/workflow-api/internal/middleware"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/services"
	"github.com/workflow-hq/workflow-api/internal/utils"
)

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns the tasks visible to the current actor, newest first.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.List(actor, params)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch tasks")
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params, total))
}

// CreateTask creates a task in the admin's organization.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title                string  `json:"title" binding:"required,max=255"`
		Description          string  `json:"description"`
		Priority             string  `json:"priority" binding:"omitempty,oneof=low medium high"`
		AssignedToEmployeeID *string `json:"assigned_to_employee_id"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(actor, services.CreateTaskInput{
		Title:                req.Title,
		Description:          req.Description,
		Priority:             models.TaskPriority(req.Priority),
		AssignedToEmployeeID: req.AssignedToEmployeeID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTaskStatus moves a task along its lifecycle. The lifecycle engine
// decides whether this actor may request this transition.
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required,oneof=todo inprogress completed approved"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.TransitionStatus(actor, taskID, models.TaskStatus(req.Status))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrInvalidPriority),
		errors.Is(err, services.ErrInvalidAssignee):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrAdminRequired):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrMissingOrganizationContext):
		apierrors.ForbiddenWithCode(c, apierrors.ErrCodeMissingOrgContext, err.Error())
	case errors.Is(err, lifecycle.ErrIllegalTransition):
		apierrors.BadRequestWithCode(c, apierrors.ErrCodeIllegalTransition, err.Error())
	case errors.Is(err, lifecycle.ErrNotPermitted),
		errors.Is(err, lifecycle.ErrNotAssignee):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, lifecycle.ErrWrongOrganization):
		// Cross-organization task ids read as not-found so their existence
		// is not leaked between tenants.
		apierrors.NotFound(c, services.ErrTaskNotFound.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
