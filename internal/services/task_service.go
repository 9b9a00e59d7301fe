package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/workflow-hq/workflow-api/internal/lifecycle"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/repository"
	"github.com/workflow-hq/workflow-api/internal/utils"
)

var (
	ErrTaskNotFound               = errors.New("task not found")
	ErrTitleRequired              = errors.New("title is required")
	ErrInvalidPriority            = errors.New("priority must be low, medium, or high")
	ErrInvalidAssignee            = errors.New("assignee is not an approved employee of this organization")
	ErrMissingOrganizationContext = errors.New("cannot create task without organization context")
)

// TaskService handles task business logic. Status mutations are funneled
// through the lifecycle engine so transition and role rules hold for every
// entry point.
type TaskService struct {
	taskRepo    repository.TaskRepository
	accountRepo repository.AccountRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, accountRepo repository.AccountRepository) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		accountRepo: accountRepo,
	}
}

// List returns the tasks visible to the actor, newest first. Admins see their
// whole organization; employees see their assigned tasks plus the unassigned
// pool. An actor without organization context sees nothing.
func (s *TaskService) List(actor models.Actor, params utils.PaginationParams) ([]models.Task, int64, error) {
	slug, ok := actor.OrganizationSlug()
	if !ok {
		return []models.Task{}, 0, nil
	}

	switch actor.Role {
	case models.RoleAdmin:
		tasks, total, err := s.taskRepo.ListForOrganization(slug, params)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, total, nil
	case models.RoleEmployee:
		if actor.Employee == nil || actor.Employee.EmployeeID == nil {
			return []models.Task{}, 0, nil
		}
		tasks, total, err := s.taskRepo.ListForEmployee(slug, *actor.Employee.EmployeeID, params)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, total, nil
	default:
		return []models.Task{}, 0, nil
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title                string
	Description          string
	Priority             models.TaskPriority
	AssignedToEmployeeID *string
}

// Create creates a task in the admin's organization, starting at todo. An
// optional assignee must be an approved employee of the same organization.
func (s *TaskService) Create(actor models.Actor, input CreateTaskInput) (*models.Task, error) {
	if actor.Role != models.RoleAdmin || actor.Admin == nil {
		return nil, ErrAdminRequired
	}
	slug, ok := actor.OrganizationSlug()
	if !ok {
		return nil, ErrMissingOrganizationContext
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	if input.Priority == "" {
		input.Priority = models.TaskPriorityMedium
	}
	if !models.ValidPriority(input.Priority) {
		return nil, ErrInvalidPriority
	}

	if input.AssignedToEmployeeID != nil {
		if err := s.verifyAssignee(slug, *input.AssignedToEmployeeID); err != nil {
			return nil, err
		}
	}

	task := &models.Task{
		Title:                title,
		Description:          input.Description,
		OrganizationSlug:     slug,
		AssignedToEmployeeID: input.AssignedToEmployeeID,
		Priority:             input.Priority,
		Status:               models.TaskStatusTodo,
		CreatedByUserID:      actor.Admin.ID,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// TransitionStatus moves a task to a new status after the lifecycle engine
// clears both the transition and the actor's right to request it.
func (s *TaskService) TransitionStatus(actor models.Actor, taskID uint64, to models.TaskStatus) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := lifecycle.Authorize(actor, task, to); err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateStatus(task, to); err != nil {
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	return task, nil
}

func (s *TaskService) verifyAssignee(orgSlug, employeeID string) error {
	employee, err := s.accountRepo.FindEmployeeByLogin(employeeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrInvalidAssignee
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	if employee.EmployeeID == nil || *employee.EmployeeID != employeeID {
		return ErrInvalidAssignee
	}
	if employee.OrganizationSlug != orgSlug || employee.Status != models.EmployeeStatusApproved {
		return ErrInvalidAssignee
	}
	return nil
}
