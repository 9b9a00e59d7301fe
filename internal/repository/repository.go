package repository

import (
	"errors"

	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/utils"
)

var (
	// ErrEmployeeNotPending is returned when approval is requested for an
	// account that is not in the pending state.
	ErrEmployeeNotPending = errors.New("account repository: employee is not pending approval")
	// ErrIDGenerationExhausted is returned when the bounded retry loop could
	// not produce an unused employee identifier.
	ErrIDGenerationExhausted = errors.New("account repository: employee id generation exhausted")
)

// AccountRepository defines data access for the admin and employee collections.
type AccountRepository interface {
	// FindAdminByUsername finds an admin by exact username match.
	FindAdminByUsername(username string) (*models.Admin, error)

	// FindAdminByID finds an admin by internal id.
	FindAdminByID(id uint64) (*models.Admin, error)

	// FindEmployeeByLogin finds an employee whose username or assigned
	// employee id equals usernameOrID. Returns at most one record.
	FindEmployeeByLogin(usernameOrID string) (*models.Employee, error)

	// FindEmployeeByID finds an employee by internal id.
	FindEmployeeByID(id uint64) (*models.Employee, error)

	// FindEmployeeByUsernameOrEmail returns an existing employee matching
	// either field, for signup uniqueness checks.
	FindEmployeeByUsernameOrEmail(username, email string) (*models.Employee, error)

	// CreatePendingEmployee inserts a new employee with status pending and
	// no employee id.
	CreatePendingEmployee(employee *models.Employee) error

	// ApproveEmployee assigns a unique employee id drawn from generate and
	// flips the account to approved, atomically. Fails with
	// ErrEmployeeNotPending for non-pending accounts and
	// ErrIDGenerationExhausted after the attempt bound.
	ApproveEmployee(id uint64, generate func() (string, error)) (*models.Employee, error)

	// ListEmployees lists an organization's employees, newest first, with an
	// optional status filter.
	ListEmployees(orgSlug string, status *models.EmployeeStatus, params utils.PaginationParams) ([]models.Employee, int64, error)
}

// TaskRepository defines data access for the task collection.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// ListForOrganization lists every task in an organization, newest first.
	ListForOrganization(orgSlug string, params utils.PaginationParams) ([]models.Task, int64, error)

	// ListForEmployee lists an organization's tasks that are unassigned or
	// assigned to the given employee id, newest first.
	ListForEmployee(orgSlug, employeeID string, params utils.PaginationParams) ([]models.Task, int64, error)

	// UpdateStatus sets a task's status and refreshes updated_at. Legality
	// of the transition is the lifecycle engine's responsibility.
	UpdateStatus(task *models.Task, status models.TaskStatus) error
}
