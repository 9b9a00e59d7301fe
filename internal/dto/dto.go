package dto

import (
	"time"

	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/utils"
)

// OrganizationDTO represents a catalog entry in API responses
type OrganizationDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ActorDTO represents the authenticated caller. Fields beyond the common set
// are populated per role.
type ActorDTO struct {
	ID             uint64      `json:"id"`
	Role           models.Role `json:"role"`
	Username       string      `json:"username"`
	OrganizationID *string     `json:"organization_id"`

	// Employee-only fields
	FirstName  string                `json:"first_name,omitempty"`
	LastName   string                `json:"last_name,omitempty"`
	EmployeeID *string               `json:"employee_id,omitempty"`
	Status     models.EmployeeStatus `json:"status,omitempty"`
}

// EmployeeDTO represents an employee in admin-facing responses
type EmployeeDTO struct {
	ID             uint64                `json:"id"`
	FirstName      string                `json:"first_name"`
	LastName       string                `json:"last_name"`
	Username       string                `json:"username"`
	Email          string                `json:"email"`
	Mobile         string                `json:"mobile"`
	OrganizationID string                `json:"organization_id"`
	EmployeeID     *string               `json:"employee_id"`
	Status         models.EmployeeStatus `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
}

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID                   uint64              `json:"id"`
	Title                string              `json:"title"`
	Description          string              `json:"description"`
	OrganizationID       string              `json:"organization_id"`
	AssignedToEmployeeID *string             `json:"assigned_to_employee_id"`
	Priority             models.TaskPriority `json:"priority"`
	Status               models.TaskStatus   `json:"status"`
	CreatedByUserID      uint64              `json:"created_by_user_id"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// TaskListResponse represents a paginated list of tasks
type TaskListResponse struct {
	Tasks      []TaskDTO                `json:"tasks"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees  []EmployeeDTO            `json:"employees"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// Conversion functions

// ToOrganizationDTO converts an Organization model to OrganizationDTO
func ToOrganizationDTO(org models.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:   org.Slug,
		Name: org.Name,
	}
}

// ToActorDTO converts an Actor to ActorDTO
func ToActorDTO(actor models.Actor) ActorDTO {
	dto := ActorDTO{
		Role: actor.Role,
	}

	switch actor.Role {
	case models.RoleAdmin:
		if actor.Admin != nil {
			dto.ID = actor.Admin.ID
			dto.Username = actor.Admin.Username
			dto.OrganizationID = actor.Admin.OrganizationSlug
		}
	case models.RoleEmployee:
		if actor.Employee != nil {
			dto.ID = actor.Employee.ID
			dto.Username = actor.Employee.Username
			dto.OrganizationID = &actor.Employee.OrganizationSlug
			dto.FirstName = actor.Employee.FirstName
			dto.LastName = actor.Employee.LastName
			dto.EmployeeID = actor.Employee.EmployeeID
			dto.Status = actor.Employee.Status
		}
	}

	return dto
}

// ToEmployeeDTO converts an Employee model to EmployeeDTO
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:             employee.ID,
		FirstName:      employee.FirstName,
		LastName:       employee.LastName,
		Username:       employee.Username,
		Email:          employee.Email,
		Mobile:         employee.Mobile,
		OrganizationID: employee.OrganizationSlug,
		EmployeeID:     employee.EmployeeID,
		Status:         employee.Status,
		CreatedAt:      employee.CreatedAt,
	}
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:                   task.ID,
		Title:                task.Title,
		Description:          task.Description,
		OrganizationID:       task.OrganizationSlug,
		AssignedToEmployeeID: task.AssignedToEmployeeID,
		Priority:             task.Priority,
		Status:               task.Status,
		CreatedByUserID:      task.CreatedByUserID,
		CreatedAt:            task.CreatedAt,
		UpdatedAt:            task.UpdatedAt,
	}
}

// ToTaskListResponse converts tasks plus pagination metadata
func ToTaskListResponse(tasks []models.Task, params utils.PaginationParams, total int64) TaskListResponse {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}

	return TaskListResponse{
		Tasks: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}

// ToEmployeeListResponse converts employees plus pagination metadata
func ToEmployeeListResponse(employees []models.Employee, params utils.PaginationParams, total int64) EmployeeListResponse {
	items := make([]EmployeeDTO, len(employees))
	for i, employee := range employees {
		items[i] = ToEmployeeDTO(employee)
	}

	return EmployeeListResponse{
		Employees: items,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
