package models

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "inprogress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusApproved   TaskStatus = "approved"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p TaskPriority) bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID               uint64 `gorm:"primarykey" json:"id"`
	Title            string `gorm:"type:varchar(255);not null" json:"title"`
	Description      string `gorm:"type:text" json:"description"`
	OrganizationSlug string `gorm:"type:varchar(50);index;not null" json:"organization_id"`
	// AssignedToEmployeeID references Employee.EmployeeID, not the internal
	// row id. Null means unassigned: visible to every employee of the
	// organization.
	AssignedToEmployeeID *string      `gorm:"type:varchar(6);index" json:"assigned_to_employee_id"`
	Priority             TaskPriority `gorm:"type:varchar(10);not null;default:'medium'" json:"priority"`
	Status               TaskStatus   `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	CreatedByUserID      uint64       `gorm:"not null" json:"created_by_user_id"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`

	// Relations
	Organization *Organization `gorm:"foreignKey:OrganizationSlug;references:Slug" json:"organization,omitempty"`
}
