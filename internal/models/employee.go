package models

import "time"

type EmployeeStatus string

const (
	EmployeeStatusPending  EmployeeStatus = "pending"
	EmployeeStatusApproved EmployeeStatus = "approved"
	EmployeeStatusRejected EmployeeStatus = "rejected"
)

type Employee struct {
	ID               uint64 `gorm:"primarykey" json:"id"`
	FirstName        string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName         string `gorm:"type:varchar(100);not null" json:"last_name"`
	Username         string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash     string `gorm:"type:varchar(255);not null" json:"-"`
	Email            string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Mobile           string `gorm:"type:varchar(20);not null" json:"mobile"`
	OrganizationSlug string `gorm:"type:varchar(50);index;not null" json:"organization_id"`
	// EmployeeID stays null while the account is pending and is assigned
	// exactly once, at approval. Uniqueness holds across the whole table,
	// not per organization.
	EmployeeID *string        `gorm:"type:varchar(6);uniqueIndex" json:"employee_id"`
	Status     EmployeeStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	// Relations
	Organization *Organization `gorm:"foreignKey:OrganizationSlug;references:Slug" json:"organization,omitempty"`
}
