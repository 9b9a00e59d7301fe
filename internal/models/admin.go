package models

import "time"

type Admin struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	// A null slug denotes the global fallback admin, which has no
	// organization context of its own.
	OrganizationSlug *string   `gorm:"type:varchar(50);index" json:"organization_id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Organization *Organization `gorm:"foreignKey:OrganizationSlug;references:Slug" json:"organization,omitempty"`
}
