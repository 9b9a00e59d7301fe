package models

// Organization is a static catalog entry. Rows are seeded at startup from the
// identity directory and never mutated afterwards.
type Organization struct {
	Slug string `gorm:"primarykey;type:varchar(50)" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}
