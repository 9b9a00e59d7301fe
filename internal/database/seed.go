package database

import (
	"fmt"
	"log"

	"github.com/workflow-hq/workflow-api/internal/directory"
	"github.com/workflow-hq/workflow-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Seed loads the identity directory into the database: the organization
// catalog and the seed admin accounts. Organizations are upserted so restarts
// are safe; admins are only inserted when missing so a rotated password hash
// is never clobbered.
func Seed(db *gorm.DB) error {
	log.Println("Seeding identity directory...")

	orgs := directory.Organizations()
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name"}),
	}).Create(&orgs).Error; err != nil {
		return fmt.Errorf("failed to seed organizations: %w", err)
	}

	for _, seed := range directory.SeedAdmins() {
		var count int64
		if err := db.Model(&models.Admin{}).
			Where("username = ?", seed.Username).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check admin %s: %w", seed.Username, err)
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for admin %s: %w", seed.Username, err)
		}

		admin := models.Admin{
			Username:         seed.Username,
			PasswordHash:     string(hash),
			OrganizationSlug: seed.OrganizationSlug,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin %s: %w", seed.Username, err)
		}
	}

	log.Println("Identity directory seeded")
	return nil
}
