package repository

import (
	"errors"
	"fmt"

	"github.com/workflow-hq/workflow-api/internal/constants"
	"github.com/workflow-hq/workflow-api/internal/database"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/utils"
	"gorm.io/gorm"
)

// GormAccountRepository is a GORM implementation of AccountRepository
type GormAccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &GormAccountRepository{db: db}
}

// FindAdminByUsername finds an admin by exact username match
func (r *GormAccountRepository) FindAdminByUsername(username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindAdminByID finds an admin by internal id
func (r *GormAccountRepository) FindAdminByID(id uint64) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.First(&admin, id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindEmployeeByLogin finds an employee by username or assigned employee id.
// Usernames and employee ids live in disjoint value spaces (usernames are at
// least 3 characters and employee ids exactly 6 digits from a unique index),
// so the OR filter matches at most one row.
func (r *GormAccountRepository) FindEmployeeByLogin(usernameOrID string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("username = ? OR employee_id = ?", usernameOrID, usernameOrID).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindEmployeeByID finds an employee by internal id
func (r *GormAccountRepository) FindEmployeeByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindEmployeeByUsernameOrEmail returns an existing employee matching either field
func (r *GormAccountRepository) FindEmployeeByUsernameOrEmail(username, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.Where("username = ? OR email = ?", username, email).
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// CreatePendingEmployee inserts a new employee with status pending and no employee id
func (r *GormAccountRepository) CreatePendingEmployee(employee *models.Employee) error {
	employee.Status = models.EmployeeStatusPending
	employee.EmployeeID = nil
	return r.db.Create(employee).Error
}

// ApproveEmployee assigns a generated employee id and flips the account to
// approved inside a single transaction. The candidate check and the update
// commit together; the unique index on employee_id backstops concurrent
// approvals that race past the check.
func (r *GormAccountRepository) ApproveEmployee(id uint64, generate func() (string, error)) (*models.Employee, error) {
	var approved *models.Employee

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.First(&employee, id).Error; err != nil {
			return err
		}

		if employee.Status != models.EmployeeStatusPending {
			return ErrEmployeeNotPending
		}

		for attempt := 0; attempt < constants.MaxEmployeeIDAttempts; attempt++ {
			candidate, err := generate()
			if err != nil {
				return fmt.Errorf("failed to generate candidate id: %w", err)
			}

			var count int64
			if err := tx.Model(&models.Employee{}).
				Where("employee_id = ?", candidate).
				Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check employee id uniqueness: %w", err)
			}
			if count > 0 {
				continue
			}

			if err := tx.Model(&employee).Updates(map[string]interface{}{
				"status":      models.EmployeeStatusApproved,
				"employee_id": candidate,
			}).Error; err != nil {
				return fmt.Errorf("failed to approve employee: %w", err)
			}

			employee.Status = models.EmployeeStatusApproved
			employee.EmployeeID = &candidate
			approved = &employee
			return nil
		}

		return ErrIDGenerationExhausted
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// ListEmployees lists an organization's employees, newest first, with an optional status filter
func (r *GormAccountRepository) ListEmployees(orgSlug string, status *models.EmployeeStatus, params utils.PaginationParams) ([]models.Employee, int64, error) {
	query := r.db.Model(&models.Employee{}).Where("organization_slug = ?", orgSlug)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []models.Employee
	if err := query.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// IsNotFound reports whether err is the store's not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
