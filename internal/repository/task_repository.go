package repository

import (
	"github.com/workflow-hq/workflow-api/internal/database"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/utils"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// ListForOrganization lists every task in an organization, newest first
func (r *GormTaskRepository) ListForOrganization(orgSlug string, params utils.PaginationParams) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).Where("organization_slug = ?", orgSlug)
	return r.list(query, params)
}

// ListForEmployee lists an organization's tasks visible to one employee:
// those assigned to them plus the unassigned pool.
func (r *GormTaskRepository) ListForEmployee(orgSlug, employeeID string, params utils.PaginationParams) ([]models.Task, int64, error) {
	query := r.db.Model(&models.Task{}).
		Where("organization_slug = ?", orgSlug).
		Where("assigned_to_employee_id = ? OR assigned_to_employee_id IS NULL", employeeID)
	return r.list(query, params)
}

func (r *GormTaskRepository) list(query *gorm.DB, params utils.PaginationParams) ([]models.Task, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []models.Task
	if err := query.Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// UpdateStatus sets a task's status; updated_at is refreshed by GORM
func (r *GormTaskRepository) UpdateStatus(task *models.Task, status models.TaskStatus) error {
	if err := r.db.Model(task).Update("status", status).Error; err != nil {
		return err
	}
	task.Status = status
	return nil
}
