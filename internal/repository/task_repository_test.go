package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/utils"
	"gorm.io/gorm"
)

func createTask(t *testing.T, db *gorm.DB, title, orgSlug string, assignee *string, createdAt time.Time) *models.Task {
	t.Helper()
	task := &models.Task{
		Title:                title,
		OrganizationSlug:     orgSlug,
		AssignedToEmployeeID: assignee,
		Priority:             models.TaskPriorityMedium,
		Status:               models.TaskStatusTodo,
		CreatedByUserID:      1,
		CreatedAt:            createdAt,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}

func TestListForOrganizationOrdering(t *testing.T) {
	db, _ := setupRepoTest(t)
	repo := NewTaskRepository(db)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	createTask(t, db, "oldest", "org_azure", nil, base)
	createTask(t, db, "middle", "org_azure", nil, base.Add(time.Hour))
	createTask(t, db, "newest", "org_azure", nil, base.Add(2*time.Hour))
	createTask(t, db, "elsewhere", "org_aws", nil, base.Add(3*time.Hour))

	tasks, total, err := repo.ListForOrganization("org_azure", utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
	require.Len(t, tasks, 3)
	require.Equal(t, "newest", tasks[0].Title)
	require.Equal(t, "middle", tasks[1].Title)
	require.Equal(t, "oldest", tasks[2].Title)
}

func TestListForEmployeeVisibility(t *testing.T) {
	db, _ := setupRepoTest(t)
	repo := NewTaskRepository(db)

	mine := "482913"
	theirs := "999999"
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	createTask(t, db, "mine", "org_azure", &mine, base)
	createTask(t, db, "pool", "org_azure", nil, base.Add(time.Hour))
	createTask(t, db, "theirs", "org_azure", &theirs, base.Add(2*time.Hour))
	createTask(t, db, "other org pool", "org_aws", nil, base.Add(3*time.Hour))

	tasks, total, err := repo.ListForEmployee("org_azure", mine, utils.PaginationParams{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	for _, task := range tasks {
		require.Equal(t, "org_azure", task.OrganizationSlug)
		if task.AssignedToEmployeeID != nil {
			require.Equal(t, mine, *task.AssignedToEmployeeID)
		}
	}
}

func TestUpdateStatusRefreshesTask(t *testing.T) {
	db, _ := setupRepoTest(t)
	repo := NewTaskRepository(db)

	task := createTask(t, db, "work", "org_azure", nil, time.Now())

	require.NoError(t, repo.UpdateStatus(task, models.TaskStatusInProgress))
	require.Equal(t, models.TaskStatusInProgress, task.Status)

	var stored models.Task
	require.NoError(t, db.First(&stored, task.ID).Error)
	require.Equal(t, models.TaskStatusInProgress, stored.Status)
}

func TestListPagination(t *testing.T) {
	db, _ := setupRepoTest(t)
	repo := NewTaskRepository(db)

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		createTask(t, db, "task", "org_azure", nil, base.Add(time.Duration(i)*time.Minute))
	}

	tasks, total, err := repo.ListForOrganization("org_azure", utils.PaginationParams{Page: 2, Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Equal(t, int64(5), total)
	require.Len(t, tasks, 2)
}
