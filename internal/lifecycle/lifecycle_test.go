package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workflow-hq/workflow-api/internal/models"
)

func strPtr(s string) *string { return &s }

func adminActor(slug string) models.Actor {
	return models.Actor{
		Role:  models.RoleAdmin,
		Admin: &models.Admin{ID: 1, Username: "azureadmin1", OrganizationSlug: &slug},
	}
}

func employeeActor(slug, employeeID string) models.Actor {
	return models.Actor{
		Role: models.RoleEmployee,
		Employee: &models.Employee{
			ID:               2,
			Username:         "jdoe",
			OrganizationSlug: slug,
			EmployeeID:       strPtr(employeeID),
			Status:           models.EmployeeStatusApproved,
		},
	}
}

func TestCanTransition(t *testing.T) {
	statuses := []models.TaskStatus{
		models.TaskStatusTodo,
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
		models.TaskStatusApproved,
	}

	legal := map[models.TaskStatus]models.TaskStatus{
		models.TaskStatusTodo:       models.TaskStatusInProgress,
		models.TaskStatusInProgress: models.TaskStatusCompleted,
		models.TaskStatusCompleted:  models.TaskStatusApproved,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := legal[from] == to
			require.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestApprovedIsTerminal(t *testing.T) {
	for _, to := range []models.TaskStatus{
		models.TaskStatusTodo,
		models.TaskStatusInProgress,
		models.TaskStatusCompleted,
		models.TaskStatusApproved,
	} {
		require.False(t, CanTransition(models.TaskStatusApproved, to))
	}
}

func TestAuthorize(t *testing.T) {
	unassigned := &models.Task{ID: 10, OrganizationSlug: "org_azure", Status: models.TaskStatusTodo}
	assigned := &models.Task{
		ID:                   11,
		OrganizationSlug:     "org_azure",
		Status:               models.TaskStatusTodo,
		AssignedToEmployeeID: strPtr("482913"),
	}
	completed := &models.Task{ID: 12, OrganizationSlug: "org_azure", Status: models.TaskStatusCompleted}

	tests := []struct {
		name    string
		actor   models.Actor
		task    *models.Task
		to      models.TaskStatus
		wantErr error
	}{
		{
			name:  "employee starts unassigned task",
			actor: employeeActor("org_azure", "482913"),
			task:  unassigned,
			to:    models.TaskStatusInProgress,
		},
		{
			name:  "assignee starts their task",
			actor: employeeActor("org_azure", "482913"),
			task:  assigned,
			to:    models.TaskStatusInProgress,
		},
		{
			name:    "other employee cannot start assigned task",
			actor:   employeeActor("org_azure", "999999"),
			task:    assigned,
			to:      models.TaskStatusInProgress,
			wantErr: ErrNotAssignee,
		},
		{
			name:    "admin cannot start a task",
			actor:   adminActor("org_azure"),
			task:    unassigned,
			to:      models.TaskStatusInProgress,
			wantErr: ErrNotPermitted,
		},
		{
			name:  "admin approves completed task",
			actor: adminActor("org_azure"),
			task:  completed,
			to:    models.TaskStatusApproved,
		},
		{
			name:    "employee cannot approve",
			actor:   employeeActor("org_azure", "482913"),
			task:    completed,
			to:      models.TaskStatusApproved,
			wantErr: ErrNotPermitted,
		},
		{
			name:    "skipping a step is illegal",
			actor:   adminActor("org_azure"),
			task:    unassigned,
			to:      models.TaskStatusApproved,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "moving backwards is illegal",
			actor:   employeeActor("org_azure", "482913"),
			task:    completed,
			to:      models.TaskStatusInProgress,
			wantErr: ErrIllegalTransition,
		},
		{
			name:    "wrong organization is denied",
			actor:   employeeActor("org_aws", "482913"),
			task:    unassigned,
			to:      models.TaskStatusInProgress,
			wantErr: ErrWrongOrganization,
		},
		{
			name:    "global admin has no organization context",
			actor:   models.Actor{Role: models.RoleAdmin, Admin: &models.Admin{ID: 3, Username: "admin"}},
			task:    completed,
			to:      models.TaskStatusApproved,
			wantErr: ErrWrongOrganization,
		},
		{
			name:    "zero actor is denied",
			actor:   models.Actor{},
			task:    unassigned,
			to:      models.TaskStatusInProgress,
			wantErr: ErrWrongOrganization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.actor, tt.task, tt.to)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
