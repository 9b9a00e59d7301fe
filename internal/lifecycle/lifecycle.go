// Package lifecycle enforces the task status state machine and who may drive
// it. Every status mutation in the system goes through Authorize, so the
// rules cannot be bypassed by calling a handler or repository directly.
package lifecycle

import (
	"errors"

	"github.com/workflow-hq/workflow-api/internal/models"
)

var (
	ErrIllegalTransition = errors.New("illegal task status transition")
	ErrNotPermitted      = errors.New("actor is not permitted to perform this transition")
	ErrWrongOrganization = errors.New("task belongs to a different organization")
	ErrNotAssignee       = errors.New("task is assigned to a different employee")
)

// next maps each status to its single legal successor. Statuses only ever
// move forward; approved is terminal.
var next = map[models.TaskStatus]models.TaskStatus{
	models.TaskStatusTodo:       models.TaskStatusInProgress,
	models.TaskStatusInProgress: models.TaskStatusCompleted,
	models.TaskStatusCompleted:  models.TaskStatusApproved,
}

// CanTransition reports whether from -> to is a legal step.
func CanTransition(from, to models.TaskStatus) bool {
	successor, ok := next[from]
	return ok && successor == to
}

// Authorize checks both the legality of the transition and the actor's right
// to request it:
//
//	todo       -> inprogress  employee, unassigned task or assigned to them
//	inprogress -> completed   employee, same constraint
//	completed  -> approved    admin of the task's organization
func Authorize(actor models.Actor, task *models.Task, to models.TaskStatus) error {
	if !CanTransition(task.Status, to) {
		return ErrIllegalTransition
	}

	slug, ok := actor.OrganizationSlug()
	if !ok || slug != task.OrganizationSlug {
		return ErrWrongOrganization
	}

	switch to {
	case models.TaskStatusInProgress, models.TaskStatusCompleted:
		if actor.Role != models.RoleEmployee || actor.Employee == nil {
			return ErrNotPermitted
		}
		if task.AssignedToEmployeeID == nil {
			return nil
		}
		if actor.Employee.EmployeeID == nil || *task.AssignedToEmployeeID != *actor.Employee.EmployeeID {
			return ErrNotAssignee
		}
		return nil
	case models.TaskStatusApproved:
		if actor.Role != models.RoleAdmin || actor.Admin == nil {
			return ErrNotPermitted
		}
		return nil
	default:
		return ErrIllegalTransition
	}
}
