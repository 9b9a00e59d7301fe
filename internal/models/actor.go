package models

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// Actor is the authenticated caller of an operation: an admin or an employee.
// Exactly one of Admin/Employee is set, matching Role. The zero value means
// "no actor" (unauthenticated).
type Actor struct {
	Role     Role
	Admin    *Admin
	Employee *Employee
}

// IsZero reports whether no actor is present.
func (a Actor) IsZero() bool {
	return a.Admin == nil && a.Employee == nil
}

// UserID returns the internal account id of the actor.
func (a Actor) UserID() uint64 {
	switch a.Role {
	case RoleAdmin:
		if a.Admin != nil {
			return a.Admin.ID
		}
	case RoleEmployee:
		if a.Employee != nil {
			return a.Employee.ID
		}
	}
	return 0
}

// OrganizationSlug returns the actor's organization context. The second
// return is false for the global admin and for the zero actor.
func (a Actor) OrganizationSlug() (string, bool) {
	switch a.Role {
	case RoleAdmin:
		if a.Admin != nil && a.Admin.OrganizationSlug != nil {
			return *a.Admin.OrganizationSlug, true
		}
	case RoleEmployee:
		if a.Employee != nil {
			return a.Employee.OrganizationSlug, true
		}
	}
	return "", false
}

// DisplayName returns the name shown in responses and logs.
func (a Actor) DisplayName() string {
	switch a.Role {
	case RoleAdmin:
		if a.Admin != nil {
			return a.Admin.Username
		}
	case RoleEmployee:
		if a.Employee != nil {
			if a.Employee.FirstName != "" {
				return a.Employee.FirstName
			}
			return a.Employee.Username
		}
	}
	return ""
}
