package constants

// Session
const (
	SessionCookieName = "workflow_session"

	// Keys used both in the session store and in the gin context.
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"
	ContextKeyActor    = "actor"
)

// Authentication
const (
	MinPasswordLength = 8
	MobileDigits      = 10
)

// Employee identifier generation
const (
	EmployeeIDMin         = 100000
	EmployeeIDMax         = 999999
	MaxEmployeeIDAttempts = 10
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)
