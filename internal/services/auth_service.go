package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/workflow-hq/workflow-api/internal/constants"
	"github.com/workflow-hq/workflow-api/internal/directory"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/repository"
	"github.com/workflow-hq/workflow-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrAccountNotApproved    = errors.New("account is pending approval or has been rejected")
	ErrUsernameTaken         = errors.New("username already exists")
	ErrEmailTaken            = errors.New("email already registered")
	ErrPasswordsMismatch     = errors.New("passwords do not match")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrInvalidEmailFormat    = errors.New("invalid email address")
	ErrInvalidMobileFormat   = errors.New("mobile number must be 10 digits")
	ErrUnknownOrganization   = errors.New("unknown organization")
	ErrActorNotFound         = errors.New("account not found")
	ErrAdminRequired         = errors.New("admin role required")
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeNotPending    = errors.New("employee is not pending approval")
	ErrWrongOrganization     = errors.New("employee belongs to a different organization")
	ErrNoOrganizationContext = errors.New("admin has no organization context")
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	mobilePattern = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, constants.MobileDigits))
)

// AuthService is the authorization and session core: it resolves credentials
// to an Actor, registers pending employees, and runs the admin-side approval
// flow.
type AuthService struct {
	accountRepo repository.AccountRepository
	generateID  func() (string, error)
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repository.AccountRepository) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		generateID:  directory.GenerateCandidateEmployeeID,
	}
}

// LoginInput holds the credentials for authentication. UsernameOrID accepts
// an employee's username or their assigned 6-digit employee id.
type LoginInput struct {
	UsernameOrID string
	Password     string
	Role         models.Role
}

// Login verifies credentials against the selected role's collection and
// returns the authenticated actor.
func (s *AuthService) Login(input LoginInput) (models.Actor, error) {
	switch input.Role {
	case models.RoleAdmin:
		admin, err := s.accountRepo.FindAdminByUsername(input.UsernameOrID)
		if err != nil {
			if repository.IsNotFound(err) {
				return models.Actor{}, ErrInvalidCredentials
			}
			return models.Actor{}, fmt.Errorf("failed to find admin: %w", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
			return models.Actor{}, ErrInvalidCredentials
		}
		return models.Actor{Role: models.RoleAdmin, Admin: admin}, nil

	case models.RoleEmployee:
		employee, err := s.accountRepo.FindEmployeeByLogin(input.UsernameOrID)
		if err != nil {
			if repository.IsNotFound(err) {
				return models.Actor{}, ErrInvalidCredentials
			}
			return models.Actor{}, fmt.Errorf("failed to find employee: %w", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(input.Password)); err != nil {
			return models.Actor{}, ErrInvalidCredentials
		}
		// Credentials alone are not enough: only approved accounts may
		// establish a session.
		if employee.Status != models.EmployeeStatusApproved {
			return models.Actor{}, ErrAccountNotApproved
		}
		return models.Actor{Role: models.RoleEmployee, Employee: employee}, nil

	default:
		return models.Actor{}, ErrInvalidCredentials
	}
}

// SignupInput represents the required information to register a new employee.
type SignupInput struct {
	FirstName        string
	LastName         string
	Username         string
	Password         string
	ConfirmPassword  string
	Email            string
	Mobile           string
	OrganizationSlug string
}

// Signup registers a new employee account in the pending state. Format checks
// run before any store call; the caller is not logged in on success.
func (s *AuthService) Signup(input SignupInput) (*models.Employee, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(input.Email)

	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordsMismatch
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmailFormat
	}
	if !mobilePattern.MatchString(input.Mobile) {
		return nil, ErrInvalidMobileFormat
	}
	if !directory.KnownOrganization(input.OrganizationSlug) {
		return nil, ErrUnknownOrganization
	}

	existing, err := s.accountRepo.FindEmployeeByUsernameOrEmail(username, email)
	if err != nil && !repository.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing employee: %w", err)
	}
	if existing != nil {
		if existing.Username == username {
			return nil, ErrUsernameTaken
		}
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	employee := &models.Employee{
		FirstName:        strings.TrimSpace(input.FirstName),
		LastName:         strings.TrimSpace(input.LastName),
		Username:         username,
		PasswordHash:     string(hash),
		Email:            email,
		Mobile:           input.Mobile,
		OrganizationSlug: input.OrganizationSlug,
	}

	if err := s.accountRepo.CreatePendingEmployee(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// GetActor re-resolves a persisted actor reference against the store. A
// stale reference (record deleted since the session was written) comes back
// as ErrActorNotFound so callers can degrade to the unauthenticated state.
func (s *AuthService) GetActor(role models.Role, id uint64) (models.Actor, error) {
	switch role {
	case models.RoleAdmin:
		admin, err := s.accountRepo.FindAdminByID(id)
		if err != nil {
			if repository.IsNotFound(err) {
				return models.Actor{}, ErrActorNotFound
			}
			return models.Actor{}, fmt.Errorf("failed to restore admin session: %w", err)
		}
		return models.Actor{Role: models.RoleAdmin, Admin: admin}, nil
	case models.RoleEmployee:
		employee, err := s.accountRepo.FindEmployeeByID(id)
		if err != nil {
			if repository.IsNotFound(err) {
				return models.Actor{}, ErrActorNotFound
			}
			return models.Actor{}, fmt.Errorf("failed to restore employee session: %w", err)
		}
		if employee.Status != models.EmployeeStatusApproved {
			return models.Actor{}, ErrActorNotFound
		}
		return models.Actor{Role: models.RoleEmployee, Employee: employee}, nil
	default:
		return models.Actor{}, ErrActorNotFound
	}
}

// ApproveEmployee flips a pending employee of the actor's organization to
// approved and assigns their unique 6-digit employee id. Re-approval is
// rejected: an approved account never receives a second id.
func (s *AuthService) ApproveEmployee(actor models.Actor, employeeID uint64) (*models.Employee, error) {
	slug, err := s.requireAdminOrganization(actor)
	if err != nil {
		return nil, err
	}

	employee, err := s.accountRepo.FindEmployeeByID(employeeID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee.OrganizationSlug != slug {
		return nil, ErrWrongOrganization
	}

	approved, err := s.accountRepo.ApproveEmployee(employeeID, s.generateID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotPending) {
			return nil, ErrEmployeeNotPending
		}
		return nil, fmt.Errorf("failed to approve employee: %w", err)
	}

	return approved, nil
}

// ListEmployees returns the actor's organization's employees, optionally
// filtered by status. Admin only.
func (s *AuthService) ListEmployees(actor models.Actor, status *models.EmployeeStatus, params utils.PaginationParams) ([]models.Employee, int64, error) {
	slug, err := s.requireAdminOrganization(actor)
	if err != nil {
		return nil, 0, err
	}

	employees, total, err := s.accountRepo.ListEmployees(slug, status, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, total, nil
}

func (s *AuthService) requireAdminOrganization(actor models.Actor) (string, error) {
	if actor.Role != models.RoleAdmin || actor.Admin == nil {
		return "", ErrAdminRequired
	}
	slug, ok := actor.OrganizationSlug()
	if !ok {
		return "", ErrNoOrganizationContext
	}
	return slug, nil
}
