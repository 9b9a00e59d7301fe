package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/workflow-hq/workflow-api/internal/models"
	"github.com/workflow-hq/workflow-api/internal/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (*gorm.DB, AccountRepository) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Admin{},
		&models.Employee{},
		&models.Task{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, NewAccountRepository(db)
}

func newEmployee(username, orgSlug string) *models.Employee {
	return &models.Employee{
		FirstName:        "Test",
		LastName:         "Employee",
		Username:         username,
		PasswordHash:     "hashedpassword",
		Email:            username + "@example.com",
		Mobile:           "9876543210",
		OrganizationSlug: orgSlug,
	}
}

func TestFindEmployeeByLogin(t *testing.T) {
	db, repo := setupRepoTest(t)

	employee := newEmployee("jdoe", "org_aws")
	id := "482913"
	employee.EmployeeID = &id
	employee.Status = models.EmployeeStatusApproved
	require.NoError(t, db.Create(employee).Error)

	byUsername, err := repo.FindEmployeeByLogin("jdoe")
	require.NoError(t, err)
	require.Equal(t, employee.ID, byUsername.ID)

	byEmployeeID, err := repo.FindEmployeeByLogin("482913")
	require.NoError(t, err)
	require.Equal(t, employee.ID, byEmployeeID.ID)

	_, err = repo.FindEmployeeByLogin("nobody")
	require.True(t, IsNotFound(err))
}

func TestCreatePendingEmployeeForcesState(t *testing.T) {
	_, repo := setupRepoTest(t)

	employee := newEmployee("jdoe", "org_aws")
	// Callers cannot smuggle in an approved state or a pre-chosen id.
	employee.Status = models.EmployeeStatusApproved
	id := "123456"
	employee.EmployeeID = &id

	require.NoError(t, repo.CreatePendingEmployee(employee))
	require.Equal(t, models.EmployeeStatusPending, employee.Status)
	require.Nil(t, employee.EmployeeID)
}

func TestApproveEmployeeRetriesOnCollision(t *testing.T) {
	db, repo := setupRepoTest(t)

	taken := newEmployee("taken", "org_aws")
	takenID := "100001"
	taken.EmployeeID = &takenID
	taken.Status = models.EmployeeStatusApproved
	require.NoError(t, db.Create(taken).Error)

	pending := newEmployee("jdoe", "org_aws")
	require.NoError(t, repo.CreatePendingEmployee(pending))

	// First two candidates collide with the existing id.
	candidates := []string{"100001", "100001", "100002"}
	i := 0
	generate := func() (string, error) {
		candidate := candidates[i]
		i++
		return candidate, nil
	}

	approved, err := repo.ApproveEmployee(pending.ID, generate)
	require.NoError(t, err)
	require.Equal(t, models.EmployeeStatusApproved, approved.Status)
	require.Equal(t, "100002", *approved.EmployeeID)
	require.Equal(t, 3, i)
}

func TestApproveEmployeeExhaustsAttempts(t *testing.T) {
	db, repo := setupRepoTest(t)

	taken := newEmployee("taken", "org_aws")
	takenID := "100001"
	taken.EmployeeID = &takenID
	taken.Status = models.EmployeeStatusApproved
	require.NoError(t, db.Create(taken).Error)

	pending := newEmployee("jdoe", "org_aws")
	require.NoError(t, repo.CreatePendingEmployee(pending))

	generate := func() (string, error) { return "100001", nil }

	_, err := repo.ApproveEmployee(pending.ID, generate)
	require.ErrorIs(t, err, ErrIDGenerationExhausted)

	// The transaction rolled back: the account is still pending.
	var stored models.Employee
	require.NoError(t, db.First(&stored, pending.ID).Error)
	require.Equal(t, models.EmployeeStatusPending, stored.Status)
	require.Nil(t, stored.EmployeeID)
}

func TestApproveEmployeeRejectsNonPending(t *testing.T) {
	db, repo := setupRepoTest(t)

	approved := newEmployee("jdoe", "org_aws")
	id := "482913"
	approved.EmployeeID = &id
	approved.Status = models.EmployeeStatusApproved
	require.NoError(t, db.Create(approved).Error)

	_, err := repo.ApproveEmployee(approved.ID, func() (string, error) { return "999999", nil })
	require.ErrorIs(t, err, ErrEmployeeNotPending)
}

func TestListEmployeesFilters(t *testing.T) {
	db, repo := setupRepoTest(t)

	require.NoError(t, db.Create(newEmployee("aws1", "org_aws")).Error)
	require.NoError(t, db.Create(newEmployee("aws2", "org_aws")).Error)
	require.NoError(t, db.Create(newEmployee("azure1", "org_azure")).Error)

	params := utils.PaginationParams{Page: 1, Limit: 20, Offset: 0}

	employees, total, err := repo.ListEmployees("org_aws", nil, params)
	require.NoError(t, err)
	require.Equal(t, int64(2), total)
	require.Len(t, employees, 2)

	approvedStatus := models.EmployeeStatusApproved
	employees, total, err = repo.ListEmployees("org_aws", &approvedStatus, params)
	require.NoError(t, err)
	require.Zero(t, total)
	require.Empty(t, employees)
}

// Store failures must surface to the caller instead of being swallowed.
func TestStoreErrorPropagation(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	repo := NewAccountRepository(db)

	storeErr := errors.New("connection reset")

	mock.ExpectQuery(".*").WillReturnError(storeErr)
	_, err = repo.FindAdminByUsername("azureadmin1")
	require.ErrorIs(t, err, storeErr)

	mock.ExpectQuery(".*").WillReturnError(storeErr)
	_, err = repo.FindEmployeeByLogin("jdoe")
	require.ErrorIs(t, err, storeErr)

	mock.ExpectQuery(".*").WillReturnError(storeErr)
	_, _, err = repo.ListEmployees("org_aws", nil, utils.PaginationParams{Page: 1, Limit: 20})
	require.ErrorIs(t, err, storeErr)

	require.NoError(t, mock.ExpectationsWereMet())
}
