package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *SQLEmployeeRepository) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn, mock, NewSQLEmployeeRepository(conn, zap.NewNop())
}

func TestSQLEmployeeRepositoryList(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"employee_id", "name", "annual_income"}).
		AddRow(1, "Green Lee", "75000.00").
		AddRow(2, "Steven Smith", "80000.50")
	mock.ExpectQuery(`FROM employees`).WillReturnRows(rows)

	employees, err := repo.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "ID: 1, Name: Green Lee, Income: $75000", employees[0].Display())
	assert.True(t, employees[1].AnnualIncome.Equal(decimal.RequireFromString("80000.5")))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEmployeeRepositoryQueryError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	mock.ExpectQuery(`FROM employees`).WillReturnError(errors.New("connection reset"))

	_, err := repo.ListEmployees(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEmployeeRepositoryScanError(t *testing.T) {
	_, mock, repo := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"employee_id", "name", "annual_income"}).
		AddRow(1, "Green Lee", "not-a-number")
	mock.ExpectQuery(`FROM employees`).WillReturnRows(rows)

	_, err := repo.ListEmployees(context.Background())
	assert.ErrorContains(t, err, "scan row")
}

func TestInitPostgresSchema(t *testing.T) {
	conn, mock, _ := setupMockDB(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS employees`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, InitPostgresSchema(context.Background(), conn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPostgresEmployees(t *testing.T) {
	conn, mock, _ := setupMockDB(t)
	employees, err := NewBuiltinEmployeeRepository().ListEmployees(context.Background())
	require.NoError(t, err)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO employees`)
	for _, e := range employees {
		prep.ExpectExec().
			WithArgs(e.EmployeeID, e.Name, e.AnnualIncome.String()).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, SeedPostgresEmployees(context.Background(), conn, employees))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPostgresEmployeesRollsBack(t *testing.T) {
	conn, mock, _ := setupMockDB(t)
	employees, _ := NewBuiltinEmployeeRepository().ListEmployees(context.Background())

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(`INSERT INTO employees`)
	prep.ExpectExec().WillReturnError(errors.New("duplicate"))
	mock.ExpectRollback()

	err := SeedPostgresEmployees(context.Background(), conn, employees)
	assert.ErrorContains(t, err, "employee_id=1")
	assert.NoError(t, mock.ExpectationsWereMet())
}
