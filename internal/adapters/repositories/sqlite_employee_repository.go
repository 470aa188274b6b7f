package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"org-roster/internal/domain"
	"org-roster/internal/platform/obs"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SQLite-backed implementation of the EmployeeRepository port.
type SqliteEmployeeRepository struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func NewSqliteEmployeeRepository(db *sql.DB, logger *zap.Logger) *SqliteEmployeeRepository {
	return &SqliteEmployeeRepository{DB: db, Logger: logger}
}

// Return all employees stored in the database.
func (s *SqliteEmployeeRepository) ListEmployees(ctx context.Context) (_ []*domain.Employee, err error) {
	defer obs.Time(ctx, s.Logger, "sqlite.employees.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite employee repository: DB is nil")
	}

	query := `
	SELECT
		employee_id,
		name,
		annual_income
	FROM employees
	ORDER BY employee_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: query employees table: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Shared by the SQLite and Postgres repositories; both select
// (employee_id, name, annual_income).
func scanEmployees(rows *sql.Rows) ([]*domain.Employee, error) {
	employees := make([]*domain.Employee, 0, 16)
	for rows.Next() {
		var id int
		var name string
		var income decimal.Decimal
		if err := rows.Scan(&id, &name, &income); err != nil {
			return nil, fmt.Errorf("list employees: scan row: %w", err)
		}
		employees = append(employees, domain.NewEmployee(id, name, income))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list employees: row iteration: %w", err)
	}

	return employees, nil
}
