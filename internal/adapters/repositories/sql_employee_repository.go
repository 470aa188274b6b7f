package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"org-roster/internal/domain"
	"org-roster/internal/platform/obs"

	"go.uber.org/zap"
)

// SQLEmployeeRepository is a Postgres-backed implementation of the
// EmployeeRepository port (pgx stdlib driver).
type SQLEmployeeRepository struct {
	DB     *sql.DB
	Logger *zap.Logger
}

func NewSQLEmployeeRepository(db *sql.DB, logger *zap.Logger) *SQLEmployeeRepository {
	return &SQLEmployeeRepository{DB: db, Logger: logger}
}

func (s *SQLEmployeeRepository) ListEmployees(ctx context.Context) (_ []*domain.Employee, err error) {
	defer obs.Time(ctx, s.Logger, "postgres.employees.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql employee repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT employee_id, name, annual_income::text
	FROM employees
	ORDER BY employee_id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list employees: query employees table: %w", err)
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Initialize the Postgres schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	if _, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS employees (
		employee_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		annual_income NUMERIC(14, 2) NOT NULL
	);
	`); err != nil {
		return fmt.Errorf("init postgres schema: create employees: %w", err)
	}

	return nil
}

// Upsert employees into the Postgres employees table.
func SeedPostgresEmployees(ctx context.Context, db *sql.DB, employees []*domain.Employee) error {
	if db == nil {
		return errors.New("seed postgres employees: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed postgres employees: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO employees (employee_id, name, annual_income)
	VALUES ($1, $2, $3)
	ON CONFLICT (employee_id) DO UPDATE
	SET name = EXCLUDED.name,
		annual_income = EXCLUDED.annual_income;
	`)
	if err != nil {
		return fmt.Errorf("seed postgres employees: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, e := range employees {
		if _, err := stmt.ExecContext(ctx, e.EmployeeID, e.Name, e.AnnualIncome.String()); err != nil {
			return fmt.Errorf("seed postgres employees: insert employee_id=%d: %w", e.EmployeeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed postgres employees: commit: %w", err)
	}

	return nil
}
