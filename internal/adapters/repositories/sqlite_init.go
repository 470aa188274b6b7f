package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"org-roster/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createEmployeesQuery := `
	CREATE TABLE IF NOT EXISTS employees (
		employee_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		annual_income TEXT NOT NULL
	);
	`

	createNameIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_employees_name
	ON employees(name);
	`

	statements := []string{
		createEmployeesQuery,
		createNameIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Upsert employees into the SQLite employees table.
func SeedEmployees(db *sql.DB, employees []*domain.Employee) error {
	if db == nil {
		return errors.New("seed employees: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed employees: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO employees (
		employee_id,
		name,
		annual_income
	)
	VALUES (?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed employees: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range employees {
		if _, err := stmt.Exec(e.EmployeeID, e.Name, e.AnnualIncome.String()); err != nil {
			return fmt.Errorf("seed employees: insert employee_id=%d: %w", e.EmployeeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed employees: commit tx: %w", err)
	}

	return nil
}
