package ports

import (
	"context"
	"org-roster/internal/domain"
)

// Port: a boundary for retrieving the initial Employee set from a data source.
type EmployeeRepository interface {
	// Retrieve all employees, ordered by employee id.
	ListEmployees(ctx context.Context) ([]*domain.Employee, error)
}
