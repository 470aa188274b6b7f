package repositories

import (
	"context"
	"org-roster/internal/domain"

	"github.com/shopspring/decimal"
)

// In-memory source holding the canonical five-employee roster.
type BuiltinEmployeeRepository struct{}

func NewBuiltinEmployeeRepository() *BuiltinEmployeeRepository {
	return &BuiltinEmployeeRepository{}
}

func (BuiltinEmployeeRepository) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return []*domain.Employee{
		domain.NewEmployee(1, "Green Lee", decimal.NewFromInt(75000)),
		domain.NewEmployee(2, "Steven Smith", decimal.NewFromInt(80000)),
		domain.NewEmployee(3, "Carl Hopper", decimal.NewFromInt(55000)),
		domain.NewEmployee(4, "Ken Yung", decimal.NewFromInt(60000)),
		domain.NewEmployee(5, "Jenny May", decimal.NewFromInt(90000)),
	}, nil
}
