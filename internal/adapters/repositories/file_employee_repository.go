package repositories

import (
	"context"
	"org-roster/internal/domain"
	"slices"
)

// Seed-file backed implementation of the EmployeeRepository port.
// The file is re-read on every call.
type FileEmployeeRepository struct{ Path string }

func NewFileEmployeeRepository(path string) *FileEmployeeRepository {
	return &FileEmployeeRepository{Path: path}
}

func (f *FileEmployeeRepository) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	employees, err := LoadSeedFile(f.Path)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(employees, func(a, b *domain.Employee) int {
		return a.EmployeeID - b.EmployeeID
	})
	return employees, nil
}
