package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound matches every lookup failure in the domain.
var ErrNotFound = errors.New("not found")

// Returned when no employee carries the requested id.
type EmployeeNotFoundError struct {
	ID int
}

func (e *EmployeeNotFoundError) Error() string {
	return fmt.Sprintf("employee with ID %d not found", e.ID)
}

func (e *EmployeeNotFoundError) Is(target error) bool { return target == ErrNotFound }

// Returned when no building of the requested category exists.
type CategoryNotFoundError struct {
	Category BuildingCategory
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("no building of type %s found", e.Category)
}

func (e *CategoryNotFoundError) Is(target error) bool { return target == ErrNotFound }
