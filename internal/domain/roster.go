package domain

import (
	"slices"
	"strings"
)

const topEmployeesLimit = 5

// EmployeeCollection is the capability set shared by every container that
// owns an ordered list of employees (Building, Company).
type EmployeeCollection interface {
	AddEmployee(e *Employee)
	RemoveEmployee(name string)
	TopFiveEmployees() []*Employee
	Employee(id int) (*Employee, error)
	Employees() []*Employee
	Display() string
}

// Roster is the single implementation of the employee list operations.
// Containers embed it and add their own metadata and display header.
// The zero value is an empty roster ready for use.
type Roster struct {
	employees []*Employee
}

// Build a roster from a copy of the given slice.
// The *Employee values stay shared with the caller.
func NewRoster(employees []*Employee) Roster {
	return Roster{employees: slices.Clone(employees)}
}

// Append an employee. Duplicate ids are not rejected.
func (r *Roster) AddEmployee(e *Employee) {
	r.employees = append(r.employees, e)
}

// Remove every employee whose name matches exactly.
// Removing an unknown name leaves the roster unchanged.
func (r *Roster) RemoveEmployee(name string) {
	kept := make([]*Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if e.Name != name {
			kept = append(kept, e)
		}
	}
	r.employees = kept
}

// Return up to five employees ordered by income, highest first.
func (r *Roster) TopFiveEmployees() []*Employee {
	return r.TopEmployees(topEmployeesLimit)
}

// Return up to n employees ordered by income, highest first.
// Equal incomes keep their roster order.
func (r *Roster) TopEmployees(n int) []*Employee {
	sorted := slices.Clone(r.employees)
	slices.SortStableFunc(sorted, func(a, b *Employee) int {
		return b.AnnualIncome.Cmp(a.AnnualIncome)
	})

	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Return the first employee with the given id.
func (r *Roster) Employee(id int) (*Employee, error) {
	for _, e := range r.employees {
		if e.EmployeeID == id {
			return e, nil
		}
	}
	return nil, &EmployeeNotFoundError{ID: id}
}

// Return the employees in roster order.
func (r *Roster) Employees() []*Employee {
	return slices.Clone(r.employees)
}

func (r *Roster) Len() int { return len(r.employees) }

// Render header followed by one line per employee.
func (r *Roster) displayWith(header string) string {
	var b strings.Builder
	b.WriteString(header)
	for _, e := range r.employees {
		b.WriteByte('\n')
		b.WriteString(e.Display())
	}
	return b.String()
}
