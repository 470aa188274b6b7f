package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// A single person on the payroll.
// Employees are immutable once constructed and may be referenced by
// several containers at the same time.
type Employee struct {
	EmployeeID   int
	Name         string
	AnnualIncome decimal.Decimal
}

func NewEmployee(id int, name string, annualIncome decimal.Decimal) *Employee {
	return &Employee{
		EmployeeID:   id,
		Name:         name,
		AnnualIncome: annualIncome,
	}
}

// Render the employee as a single report line.
func (e *Employee) Display() string {
	return fmt.Sprintf("ID: %d, Name: %s, Income: $%s", e.EmployeeID, e.Name, e.AnnualIncome.String())
}

func (e *Employee) String() string { return e.Display() }
