package domain

import "fmt"

// Legal entity with its own employee list.
type Company struct {
	Roster
	CompanyName string
}

var _ EmployeeCollection = (*Company)(nil)

func NewCompany(name string, employees []*Employee) *Company {
	return &Company{
		Roster:      NewRoster(employees),
		CompanyName: name,
	}
}

func (c *Company) Display() string {
	return c.displayWith(fmt.Sprintf("Company Name: %s", c.CompanyName))
}

func (c *Company) String() string { return c.Display() }
