package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Buildings sharing one category, in the order they were added.
type BuildingGroup struct {
	Category  BuildingCategory
	Buildings []*Building
}

// Construction company aggregate owning an ordered list of buildings.
// Its employees are always derived from the buildings it owns.
type ConstructionCompany struct {
	CompanyName string
	Category    ConstructionCompanyCategory
	buildings   []*Building
}

func NewConstructionCompany(name string, category ConstructionCompanyCategory) *ConstructionCompany {
	return &ConstructionCompany{
		CompanyName: name,
		Category:    category,
	}
}

// Append a building. Duplicate names are not rejected.
func (c *ConstructionCompany) AddBuilding(b *Building) {
	c.buildings = append(c.buildings, b)
}

func (c *ConstructionCompany) Buildings() []*Building {
	return slices.Clone(c.buildings)
}

// Return every employee of every owned building, in building order
// then roster order. Recomputed on each call.
func (c *ConstructionCompany) Employees() []*Employee {
	var all []*Employee
	for _, b := range c.buildings {
		all = append(all, b.employees...)
	}
	return all
}

// Group owned buildings by category.
// Groups appear in the order their category was first seen.
func (c *ConstructionCompany) BuildingsByCategory() []BuildingGroup {
	groups := []BuildingGroup{}
	index := make(map[BuildingCategory]int)

	for _, b := range c.buildings {
		i, ok := index[b.Category]
		if !ok {
			i = len(groups)
			index[b.Category] = i
			groups = append(groups, BuildingGroup{Category: b.Category})
		}
		groups[i].Buildings = append(groups[i].Buildings, b)
	}

	return groups
}

// Add the employee with the given id to the first building of category.
//
// The employee is looked up across all owned buildings. It is appended
// without leaving its current building, so it may end up listed twice.
func (c *ConstructionCompany) AssignEmployeeToBuilding(employeeID int, category BuildingCategory) error {
	var employee *Employee
	for _, e := range c.Employees() {
		if e.EmployeeID == employeeID {
			employee = e
			break
		}
	}
	if employee == nil {
		return &EmployeeNotFoundError{ID: employeeID}
	}

	for _, b := range c.buildings {
		if b.Category == category {
			b.AddEmployee(employee)
			return nil
		}
	}

	return &CategoryNotFoundError{Category: category}
}

func (c *ConstructionCompany) Display() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Construction Company Name: %s, Type: %s", c.CompanyName, c.Category)
	for _, bld := range c.buildings {
		b.WriteByte('\n')
		b.WriteString(bld.Display())
	}
	return b.String()
}

func (c *ConstructionCompany) String() string { return c.Display() }
