package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Physical site staffed by an ordered list of employees.
type Building struct {
	Roster
	BuildingName string
	Area         float64
	Category     BuildingCategory
}

var _ EmployeeCollection = (*Building)(nil)

func NewBuilding(name string, area float64, category BuildingCategory, employees []*Employee) *Building {
	return &Building{
		Roster:       NewRoster(employees),
		BuildingName: name,
		Area:         area,
		Category:     category,
	}
}

func (b *Building) Display() string {
	header := fmt.Sprintf("Building Name: %s, Area: %s, Type: %s", b.BuildingName, formatArea(b.Area), b.Category)
	return b.displayWith(header)
}

func (b *Building) String() string { return b.Display() }

// Areas always print with a fractional part (2500 -> "2500.0").
func formatArea(area float64) string {
	s := strconv.FormatFloat(area, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
