package repositories

import (
	"fmt"
	"org-roster/internal/domain"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// One employee entry in a seed file.
// Incomes are kept as text so no precision is lost before decimal parsing.
type EmployeeSeed struct {
	EmployeeID   int    `yaml:"employee_id"`
	Name         string `yaml:"name"`
	AnnualIncome string `yaml:"annual_income"`
}

type seedFile struct {
	Employees []EmployeeSeed `yaml:"employees"`
}

// Read and validate employees from a YAML or JSON seed file.
// The file is either a list of employees or a mapping with an
// "employees" key.
func LoadSeedFile(path string) ([]*domain.Employee, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}

	seeds, err := parseSeeds(bytes)
	if err != nil {
		return nil, fmt.Errorf("load seed: %q: %w", path, err)
	}

	employees := make([]*domain.Employee, 0, len(seeds))
	for i, s := range seeds {
		e, err := s.toEmployee()
		if err != nil {
			return nil, fmt.Errorf("load seed: item at index %d: %w", i+1, err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}

func parseSeeds(data []byte) ([]EmployeeSeed, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var seeds []EmployeeSeed
		if err := root.Decode(&seeds); err != nil {
			return nil, fmt.Errorf("decode employee list: %w", err)
		}
		return seeds, nil
	}

	var f seedFile
	if err := root.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode seed document: %w", err)
	}
	return f.Employees, nil
}

func (s EmployeeSeed) toEmployee() (*domain.Employee, error) {
	if s.EmployeeID <= 0 {
		return nil, fmt.Errorf("invalid employee_id: %d", s.EmployeeID)
	}

	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil, fmt.Errorf("employee_id=%d: name cannot be empty", s.EmployeeID)
	}

	income, err := decimal.NewFromString(strings.TrimSpace(s.AnnualIncome))
	if err != nil {
		return nil, fmt.Errorf("employee_id=%d: parse annual_income %q: %w", s.EmployeeID, s.AnnualIncome, err)
	}

	return domain.NewEmployee(s.EmployeeID, name, income), nil
}
