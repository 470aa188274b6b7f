package domain

import "github.com/shopspring/decimal"

func sampleEmployees() []*Employee {
	return []*Employee{
		NewEmployee(1, "Green Lee", decimal.NewFromInt(75000)),
		NewEmployee(2, "Steven Smith", decimal.NewFromInt(80000)),
		NewEmployee(3, "Carl Hopper", decimal.NewFromInt(55000)),
		NewEmployee(4, "Ken Yung", decimal.NewFromInt(60000)),
		NewEmployee(5, "Jenny May", decimal.NewFromInt(90000)),
	}
}

func names(employees []*Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.Name)
	}
	return out
}
