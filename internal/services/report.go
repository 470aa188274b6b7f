package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"org-roster/internal/domain"
	"org-roster/internal/platform/obs"
	"org-roster/internal/ports"
	"strings"

	"go.uber.org/zap"
)

// Stage selects how much of the driver sequence a report runs.
type Stage int

const (
	// Print the building and the company.
	StageBasic Stage = iota + 1
	// Add removals, top-five rankings and a lookup by id.
	StageRoster
	// Add the construction company, an assignment and the grouping by category.
	StageConstruction
)

var stageNames = map[Stage]string{
	StageBasic:        "basic",
	StageRoster:       "roster",
	StageConstruction: "construction",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

func ParseStage(s string) (Stage, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for st, name := range stageNames {
		if name == key {
			return st, nil
		}
	}
	return 0, fmt.Errorf("parse stage: unknown stage %q (want basic, roster or construction)", s)
}

type ReportRequest struct {
	Stage Stage

	BuildingName     string
	BuildingArea     float64
	BuildingCategory domain.BuildingCategory
	CompanyName      string

	ConstructionCompanyName     string
	ConstructionCompanyCategory domain.ConstructionCompanyCategory

	RemoveFromBuilding string
	RemoveFromCompany  string
	LookupID           int

	AssignID       int
	AssignCategory domain.BuildingCategory
}

// The request reproducing the canonical scenario.
func DefaultReportRequest() ReportRequest {
	return ReportRequest{
		Stage:                       StageConstruction,
		BuildingName:                "Warehouse",
		BuildingArea:                2500,
		BuildingCategory:            domain.Warehouse,
		CompanyName:                 "SFBU Corp",
		ConstructionCompanyName:     "BuildItRight Inc.",
		ConstructionCompanyCategory: domain.GeneralContractor,
		RemoveFromBuilding:          "Green Lee",
		RemoveFromCompany:           "Steven Smith",
		LookupID:                    3,
		AssignID:                    3,
		AssignCategory:              domain.Warehouse,
	}
}

// RunReport builds the model from repo's employees and writes the driver
// report to w.
//
// Lookup and assignment failures are part of the report and never returned.
// Only source and write failures produce an error.
func RunReport(
	ctx context.Context,
	w io.Writer,
	req ReportRequest,
	repo ports.EmployeeRepository,
	logger *zap.Logger,
) (err error) {
	defer obs.Time(ctx, logger, "report.Run")(&err)

	if _, ok := stageNames[req.Stage]; !ok {
		return fmt.Errorf("run report: invalid stage %d", int(req.Stage))
	}

	employees, err := repo.ListEmployees(ctx)
	if err != nil {
		return fmt.Errorf("run report: list employees: %w", err)
	}

	// Both containers start from the same employees but own separate lists.
	building := domain.NewBuilding(req.BuildingName, req.BuildingArea, req.BuildingCategory, employees)
	company := domain.NewCompany(req.CompanyName, employees)

	rw := &reportWriter{w: w}

	switch req.Stage {
	case StageBasic:
		rw.println(building.Display())
		rw.println("\n")
		rw.println(company.Display())
	case StageRoster:
		writeRosterSections(rw, req, building, company)
	case StageConstruction:
		writeRosterSections(rw, req, building, company)
		writeConstructionSections(rw, req, building, logger)
	}

	if rw.err != nil {
		return fmt.Errorf("run report: write: %w", rw.err)
	}
	return nil
}

func writeRosterSections(rw *reportWriter, req ReportRequest, building *domain.Building, company *domain.Company) {
	rw.println("Initial state of the building:")
	rw.println(building.Display())
	rw.println("\nInitial state of the company:")
	rw.println(company.Display())

	building.RemoveEmployee(req.RemoveFromBuilding)
	company.RemoveEmployee(req.RemoveFromCompany)

	rw.println("\nAfter removing employees:")
	rw.println("Building:")
	rw.println(building.Display())
	rw.println("Company:")
	rw.println(company.Display())

	rw.println("\nTop five employees in the building:")
	for _, e := range building.TopFiveEmployees() {
		rw.println(e.Display())
	}
	rw.println("\nTop five employees in the company:")
	for _, e := range company.TopFiveEmployees() {
		rw.println(e.Display())
	}

	rw.println("\nRetrieving a specific employee from the building and company:")
	if err := writeLookup(rw, req.LookupID, building, company); err != nil {
		rw.println(err.Error())
	}
}

// Stops at the first container missing the id.
func writeLookup(rw *reportWriter, id int, building *domain.Building, company *domain.Company) error {
	e, err := building.Employee(id)
	if err != nil {
		return err
	}
	rw.println("Building: " + e.Display())

	e, err = company.Employee(id)
	if err != nil {
		return err
	}
	rw.println("Company: " + e.Display())
	return nil
}

func writeConstructionSections(rw *reportWriter, req ReportRequest, building *domain.Building, logger *zap.Logger) {
	cc := domain.NewConstructionCompany(req.ConstructionCompanyName, req.ConstructionCompanyCategory)
	cc.AddBuilding(building)

	if err := cc.AssignEmployeeToBuilding(req.AssignID, req.AssignCategory); err != nil {
		if logger != nil && errors.Is(err, domain.ErrNotFound) {
			logger.Info("assignment skipped",
				zap.Int("employee_id", req.AssignID),
				zap.Stringer("category", req.AssignCategory),
				zap.Error(err),
			)
		}
		rw.println(err.Error())
	}

	rw.println("\nBuildings by type:")
	for _, group := range cc.BuildingsByCategory() {
		rw.println(group.Category.String() + ":")
		for _, b := range group.Buildings {
			rw.println(b.Display())
		}
	}
}

// reportWriter keeps the first write error so sections can write freely.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) println(s string) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintln(rw.w, s)
}
