package services

import (
	"bytes"
	"context"
	"errors"
	"org-roster/internal/adapters/repositories"
	"org-roster/internal/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingRepo struct{ err error }

func (f failingRepo) ListEmployees(ctx context.Context) ([]*domain.Employee, error) {
	return nil, f.err
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errors.New("disk full") }

func runReport(t *testing.T, req ReportRequest) string {
	t.Helper()
	var buf bytes.Buffer
	err := RunReport(context.Background(), &buf, req, repositories.NewBuiltinEmployeeRepository(), zap.NewNop())
	require.NoError(t, err)
	return buf.String()
}

const (
	header   = "Building Name: Warehouse, Area: 2500.0, Type: WAREHOUSE"
	company  = "Company Name: SFBU Corp"
	greenLee = "ID: 1, Name: Green Lee, Income: $75000"
	steven   = "ID: 2, Name: Steven Smith, Income: $80000"
	carl     = "ID: 3, Name: Carl Hopper, Income: $55000"
	ken      = "ID: 4, Name: Ken Yung, Income: $60000"
	jenny    = "ID: 5, Name: Jenny May, Income: $90000"
)

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

func TestRunReportConstructionStage(t *testing.T) {
	got := runReport(t, DefaultReportRequest())

	want := lines(
		"Initial state of the building:",
		header, greenLee, steven, carl, ken, jenny,
		"",
		"Initial state of the company:",
		company, greenLee, steven, carl, ken, jenny,
		"",
		"After removing employees:",
		"Building:",
		header, steven, carl, ken, jenny,
		"Company:",
		company, greenLee, carl, ken, jenny,
		"",
		"Top five employees in the building:",
		jenny, steven, ken, carl,
		"",
		"Top five employees in the company:",
		jenny, greenLee, ken, carl,
		"",
		"Retrieving a specific employee from the building and company:",
		"Building: "+carl,
		"Company: "+carl,
		"",
		"Buildings by type:",
		"WAREHOUSE:",
		header, steven, carl, ken, jenny, carl,
	)
	assert.Equal(t, want, got)
}

func TestRunReportRosterStage(t *testing.T) {
	req := DefaultReportRequest()
	req.Stage = StageRoster

	got := runReport(t, req)
	assert.NotContains(t, got, "Buildings by type:")
	assert.True(t, strings.HasSuffix(got, "Company: "+carl+"\n"))
}

func TestRunReportBasicStage(t *testing.T) {
	req := DefaultReportRequest()
	req.Stage = StageBasic

	want := lines(header, greenLee, steven, carl, ken, jenny, "", "", company, greenLee, steven, carl, ken, jenny)
	assert.Equal(t, want, runReport(t, req))
}

func TestRunReportPrintsNotFound(t *testing.T) {
	req := DefaultReportRequest()
	req.LookupID = 6
	req.AssignID = 999

	got := runReport(t, req)
	assert.Contains(t, got, "Retrieving a specific employee from the building and company:\nemployee with ID 6 not found\n")
	assert.Contains(t, got, "employee with ID 999 not found\n\nBuildings by type:")
	assert.NotContains(t, got, "Building: ID")
}

func TestRunReportLookupStopsAtBuilding(t *testing.T) {
	req := DefaultReportRequest()
	// Green Lee was removed from the building but is still in the company.
	req.LookupID = 1

	got := runReport(t, req)
	assert.Contains(t, got, "employee with ID 1 not found")
	assert.NotContains(t, got, "Company: "+greenLee)
}

func TestRunReportMissingCategory(t *testing.T) {
	req := DefaultReportRequest()
	req.AssignCategory = domain.FlexSpace

	got := runReport(t, req)
	assert.Contains(t, got, "no building of type FLEX_SPACE found\n")
	assert.True(t, strings.HasSuffix(got, jenny+"\n"))
}

func TestRunReportErrors(t *testing.T) {
	ctx := context.Background()
	builtin := repositories.NewBuiltinEmployeeRepository()

	err := RunReport(ctx, &bytes.Buffer{}, DefaultReportRequest(), failingRepo{err: errors.New("db down")}, nil)
	assert.ErrorContains(t, err, "db down")

	bad := DefaultReportRequest()
	bad.Stage = 0
	assert.Error(t, RunReport(ctx, &bytes.Buffer{}, bad, builtin, nil))

	err = RunReport(ctx, failingWriter{}, DefaultReportRequest(), builtin, zap.NewNop())
	assert.ErrorContains(t, err, "disk full")
}

func TestParseStage(t *testing.T) {
	for _, s := range []Stage{StageBasic, StageRoster, StageConstruction} {
		got, err := ParseStage(" " + strings.ToUpper(s.String()))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStage("full")
	assert.Error(t, err)
}
