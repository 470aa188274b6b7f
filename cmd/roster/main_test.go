package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReportBasicStage(t *testing.T) {
	out, err := execute(t, "report", "--source", "builtin", "--stage", "basic")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Building Name: Warehouse, Area: 2500.0, Type: WAREHOUSE\n"))
	assert.Contains(t, out, "\n\n\nCompany Name: SFBU Corp\n")
}

func TestReportNotFoundKeepsExitStatus(t *testing.T) {
	out, err := execute(t, "report", "--source", "builtin", "--stage", "construction", "--lookup-id", "6", "--assign-id", "999")
	require.NoError(t, err)

	assert.Contains(t, out, "employee with ID 6 not found")
	assert.Contains(t, out, "employee with ID 999 not found")
	assert.Contains(t, out, "Buildings by type:\nWAREHOUSE:\n")
}

func TestReportRejectsUnknownCategory(t *testing.T) {
	_, err := execute(t, "report", "--source", "builtin", "--stage", "construction", "--assign-category", "castle")
	assert.ErrorContains(t, err, "--assign-category")
}

func TestSeedThenReportFromSqlite(t *testing.T) {
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "employees.yaml")
	dbPath := filepath.Join(dir, "roster.db")
	require.NoError(t, os.WriteFile(seedPath, []byte(`
employees:
  - {employee_id: 2, name: Ada Park, annual_income: 120000}
  - {employee_id: 1, name: Green Lee, annual_income: 75000}
`), 0o600))

	out, err := execute(t, "seed", "--source", "sqlite", "--db-path", dbPath, "--seed-path", seedPath)
	require.NoError(t, err)
	assert.Equal(t, "Seeded 2 employees into sqlite\n", out)

	out, err = execute(t, "report", "--source", "sqlite", "--db-path", dbPath, "--stage", "roster", "--lookup-id", "2", "--assign-category", "WAREHOUSE",
		"--remove-from-building", "Green Lee", "--remove-from-company", "Nobody")
	require.NoError(t, err)
	assert.Contains(t, out, "Top five employees in the building:\nID: 2, Name: Ada Park, Income: $120000\n\n")
	assert.Contains(t, out, "Company: ID: 2, Name: Ada Park, Income: $120000\n")
}

func TestSeedRequiresSQLSource(t *testing.T) {
	seedPath := filepath.Join(t.TempDir(), "employees.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte("[]"), 0o600))

	_, err := execute(t, "seed", "--source", "builtin", "--seed-path", seedPath)
	assert.ErrorContains(t, err, "sqlite or postgres")
}
