package main

import (
	"fmt"
	"org-roster/internal/domain"
	"org-roster/internal/services"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the roster report",
	RunE:  runReport,
}

func init() {
	addReportFlags(reportCmd)
}

func addReportFlags(cmd *cobra.Command) {
	def := services.DefaultReportRequest()
	f := cmd.Flags()
	f.String("stage", "", "report stage: basic, roster or construction (env REPORT_STAGE)")
	f.String("remove-from-building", def.RemoveFromBuilding, "employee name removed from the building")
	f.String("remove-from-company", def.RemoveFromCompany, "employee name removed from the company")
	f.Int("lookup-id", def.LookupID, "employee id looked up in the building and company")
	f.Int("assign-id", def.AssignID, "employee id assigned to a building")
	f.String("assign-category", def.AssignCategory.String(), "building category receiving the assigned employee")
}

func runReport(cmd *cobra.Command, args []string) error {
	req, err := buildReportRequest(cmd)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openRepository(cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	return services.RunReport(cmd.Context(), cmd.OutOrStdout(), req, repo, logger)
}

func buildReportRequest(cmd *cobra.Command) (services.ReportRequest, error) {
	req := services.DefaultReportRequest()

	stage, err := services.ParseStage(cfg.Stage)
	if err != nil {
		return req, err
	}
	req.Stage = stage

	req.BuildingName = cfg.BuildingName
	req.BuildingArea = cfg.BuildingArea
	req.CompanyName = cfg.CompanyName
	req.ConstructionCompanyName = cfg.ConstructionCompanyName

	if req.BuildingCategory, err = domain.ParseBuildingCategory(cfg.BuildingCategory); err != nil {
		return req, fmt.Errorf("BUILDING_CATEGORY: %w", err)
	}
	if req.ConstructionCompanyCategory, err = domain.ParseConstructionCompanyCategory(cfg.ConstructionCompanyCategory); err != nil {
		return req, fmt.Errorf("CONSTRUCTION_COMPANY_CATEGORY: %w", err)
	}

	f := cmd.Flags()
	if req.RemoveFromBuilding, err = f.GetString("remove-from-building"); err != nil {
		return req, err
	}
	if req.RemoveFromCompany, err = f.GetString("remove-from-company"); err != nil {
		return req, err
	}
	if req.LookupID, err = f.GetInt("lookup-id"); err != nil {
		return req, err
	}
	if req.AssignID, err = f.GetInt("assign-id"); err != nil {
		return req, err
	}

	category, err := f.GetString("assign-category")
	if err != nil {
		return req, err
	}
	if req.AssignCategory, err = domain.ParseBuildingCategory(category); err != nil {
		return req, fmt.Errorf("--assign-category: %w", err)
	}

	return req, nil
}
