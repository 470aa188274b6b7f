package domain

import (
	"fmt"
	"strings"
)

// Closed classification of a Building.
type BuildingCategory int

const (
	Warehouse BuildingCategory = iota + 1
	DistributionCenter
	FlexSpace
	ManufacturingBuilding
)

var buildingCategoryNames = map[BuildingCategory]string{
	Warehouse:             "WAREHOUSE",
	DistributionCenter:    "DISTRIBUTION_CENTER",
	FlexSpace:             "FLEX_SPACE",
	ManufacturingBuilding: "MANUFACTURING_BUILDING",
}

func (c BuildingCategory) String() string {
	if name, ok := buildingCategoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("BuildingCategory(%d)", int(c))
}

// Parse a building category from its upper-snake name.
// Matching ignores case and accepts '-' or ' ' in place of '_'.
func ParseBuildingCategory(s string) (BuildingCategory, error) {
	key := normalizeCategoryName(s)
	for c, name := range buildingCategoryNames {
		if name == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("parse building category: unknown category %q", s)
}

// Closed classification of a ConstructionCompany.
type ConstructionCompanyCategory int

const (
	GeneralContractor ConstructionCompanyCategory = iota + 1
	Subcontractor
	ConstructionManager
)

var constructionCompanyCategoryNames = map[ConstructionCompanyCategory]string{
	GeneralContractor:   "GENERAL_CONTRACTOR",
	Subcontractor:       "SUBCONTRACTOR",
	ConstructionManager: "CONSTRUCTION_MANAGER",
}

func (c ConstructionCompanyCategory) String() string {
	if name, ok := constructionCompanyCategoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ConstructionCompanyCategory(%d)", int(c))
}

// Parse a construction company category from its upper-snake name.
func ParseConstructionCompanyCategory(s string) (ConstructionCompanyCategory, error) {
	key := normalizeCategoryName(s)
	for c, name := range constructionCompanyCategoryNames {
		if name == key {
			return c, nil
		}
	}
	return 0, fmt.Errorf("parse construction company category: unknown category %q", s)
}

func normalizeCategoryName(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.NewReplacer("-", "_", " ", "_").Replace(s)
}
