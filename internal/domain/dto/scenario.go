package dto

import (
	"net/http"
	"strings"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/pkg/constants"
)

// ScenarioPreviewRequest is bound from the preview query string.
type ScenarioPreviewRequest struct {
	Level            string  `query:"level" validate:"required,oneof=comune province region"`
	Resolution       string  `query:"resolution" validate:"required,oneof=annual monthly seasonal"`
	Year             int     `query:"year" validate:"required"`
	BaseScenario     string  `query:"base_scenario"`
	UpliftPct        float64 `query:"uplift_pct" validate:"gte=0"`
	UpliftCategories string  `query:"uplift_categories"`
}

// CategoryCodes splits the comma-separated uplift category list. The result
// is never nil: an empty list must bind as an empty array so the uplift base
// sum evaluates to zero.
func (r *ScenarioPreviewRequest) CategoryCodes() []string {
	return splitCodes(r.UpliftCategories)
}

func (r *ScenarioPreviewRequest) BaseScenarioOrDefault() string {
	if r.BaseScenario == "" {
		return domain.BaselineScenarioCode
	}
	return r.BaseScenario
}

// ScenarioSaveRequest is the save endpoint body.
type ScenarioSaveRequest struct {
	Username         string   `json:"username" validate:"required"`
	NameEn           string   `json:"name_en" validate:"required"`
	NameIt           string   `json:"name_it"`
	Description      string   `json:"description"`
	Year             int      `json:"year" validate:"required"`
	Level            string   `json:"level" validate:"required,oneof=comune province region"`
	BaseScenario     string   `json:"base_scenario"`
	UpliftPct        float64  `json:"uplift_pct" validate:"gte=0"`
	UpliftCategories []string `json:"uplift_categories"`
}

// Validate re-checks the contract independently of the HTTP validator, so
// direct service callers get the same guarantees before any mutation runs.
func (r *ScenarioSaveRequest) Validate() error {
	if strings.TrimSpace(r.Username) == "" {
		return constants.NewCodedError("missing username", http.StatusBadRequest)
	}
	if strings.TrimSpace(r.NameEn) == "" {
		return constants.NewCodedError("missing name_en", http.StatusBadRequest)
	}
	if !domain.Level(r.Level).Valid() {
		return constants.NewCodedError("invalid level", http.StatusBadRequest)
	}
	if r.Year == 0 {
		return constants.NewCodedError("missing year", http.StatusBadRequest)
	}
	if r.UpliftPct < 0 {
		return constants.NewCodedError("uplift_pct must be >= 0", http.StatusBadRequest)
	}
	return nil
}

func (r *ScenarioSaveRequest) BaseScenarioOrDefault() string {
	if r.BaseScenario == "" {
		return domain.BaselineScenarioCode
	}
	return r.BaseScenario
}

// CategoryCodes normalizes the uplift category list, never nil.
func (r *ScenarioSaveRequest) CategoryCodes() []string {
	codes := make([]string, 0, len(r.UpliftCategories))
	for _, code := range r.UpliftCategories {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// ScenarioValuesRequest selects choropleth values for one stored param key.
type ScenarioValuesRequest struct {
	Level    string `query:"level" validate:"required,oneof=comune province region"`
	Scenario string `query:"scenario" validate:"required"`
	Year     int    `query:"year" validate:"required"`
	ParamKey string `query:"param_key" validate:"required"`
}

// TerritoryParamsRequest selects all stored param keys for one territory.
// The code field read depends on the level.
type TerritoryParamsRequest struct {
	Level        string `query:"level" validate:"required,oneof=comune province region"`
	Scenario     string `query:"scenario" validate:"required"`
	Year         int    `query:"year" validate:"required"`
	ComuneCode   string `query:"comune_code"`
	ProvinceCode string `query:"province_code"`
	RegionCode   string `query:"region_code"`
}

// TerritoryCode returns the code matching the requested level.
func (r *TerritoryParamsRequest) TerritoryCode() string {
	switch domain.Level(r.Level) {
	case domain.LevelComune:
		return r.ComuneCode
	case domain.LevelProvince:
		return r.ProvinceCode
	default:
		return r.RegionCode
	}
}

func splitCodes(raw string) []string {
	codes := make([]string, 0, 4)
	for _, code := range strings.Split(raw, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
