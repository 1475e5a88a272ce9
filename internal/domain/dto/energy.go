package dto

import "github.com/enermap/enermap/internal/domain"

// EnergyValuesRequest selects summed fact values per territory.
type EnergyValuesRequest struct {
	Level        string `query:"level" validate:"required,oneof=comune province region"`
	Resolution   string `query:"resolution" validate:"required,oneof=hourly monthly annual"`
	Domain       string `query:"domain" validate:"required,oneof=consumption production future_production"`
	Scenario     string `query:"scenario"`
	Year         int    `query:"year" validate:"required"`
	DayType      string `query:"day_type" validate:"omitempty,oneof=weekday weekend"`
	BaseGroup    string `query:"base_group"`
	CategoryCode string `query:"category_code"`
}

func (r *EnergyValuesRequest) ScenarioOrDefault() string {
	if r.Scenario == "" {
		return domain.BaselineScenarioCode
	}
	return r.Scenario
}

// EnergySeriesRequest selects a chart series for one territory.
type EnergySeriesRequest struct {
	EnergyValuesRequest
	ComuneCode   string `query:"comune_code"`
	ProvinceCode string `query:"province_code"`
	RegionCode   string `query:"region_code"`
}

// TerritoryCode returns the code matching the requested level.
func (r *EnergySeriesRequest) TerritoryCode() string {
	switch domain.Level(r.Level) {
	case domain.LevelComune:
		return r.ComuneCode
	case domain.LevelProvince:
		return r.ProvinceCode
	default:
		return r.RegionCode
	}
}
