package domain

import "github.com/shopspring/decimal"

const (
	ScenarioGroupUser    = "user"
	BaselineScenarioCode = "0"
)

type Scenario struct {
	ID            int64   `db:"id" json:"id"`
	Code          string  `db:"code" json:"code"`
	NameEn        string  `db:"name_en" json:"name_en"`
	NameIt        *string `db:"name_it" json:"name_it"`
	Description   *string `db:"description" json:"description"`
	HorizonYear   *int    `db:"horizon_year" json:"horizon_year"`
	ScenarioGroup string  `db:"scenario_group" json:"scenario_group"`
	IsBaseline    bool    `db:"is_baseline" json:"is_baseline"`
	Source        *string `db:"source" json:"source"`
}

// ScenarioWithYears adds the years that have parameter rows in
// fact_scenario_param for the scenario.
type ScenarioWithYears struct {
	Scenario
	Years []int `db:"years" json:"years"`
}

// ScenarioParam is one computed metric row written by the save service.
type ScenarioParam struct {
	ScenarioID  int64   `db:"scenario_id"`
	TerritoryID int64   `db:"territory_id"`
	ParamKey    string  `db:"param_key"`
	ParamValue  float64 `db:"param_value"`
	Unit        string  `db:"unit"`
	Year        int     `db:"year"`
	Notes       string  `db:"notes"`
}

// ScenarioValue is one stored parameter value for the choropleth endpoint.
// ParamValue is scanned as decimal to round-trip the numeric column.
type ScenarioValue struct {
	TerritoryID int64               `db:"territory_id"`
	Name        string              `db:"name"`
	RegCod      *string             `db:"reg_cod"`
	ProvCod     *string             `db:"prov_cod"`
	MunCod      *string             `db:"mun_cod"`
	ParamKey    string              `db:"param_key"`
	ParamValue  decimal.NullDecimal `db:"param_value"`
	Unit        *string             `db:"unit"`
}

// TerritoryParam is one stored parameter row for a single territory.
type TerritoryParam struct {
	TerritoryID int64               `db:"territory_id"`
	Name        string              `db:"name"`
	RegCod      *string             `db:"reg_cod"`
	ProvCod     *string             `db:"prov_cod"`
	MunCod      *string             `db:"mun_cod"`
	ParamKey    string              `db:"param_key"`
	ParamValue  decimal.NullDecimal `db:"param_value"`
	Unit        *string             `db:"unit"`
}

// ParamMeta describes how the frontend labels and formats a param key.
type ParamMeta struct {
	Label  string  `json:"label"`
	Unit   *string `json:"unit"`
	Group  string  `json:"group"`
	Format string  `json:"format"`
}

func strPtr(s string) *string { return &s }

// ParamMetaByKey mirrors the frontend legend for the known warehouse keys.
var ParamMetaByKey = map[string]ParamMeta{
	"consumption_mwh":                      {Label: "Consumption", Unit: strPtr("MWh"), Group: "Energy (MWh)", Format: "number"},
	"production_mwh":                       {Label: "Production", Unit: strPtr("MWh"), Group: "Energy (MWh)", Format: "number"},
	"production_uplift_base_mwh":           {Label: "Uplifted production base", Unit: strPtr("MWh"), Group: "Energy (MWh)", Format: "number"},
	"self_consumption_mwh":                 {Label: "Self-consumption", Unit: strPtr("MWh"), Group: "Energy (MWh)", Format: "number"},
	"over_production_mwh":                  {Label: "Over-production (Surplus)", Unit: strPtr("MWh"), Group: "Energy (MWh)", Format: "number"},
	"uncovered_demand_mwh":                 {Label: "Uncovered demand", Unit: strPtr("MWh"), Group: "Energy (MWh)", Format: "number"},
	"community_self_consumption_mwh":       {Label: "Community self-consumption (CSC)", Unit: strPtr("MWh"), Group: "Community (MWh)", Format: "number"},
	"community_self_consumption_total_mwh": {Label: "SC + CSC (Total self-consumption)", Unit: strPtr("MWh"), Group: "Community (MWh)", Format: "number"},
	"self_consumption_index":               {Label: "SCI (Self-consumption index)", Unit: strPtr("ratio"), Group: "Indexes", Format: "ratio"},
	"self_sufficiency_index":               {Label: "SSI (Self-sufficiency index)", Unit: strPtr("ratio"), Group: "Indexes", Format: "ratio"},
	"over_production_index":                {Label: "OPI (Over-production index)", Unit: strPtr("ratio"), Group: "Indexes", Format: "ratio"},
}

// MetaForParamKey falls back to a generic descriptor for unknown keys.
func MetaForParamKey(key string) ParamMeta {
	if meta, ok := ParamMetaByKey[key]; ok {
		return meta
	}
	return ParamMeta{Label: key, Group: "Other", Format: "number"}
}

// ScenarioPreviewRecord is one preview row per territory and time bucket.
type ScenarioPreviewRecord struct {
	TerritoryID int64   `json:"territory_id"`
	Name        string  `json:"name"`
	RegCod      *string `json:"reg_cod"`
	ProvCod     *string `json:"prov_cod"`
	MunCod      *string `json:"mun_cod"`

	Year   int     `json:"year"`
	Month  *int    `json:"month,omitempty"`
	Season *string `json:"season,omitempty"`

	BaseScenario     string   `json:"base_scenario"`
	UpliftPct        float64  `json:"uplift_pct"`
	UpliftCategories []string `json:"uplift_categories"`

	ConsumptionMWh          float64 `json:"consumption_mwh"`
	ProductionMWh           float64 `json:"production_mwh"`
	ProductionUpliftBaseMWh float64 `json:"production_uplift_base_mwh"`
	SelfConsumptionMWh      float64 `json:"self_consumption_mwh"`
	OverProductionMWh       float64 `json:"over_production_mwh"`
	UncoveredDemandMWh      float64 `json:"uncovered_demand_mwh"`
	SelfConsumptionIndex    float64 `json:"self_consumption_index"`
	SelfSufficiencyIndex    float64 `json:"self_sufficiency_index"`
	OverProductionIndex     float64 `json:"over_production_index"`
}

// ScenarioSaveResult reports the persisted scenario identity.
type ScenarioSaveResult struct {
	Status       string `json:"status"`
	ScenarioID   int64  `json:"scenario_id"`
	Code         string `json:"code"`
	StoredLevel  Level  `json:"stored_level"`
	StoredYear   int    `json:"stored_year"`
	RowsInserted int    `json:"rows_inserted"`
}
