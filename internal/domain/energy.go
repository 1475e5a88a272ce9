package domain

import "fmt"

// Level is a territory granularity in dim_territory_en.
type Level string

const (
	LevelComune   Level = "comune"
	LevelProvince Level = "province"
	LevelRegion   Level = "region"
)

func (l Level) Valid() bool {
	switch l {
	case LevelComune, LevelProvince, LevelRegion:
		return true
	}
	return false
}

// NameColumn returns the dim_territory_en column holding the display name at
// this level. Panics on an unknown level: callers validate at the boundary,
// so reaching here with bad input is a contract violation.
func (l Level) NameColumn() string {
	switch l {
	case LevelComune:
		return "t.municipality_name"
	case LevelProvince:
		return "t.province_name"
	case LevelRegion:
		return "t.region_name"
	}
	panic(fmt.Sprintf("unknown territory level %q", string(l)))
}

// CodeColumn returns the code column identifying a single territory at this
// level. Panics on an unknown level, same contract as NameColumn.
func (l Level) CodeColumn() string {
	switch l {
	case LevelComune:
		return "t.mun_cod"
	case LevelProvince:
		return "t.prov_cod"
	case LevelRegion:
		return "t.reg_cod"
	}
	panic(fmt.Sprintf("unknown territory level %q", string(l)))
}

// Resolution is a time granularity. Seasonal is a re-grouping of monthly rows
// by the precomputed season attribute on dim_time, not a physical table.
type Resolution string

const (
	ResolutionHourly   Resolution = "hourly"
	ResolutionMonthly  Resolution = "monthly"
	ResolutionAnnual   Resolution = "annual"
	ResolutionSeasonal Resolution = "seasonal"
)

// Physical maps the resolution to the time_resolution stored on fact rows.
func (r Resolution) Physical() Resolution {
	if r == ResolutionSeasonal {
		return ResolutionMonthly
	}
	return r
}

// EnergyDomain is the fact domain in dim_energy_category.
type EnergyDomain string

const (
	DomainConsumption      EnergyDomain = "consumption"
	DomainProduction       EnergyDomain = "production"
	DomainFutureProduction EnergyDomain = "future_production"
)

func (d EnergyDomain) Valid() bool {
	switch d {
	case DomainConsumption, DomainProduction, DomainFutureProduction:
		return true
	}
	return false
}

// EnergyAggregate is one aggregated fact row per territory and time bucket.
// Month and Season stay nil at resolutions that do not select them.
type EnergyAggregate struct {
	TerritoryID             int64   `db:"territory_id"`
	Name                    string  `db:"name"`
	RegCod                  *string `db:"reg_cod"`
	ProvCod                 *string `db:"prov_cod"`
	MunCod                  *string `db:"mun_cod"`
	Year                    int     `db:"year"`
	Month                   *int    `db:"month"`
	Season                  *string `db:"season"`
	ConsumptionMWh          float64 `db:"consumption_mwh"`
	ProductionMWh           float64 `db:"production_mwh"`
	ProductionUpliftBaseMWh float64 `db:"production_uplift_base_mwh"`
}

// EnergyValue is one choropleth value row.
type EnergyValue struct {
	TerritoryID int64   `db:"territory_id" json:"territory_id"`
	Name        string  `db:"name" json:"name"`
	RegCod      *string `db:"reg_cod" json:"reg_cod"`
	ProvCod     *string `db:"prov_cod" json:"prov_cod"`
	MunCod      *string `db:"mun_cod" json:"mun_cod"`
	ValueMWh    float64 `db:"value_mwh" json:"value_mwh"`

	Domain       EnergyDomain `json:"domain"`
	BaseGroup    *string      `json:"base_group"`
	CategoryCode *string      `json:"category_code"`
}

// SeriesPoint is one chart point on the hour/month/year axis.
type SeriesPoint struct {
	X        *int    `db:"x" json:"x"`
	ValueMWh float64 `db:"value_mwh" json:"value_mwh"`
}
