package store

import (
	"errors"

	"github.com/enermap/enermap/internal/pkg/constants"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const (
	tableFactEnergy        = "energy_dw.fact_energy"
	tableFactScenarioParam = "energy_dw.fact_scenario_param"
	tableDimScenario       = "energy_dw.dim_scenario"
	tableDimTerritory      = "energy_dw.dim_territory_en"
	tableDimTime           = "energy_dw.dim_time"
	tableDimEnergyCategory = "energy_dw.dim_energy_category"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
