package store

import (
	"context"
	"testing"

	"github.com/enermap/enermap/internal/domain"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListScenarios(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	columns := []string{
		"id", "code", "name_en", "name_it", "description",
		"horizon_year", "scenario_group", "is_baseline", "source", "years",
	}

	pool.ExpectQuery(`FROM energy_dw\.dim_scenario s LEFT JOIN`).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "0", "Baseline", nil, nil, nil, "baseline", true, nil, []int{2019, 2020}).
			AddRow(int64(9), "u_anna_2030_10p", "Anna's scenario", nil, nil, intp(2030), "user", false, strp("user:anna"), []int{2030}))

	s := NewStore(pool)
	scenarios, err := s.ListScenarios(context.Background())
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.True(t, scenarios[0].IsBaseline)
	assert.Equal(t, []int{2019, 2020}, scenarios[0].Years)
	assert.Equal(t, "u_anna_2030_10p", scenarios[1].Code)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func intp(i int) *int { return &i }

func TestScenarioCodeExists(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1 LIMIT 1`).
		WithArgs("u_anna_2030_10p").
		WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))
	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1 LIMIT 1`).
		WithArgs("u_anna_2030_10p_2").
		WillReturnRows(pgxmock.NewRows([]string{"one"}))

	s := NewStore(pool)

	exists, err := s.ScenarioCodeExists(context.Background(), "u_anna_2030_10p")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ScenarioCodeExists(context.Background(), "u_anna_2030_10p_2")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInsertScenario(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	source := "user:anna"
	horizon := 2030

	pool.ExpectQuery(`INSERT INTO energy_dw\.dim_scenario \(code,name_en,name_it,description,horizon_year,scenario_group,is_baseline,source\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7,\$8\) RETURNING id`).
		WithArgs("u_anna_2030_10p", "Anna's scenario", nil, nil, &horizon, "user", false, &source).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	s := NewStore(pool)
	id, err := s.InsertScenario(context.Background(), &domain.Scenario{
		Code:          "u_anna_2030_10p",
		NameEn:        "Anna's scenario",
		HorizonYear:   &horizon,
		ScenarioGroup: "user",
		Source:        &source,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInsertScenarioParams(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param \(scenario_id,territory_id,param_key,param_value,unit,year,notes\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\),\(\$8,\$9,\$10,\$11,\$12,\$13,\$14\)`).
		WithArgs(
			int64(42), int64(1), "consumption_mwh", 100.0, "MWh", 2030, "n",
			int64(42), int64(1), "self_sufficiency_index", 0.6, "ratio", 2030, "n",
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 2))

	s := NewStore(pool)
	inserted, err := s.InsertScenarioParams(context.Background(), []*domain.ScenarioParam{
		{ScenarioID: 42, TerritoryID: 1, ParamKey: "consumption_mwh", ParamValue: 100, Unit: "MWh", Year: 2030, Notes: "n"},
		{ScenarioID: 42, TerritoryID: 1, ParamKey: "self_sufficiency_index", ParamValue: 0.6, Unit: "ratio", Year: 2030, Notes: "n"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInsertScenarioParams_BatchesLargeSets(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	// comune-level scale: 1180 territories times nine keys, well past one
	// statement's bind capacity
	params := make([]*domain.ScenarioParam, 0, 1180*9)
	for i := 0; i < 1180*9; i++ {
		params = append(params, &domain.ScenarioParam{
			ScenarioID:  42,
			TerritoryID: int64(i / 9),
			ParamKey:    "consumption_mwh",
			ParamValue:  1,
			Unit:        "MWh",
			Year:        2030,
			Notes:       "n",
		})
	}

	// full batches stop at $35000 (5000 rows x 7 binds), the remainder
	// carries the rest
	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param .+\(\$34994,\$34995,\$34996,\$34997,\$34998,\$34999,\$35000\)$`).
		WillReturnResult(pgxmock.NewResult("INSERT", 5000))
	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param .+\(\$34994,\$34995,\$34996,\$34997,\$34998,\$34999,\$35000\)$`).
		WillReturnResult(pgxmock.NewResult("INSERT", 5000))
	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param .+\(\$4334,\$4335,\$4336,\$4337,\$4338,\$4339,\$4340\)$`).
		WillReturnResult(pgxmock.NewResult("INSERT", 620))

	s := NewStore(pool)
	inserted, err := s.InsertScenarioParams(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(1180*9), inserted)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestInsertScenarioParams_EmptyIsNoop(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	s := NewStore(pool)
	inserted, err := s.InsertScenarioParams(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestListScenarioValues(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	columns := []string{"territory_id", "name", "reg_cod", "prov_cod", "mun_cod", "param_key", "param_value", "unit"}

	pool.ExpectQuery(`FROM energy_dw\.fact_scenario_param f JOIN energy_dw\.dim_scenario s ON s\.id = f\.scenario_id JOIN energy_dw\.dim_territory_en t ON t\.id = f\.territory_id WHERE t\.level = \$1 AND s\.code = \$2 AND f\.year = \$3 AND f\.param_key = \$4 ORDER BY t\.id`).
		WithArgs(domain.LevelProvince, "4", 2019, "consumption_mwh").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "Torino", strp("1"), strp("1"), nil, "consumption_mwh", "123.45", strp("MWh")))

	s := NewStore(pool)
	values, err := s.ListScenarioValues(context.Background(), ScenarioValuesOpts{
		Level:        domain.LevelProvince,
		ScenarioCode: "4",
		Year:         2019,
		ParamKey:     "consumption_mwh",
	})
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.True(t, values[0].ParamValue.Valid)
	assert.Equal(t, "123.45", values[0].ParamValue.Decimal.String())
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestListTerritoryParams_CodeColumnFollowsLevel(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	columns := []string{"territory_id", "name", "reg_cod", "prov_cod", "mun_cod", "param_key", "param_value", "unit"}

	pool.ExpectQuery(`AND t\.mun_cod = \$4 ORDER BY f\.param_key`).
		WithArgs(domain.LevelComune, "4", 2019, "1272").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(7), "Torino", strp("1"), strp("1"), strp("1272"), "consumption_mwh", "10", strp("MWh")))

	s := NewStore(pool)
	rows, err := s.ListTerritoryParams(context.Background(), TerritoryParamsOpts{
		Level:         domain.LevelComune,
		ScenarioCode:  "4",
		Year:          2019,
		TerritoryCode: "1272",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "consumption_mwh", rows[0].ParamKey)
	assert.NoError(t, pool.ExpectationsWereMet())
}
