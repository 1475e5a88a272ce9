package scenario

import (
	"context"
	"errors"
	"testing"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/store"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveRequest() *dto.ScenarioSaveRequest {
	return &dto.ScenarioSaveRequest{
		Username:         "Anna",
		NameEn:           "Solar push",
		Year:             2030,
		Level:            "province",
		UpliftPct:        10,
		UpliftCategories: []string{"solar"},
	}
}

func TestSave_HappyPath(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1`).
		WithArgs("u_anna_2030_10p").
		WillReturnRows(pgxmock.NewRows([]string{"one"}))
	pool.ExpectQuery(`INSERT INTO energy_dw\.dim_scenario`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	pool.ExpectQuery(`FROM energy_dw\.fact_energy f`).
		WithArgs(
			[]string{"solar"},
			domain.LevelProvince,
			domain.ResolutionAnnual,
			2030,
			"0",
			"agg_province_annual",
		).
		WillReturnRows(pgxmock.NewRows(aggColumns).
			AddRow(int64(1), "Torino", strp("1"), strp("1"), nil, 2030, 100.0, 200.0, 50.0).
			AddRow(int64(2), "Cuneo", strp("1"), strp("4"), nil, 2030, 80.0, 40.0, 10.0))
	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param`).
		WillReturnResult(pgxmock.NewResult("INSERT", 18))
	pool.ExpectCommit()

	svc := NewScenarioService(store.NewStore(pool))
	result, err := svc.Save(context.Background(), saveRequest())
	require.NoError(t, err)

	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, int64(42), result.ScenarioID)
	assert.Equal(t, "u_anna_2030_10p", result.Code)
	assert.Equal(t, domain.LevelProvince, result.StoredLevel)
	assert.Equal(t, 2030, result.StoredYear)
	// two territories times the nine metric keys
	assert.Equal(t, 18, result.RowsInserted)

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestSave_CodeCollisionGetsSuffix(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1`).
		WithArgs("u_anna_2030_10p").
		WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))
	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1`).
		WithArgs("u_anna_2030_10p_2").
		WillReturnRows(pgxmock.NewRows([]string{"one"}))
	pool.ExpectQuery(`INSERT INTO energy_dw\.dim_scenario`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(43)))
	pool.ExpectQuery(`FROM energy_dw\.fact_energy f`).
		WillReturnRows(pgxmock.NewRows(aggColumns).
			AddRow(int64(1), "Torino", strp("1"), strp("1"), nil, 2030, 100.0, 200.0, 50.0))
	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param`).
		WillReturnResult(pgxmock.NewResult("INSERT", 9))
	pool.ExpectCommit()

	svc := NewScenarioService(store.NewStore(pool))
	result, err := svc.Save(context.Background(), saveRequest())
	require.NoError(t, err)

	assert.Equal(t, "u_anna_2030_10p_2", result.Code)
	assert.Equal(t, 9, result.RowsInserted)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestSave_RollsBackWhenParamInsertFails(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1`).
		WillReturnRows(pgxmock.NewRows([]string{"one"}))
	pool.ExpectQuery(`INSERT INTO energy_dw\.dim_scenario`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))
	pool.ExpectQuery(`FROM energy_dw\.fact_energy f`).
		WillReturnRows(pgxmock.NewRows(aggColumns).
			AddRow(int64(1), "Torino", strp("1"), strp("1"), nil, 2030, 100.0, 200.0, 50.0))
	pool.ExpectExec(`INSERT INTO energy_dw\.fact_scenario_param`).
		WillReturnError(errors.New("deadlock detected"))
	pool.ExpectRollback()

	svc := NewScenarioService(store.NewStore(pool))
	_, err = svc.Save(context.Background(), saveRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert scenario params")
	assert.Contains(t, err.Error(), "deadlock detected")

	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestSave_NoTerritoriesStillSucceeds(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1`).
		WillReturnRows(pgxmock.NewRows([]string{"one"}))
	pool.ExpectQuery(`INSERT INTO energy_dw\.dim_scenario`).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(44)))
	pool.ExpectQuery(`FROM energy_dw\.fact_energy f`).
		WillReturnRows(pgxmock.NewRows(aggColumns))
	pool.ExpectCommit()

	svc := NewScenarioService(store.NewStore(pool))
	result, err := svc.Save(context.Background(), saveRequest())
	require.NoError(t, err)

	// no matching fact rows is a legitimate state, not a fault
	assert.Equal(t, 0, result.RowsInserted)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestSave_ValidationBeforeAnyMutation(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	svc := NewScenarioService(store.NewStore(pool))

	cases := []*dto.ScenarioSaveRequest{
		{NameEn: "x", Year: 2030, Level: "province"},
		{Username: "anna", Year: 2030, Level: "province"},
		{Username: "anna", NameEn: "x", Year: 2030, Level: "galaxy"},
		{Username: "anna", NameEn: "x", Level: "province"},
		{Username: "anna", NameEn: "x", Year: 2030, Level: "province", UpliftPct: -5},
	}

	for _, req := range cases {
		_, err := svc.Save(context.Background(), req)
		require.Error(t, err)

		var ce *constants.CodedError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 400, ce.Code())
	}

	// the pool never saw a single statement
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestSave_CodeExhaustionFailsWithFault(t *testing.T) {
	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	pool.ExpectBegin()
	for i := 0; i < codeMaxAttempts; i++ {
		pool.ExpectQuery(`SELECT 1 AS one FROM energy_dw\.dim_scenario WHERE code = \$1`).
			WillReturnRows(pgxmock.NewRows([]string{"one"}).AddRow(1))
	}
	pool.ExpectRollback()

	svc := NewScenarioService(store.NewStore(pool))
	_, err = svc.Save(context.Background(), saveRequest())
	require.Error(t, err)

	var ce *constants.CodedError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 500, ce.Code())
	assert.NoError(t, pool.ExpectationsWereMet())
}
