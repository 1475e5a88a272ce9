package store

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/pkg/store/xpgx"
	"github.com/jackc/pgx/v5"
)

var scenarioColumns = []string{
	"s.id", "s.code", "s.name_en", "s.name_it", "s.description",
	"s.horizon_year", "s.scenario_group", "s.is_baseline", "s.source",
}

func (s *store) ListScenarios(ctx context.Context) ([]*domain.ScenarioWithYears, error) {
	query := builder().
		Select(scenarioColumns...).
		Column("COALESCE(y.years, ARRAY[]::int[]) AS years").
		From(tableDimScenario + " s").
		LeftJoin(`(
			SELECT scenario_id, array_agg(DISTINCT year ORDER BY year) AS years
			FROM ` + tableFactScenarioParam + `
			WHERE year IS NOT NULL
			GROUP BY scenario_id
		) y ON y.scenario_id = s.id`).
		OrderBy("s.id")

	selected, err := xpgx.Select[domain.ScenarioWithYears](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListParamKeys(ctx context.Context) ([]string, error) {
	query := builder().
		Select("DISTINCT param_key").
		From(tableFactScenarioParam).
		OrderBy("param_key")

	type row struct {
		ParamKey string `db:"param_key"`
	}

	selected, err := xpgx.Select[row](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	keys := make([]string, 0, len(selected))
	for _, r := range selected {
		keys = append(keys, r.ParamKey)
	}

	return keys, nil
}

type ScenarioValuesOpts struct {
	Level        domain.Level
	ScenarioCode string
	Year         int
	ParamKey     string
}

func (s *store) ListScenarioValues(ctx context.Context, opts ScenarioValuesOpts) ([]*domain.ScenarioValue, error) {
	nameCol := opts.Level.NameColumn()

	query := builder().
		Select(
			"t.id AS territory_id",
			nameCol+" AS name",
			"t.reg_cod",
			"t.prov_cod",
			"t.mun_cod",
			"f.param_key",
			"f.param_value",
			"f.unit",
		).
		From(tableFactScenarioParam + " f").
		Join(tableDimScenario + " s ON s.id = f.scenario_id").
		Join(tableDimTerritory + " t ON t.id = f.territory_id").
		Where(sq.Eq{"t.level": opts.Level}).
		Where(sq.Eq{"s.code": opts.ScenarioCode}).
		Where(sq.Eq{"f.year": opts.Year}).
		Where(sq.Eq{"f.param_key": opts.ParamKey}).
		OrderBy("t.id")

	selected, err := xpgx.Select[domain.ScenarioValue](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

type TerritoryParamsOpts struct {
	Level         domain.Level
	ScenarioCode  string
	Year          int
	TerritoryCode string
}

func (s *store) ListTerritoryParams(ctx context.Context, opts TerritoryParamsOpts) ([]*domain.TerritoryParam, error) {
	nameCol := opts.Level.NameColumn()

	query := builder().
		Select(
			"t.id AS territory_id",
			nameCol+" AS name",
			"t.reg_cod",
			"t.prov_cod",
			"t.mun_cod",
			"f.param_key",
			"f.param_value",
			"f.unit",
		).
		From(tableFactScenarioParam + " f").
		Join(tableDimScenario + " s ON s.id = f.scenario_id").
		Join(tableDimTerritory + " t ON t.id = f.territory_id").
		Where(sq.Eq{"t.level": opts.Level}).
		Where(sq.Eq{"s.code": opts.ScenarioCode}).
		Where(sq.Eq{"f.year": opts.Year}).
		Where(sq.Eq{opts.Level.CodeColumn(): opts.TerritoryCode}).
		OrderBy("f.param_key")

	selected, err := xpgx.Select[domain.TerritoryParam](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ScenarioCodeExists(ctx context.Context, code string) (bool, error) {
	query := builder().
		Select("1 AS one").
		From(tableDimScenario).
		Where(sq.Eq{"code": code}).
		Limit(1)

	type row struct {
		One int `db:"one"`
	}

	if _, err := xpgx.Get[row](ctx, s.pool, query); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

func (s *store) InsertScenario(ctx context.Context, scenario *domain.Scenario) (int64, error) {
	query := builder().Insert(tableDimScenario).
		Columns("code", "name_en", "name_it", "description", "horizon_year", "scenario_group", "is_baseline", "source").
		Values(
			scenario.Code,
			scenario.NameEn,
			scenario.NameIt,
			scenario.Description,
			scenario.HorizonYear,
			scenario.ScenarioGroup,
			scenario.IsBaseline,
			scenario.Source,
		).
		Suffix("RETURNING id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var id int64
	if err = s.pool.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// paramInsertBatchRows bounds one INSERT statement. Postgres caps
// extended-protocol binds at 65535 and each row binds 7 parameters, so a
// comune-level save (thousands of territories times nine keys) must be
// split. Callers run inside a transaction, so the batches still land
// atomically.
const paramInsertBatchRows = 5000

func (s *store) InsertScenarioParams(ctx context.Context, params []*domain.ScenarioParam) (int64, error) {
	var total int64
	for start := 0; start < len(params); start += paramInsertBatchRows {
		end := min(start+paramInsertBatchRows, len(params))

		query := builder().Insert(tableFactScenarioParam).
			Columns("scenario_id", "territory_id", "param_key", "param_value", "unit", "year", "notes")
		for _, p := range params[start:end] {
			query = query.Values(p.ScenarioID, p.TerritoryID, p.ParamKey, p.ParamValue, p.Unit, p.Year, p.Notes)
		}

		tag, err := xpgx.Exec(ctx, s.pool, query)
		if err != nil {
			return 0, err
		}
		total += tag.RowsAffected()
	}

	return total, nil
}
