package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/pkg/store/xpgx"
)

// AggregateEnergyOpts selects the aggregation run feeding the scenario
// preview and save services. UpliftCategoryCodes may be empty but is always
// bound: an empty array matches nothing, so the uplift base sums to zero.
type AggregateEnergyOpts struct {
	Level               domain.Level
	Resolution          domain.Resolution
	Year                int
	ScenarioCode        string
	UpliftCategoryCodes []string
}

// dataSource resolves the physical aggregation source for a level and
// resolution. Seasonal rows live in the monthly source. The second return is
// true for the one combination served from raw hourly rows instead of a
// precomputed aggregate. Unknown combinations panic: level and resolution are
// validated at the API boundary, so reaching here is a contract violation.
func dataSource(level domain.Level, resolution domain.Resolution) (string, bool) {
	if !level.Valid() {
		panic(fmt.Sprintf("unknown territory level %q", string(level)))
	}

	physical := resolution.Physical()
	switch physical {
	case domain.ResolutionHourly, domain.ResolutionMonthly, domain.ResolutionAnnual:
	default:
		panic(fmt.Sprintf("unknown time resolution %q", string(resolution)))
	}

	if level == domain.LevelComune && physical == domain.ResolutionHourly {
		return "", true
	}

	return fmt.Sprintf("agg_%s_%s", level, physical), false
}

func factJoins(query sq.SelectBuilder) sq.SelectBuilder {
	return query.
		From(tableFactEnergy + " f").
		Join(tableDimTerritory + " t ON t.id = f.territory_id").
		Join(tableDimTime + " tm ON tm.id = f.time_id").
		Join(tableDimEnergyCategory + " ec ON ec.id = f.category_id").
		Join(tableDimScenario + " sc ON sc.id = f.scenario_id")
}

// AggregateEnergy sums fact values per territory and time bucket into the
// three buckets the scenario engine consumes: total consumption, total
// production and the production restricted to the uplift category set.
func (s *store) AggregateEnergy(ctx context.Context, opts AggregateEnergyOpts) ([]*domain.EnergyAggregate, error) {
	source, _ := dataSource(opts.Level, opts.Resolution)
	nameCol := opts.Level.NameColumn()

	codes := opts.UpliftCategoryCodes
	if codes == nil {
		codes = []string{}
	}

	query := builder().
		Select(
			"t.id AS territory_id",
			nameCol+" AS name",
			"t.reg_cod",
			"t.prov_cod",
			"t.mun_cod",
			"tm.year",
		).
		Column("COALESCE(SUM(f.value_mwh) FILTER (WHERE ec.domain = 'consumption'), 0) AS consumption_mwh").
		Column("COALESCE(SUM(f.value_mwh) FILTER (WHERE ec.domain = 'production'), 0) AS production_mwh").
		Column(sq.Expr(
			"COALESCE(SUM(f.value_mwh) FILTER (WHERE ec.domain = 'production' AND ec.code = ANY(?)), 0) AS production_uplift_base_mwh",
			codes,
		))

	query = factJoins(query).
		Where(sq.Eq{"t.level": opts.Level}).
		Where(sq.Eq{"f.time_resolution": opts.Resolution.Physical()}).
		Where(sq.Eq{"tm.year": opts.Year}).
		Where(sq.Eq{"sc.code": opts.ScenarioCode}).
		Where(sq.Eq{"f.data_source": source})

	groupBy := []string{"t.id", nameCol, "t.reg_cod", "t.prov_cod", "t.mun_cod", "tm.year"}
	orderBy := []string{"t.id"}

	switch opts.Resolution {
	case domain.ResolutionAnnual:
		query = query.Where("tm.month IS NULL AND tm.hour IS NULL")
	case domain.ResolutionMonthly:
		query = query.Column("tm.month").
			Where("tm.month IS NOT NULL AND tm.hour IS NULL")
		groupBy = append(groupBy, "tm.month")
		orderBy = append(orderBy, "tm.month")
	case domain.ResolutionSeasonal:
		query = query.Column("tm.season").
			Where("tm.month IS NOT NULL AND tm.hour IS NULL AND tm.season IS NOT NULL")
		groupBy = append(groupBy, "tm.season")
		orderBy = append(orderBy, "tm.season")
	default:
		panic(fmt.Sprintf("unknown aggregation resolution %q", string(opts.Resolution)))
	}

	query = query.GroupBy(groupBy...).OrderBy(orderBy...)

	selected, err := xpgx.Select[domain.EnergyAggregate](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// EnergyValuesOpts filters the choropleth sum per territory.
type EnergyValuesOpts struct {
	Level        domain.Level
	Resolution   domain.Resolution
	Domain       domain.EnergyDomain
	ScenarioCode string
	Year         int
	DayType      *string
	BaseGroup    *string
	CategoryCode *string
}

func energyWhere(query sq.SelectBuilder, opts EnergyValuesOpts) sq.SelectBuilder {
	query = query.
		Where(sq.Eq{"t.level": opts.Level}).
		Where(sq.Eq{"f.time_resolution": opts.Resolution}).
		Where(sq.Eq{"tm.year": opts.Year}).
		Where(sq.Eq{"ec.domain": opts.Domain}).
		Where(sq.Eq{"sc.code": opts.ScenarioCode})

	if opts.DayType != nil {
		query = query.Where(sq.Eq{"tm.day_type": *opts.DayType})
	}

	if source, raw := dataSource(opts.Level, opts.Resolution); raw {
		query = query.Where("f.data_source NOT LIKE 'agg_%'")
	} else {
		query = query.Where(sq.Eq{"f.data_source": source})
	}

	if opts.BaseGroup != nil {
		query = query.Where(sq.Eq{"LOWER(ec.base_group)": *opts.BaseGroup})
	}

	if opts.CategoryCode != nil {
		query = query.Where(sq.Eq{"ec.code": *opts.CategoryCode})
	}

	return query
}

func (s *store) ListEnergyValues(ctx context.Context, opts EnergyValuesOpts) ([]*domain.EnergyValue, error) {
	nameCol := opts.Level.NameColumn()

	query := builder().
		Select(
			"t.id AS territory_id",
			nameCol+" AS name",
			"t.reg_cod",
			"t.prov_cod",
			"t.mun_cod",
			"COALESCE(SUM(f.value_mwh), 0) AS value_mwh",
		)

	query = energyWhere(factJoins(query), opts).
		GroupBy("t.id", nameCol, "t.reg_cod", "t.prov_cod", "t.mun_cod").
		OrderBy("t.id")

	selected, err := xpgx.Select[domain.EnergyValue](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

// EnergySeriesOpts adds the territory selection to EnergyValuesOpts. The
// resolution decides the series axis: hour, month or year.
type EnergySeriesOpts struct {
	EnergyValuesOpts
	TerritoryCode string
}

func (s *store) ListEnergySeries(ctx context.Context, opts EnergySeriesOpts) ([]*domain.SeriesPoint, error) {
	var axis, bucketFilter string
	switch opts.Resolution {
	case domain.ResolutionHourly:
		axis, bucketFilter = "tm.hour", "tm.hour IS NOT NULL"
	case domain.ResolutionMonthly:
		axis, bucketFilter = "tm.month", "tm.month IS NOT NULL AND tm.hour IS NULL"
	case domain.ResolutionAnnual:
		axis, bucketFilter = "tm.year", "tm.month IS NULL AND tm.hour IS NULL"
	default:
		panic(fmt.Sprintf("unknown series resolution %q", string(opts.Resolution)))
	}

	query := builder().
		Select(axis+" AS x", "COALESCE(SUM(f.value_mwh), 0) AS value_mwh")

	query = energyWhere(factJoins(query), opts.EnergyValuesOpts).
		Where(sq.Eq{opts.Level.CodeColumn(): opts.TerritoryCode}).
		Where(bucketFilter).
		GroupBy(axis).
		OrderBy(axis)

	selected, err := xpgx.Select[domain.SeriesPoint](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}
