package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/pkg/logger"
	"github.com/enermap/enermap/internal/pkg/store/xpgx"
	"github.com/jackc/pgx/v5"
)

type Pool = xpgx.Pool

type Store interface {
	AggregateEnergy(ctx context.Context, opts AggregateEnergyOpts) ([]*domain.EnergyAggregate, error)
	ListEnergyValues(ctx context.Context, opts EnergyValuesOpts) ([]*domain.EnergyValue, error)
	ListEnergySeries(ctx context.Context, opts EnergySeriesOpts) ([]*domain.SeriesPoint, error)

	ListScenarios(ctx context.Context) ([]*domain.ScenarioWithYears, error)
	ListParamKeys(ctx context.Context) ([]string, error)
	ListScenarioValues(ctx context.Context, opts ScenarioValuesOpts) ([]*domain.ScenarioValue, error)
	ListTerritoryParams(ctx context.Context, opts TerritoryParamsOpts) ([]*domain.TerritoryParam, error)

	ScenarioCodeExists(ctx context.Context, code string) (bool, error)
	InsertScenario(ctx context.Context, scenario *domain.Scenario) (int64, error)
	InsertScenarioParams(ctx context.Context, params []*domain.ScenarioParam) (int64, error)

	// InTx runs fn against a store bound to a single transaction, committed
	// on nil return and rolled back otherwise.
	InTx(ctx context.Context, fn func(Store) error) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err = fn(&store{pool: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			logger.Errorf(ctx, "rollback: %s", rbErr.Error())
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	return nil
}
