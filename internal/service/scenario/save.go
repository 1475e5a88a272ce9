package scenario

import (
	"context"
	"fmt"
	"strings"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/logger"
	"github.com/enermap/enermap/internal/pkg/store"
)

// Save persists a user scenario: a dim_scenario row plus one
// fact_scenario_param row per (territory, metric key) at annual granularity.
// Both inserts run in one transaction; a failure on either side leaves the
// warehouse untouched.
func (s *Service) Save(ctx context.Context, req *dto.ScenarioSaveRequest) (*domain.ScenarioSaveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	baseScenario := req.BaseScenarioOrDefault()
	categories := req.CategoryCodes()

	var result *domain.ScenarioSaveResult
	err := s.store.InTx(ctx, func(tx store.Store) error {
		code, err := uniqueScenarioCode(ctx, tx, scenarioCodeBase(req.Username, req.Year, req.UpliftPct))
		if err != nil {
			return err
		}

		horizonYear := req.Year
		source := "user:" + req.Username
		newScenario := &domain.Scenario{
			Code:          code,
			NameEn:        req.NameEn,
			NameIt:        optional(req.NameIt),
			Description:   optional(req.Description),
			HorizonYear:   &horizonYear,
			ScenarioGroup: domain.ScenarioGroupUser,
			IsBaseline:    false,
			Source:        &source,
		}

		scenarioID, err := tx.InsertScenario(ctx, newScenario)
		if err != nil {
			return fmt.Errorf("insert scenario: %w", err)
		}

		// Parameters are always stored at annual granularity, whatever
		// resolution the preview ran at.
		rows, err := tx.AggregateEnergy(ctx, store.AggregateEnergyOpts{
			Level:               domain.Level(req.Level),
			Resolution:          domain.ResolutionAnnual,
			Year:                req.Year,
			ScenarioCode:        baseScenario,
			UpliftCategoryCodes: categories,
		})
		if err != nil {
			return fmt.Errorf("aggregate energy: %w", err)
		}

		notes := fmt.Sprintf(
			"created by %s from scenario %s, uplift %.2f%% on [%s]",
			req.Username, baseScenario, req.UpliftPct, strings.Join(categories, ","),
		)

		params := make([]*domain.ScenarioParam, 0, len(rows)*len(metricKeys))
		for _, row := range rows {
			pNew := applyUplift(row.ProductionMWh, row.ProductionUpliftBaseMWh, req.UpliftPct)
			values := metricValues(ComputeIndicators(row.ConsumptionMWh, pNew), row.ProductionUpliftBaseMWh)

			for _, key := range metricKeys {
				params = append(params, &domain.ScenarioParam{
					ScenarioID:  scenarioID,
					TerritoryID: row.TerritoryID,
					ParamKey:    key,
					ParamValue:  values[key],
					Unit:        unitForKey(key),
					Year:        req.Year,
					Notes:       notes,
				})
			}
		}

		inserted, err := tx.InsertScenarioParams(ctx, params)
		if err != nil {
			return fmt.Errorf("insert scenario params: %w", err)
		}

		logger.Infof(ctx, "saved scenario %s (id %d): %d param rows", code, scenarioID, inserted)

		result = &domain.ScenarioSaveResult{
			Status:       "ok",
			ScenarioID:   scenarioID,
			Code:         code,
			StoredLevel:  domain.Level(req.Level),
			StoredYear:   req.Year,
			RowsInserted: int(inserted),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func unitForKey(key string) string {
	if strings.HasSuffix(key, "_mwh") {
		return "MWh"
	}
	return "ratio"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
