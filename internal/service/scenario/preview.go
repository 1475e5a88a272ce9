package scenario

import (
	"context"
	"fmt"
	"net/http"

	"github.com/enermap/enermap/internal/domain"
	"github.com/enermap/enermap/internal/domain/dto"
	"github.com/enermap/enermap/internal/pkg/constants"
	"github.com/enermap/enermap/internal/pkg/store"
)

// Preview runs the aggregation for the requested territories and time
// buckets, applies the production uplift and derives the indicators. Nothing
// is persisted; no rows matching the filters is an empty result, not an
// error.
func (s *Service) Preview(ctx context.Context, req *dto.ScenarioPreviewRequest) ([]*domain.ScenarioPreviewRecord, error) {
	if err := validatePreview(req); err != nil {
		return nil, err
	}

	baseScenario := req.BaseScenarioOrDefault()
	categories := req.CategoryCodes()

	rows, err := s.store.AggregateEnergy(ctx, store.AggregateEnergyOpts{
		Level:               domain.Level(req.Level),
		Resolution:          domain.Resolution(req.Resolution),
		Year:                req.Year,
		ScenarioCode:        baseScenario,
		UpliftCategoryCodes: categories,
	})
	if err != nil {
		return nil, fmt.Errorf("aggregate energy: %w", err)
	}

	records := make([]*domain.ScenarioPreviewRecord, 0, len(rows))
	for _, row := range rows {
		pNew := applyUplift(row.ProductionMWh, row.ProductionUpliftBaseMWh, req.UpliftPct)
		ind := ComputeIndicators(row.ConsumptionMWh, pNew)

		records = append(records, &domain.ScenarioPreviewRecord{
			TerritoryID:             row.TerritoryID,
			Name:                    row.Name,
			RegCod:                  row.RegCod,
			ProvCod:                 row.ProvCod,
			MunCod:                  row.MunCod,
			Year:                    row.Year,
			Month:                   row.Month,
			Season:                  row.Season,
			BaseScenario:            baseScenario,
			UpliftPct:               req.UpliftPct,
			UpliftCategories:        categories,
			ConsumptionMWh:          ind.ConsumptionMWh,
			ProductionMWh:           ind.ProductionMWh,
			ProductionUpliftBaseMWh: row.ProductionUpliftBaseMWh,
			SelfConsumptionMWh:      ind.SelfConsumptionMWh,
			OverProductionMWh:       ind.OverProductionMWh,
			UncoveredDemandMWh:      ind.UncoveredDemandMWh,
			SelfConsumptionIndex:    ind.SelfConsumptionIndex,
			SelfSufficiencyIndex:    ind.SelfSufficiencyIndex,
			OverProductionIndex:     ind.OverProductionIndex,
		})
	}

	return records, nil
}

func validatePreview(req *dto.ScenarioPreviewRequest) error {
	if !domain.Level(req.Level).Valid() {
		return constants.NewCodedError("invalid level", http.StatusBadRequest)
	}
	switch domain.Resolution(req.Resolution) {
	case domain.ResolutionAnnual, domain.ResolutionMonthly, domain.ResolutionSeasonal:
	default:
		return constants.NewCodedError("invalid resolution", http.StatusBadRequest)
	}
	if req.Year == 0 {
		return constants.NewCodedError("missing year", http.StatusBadRequest)
	}
	if req.UpliftPct < 0 {
		return constants.NewCodedError("uplift_pct must be >= 0", http.StatusBadRequest)
	}
	return nil
}
