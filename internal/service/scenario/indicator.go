package scenario

import (
	"math"

	"github.com/shopspring/decimal"
)

// Indicators are the self-sufficiency metrics derived from one
// (consumption, production) pair, both in MWh.
type Indicators struct {
	ConsumptionMWh       float64
	ProductionMWh        float64
	SelfConsumptionMWh   float64
	OverProductionMWh    float64
	UncoveredDemandMWh   float64
	SelfConsumptionIndex float64
	SelfSufficiencyIndex float64
	OverProductionIndex  float64
}

// ComputeIndicators derives the metric set. The zero guards come before any
// division: an index over a zero denominator is 0, never NaN.
func ComputeIndicators(consumption, production float64) Indicators {
	ind := Indicators{
		ConsumptionMWh:     consumption,
		ProductionMWh:      production,
		SelfConsumptionMWh: math.Min(consumption, production),
		OverProductionMWh:  math.Max(production-consumption, 0),
		UncoveredDemandMWh: math.Max(consumption-production, 0),
	}

	if production > 0 {
		ind.SelfConsumptionIndex = ind.SelfConsumptionMWh / production
		ind.OverProductionIndex = ind.OverProductionMWh / production
	}
	if consumption > 0 {
		ind.SelfSufficiencyIndex = ind.SelfConsumptionMWh / consumption
	}

	return ind
}

// metricKeys fixes the stored parameter set and its insert order.
var metricKeys = []string{
	"consumption_mwh",
	"production_mwh",
	"production_uplift_base_mwh",
	"self_consumption_mwh",
	"over_production_mwh",
	"uncovered_demand_mwh",
	"self_consumption_index",
	"self_sufficiency_index",
	"over_production_index",
}

func metricValues(ind Indicators, upliftBase float64) map[string]float64 {
	return map[string]float64{
		"consumption_mwh":            ind.ConsumptionMWh,
		"production_mwh":             ind.ProductionMWh,
		"production_uplift_base_mwh": upliftBase,
		"self_consumption_mwh":       ind.SelfConsumptionMWh,
		"over_production_mwh":        ind.OverProductionMWh,
		"uncovered_demand_mwh":       ind.UncoveredDemandMWh,
		"self_consumption_index":     ind.SelfConsumptionIndex,
		"self_sufficiency_index":     ind.SelfSufficiencyIndex,
		"over_production_index":      ind.OverProductionIndex,
	}
}

// applyUplift adds the percentage of the uplift base onto total production.
func applyUplift(productionTotal, upliftBase, upliftPct float64) float64 {
	return productionTotal + upliftBase*(upliftPct/100)
}

func nullDecimalToFloat(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	f, _ := d.Decimal.Float64()
	return &f
}
