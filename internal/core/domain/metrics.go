package domain

import (
	"fmt"
	"math"
)

// ImpressionsProgress returns served impressions as a percentage of the
// objective. The value is not clamped: over-delivery yields more than 100
// and a zero objective yields a non-finite result, both of which the
// display layer must render without failing.
func (c CampaignSummary) ImpressionsProgress() float64 {
	return float64(c.ServedImpressions) / float64(c.ObjectiveImpressions) * 100
}

// BudgetProgress returns the consumed budget as a percentage of the
// planned investment, unclamped like ImpressionsProgress.
func (c CampaignSummary) BudgetProgress() float64 {
	return c.ConsumedBudget.InexactFloat64() / c.Investment.InexactFloat64() * 100
}

// BarWidth clamps a percentage to the 0..100 range for progress bar
// rendering. The numeric label next to a bar keeps the unclamped value;
// only the visual width is capped. Non-finite input collapses to 0.
func BarWidth(pct float64) float64 {
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// FormatPercent renders a percentage with the given number of decimals.
// Non-finite values (zero denominators, empty-collection averages) render
// as the placeholder instead of propagating NaN/Inf into output.
func FormatPercent(pct float64, decimals int) string {
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return "—"
	}
	return fmt.Sprintf("%.*f%%", decimals, pct)
}
