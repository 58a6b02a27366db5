package usecase

import "StockScope/internal/domain/models"

// Inherited rule constants. The gate decides whether technical analysis
// runs at all; the cutoff forces a Strong Sell on catastrophic
// fundamentals regardless of the combined score. Both are overridable
// through configuration.
const (
	DefaultTechnicalGate    = -3.0
	DefaultStrongSellCutoff = -6.0
)

// recommend maps a combined score to one of the seven advice bands.
// The catastrophic-fundamentals rule is checked first and wins over
// every finalScore band; the remaining bands partition the real line
// with no gap or overlap.
func recommend(finalScore, fundamentalScore, strongSellCutoff float64) (models.Recommendation, models.Horizon) {
	if fundamentalScore < strongSellCutoff {
		return models.StrongSell, models.HorizonImmediate
	}
	switch {
	case finalScore >= 8:
		return models.StrongBuy, models.HorizonMediumLong
	case finalScore >= 5:
		return models.Buy, models.HorizonMedium
	case finalScore >= 2:
		return models.LightBuy, models.HorizonShortMedium
	case finalScore >= -2:
		return models.Hold, models.HorizonWatch
	case finalScore >= -5:
		return models.LightSell, models.HorizonShort
	default:
		return models.Sell, models.HorizonImmediate
	}
}
