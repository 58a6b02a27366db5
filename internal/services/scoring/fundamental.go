package scoring

import (
	"fmt"

	"StockScope/internal/domain/models"
)

// FundamentalScorer evaluates a fundamental snapshot against sector and
// geography benchmarks. It is stateless: the same inputs always produce
// the same score and signal list. Rules whose metric is missing are
// skipped silently — absence never scores as zero.
type FundamentalScorer struct {
	registry *ProfileRegistry
}

// NewFundamentalScorer builds a scorer over the given registry.
func NewFundamentalScorer(registry *ProfileRegistry) *FundamentalScorer {
	return &FundamentalScorer{registry: registry}
}

// FundamentalResult is the outcome of one fundamental evaluation.
type FundamentalResult struct {
	Score   float64
	Health  models.Health
	Signals []models.Signal
	Zone    Zone
}

// Analyze runs the four rule groups and classifies the summed score.
// Industry is carried for display only and never scored.
func (s *FundamentalScorer) Analyze(snap *models.FundamentalSnapshot, sector, industry, country string) FundamentalResult {
	profile := s.registry.Lookup(sector)
	zone := CountryZone(country)
	adj := ZoneAdjustment(zone)

	signals := []models.Signal{
		models.Info(fmt.Sprintf("Sector: %s", displayName(sector))),
		models.Info(fmt.Sprintf("Country: %s (%s)", displayName(country), zone)),
	}

	total := 0.0
	for _, group := range []func(*models.FundamentalSnapshot, SectorProfile, GeoAdjustment) (float64, []models.Signal){
		scoreValuation,
		scoreDebt,
		scoreProfitability,
		scoreGrowth,
	} {
		score, sigs := group(snap, profile, adj)
		total += score
		signals = append(signals, sigs...)
	}

	return FundamentalResult{
		Score:   total,
		Health:  classifyHealth(total),
		Signals: signals,
		Zone:    zone,
	}
}

func classifyHealth(score float64) models.Health {
	switch {
	case score >= 6:
		return models.HealthExcellent
	case score >= 3:
		return models.HealthGood
	case score >= 0:
		return models.HealthAverage
	case score >= -3:
		return models.HealthConcerning
	default:
		return models.HealthPoor
	}
}

func displayName(s string) string {
	if s == "" || s == "N/A" {
		return "Unknown"
	}
	return s
}

func scoreValuation(snap *models.FundamentalSnapshot, p SectorProfile, adj GeoAdjustment) (float64, []models.Signal) {
	var score float64
	var signals []models.Signal

	if pe := snap.PERatio; pe != nil && *pe > 0 {
		low := p.PELow * adj.PEFactor
		high := p.PEHigh * adj.PEFactor
		veryHigh := p.PEVeryHigh * adj.PEFactor

		switch {
		case *pe < low:
			delta := 2 * p.Weights.PE
			signals = append(signals, models.Bullish(fmt.Sprintf("P/E %.1f (ref %.1f) - undervalued", *pe, low), delta))
			score += delta
		case *pe < high:
			delta := 1 * p.Weights.PE
			signals = append(signals, models.Bullish(fmt.Sprintf("P/E %.1f - fair", *pe), delta))
			score += delta
		case *pe > veryHigh:
			delta := -2 * p.Weights.PE
			signals = append(signals, models.Bearish(fmt.Sprintf("P/E %.1f (max %.1f) - overvalued", *pe, veryHigh), delta))
			score += delta
		}
	}

	if peg := snap.PEGRatio; peg != nil && *peg > 0 {
		switch {
		case *peg < p.PEGGood:
			delta := 2 * p.Weights.PEG
			signals = append(signals, models.Bullish(fmt.Sprintf("PEG %.2f - attractive growth", *peg), delta))
			score += delta
		case *peg > p.PEGAcceptable:
			delta := -1 * p.Weights.PEG
			signals = append(signals, models.Bearish(fmt.Sprintf("PEG %.2f - expensive growth", *peg), delta))
			score += delta
		}
	}

	return score, signals
}

func scoreDebt(snap *models.FundamentalSnapshot, p SectorProfile, adj GeoAdjustment) (float64, []models.Signal) {
	var score float64
	var signals []models.Signal

	if dte := snap.DebtToEquity; dte != nil && *dte != 0 {
		low := p.DebtLow * adj.DebtFactor
		moderate := p.DebtModerate * adj.DebtFactor
		high := p.DebtHigh * adj.DebtFactor

		switch {
		case *dte < low:
			delta := 2 * p.Weights.Debt
			signals = append(signals, models.Bullish(fmt.Sprintf("Debt/equity %.0f%% - very solid", *dte), delta))
			score += delta
		case *dte < moderate:
			signals = append(signals, models.Neutral(fmt.Sprintf("Debt/equity %.0f%% - moderate", *dte)))
		case *dte < high:
			delta := -1 * p.Weights.Debt
			signals = append(signals, models.Bearish(fmt.Sprintf("Debt/equity %.0f%% - high", *dte), delta))
			score += delta
		default:
			delta := -3 * p.Weights.Debt
			signals = append(signals, models.Bearish(fmt.Sprintf("Debt/equity %.0f%% - very high", *dte), delta))
			score += delta
		}
	}

	// Current ratio scores flat, independent of sector weights.
	if cr := snap.CurrentRatio; cr != nil && *cr != 0 {
		if *cr > 2.0 {
			signals = append(signals, models.Bullish(fmt.Sprintf("Excellent liquidity (%.2f)", *cr), 1.0))
			score += 1.0
		} else if *cr < 1.0 {
			signals = append(signals, models.Bearish(fmt.Sprintf("Weak liquidity (%.2f)", *cr), -1.5))
			score -= 1.5
		}
	}

	return score, signals
}

func scoreProfitability(snap *models.FundamentalSnapshot, p SectorProfile, _ GeoAdjustment) (float64, []models.Signal) {
	var score float64
	var signals []models.Signal

	if roe := snap.ROE; roe != nil && *roe != 0 {
		pct := *roe * 100
		switch {
		case pct > p.ROEExcellent:
			delta := 2 * p.Weights.ROE
			signals = append(signals, models.Bullish(fmt.Sprintf("ROE %.1f%% - excellent", pct), delta))
			score += delta
		case pct > p.ROEGood:
			delta := 1 * p.Weights.ROE
			signals = append(signals, models.Bullish(fmt.Sprintf("ROE %.1f%% - good", pct), delta))
			score += delta
		case pct < p.ROEAcceptable:
			delta := -2 * p.Weights.ROE
			signals = append(signals, models.Bearish(fmt.Sprintf("ROE %.1f%% - weak", pct), delta))
			score += delta
		}
	}

	if margin := snap.ProfitMargin; margin != nil && *margin != 0 {
		pct := *margin * 100
		switch {
		case pct > p.MarginExcellent:
			delta := 2 * p.Weights.Margin
			signals = append(signals, models.Bullish(fmt.Sprintf("Net margin %.1f%% - excellent", pct), delta))
			score += delta
		case pct > p.MarginGood:
			delta := 1 * p.Weights.Margin
			signals = append(signals, models.Bullish(fmt.Sprintf("Net margin %.1f%% - fair", pct), delta))
			score += delta
		case pct < p.MarginAcceptable:
			delta := -2 * p.Weights.Margin
			signals = append(signals, models.Bearish(fmt.Sprintf("Net margin %.1f%% - very thin", pct), delta))
			score += delta
		}
	}

	return score, signals
}

func scoreGrowth(snap *models.FundamentalSnapshot, p SectorProfile, adj GeoAdjustment) (float64, []models.Signal) {
	var score float64
	var signals []models.Signal

	if growth := snap.RevenueGrowth; growth != nil && *growth != 0 {
		pct := *growth * 100
		strong := p.GrowthStrong * adj.GrowthFactor
		good := p.GrowthGood * adj.GrowthFactor

		switch {
		case pct > strong:
			delta := 2 * p.Weights.Growth
			signals = append(signals, models.Bullish(fmt.Sprintf("Revenue growth %.1f%% - strong", pct), delta))
			score += delta
		case pct > good:
			delta := 1 * p.Weights.Growth
			signals = append(signals, models.Bullish(fmt.Sprintf("Revenue growth %.1f%% - positive", pct), delta))
			score += delta
		case pct < 0:
			delta := -2 * p.Weights.Growth
			signals = append(signals, models.Bearish(fmt.Sprintf("Revenue decline %.1f%% - problematic", pct), delta))
			score += delta
		}
	}

	// FCF yield needs both sides of the division; a missing market cap
	// skips the whole rule, including the negative-FCF penalty.
	if fcf, mcap := snap.FreeCashFlow, snap.MarketCap; fcf != nil && *fcf != 0 && mcap != nil && *mcap != 0 {
		if *fcf > 0 && *mcap > 0 {
			yield := (*fcf / *mcap) * 100
			if yield > 8 {
				signals = append(signals, models.Bullish(fmt.Sprintf("Excellent free cash flow yield (%.1f%%)", yield), 2.0))
				score += 2.0
			} else if yield > 5 {
				signals = append(signals, models.Bullish(fmt.Sprintf("Good free cash flow yield (%.1f%%)", yield), 1.0))
				score += 1.0
			}
		} else if *fcf < 0 {
			signals = append(signals, models.Bearish("Negative free cash flow", -2.0))
			score -= 2.0
		}
	}

	return score, signals
}
