package scoring

import (
	"testing"

	"StockScope/internal/domain/models"
)

func newScorer() *FundamentalScorer {
	return NewFundamentalScorer(NewProfileRegistry())
}

func TestUnknownSectorFallsBackToDefault(t *testing.T) {
	scorer := newScorer()
	snap := &models.FundamentalSnapshot{PERatio: models.Float(15)}

	known := scorer.Analyze(snap, "Technology", "", "United States")
	unknown := scorer.Analyze(snap, "Underwater Basket Weaving", "", "United States")

	if known.Score != unknown.Score {
		t.Fatalf("expected identical scores, got %v vs %v", known.Score, unknown.Score)
	}
}

func TestPEBands(t *testing.T) {
	scorer := newScorer()

	// Technology: low 20, high 35, very high 50, weight 1.0.
	cases := []struct {
		pe   float64
		want float64
	}{
		{15, 2},  // undervalued
		{25, 1},  // fair
		{40, 0},  // between high and very high scores nothing
		{60, -2}, // overvalued
	}
	for _, tc := range cases {
		res := scorer.Analyze(&models.FundamentalSnapshot{PERatio: models.Float(tc.pe)}, "Technology", "", "United States")
		if res.Score != tc.want {
			t.Fatalf("pe %v: expected %v, got %v", tc.pe, tc.want, res.Score)
		}
	}
}

func TestPENonPositiveSkipped(t *testing.T) {
	scorer := newScorer()
	res := scorer.Analyze(&models.FundamentalSnapshot{PERatio: models.Float(-8)}, "Technology", "", "United States")
	if res.Score != 0 {
		t.Fatalf("expected negative P/E to be skipped, got %v", res.Score)
	}
}

func TestPEGeographyScaling(t *testing.T) {
	scorer := newScorer()
	snap := &models.FundamentalSnapshot{PERatio: models.Float(18)}

	// US: 18 < 20, undervalued (+2). China: threshold scales to 16,
	// 18 lands in the fair band (+1).
	us := scorer.Analyze(snap, "Technology", "", "United States")
	cn := scorer.Analyze(snap, "Technology", "", "China")

	if us.Score != 2 {
		t.Fatalf("expected +2 in US, got %v", us.Score)
	}
	if cn.Score != 1 {
		t.Fatalf("expected +1 in China, got %v", cn.Score)
	}
	if cn.Zone != ZoneChina {
		t.Fatalf("expected China zone, got %v", cn.Zone)
	}
}

func TestDebtBands(t *testing.T) {
	scorer := newScorer()

	// Technology: low 30, moderate 80, high 150, weight 0.5.
	cases := []struct {
		dte  float64
		want float64
	}{
		{20, 1},    // very solid: +2 * 0.5
		{50, 0},    // moderate: neutral signal, no score
		{100, -0.5},
		{200, -1.5},
	}
	for _, tc := range cases {
		res := scorer.Analyze(&models.FundamentalSnapshot{DebtToEquity: models.Float(tc.dte)}, "Technology", "", "United States")
		if res.Score != tc.want {
			t.Fatalf("dte %v: expected %v, got %v", tc.dte, tc.want, res.Score)
		}
	}
}

func TestCurrentRatioFlat(t *testing.T) {
	scorer := newScorer()

	strong := scorer.Analyze(&models.FundamentalSnapshot{CurrentRatio: models.Float(2.5)}, "Technology", "", "United States")
	if strong.Score != 1.0 {
		t.Fatalf("expected +1 for strong liquidity, got %v", strong.Score)
	}

	weak := scorer.Analyze(&models.FundamentalSnapshot{CurrentRatio: models.Float(0.8)}, "Technology", "", "United States")
	if weak.Score != -1.5 {
		t.Fatalf("expected -1.5 for weak liquidity, got %v", weak.Score)
	}

	middle := scorer.Analyze(&models.FundamentalSnapshot{CurrentRatio: models.Float(1.5)}, "Technology", "", "United States")
	if middle.Score != 0 {
		t.Fatalf("expected 0 for mid liquidity, got %v", middle.Score)
	}
}

func TestROEAndMargin(t *testing.T) {
	scorer := newScorer()

	// Technology ROE bands 18/12/8, weight 2; margin bands 15/8/3, weight 3.
	roe := scorer.Analyze(&models.FundamentalSnapshot{ROE: models.Float(0.20)}, "Technology", "", "United States")
	if roe.Score != 4 {
		t.Fatalf("expected +4 for ROE 20%%, got %v", roe.Score)
	}
	roe = scorer.Analyze(&models.FundamentalSnapshot{ROE: models.Float(0.05)}, "Technology", "", "United States")
	if roe.Score != -4 {
		t.Fatalf("expected -4 for ROE 5%%, got %v", roe.Score)
	}
	// The band between good and acceptable scores nothing.
	roe = scorer.Analyze(&models.FundamentalSnapshot{ROE: models.Float(0.10)}, "Technology", "", "United States")
	if roe.Score != 0 {
		t.Fatalf("expected 0 for ROE 10%%, got %v", roe.Score)
	}

	margin := scorer.Analyze(&models.FundamentalSnapshot{ProfitMargin: models.Float(0.20)}, "Technology", "", "United States")
	if margin.Score != 6 {
		t.Fatalf("expected +6 for 20%% margin, got %v", margin.Score)
	}
}

func TestGrowthGeographyScaling(t *testing.T) {
	scorer := newScorer()
	snap := &models.FundamentalSnapshot{RevenueGrowth: models.Float(0.13)}

	// US: 13% > 12%, strong (+2 * 3). China: threshold scales to 15.6%,
	// 13% only clears the good band (+1 * 3).
	us := scorer.Analyze(snap, "Technology", "", "United States")
	cn := scorer.Analyze(snap, "Technology", "", "China")

	if us.Score != 6 {
		t.Fatalf("expected +6 in US, got %v", us.Score)
	}
	if cn.Score != 3 {
		t.Fatalf("expected +3 in China, got %v", cn.Score)
	}
}

func TestRevenueDecline(t *testing.T) {
	scorer := newScorer()
	res := scorer.Analyze(&models.FundamentalSnapshot{RevenueGrowth: models.Float(-0.05)}, "Technology", "", "United States")
	if res.Score != -6 {
		t.Fatalf("expected -6 for declining revenue, got %v", res.Score)
	}
}

func TestFreeCashFlowYield(t *testing.T) {
	scorer := newScorer()

	excellent := scorer.Analyze(&models.FundamentalSnapshot{
		FreeCashFlow: models.Float(9),
		MarketCap:    models.Float(100),
	}, "Technology", "", "United States")
	if excellent.Score != 2 {
		t.Fatalf("expected +2 for 9%% yield, got %v", excellent.Score)
	}

	good := scorer.Analyze(&models.FundamentalSnapshot{
		FreeCashFlow: models.Float(6),
		MarketCap:    models.Float(100),
	}, "Technology", "", "United States")
	if good.Score != 1 {
		t.Fatalf("expected +1 for 6%% yield, got %v", good.Score)
	}

	negative := scorer.Analyze(&models.FundamentalSnapshot{
		FreeCashFlow: models.Float(-5),
		MarketCap:    models.Float(100),
	}, "Technology", "", "United States")
	if negative.Score != -2 {
		t.Fatalf("expected -2 for negative FCF, got %v", negative.Score)
	}

	// Missing market cap skips the whole rule, including the penalty.
	skipped := scorer.Analyze(&models.FundamentalSnapshot{
		FreeCashFlow: models.Float(-5),
	}, "Technology", "", "United States")
	if skipped.Score != 0 {
		t.Fatalf("expected 0 with missing market cap, got %v", skipped.Score)
	}
}

func TestEmptySnapshotScoresZero(t *testing.T) {
	scorer := newScorer()
	res := scorer.Analyze(&models.FundamentalSnapshot{}, "Technology", "", "United States")
	if res.Score != 0 {
		t.Fatalf("expected 0 for empty snapshot, got %v", res.Score)
	}
	if res.Health != models.HealthAverage {
		t.Fatalf("expected Average health, got %v", res.Health)
	}
	// Only the two context signals remain.
	if len(res.Signals) != 2 {
		t.Fatalf("expected 2 info signals, got %d", len(res.Signals))
	}
}

func TestHealthClassification(t *testing.T) {
	cases := []struct {
		score float64
		want  models.Health
	}{
		{7, models.HealthExcellent},
		{6, models.HealthExcellent},
		{3, models.HealthGood},
		{0, models.HealthAverage},
		{-3, models.HealthConcerning},
		{-3.5, models.HealthPoor},
	}
	for _, tc := range cases {
		if got := classifyHealth(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %v, got %v", tc.score, tc.want, got)
		}
	}
}

func TestCountryZoneFallback(t *testing.T) {
	if z := CountryZone("Atlantis"); z != ZoneUnitedStates {
		t.Fatalf("expected US fallback, got %v", z)
	}
	if z := CountryZone("Japan"); z != ZoneJapan {
		t.Fatalf("expected Japan, got %v", z)
	}
}
