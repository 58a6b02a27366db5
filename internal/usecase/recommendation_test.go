package usecase

import (
	"testing"

	"StockScope/internal/domain/models"
)

func TestRecommendBands(t *testing.T) {
	cases := []struct {
		final   float64
		rec     models.Recommendation
		horizon models.Horizon
	}{
		{10, models.StrongBuy, models.HorizonMediumLong},
		{8, models.StrongBuy, models.HorizonMediumLong},
		{7.9, models.Buy, models.HorizonMedium},
		{5, models.Buy, models.HorizonMedium},
		{2, models.LightBuy, models.HorizonShortMedium},
		{0, models.Hold, models.HorizonWatch},
		{-2, models.Hold, models.HorizonWatch},
		{-2.1, models.LightSell, models.HorizonShort},
		{-5, models.LightSell, models.HorizonShort},
		{-5.1, models.Sell, models.HorizonImmediate},
		{-20, models.Sell, models.HorizonImmediate},
	}
	for _, tc := range cases {
		rec, horizon := recommend(tc.final, 0, DefaultStrongSellCutoff)
		if rec != tc.rec || horizon != tc.horizon {
			t.Fatalf("final %v: expected %v/%v, got %v/%v", tc.final, tc.rec, tc.horizon, rec, horizon)
		}
	}
}

func TestRecommendCatastrophicFundamentalsWin(t *testing.T) {
	// Fundamentals below the cutoff force a Strong Sell even when the
	// combined score would land in a buy band.
	rec, horizon := recommend(10, -7, DefaultStrongSellCutoff)
	if rec != models.StrongSell {
		t.Fatalf("expected Strong Sell, got %v", rec)
	}
	if horizon != models.HorizonImmediate {
		t.Fatalf("expected Immediate horizon, got %v", horizon)
	}
}

func TestRecommendCutoffBoundary(t *testing.T) {
	// Exactly at the cutoff the normal bands apply.
	rec, _ := recommend(-6, -6, DefaultStrongSellCutoff)
	if rec != models.Sell {
		t.Fatalf("expected Sell at boundary, got %v", rec)
	}
}
