package scoring

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSMA(t *testing.T) {
	avg, ok := SMA([]float64{1, 2, 3, 4}, 2)
	if !ok {
		t.Fatalf("expected ok")
	}
	if !almostEqual(avg, 3.5) {
		t.Fatalf("expected 3.5, got %v", avg)
	}
}

func TestSMAInsufficientData(t *testing.T) {
	if _, ok := SMA([]float64{1, 2}, 3); ok {
		t.Fatalf("expected not ok for short series")
	}
}

func TestRollingStdSampleDenominator(t *testing.T) {
	// Sample variance of {1,2,3,4} is 5/3.
	std, ok := RollingStd([]float64{1, 2, 3, 4}, 4)
	if !ok {
		t.Fatalf("expected ok")
	}
	if !almostEqual(std, math.Sqrt(5.0/3.0)) {
		t.Fatalf("expected sample std, got %v", std)
	}
}

func TestEMASeriesSeededWithFirstValue(t *testing.T) {
	out := EMASeries([]float64{2, 4}, 3)
	if len(out) != 2 {
		t.Fatalf("expected 2 values, got %d", len(out))
	}
	if !almostEqual(out[0], 2) {
		t.Fatalf("expected seed 2, got %v", out[0])
	}
	// alpha = 0.5 for span 3
	if !almostEqual(out[1], 3) {
		t.Fatalf("expected 3, got %v", out[1])
	}
}

func TestRSIAllLosses(t *testing.T) {
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	rsi, defined := RSI(closes, 14)
	if !defined {
		t.Fatalf("expected defined")
	}
	if !almostEqual(rsi, 0) {
		t.Fatalf("expected 0, got %v", rsi)
	}
}

func TestRSIMostlyGains(t *testing.T) {
	// 13 gains of +1 and one loss of 0.1: rs = 130, rsi > 99.
	closes := []float64{100}
	for i := 0; i < 13; i++ {
		closes = append(closes, closes[len(closes)-1]+1)
	}
	closes = append(closes, closes[len(closes)-1]-0.1)

	rsi, defined := RSI(closes, 14)
	if !defined {
		t.Fatalf("expected defined")
	}
	if rsi < 99 {
		t.Fatalf("expected near-100 rsi, got %v", rsi)
	}
}

func TestRSIUndefinedOnZeroLoss(t *testing.T) {
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	if _, defined := RSI(closes, 14); defined {
		t.Fatalf("expected undefined when no losses occur")
	}
}

func TestRSIInsufficientData(t *testing.T) {
	if _, defined := RSI(make([]float64, 14), 14); defined {
		t.Fatalf("expected undefined below period+1 closes")
	}
}

func TestMACDLengths(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	macd, signal := MACD(closes)
	if len(macd) != len(closes) || len(signal) != len(closes) {
		t.Fatalf("expected full-length series")
	}
	if !almostEqual(macd[0], 0) {
		t.Fatalf("expected zero macd at seed, got %v", macd[0])
	}
}

func TestBollingerBands(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	upper, middle, lower, ok := BollingerBands(closes, 20, 2)
	if !ok {
		t.Fatalf("expected ok")
	}
	if !almostEqual(middle, 10.5) {
		t.Fatalf("expected middle 10.5, got %v", middle)
	}
	std := math.Sqrt(20.0 * 21.0 / 12.0)
	if !almostEqual(upper, 10.5+2*std) || !almostEqual(lower, 10.5-2*std) {
		t.Fatalf("unexpected bands %v / %v", upper, lower)
	}
}

func TestBollingerBandsInsufficientData(t *testing.T) {
	if _, _, _, ok := BollingerBands(make([]float64, 10), 20, 2); ok {
		t.Fatalf("expected not ok for short series")
	}
}
