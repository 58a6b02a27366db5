package scoring

import (
	"strings"
	"testing"
	"time"

	"StockScope/internal/domain/models"
)

func candleSeries(closes []float64, volume float64) []models.Candle {
	candles := make([]models.Candle, len(closes))
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		candles[i] = models.Candle{
			Time:   base.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: volume,
		}
	}
	return candles
}

func risingCloses(n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	return closes
}

func hasSignal(signals []models.Signal, substr string) bool {
	for _, s := range signals {
		if strings.Contains(s.Description, substr) {
			return true
		}
	}
	return false
}

func TestTechnicalRisingSeries(t *testing.T) {
	// 200 rising closes: golden cross (+2), price above both MAs (+1),
	// RSI undefined (0), MACD above signal (+1), inside bands (0),
	// normal volume (0).
	scorer := NewTechnicalScorer()
	res := scorer.Analyze(candleSeries(risingCloses(200), 1000))

	if res.Score != 4 {
		t.Fatalf("expected score 4, got %v", res.Score)
	}
	if !hasSignal(res.Signals, "Golden Cross") {
		t.Fatalf("expected golden cross signal, got %+v", res.Signals)
	}
	if !hasSignal(res.Signals, "Price above both moving averages") {
		t.Fatalf("expected price-above signal")
	}
	if !hasSignal(res.Signals, "RSI not computable") {
		t.Fatalf("expected undefined RSI signal")
	}
	if !hasSignal(res.Signals, "MACD above signal line") {
		t.Fatalf("expected macd steady-above signal")
	}
}

func TestTechnicalInsufficientHistory(t *testing.T) {
	scorer := NewTechnicalScorer()
	res := scorer.Analyze(candleSeries([]float64{100}, 0))

	if res.Score != 0 {
		t.Fatalf("expected zero score, got %v", res.Score)
	}
	for _, want := range []string{
		"Insufficient data for trend analysis",
		"Insufficient data for RSI",
		"Insufficient data for MACD",
		"Insufficient data for Bollinger bands",
		"Insufficient volume data",
	} {
		if !hasSignal(res.Signals, want) {
			t.Fatalf("missing signal %q in %+v", want, res.Signals)
		}
	}
}

func TestAnalyzeMomentumOversold(t *testing.T) {
	closes := make([]float64, 15)
	for i := range closes {
		closes[i] = 100 - float64(i)
	}
	signals, score := analyzeMomentum(nil, closes)
	if score != 2 {
		t.Fatalf("expected +2 for oversold, got %v", score)
	}
	if !hasSignal(signals, "oversold") {
		t.Fatalf("expected oversold signal, got %+v", signals)
	}
}

func TestAnalyzeMomentumOverbought(t *testing.T) {
	closes := []float64{100}
	for i := 0; i < 13; i++ {
		closes = append(closes, closes[len(closes)-1]+1)
	}
	closes = append(closes, closes[len(closes)-1]-0.1)

	signals, score := analyzeMomentum(nil, closes)
	if score != -2 {
		t.Fatalf("expected -2 for overbought, got %v", score)
	}
	if !hasSignal(signals, "overbought") {
		t.Fatalf("expected overbought signal, got %+v", signals)
	}
}

func TestAnalyzeMACDBullishCrossover(t *testing.T) {
	// Flat, one dip, then a spike: macd crosses from below the signal
	// line to above it on the last bar.
	closes := make([]float64, 0, 42)
	for i := 0; i < 40; i++ {
		closes = append(closes, 100)
	}
	closes = append(closes, 90, 130)

	signals, score := analyzeMACD(nil, closes)
	if score != 2 {
		t.Fatalf("expected +2 for crossover, got %v", score)
	}
	if !hasSignal(signals, "MACD bullish crossover") {
		t.Fatalf("expected crossover signal, got %+v", signals)
	}
}

func TestAnalyzeMACDBearishCrossover(t *testing.T) {
	closes := make([]float64, 0, 42)
	for i := 0; i < 40; i++ {
		closes = append(closes, 100)
	}
	closes = append(closes, 110, 70)

	signals, score := analyzeMACD(nil, closes)
	if score != -2 {
		t.Fatalf("expected -2 for crossover, got %v", score)
	}
	if !hasSignal(signals, "MACD bearish crossover") {
		t.Fatalf("expected crossover signal, got %+v", signals)
	}
}

func TestAnalyzeVolumeUnusual(t *testing.T) {
	candles := candleSeries(risingCloses(20), 1000)
	candles[len(candles)-1].Volume = 5000

	signals, score := analyzeVolume(candles, nil)
	if score != 0.5 {
		t.Fatalf("expected +0.5 for high volume, got %v", score)
	}
	if !hasSignal(signals, "Unusually high volume") {
		t.Fatalf("expected high volume signal, got %+v", signals)
	}

	candles[len(candles)-1].Volume = 100
	signals, score = analyzeVolume(candles, nil)
	if score != 0 {
		t.Fatalf("expected 0 for low volume, got %v", score)
	}
	if !hasSignal(signals, "Unusually low volume") {
		t.Fatalf("expected low volume signal, got %+v", signals)
	}
}
