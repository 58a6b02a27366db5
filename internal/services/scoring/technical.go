package scoring

import (
	"fmt"

	"StockScope/internal/domain/models"
)

// Periods used by the five technical analyses.
const (
	trendShortPeriod = 50
	trendLongPeriod  = 200
	rsiPeriod        = 14
	bollingerPeriod  = 20
	bollingerStd     = 2.0
	volumePeriod     = 20
)

// TechnicalScorer runs the five indicator analyses over an OHLCV series.
// Stateless; each analysis that lacks enough history emits a single
// Neutral "insufficient data" signal and contributes nothing.
type TechnicalScorer struct{}

// NewTechnicalScorer builds a technical scorer.
func NewTechnicalScorer() *TechnicalScorer { return &TechnicalScorer{} }

// TechnicalResult is the outcome of one technical evaluation.
type TechnicalResult struct {
	Score   float64
	Signals []models.Signal
}

// Analyze evaluates trend, momentum, MACD, Bollinger and volume in that
// fixed order and sums their sub-scores.
func (s *TechnicalScorer) Analyze(candles []models.Candle) TechnicalResult {
	closes := models.Closes(candles)

	var result TechnicalResult
	for _, analysis := range []func([]models.Candle, []float64) ([]models.Signal, float64){
		analyzeTrend,
		analyzeMomentum,
		analyzeMACD,
		analyzeBollinger,
		analyzeVolume,
	} {
		signals, score := analysis(candles, closes)
		result.Signals = append(result.Signals, signals...)
		result.Score += score
	}
	return result
}

func analyzeTrend(_ []models.Candle, closes []float64) ([]models.Signal, float64) {
	sma50, ok50 := SMA(closes, trendShortPeriod)
	sma200, ok200 := SMA(closes, trendLongPeriod)
	if !ok50 || !ok200 {
		return []models.Signal{models.Neutral("Insufficient data for trend analysis")}, 0
	}

	var signals []models.Signal
	var score float64

	price := closes[len(closes)-1]
	if sma50 > sma200 {
		signals = append(signals, models.Bullish("Golden Cross (SMA50 > SMA200)", 2))
		score += 2
	} else {
		signals = append(signals, models.Bearish("Death Cross (SMA50 < SMA200)", -2))
		score -= 2
	}

	if price > sma50 && sma50 > sma200 {
		signals = append(signals, models.Bullish("Price above both moving averages", 1))
		score += 1
	} else if price < sma50 && sma50 < sma200 {
		signals = append(signals, models.Bearish("Price below both moving averages", -1))
		score -= 1
	}

	return signals, score
}

func analyzeMomentum(_ []models.Candle, closes []float64) ([]models.Signal, float64) {
	if len(closes) < rsiPeriod+1 {
		return []models.Signal{models.Neutral("Insufficient data for RSI")}, 0
	}

	rsi, defined := RSI(closes, rsiPeriod)
	if !defined {
		return []models.Signal{models.Neutral("RSI not computable")}, 0
	}

	switch {
	case rsi < 30:
		return []models.Signal{models.Bullish(fmt.Sprintf("RSI %.2f - oversold", rsi), 2)}, 2
	case rsi > 70:
		return []models.Signal{models.Bearish(fmt.Sprintf("RSI %.2f - overbought", rsi), -2)}, -2
	case rsi >= 40 && rsi <= 60:
		return []models.Signal{models.Neutral(fmt.Sprintf("RSI %.2f - neutral", rsi))}, 0
	default:
		return []models.Signal{models.Neutral(fmt.Sprintf("RSI %.2f", rsi))}, 0
	}
}

func analyzeMACD(_ []models.Candle, closes []float64) ([]models.Signal, float64) {
	if len(closes) < 2 {
		return []models.Signal{models.Neutral("Insufficient data for MACD")}, 0
	}

	macd, signalLine := MACD(closes)
	last := len(macd) - 1
	cur, prev := macd[last], macd[last-1]
	curSig, prevSig := signalLine[last], signalLine[last-1]

	switch {
	case prev < prevSig && cur > curSig:
		return []models.Signal{models.Bullish("MACD bullish crossover", 2)}, 2
	case prev > prevSig && cur < curSig:
		return []models.Signal{models.Bearish("MACD bearish crossover", -2)}, -2
	case cur > curSig:
		return []models.Signal{models.Bullish("MACD above signal line", 1)}, 1
	default:
		return []models.Signal{models.Bearish("MACD below signal line", -1)}, -1
	}
}

func analyzeBollinger(_ []models.Candle, closes []float64) ([]models.Signal, float64) {
	upper, _, lower, ok := BollingerBands(closes, bollingerPeriod, bollingerStd)
	if !ok {
		return []models.Signal{models.Neutral("Insufficient data for Bollinger bands")}, 0
	}

	price := closes[len(closes)-1]
	switch {
	case price <= lower:
		return []models.Signal{models.Bullish("Price at lower Bollinger band", 1)}, 1
	case price >= upper:
		return []models.Signal{models.Bearish("Price at upper Bollinger band", -1)}, -1
	default:
		return []models.Signal{models.Neutral("Price within Bollinger bands")}, 0
	}
}

func analyzeVolume(candles []models.Candle, _ []float64) ([]models.Signal, float64) {
	if len(candles) < volumePeriod {
		return []models.Signal{models.Neutral("Insufficient volume data")}, 0
	}

	volumes := models.Volumes(candles)
	// Trailing average includes the latest bar.
	avg := 0.0
	for _, v := range volumes[len(volumes)-volumePeriod:] {
		avg += v
	}
	avg /= float64(volumePeriod)
	if avg == 0 {
		return []models.Signal{models.Neutral("Volume not available")}, 0
	}

	latest := volumes[len(volumes)-1]
	switch {
	case latest > avg*1.5:
		return []models.Signal{models.Caution("Unusually high volume", 0.5)}, 0.5
	case latest < avg*0.5:
		return []models.Signal{models.Caution("Unusually low volume", 0)}, 0
	default:
		return []models.Signal{models.Neutral("Normal trading volume")}, 0
	}
}
