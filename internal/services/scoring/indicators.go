package scoring

import "math"

// Indicator math over close-price series. All functions treat the input
// as chronological and read the most recent values from the tail.

// SMA returns the simple moving average of the last period values.
// ok is false when the series is shorter than period.
func SMA(values []float64, period int) (avg float64, ok bool) {
	if period <= 0 || len(values) < period {
		return 0, false
	}
	sum := 0.0
	for _, v := range values[len(values)-period:] {
		sum += v
	}
	return sum / float64(period), true
}

// RollingStd returns the sample standard deviation (n-1 denominator) of
// the last period values.
func RollingStd(values []float64, period int) (std float64, ok bool) {
	if period <= 1 || len(values) < period {
		return 0, false
	}
	window := values[len(values)-period:]
	mean := 0.0
	for _, v := range window {
		mean += v
	}
	mean /= float64(period)

	variance := 0.0
	for _, v := range window {
		d := v - mean
		variance += d * d
	}
	variance /= float64(period - 1)
	return math.Sqrt(variance), true
}

// EMASeries computes the exponential moving average over the whole
// series, seeded with the first value (smoothing 2/(span+1)).
func EMASeries(values []float64, span int) []float64 {
	if len(values) == 0 {
		return nil
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RSI computes the relative strength index from the simple average gain
// and loss of the last period close-to-close deltas. defined is false
// when the series is too short or when the average loss is zero (the
// index is undefined rather than infinite).
func RSI(closes []float64, period int) (rsi float64, defined bool) {
	if period <= 0 || len(closes) < period+1 {
		return 0, false
	}

	var avgGain, avgLoss float64
	for i := len(closes) - period; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			avgGain += delta
		} else {
			avgLoss -= delta
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 0, false
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs), true
}

// MACD returns the 12/26 EMA difference and its 9-period signal line,
// elementwise over the full series.
func MACD(closes []float64) (macd, signal []float64) {
	ema12 := EMASeries(closes, 12)
	ema26 := EMASeries(closes, 26)
	macd = make([]float64, len(closes))
	for i := range closes {
		macd[i] = ema12[i] - ema26[i]
	}
	return macd, EMASeries(macd, 9)
}

// BollingerBands returns the 20-period middle band with upper and lower
// bands at ±numStd sample standard deviations.
func BollingerBands(closes []float64, period int, numStd float64) (upper, middle, lower float64, ok bool) {
	middle, ok = SMA(closes, period)
	if !ok {
		return 0, 0, 0, false
	}
	std, ok := RollingStd(closes, period)
	if !ok {
		return 0, 0, 0, false
	}
	return middle + std*numStd, middle, middle - std*numStd, true
}
