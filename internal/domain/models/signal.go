package models

// Sentiment labels the directional reading of a single signal.
type Sentiment string

const (
	SentimentBullish Sentiment = "Bullish"
	SentimentBearish Sentiment = "Bearish"
	SentimentNeutral Sentiment = "Neutral"
	SentimentInfo    Sentiment = "Info"
	SentimentCaution Sentiment = "Caution"
)

// Signal is a single labeled observation produced by a scorer. Immutable
// once emitted; Delta is its signed contribution to the owning score.
type Signal struct {
	Description string    `json:"description"`
	Delta       float64   `json:"delta"`
	Sentiment   Sentiment `json:"sentiment"`
}

// Bullish builds a positive-delta signal.
func Bullish(desc string, delta float64) Signal {
	return Signal{Description: desc, Delta: delta, Sentiment: SentimentBullish}
}

// Bearish builds a negative-delta signal.
func Bearish(desc string, delta float64) Signal {
	return Signal{Description: desc, Delta: delta, Sentiment: SentimentBearish}
}

// Neutral builds a zero-impact informational signal.
func Neutral(desc string) Signal {
	return Signal{Description: desc, Sentiment: SentimentNeutral}
}

// Info builds a context signal (sector, country) with no score impact.
func Info(desc string) Signal {
	return Signal{Description: desc, Sentiment: SentimentInfo}
}

// Caution builds a non-directional warning signal.
func Caution(desc string, delta float64) Signal {
	return Signal{Description: desc, Delta: delta, Sentiment: SentimentCaution}
}
