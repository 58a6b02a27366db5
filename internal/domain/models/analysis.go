package models

import "time"

// Recommendation is one of the seven advice bands.
type Recommendation string

const (
	StrongBuy  Recommendation = "Strong Buy"
	Buy        Recommendation = "Buy"
	LightBuy   Recommendation = "Light Buy"
	Hold       Recommendation = "Hold"
	LightSell  Recommendation = "Light Sell"
	Sell       Recommendation = "Sell"
	StrongSell Recommendation = "Strong Sell"
)

// Horizon is the suggested investment window attached to a recommendation.
type Horizon string

const (
	HorizonMediumLong  Horizon = "Medium/Long term"
	HorizonMedium      Horizon = "Medium term"
	HorizonShortMedium Horizon = "Short/Medium term"
	HorizonWatch       Horizon = "Watch"
	HorizonShort       Horizon = "Short term"
	HorizonImmediate   Horizon = "Immediate"
)

// Health labels the overall fundamental posture of a company.
type Health string

const (
	HealthExcellent  Health = "Excellent"
	HealthGood       Health = "Good"
	HealthAverage    Health = "Average"
	HealthConcerning Health = "Concerning"
	HealthPoor       Health = "Poor"
)

// AnalysisResult is the full outcome of one analysis run for a ticker.
// Created once per run and never mutated afterwards; a copy is appended
// to the history log.
type AnalysisResult struct {
	Ticker       string   `json:"ticker"`
	CurrentPrice *float64 `json:"current_price,omitempty"`
	Sector       string   `json:"sector,omitempty"`
	Industry     string   `json:"industry,omitempty"`
	Country      string   `json:"country,omitempty"`

	FundamentalScore   float64  `json:"fundamental_score"`
	FundamentalHealth  Health   `json:"fundamental_health"`
	FundamentalSignals []Signal `json:"fundamental_signals"`

	// TechnicalScore is nil when fundamentals were too weak to justify
	// technical analysis (the gate) — then FinalScore equals
	// FundamentalScore and TechnicalSignals is empty.
	TechnicalScore   *float64 `json:"technical_score,omitempty"`
	TechnicalSignals []Signal `json:"technical_signals,omitempty"`

	FinalScore     float64        `json:"final_score"`
	Recommendation Recommendation `json:"recommendation"`
	Horizon        Horizon        `json:"horizon"`
	Timestamp      time.Time      `json:"timestamp"`
}

// HistoryRecord is one persisted AnalysisResult, keyed by insertion order.
type HistoryRecord struct {
	ID             int64          `json:"id"`
	Ticker         string         `json:"ticker"`
	Recommendation Recommendation `json:"recommendation"`
	Score          float64        `json:"score"`
	Result         AnalysisResult `json:"result"`
	Timestamp      time.Time      `json:"timestamp"`
}
