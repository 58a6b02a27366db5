package models

// AnalyzeRequest is the query contract for a single-ticker analysis.
type AnalyzeRequest struct {
	Ticker string `param:"ticker" validate:"required,min=1,max=12"`
	Period string `query:"period" default:"1y" validate:"oneof=1mo 3mo 6mo 1y 2y 5y"`
}

// BatchAnalyzeRequest runs several tickers through the pipeline; failures
// are reported per ticker and never abort the batch.
type BatchAnalyzeRequest struct {
	Tickers []string `json:"tickers" validate:"required,min=1,max=25,dive,required,min=1,max=12"`
	Period  string   `json:"period" default:"1y" validate:"oneof=1mo 3mo 6mo 1y 2y 5y"`
}

// BatchItem is one per-ticker outcome within a batch response.
type BatchItem struct {
	Ticker string          `json:"ticker"`
	Result *AnalysisResult `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// HistoryRequest is the query contract for past analysis lookups.
type HistoryRequest struct {
	Ticker string `param:"ticker" validate:"required,min=1,max=12"`
	Limit  int    `query:"limit" default:"10" validate:"gte=1,lte=500"`
}

// CacheStats reports live entry counts per persisted store.
type CacheStats struct {
	PriceSeries  int `json:"price_series"`
	Fundamentals int `json:"fundamentals"`
	History      int `json:"history"`
}
