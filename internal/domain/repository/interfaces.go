package repository

import (
	"context"
	"errors"
	"time"

	"StockScope/internal/domain/models"
)

// Category names one of the cached payload kinds. Each (ticker, category)
// pair holds at most one live entry.
type Category string

const (
	CategoryPriceSeries  Category = "price_series"
	CategoryFundamentals Category = "fundamentals"
)

var (
	// ErrCacheMiss is returned when no live entry exists for a key.
	// Expired and undecodable payloads are reported as misses too.
	ErrCacheMiss = errors.New("cache: entry not found")

	// ErrDataUnavailable marks a failed or empty fetch from the market
	// data provider; it aborts the analysis of that ticker only.
	ErrDataUnavailable = errors.New("market data unavailable")
)

// CacheStore is a TTL-keyed persistent store for opaque per-ticker
// payloads. Implementations must serialize concurrent writers to the
// same key and never expose a torn read.
type CacheStore interface {
	// Get decodes the live payload for (ticker, category) into dest.
	// An expired entry is purged as a side effect and reported as
	// ErrCacheMiss, as is a payload that fails to decode.
	Get(ctx context.Context, ticker string, cat Category, dest interface{}) error
	// Put inserts or replaces the entry with expiry now+ttl.
	Put(ctx context.Context, ticker string, cat Category, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, ticker string, cat Category) error
	Clear(ctx context.Context) error
	// Stats counts live (non-expired) entries per category.
	Stats(ctx context.Context) (map[Category]int, error)
}

// HistoryLog is the append-only store of past analysis outcomes.
type HistoryLog interface {
	Record(ctx context.Context, result *models.AnalysisResult) error
	// Query returns up to limit records for ticker, most recent first.
	Query(ctx context.Context, ticker string, limit int) ([]models.HistoryRecord, error)
	Count(ctx context.Context) (int, error)
}

// MarketData is the external provider collaborator. Any method may fail
// or return partial data; empty results are failures.
type MarketData interface {
	HistoricalSeries(ctx context.Context, ticker, period string) ([]models.Candle, error)
	FundamentalSnapshot(ctx context.Context, ticker string) (*models.FundamentalSnapshot, error)
	CurrentPrice(ctx context.Context, ticker string) (float64, error)
}

// Metrics records operational counters for the analysis pipeline.
type Metrics interface {
	RecordAnalysis(ticker string, recommendation string)
	RecordCacheHit(category string)
	RecordCacheMiss(category string)
	RecordError(kind string)
	RecordFinalScore(ticker string, score float64)
	RecordLatency(op string, seconds float64)
}
