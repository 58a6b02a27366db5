package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"StockScope/internal/domain/models"
	domrepo "StockScope/internal/domain/repository"
	"StockScope/internal/services/scoring"
	xlogger "StockScope/pkg/logger"
)

// Config carries the tunable analysis constants.
type Config struct {
	CacheTTL         time.Duration
	TechnicalGate    float64
	StrongSellCutoff float64
	DefaultPeriod    string
	HistoryLimit     int
}

// Analyzer is the synchronous per-ticker analysis pipeline:
// cache-backed fetch, fundamental scoring, gated technical scoring,
// recommendation, history append. Independent tickers may run through
// separate calls concurrently; the stores serialize same-key writes.
type Analyzer struct {
	cache    domrepo.CacheStore
	history  domrepo.HistoryLog
	provider domrepo.MarketData
	fund     *scoring.FundamentalScorer
	tech     *scoring.TechnicalScorer
	metrics  domrepo.Metrics
	logger   *xlogger.Logger
	cfg      Config
}

// NewAnalyzer wires the pipeline.
func NewAnalyzer(
	cache domrepo.CacheStore,
	history domrepo.HistoryLog,
	provider domrepo.MarketData,
	fund *scoring.FundamentalScorer,
	tech *scoring.TechnicalScorer,
	metrics domrepo.Metrics,
	logger *xlogger.Logger,
	cfg Config,
) *Analyzer {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.TechnicalGate == 0 {
		cfg.TechnicalGate = DefaultTechnicalGate
	}
	if cfg.StrongSellCutoff == 0 {
		cfg.StrongSellCutoff = DefaultStrongSellCutoff
	}
	if cfg.DefaultPeriod == "" {
		cfg.DefaultPeriod = "1y"
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 10
	}
	return &Analyzer{
		cache:    cache,
		history:  history,
		provider: provider,
		fund:     fund,
		tech:     tech,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
	}
}

// seriesPayload is the cached shape of a historical series.
type seriesPayload struct {
	Period  string          `json:"period"`
	Candles []models.Candle `json:"candles"`
}

// Analyze runs the full pipeline for one ticker. A failed or empty data
// fetch aborts with an error wrapping ErrDataUnavailable and writes
// nothing to the history log.
func (a *Analyzer) Analyze(ctx context.Context, ticker, period string) (*models.AnalysisResult, error) {
	start := time.Now()
	defer func() { a.metrics.RecordLatency("analyze", time.Since(start).Seconds()) }()

	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if period == "" {
		period = a.cfg.DefaultPeriod
	}

	candles, err := a.loadSeries(ctx, ticker, period)
	if err != nil {
		a.metrics.RecordError("data_unavailable")
		return nil, err
	}
	snap, err := a.loadFundamentals(ctx, ticker)
	if err != nil {
		a.metrics.RecordError("data_unavailable")
		return nil, err
	}

	result := &models.AnalysisResult{
		Ticker:       ticker,
		CurrentPrice: a.currentPrice(ctx, ticker, candles),
		Sector:       snap.Sector,
		Industry:     snap.Industry,
		Country:      snap.Country,
		Timestamp:    time.Now().UTC(),
	}

	fund := a.fund.Analyze(snap, snap.Sector, snap.Industry, snap.Country)
	result.FundamentalScore = fund.Score
	result.FundamentalHealth = fund.Health
	result.FundamentalSignals = fund.Signals

	finalScore := fund.Score
	if fund.Score >= a.cfg.TechnicalGate {
		tech := a.tech.Analyze(candles)
		result.TechnicalScore = &tech.Score
		result.TechnicalSignals = tech.Signals
		finalScore += tech.Score
	}
	result.FinalScore = finalScore
	result.Recommendation, result.Horizon = recommend(finalScore, fund.Score, a.cfg.StrongSellCutoff)

	if err := a.history.Record(ctx, result); err != nil {
		// The analysis itself succeeded; a history write failure is
		// surfaced operationally, not to the caller.
		a.metrics.RecordError("history_write")
		a.logger.Error("history record failed", xlogger.String("ticker", ticker), xlogger.Error(err))
	}

	a.metrics.RecordAnalysis(ticker, string(result.Recommendation))
	a.metrics.RecordFinalScore(ticker, finalScore)
	a.logger.Info("analysis complete",
		xlogger.String("ticker", ticker),
		xlogger.String("recommendation", string(result.Recommendation)),
		xlogger.Float64("final_score", finalScore),
	)
	return result, nil
}

// AnalyzeBatch runs each ticker independently; one ticker's failure
// never aborts the rest.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, tickers []string, period string) []models.BatchItem {
	items := make([]models.BatchItem, 0, len(tickers))
	for _, ticker := range tickers {
		item := models.BatchItem{Ticker: strings.ToUpper(strings.TrimSpace(ticker))}
		result, err := a.Analyze(ctx, ticker, period)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Result = result
		}
		items = append(items, item)
	}
	return items
}

// History returns past results for a ticker, most recent first.
func (a *Analyzer) History(ctx context.Context, ticker string, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		limit = a.cfg.HistoryLimit
	}
	return a.history.Query(ctx, ticker, limit)
}

// ClearCache drops every cached payload; history is untouched.
func (a *Analyzer) ClearCache(ctx context.Context) error {
	return a.cache.Clear(ctx)
}

// ClearTicker drops both cached categories for one ticker.
func (a *Analyzer) ClearTicker(ctx context.Context, ticker string) error {
	if err := a.cache.Delete(ctx, ticker, domrepo.CategoryPriceSeries); err != nil {
		return err
	}
	return a.cache.Delete(ctx, ticker, domrepo.CategoryFundamentals)
}

// CacheStats combines live cache counts with the history total.
func (a *Analyzer) CacheStats(ctx context.Context) (models.CacheStats, error) {
	counts, err := a.cache.Stats(ctx)
	if err != nil {
		return models.CacheStats{}, err
	}
	historyCount, err := a.history.Count(ctx)
	if err != nil {
		return models.CacheStats{}, err
	}
	return models.CacheStats{
		PriceSeries:  counts[domrepo.CategoryPriceSeries],
		Fundamentals: counts[domrepo.CategoryFundamentals],
		History:      historyCount,
	}, nil
}

func (a *Analyzer) loadSeries(ctx context.Context, ticker, period string) ([]models.Candle, error) {
	var cached seriesPayload
	err := a.cache.Get(ctx, ticker, domrepo.CategoryPriceSeries, &cached)
	if err == nil && len(cached.Candles) > 0 {
		a.metrics.RecordCacheHit(string(domrepo.CategoryPriceSeries))
		return cached.Candles, nil
	}
	if err != nil && !errors.Is(err, domrepo.ErrCacheMiss) {
		return nil, fmt.Errorf("price series cache: %w", err)
	}
	a.metrics.RecordCacheMiss(string(domrepo.CategoryPriceSeries))

	candles, err := a.provider.HistoricalSeries(ctx, ticker, period)
	if err != nil {
		return nil, fmt.Errorf("%w: historical series for %s: %v", domrepo.ErrDataUnavailable, ticker, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: empty historical series for %s", domrepo.ErrDataUnavailable, ticker)
	}

	if err := a.cache.Put(ctx, ticker, domrepo.CategoryPriceSeries, seriesPayload{Period: period, Candles: candles}, a.cfg.CacheTTL); err != nil {
		a.logger.Warn("price series cache write failed", xlogger.String("ticker", ticker), xlogger.Error(err))
	}
	return candles, nil
}

func (a *Analyzer) loadFundamentals(ctx context.Context, ticker string) (*models.FundamentalSnapshot, error) {
	var cached models.FundamentalSnapshot
	err := a.cache.Get(ctx, ticker, domrepo.CategoryFundamentals, &cached)
	if err == nil && !cached.Empty() {
		a.metrics.RecordCacheHit(string(domrepo.CategoryFundamentals))
		return &cached, nil
	}
	if err != nil && !errors.Is(err, domrepo.ErrCacheMiss) {
		return nil, fmt.Errorf("fundamentals cache: %w", err)
	}
	a.metrics.RecordCacheMiss(string(domrepo.CategoryFundamentals))

	snap, err := a.provider.FundamentalSnapshot(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("%w: fundamentals for %s: %v", domrepo.ErrDataUnavailable, ticker, err)
	}
	if snap.Empty() {
		return nil, fmt.Errorf("%w: empty fundamentals for %s", domrepo.ErrDataUnavailable, ticker)
	}

	if err := a.cache.Put(ctx, ticker, domrepo.CategoryFundamentals, snap, a.cfg.CacheTTL); err != nil {
		a.logger.Warn("fundamentals cache write failed", xlogger.String("ticker", ticker), xlogger.Error(err))
	}
	return snap, nil
}

// currentPrice asks the provider and falls back to the last close of the
// already-fetched series; a missing price never fails the analysis.
func (a *Analyzer) currentPrice(ctx context.Context, ticker string, candles []models.Candle) *float64 {
	if price, err := a.provider.CurrentPrice(ctx, ticker); err == nil && price > 0 {
		return &price
	}
	if len(candles) > 0 {
		last := candles[len(candles)-1].Close
		return &last
	}
	return nil
}
