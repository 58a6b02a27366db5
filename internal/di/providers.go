package di

import (
	"fmt"

	"StockScope/internal/domain/repository"
	"StockScope/internal/handler/api"
	internalrepo "StockScope/internal/repository"
	"StockScope/internal/service/marketdata"
	"StockScope/internal/services/scoring"
	"StockScope/internal/usecase"
	"StockScope/pkg/config"
	xhttp "StockScope/pkg/http"
	applogger "StockScope/pkg/logger"
	"StockScope/pkg/metrics"
	"StockScope/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSQLiteStore opens the process-local database. It always exists:
// analysis history is stored there even when Redis serves the cache.
func ProvideSQLiteStore(cfg *config.Config) (*internalrepo.SQLiteStore, error) {
	store, err := internalrepo.NewSQLiteStore(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("sqlite store: %w", err)
	}
	return store, nil
}

// ProvideCacheStore selects the cache backend from config.
func ProvideCacheStore(cfg *config.Config, store *internalrepo.SQLiteStore) (repository.CacheStore, error) {
	switch cfg.Cache.Backend {
	case "redis":
		cache, err := internalrepo.NewRedisCache(internalrepo.RedisOptions{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		return cache, nil
	default:
		return store, nil
	}
}

// ProvideHistoryLog exposes the SQLite store as the history log.
func ProvideHistoryLog(store *internalrepo.SQLiteStore) repository.HistoryLog {
	return store
}

// ProvideMarketData creates the upstream data provider client.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return marketdata.NewYahooClient(marketdata.Options{
		BaseURL: cfg.Provider.BaseURL,
		Timeout: cfg.Provider.Timeout,
		MaxRPS:  cfg.Provider.MaxRPS,
	})
}

// ProvideProfileRegistry creates the sector benchmark registry.
func ProvideProfileRegistry() *scoring.ProfileRegistry {
	return scoring.NewProfileRegistry()
}

// ProvideFundamentalScorer creates the fundamental rule engine.
func ProvideFundamentalScorer(registry *scoring.ProfileRegistry) *scoring.FundamentalScorer {
	return scoring.NewFundamentalScorer(registry)
}

// ProvideTechnicalScorer creates the technical indicator scorer.
func ProvideTechnicalScorer() *scoring.TechnicalScorer {
	return scoring.NewTechnicalScorer()
}

// ProvideAnalyzer creates the analysis pipeline use case.
func ProvideAnalyzer(
	cache repository.CacheStore,
	history repository.HistoryLog,
	provider repository.MarketData,
	fund *scoring.FundamentalScorer,
	tech *scoring.TechnicalScorer,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(cache, history, provider, fund, tech, m, l, usecase.Config{
		CacheTTL:         cfg.Cache.TTL,
		TechnicalGate:    cfg.Analysis.TechnicalGate,
		StrongSellCutoff: cfg.Analysis.StrongSellCutoff,
		DefaultPeriod:    cfg.Analysis.DefaultPeriod,
		HistoryLimit:     cfg.Analysis.HistoryLimit,
	})
}

// ProvideHandler creates the Echo route handler.
func ProvideHandler(l *applogger.Logger, analyzer *usecase.Analyzer) xhttp.Handler {
	return api.NewAnalysisHandler(l, analyzer)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	handler xhttp.Handler,
	store *internalrepo.SQLiteStore,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, handler, store, l)
}
