//go:build wireinject
// +build wireinject

package di

import (
	"StockScope/pkg/config"
	"StockScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Logging and metrics
		ProvideLogger,
		ProvideMetrics,

		// Persistence
		ProvideSQLiteStore,
		ProvideCacheStore,
		ProvideHistoryLog,

		// Market data provider
		ProvideMarketData,

		// Scoring
		ProvideProfileRegistry,
		ProvideFundamentalScorer,
		ProvideTechnicalScorer,

		// Use cases
		ProvideAnalyzer,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
