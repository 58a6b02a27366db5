package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"StockScope/internal/domain/models"
	domrepo "StockScope/internal/domain/repository"
)

type payload struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCachePutGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := payload{Name: "acme", Value: 42.5}
	if err := store.Put(ctx, "AAPL", domrepo.CategoryFundamentals, want, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got payload
	if err := store.Get(ctx, "AAPL", domrepo.CategoryFundamentals, &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestCacheTickerNormalization(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, " aapl ", domrepo.CategoryPriceSeries, payload{Name: "x"}, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	var got payload
	if err := store.Get(ctx, "AAPL", domrepo.CategoryPriceSeries, &got); err != nil {
		t.Fatalf("expected hit for normalized ticker: %v", err)
	}
}

func TestCacheMissOnUnknownKey(t *testing.T) {
	store := newTestStore(t)

	var got payload
	err := store.Get(context.Background(), "NOPE", domrepo.CategoryFundamentals, &got)
	if !errors.Is(err, domrepo.ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}
}

func TestCacheExpiryEvictsLazily(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "AAPL", domrepo.CategoryPriceSeries, payload{Name: "stale"}, -time.Second); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got payload
	err := store.Get(ctx, "AAPL", domrepo.CategoryPriceSeries, &got)
	if !errors.Is(err, domrepo.ErrCacheMiss) {
		t.Fatalf("expected miss for expired entry, got %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[domrepo.CategoryPriceSeries] != 0 {
		t.Fatalf("expected expired entry excluded from stats, got %d", stats[domrepo.CategoryPriceSeries])
	}
}

func TestCacheStatsExcludeExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "AAPL", domrepo.CategoryPriceSeries, payload{}, time.Hour); err != nil {
		t.Fatalf("put live: %v", err)
	}
	if err := store.Put(ctx, "MSFT", domrepo.CategoryPriceSeries, payload{}, -time.Second); err != nil {
		t.Fatalf("put expired: %v", err)
	}
	if err := store.Put(ctx, "AAPL", domrepo.CategoryFundamentals, payload{}, time.Hour); err != nil {
		t.Fatalf("put fundamentals: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[domrepo.CategoryPriceSeries] != 1 {
		t.Fatalf("expected 1 live price series entry, got %d", stats[domrepo.CategoryPriceSeries])
	}
	if stats[domrepo.CategoryFundamentals] != 1 {
		t.Fatalf("expected 1 fundamentals entry, got %d", stats[domrepo.CategoryFundamentals])
	}
}

func TestCacheMalformedPayloadIsAMiss(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// An array payload cannot decode into a struct; the entry must be
	// purged and reported as a miss.
	if err := store.Put(ctx, "AAPL", domrepo.CategoryFundamentals, []int{1, 2, 3}, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}

	var got payload
	err := store.Get(ctx, "AAPL", domrepo.CategoryFundamentals, &got)
	if !errors.Is(err, domrepo.ErrCacheMiss) {
		t.Fatalf("expected miss for undecodable payload, got %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[domrepo.CategoryFundamentals] != 0 {
		t.Fatalf("expected purged entry, got %d", stats[domrepo.CategoryFundamentals])
	}
}

func TestCachePutReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "AAPL", domrepo.CategoryFundamentals, payload{Name: "old"}, time.Hour); err != nil {
		t.Fatalf("put old: %v", err)
	}
	if err := store.Put(ctx, "AAPL", domrepo.CategoryFundamentals, payload{Name: "new"}, time.Hour); err != nil {
		t.Fatalf("put new: %v", err)
	}

	var got payload
	if err := store.Get(ctx, "AAPL", domrepo.CategoryFundamentals, &got); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "new" {
		t.Fatalf("expected replacement, got %q", got.Name)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats[domrepo.CategoryFundamentals] != 1 {
		t.Fatalf("expected single entry per key, got %d", stats[domrepo.CategoryFundamentals])
	}
}

func TestCacheClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, "AAPL", domrepo.CategoryPriceSeries, payload{}, time.Hour); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	var got payload
	err := store.Get(ctx, "AAPL", domrepo.CategoryPriceSeries, &got)
	if !errors.Is(err, domrepo.ErrCacheMiss) {
		t.Fatalf("expected miss after clear, got %v", err)
	}
}

func TestHistoryQueryOrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	for i, score := range []float64{1, 2, 3} {
		result := &models.AnalysisResult{
			Ticker:         "AAPL",
			FinalScore:     score,
			Recommendation: models.Hold,
			Timestamp:      now.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Record(ctx, result); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}
	if err := store.Record(ctx, &models.AnalysisResult{Ticker: "MSFT", Recommendation: models.Buy, Timestamp: now}); err != nil {
		t.Fatalf("record msft: %v", err)
	}

	records, err := store.Query(ctx, "aapl", 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Score != 3 || records[1].Score != 2 {
		t.Fatalf("expected most recent first, got %v then %v", records[0].Score, records[1].Score)
	}
	if records[0].Result.FinalScore != 3 {
		t.Fatalf("expected decoded result payload, got %+v", records[0].Result)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 records total, got %d", n)
	}
}
