package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"StockScope/internal/domain/models"
	domrepo "StockScope/internal/domain/repository"

	_ "modernc.org/sqlite"
)

// SQLiteStore backs both the TTL cache and the analysis history with a
// single process-local database file. A mutex serializes writers; WAL
// mode keeps readers unblocked while a write is in flight, so a Get sees
// either the fully-old or fully-new payload for a key, never a partial
// write.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database file and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS cache_entries (
			ticker     TEXT NOT NULL,
			category   TEXT NOT NULL,
			payload    TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			expires_at INTEGER NOT NULL,
			PRIMARY KEY (ticker, category)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache_entries(expires_at)`,

		`CREATE TABLE IF NOT EXISTS analysis_history (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker         TEXT NOT NULL,
			recommendation TEXT,
			score          REAL,
			payload        TEXT NOT NULL,
			created_at     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_ticker ON analysis_history(ticker, id)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// --- CacheStore ---

func (s *SQLiteStore) Get(ctx context.Context, ticker string, cat domrepo.Category, dest interface{}) error {
	ticker = normalizeTicker(ticker)

	var payload string
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, expires_at FROM cache_entries WHERE ticker = ? AND category = ?`,
		ticker, string(cat),
	).Scan(&payload, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domrepo.ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("cache select: %w", err)
	}

	if time.Now().Unix() >= expiresAt {
		// Lazy eviction: stale entries are purged on the access that
		// finds them, then reported as a miss.
		_ = s.Delete(ctx, ticker, cat)
		return domrepo.ErrCacheMiss
	}

	if err := json.Unmarshal([]byte(payload), dest); err != nil {
		// A payload that no longer decodes is as good as absent; the
		// caller refetches and overwrites it.
		_ = s.Delete(ctx, ticker, cat)
		return domrepo.ErrCacheMiss
	}
	return nil
}

func (s *SQLiteStore) Put(ctx context.Context, ticker string, cat domrepo.Category, value interface{}, ttl time.Duration) error {
	ticker = normalizeTicker(ticker)

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}

	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO cache_entries (ticker, category, payload, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?)`,
		ticker, string(cat), string(payload), now.Unix(), now.Add(ttl).Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache insert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, ticker string, cat domrepo.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM cache_entries WHERE ticker = ? AND category = ?`,
		normalizeTicker(ticker), string(cat),
	)
	if err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.ExecContext(ctx, `DELETE FROM cache_entries`); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Stats(ctx context.Context) (map[domrepo.Category]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, COUNT(*) FROM cache_entries WHERE expires_at > ? GROUP BY category`,
		time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("cache stats: %w", err)
	}
	defer rows.Close()

	stats := map[domrepo.Category]int{
		domrepo.CategoryPriceSeries:  0,
		domrepo.CategoryFundamentals: 0,
	}
	for rows.Next() {
		var cat string
		var n int
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("cache stats scan: %w", err)
		}
		stats[domrepo.Category(cat)] = n
	}
	return stats, rows.Err()
}

// --- HistoryLog ---

func (s *SQLiteStore) Record(ctx context.Context, result *models.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("history marshal: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO analysis_history (ticker, recommendation, score, payload, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		normalizeTicker(result.Ticker), string(result.Recommendation),
		result.FinalScore, string(payload), result.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("history insert: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Query(ctx context.Context, ticker string, limit int) ([]models.HistoryRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ticker, recommendation, score, payload, created_at
		 FROM analysis_history WHERE ticker = ? ORDER BY id DESC LIMIT ?`,
		normalizeTicker(ticker), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history select: %w", err)
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var rec models.HistoryRecord
		var recommendation, payload string
		var createdAt int64
		if err := rows.Scan(&rec.ID, &rec.Ticker, &recommendation, &rec.Score, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("history scan: %w", err)
		}
		rec.Recommendation = models.Recommendation(recommendation)
		rec.Timestamp = time.Unix(createdAt, 0)
		if err := json.Unmarshal([]byte(payload), &rec.Result); err != nil {
			return nil, fmt.Errorf("history decode id=%d: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM analysis_history`).Scan(&n); err != nil {
		return 0, fmt.Errorf("history count: %w", err)
	}
	return n, nil
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

var (
	_ domrepo.CacheStore = (*SQLiteStore)(nil)
	_ domrepo.HistoryLog = (*SQLiteStore)(nil)
)
