package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	fastingdomain "jejum/internal/modules/fasting/domain"
	statsout "jejum/internal/modules/stats/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSessionIndex projects finished sessions into a queryable table. It is
// derived data: `jejum reindex` rebuilds it from the state file at any time.
type SQLiteSessionIndex struct {
	db *sql.DB
}

func NewSQLiteSessionIndex(dbPath string) (*SQLiteSessionIndex, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	index := &SQLiteSessionIndex{db: db}
	if err := index.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return index, nil
}

func (s *SQLiteSessionIndex) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  started_at TEXT NOT NULL,
  ended_at TEXT,
  target_hours REAL NOT NULL,
  actual_hours REAL NOT NULL,
  completed INTEGER NOT NULL,
  mode TEXT,
  water_count INTEGER NOT NULL,
  mood TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset sessions: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Upsert(ctx context.Context, session fastingdomain.FastingSession) error {
	const stmt = `
INSERT INTO sessions (id, started_at, ended_at, target_hours, actual_hours, completed, mode, water_count, mood)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  started_at=excluded.started_at,
  ended_at=excluded.ended_at,
  target_hours=excluded.target_hours,
  actual_hours=excluded.actual_hours,
  completed=excluded.completed,
  mode=excluded.mode,
  water_count=excluded.water_count,
  mood=excluded.mood;
`
	endedAt := ""
	if !session.EndTime.IsZero() {
		endedAt = session.EndTime.Time.Format(time.RFC3339)
	}
	completed := 0
	if session.Completed {
		completed = 1
	}
	_, err := s.db.ExecContext(ctx, stmt,
		session.ID,
		session.StartTime.Time.Format(time.RFC3339),
		endedAt,
		session.TargetHours,
		session.ActualHours,
		completed,
		string(session.Mode),
		session.WaterCount,
		string(session.Mood),
	)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *SQLiteSessionIndex) Summarize(ctx context.Context, since time.Time) (statsout.Aggregate, error) {
	const stmt = `
SELECT
  COUNT(*),
  COALESCE(SUM(completed), 0),
  COALESCE(SUM(actual_hours), 0),
  COALESCE(MAX(actual_hours), 0),
  COALESCE(SUM(water_count), 0)
FROM sessions
WHERE started_at >= ?;
`
	cutoff := ""
	if !since.IsZero() {
		cutoff = since.Format(time.RFC3339)
	}
	row := s.db.QueryRowContext(ctx, stmt, cutoff)
	var agg statsout.Aggregate
	if err := row.Scan(&agg.TotalFasts, &agg.CompletedFasts, &agg.TotalHours, &agg.LongestHours, &agg.TotalWater); err != nil {
		return statsout.Aggregate{}, fmt.Errorf("summarize sessions: %w", err)
	}
	return agg, nil
}

func (s *SQLiteSessionIndex) Close() error {
	return s.db.Close()
}
