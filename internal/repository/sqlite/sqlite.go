// Package sqlite persists store snapshots in an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/db"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	insertSnapshotQuery = `INSERT INTO snapshots (taken_at, payload) VALUES (?, ?)`
	latestSnapshotQuery = `SELECT payload FROM snapshots ORDER BY id DESC LIMIT 1`
	pruneSnapshotsQuery = `
DELETE FROM snapshots
WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT ?)`
	countSnapshotsQuery = `SELECT COUNT(*) FROM snapshots`
)

// SQLite stores snapshots in a single database file.
type SQLite struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *sql.DB
	cfg     config.SQLiteConfig
	keep    int
}

// New creates a SQLite snapshot store.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		baseCtx: ctx,
		log:     log.Named("repo.sqlite"),
		cfg:     cfg.SQLite,
		keep:    cfg.Storage.KeepSnapshots,
	}
}

// Open opens path and applies connection pragmas. A single connection keeps
// the pragmas in effect for every statement.
func Open(ctx context.Context, path string, busyTimeout time.Duration) (*sql.DB, error) {
	// modernc.org/sqlite registers as "sqlite"
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON;",
		"PRAGMA journal_mode = WAL;",
		fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeout.Milliseconds()),
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("%s: %w", pragma, err)
		}
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return conn, nil
}

// OnStart opens the database file and applies migrations.
func (s *SQLite) OnStart(_ context.Context) error {
	conn, err := Open(s.baseCtx, s.cfg.Path, s.cfg.BusyTimeout)
	if err != nil {
		return err
	}
	if err := db.Migrate(s.baseCtx, conn, db.DialectSQLite); err != nil {
		_ = conn.Close()
		return err
	}
	s.db = conn
	s.log.Infow("sqlite ready", "path", s.cfg.Path, "keep_snapshots", s.keep)
	return nil
}

// OnStop closes the database.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// LoadSnapshot returns the newest snapshot, or nil when none was saved yet.
func (s *SQLite) LoadSnapshot(ctx context.Context) (*entities.Snapshot, error) {
	var payload []byte
	if err := s.db.QueryRowContext(ctx, latestSnapshotQuery).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot inserts a new snapshot and prunes all but the newest keep rows.
func (s *SQLite) SaveSnapshot(ctx context.Context, snap entities.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, insertSnapshotQuery, snap.TakenAt.UTC().Format(time.RFC3339Nano), string(payload)); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	if s.keep > 0 {
		if _, err := tx.ExecContext(ctx, pruneSnapshotsQuery, s.keep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.log.Debugw("snapshot saved", "bytes", len(payload))
	return nil
}

// CountSnapshots reports how many snapshots are retained.
func (s *SQLite) CountSnapshots(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, countSnapshotsQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", err)
	}
	return n, nil
}
