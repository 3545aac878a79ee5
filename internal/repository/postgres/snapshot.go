package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertSnapshotQuery = `INSERT INTO snapshots (taken_at, payload) VALUES ($1, $2) RETURNING id`
	latestSnapshotQuery = `SELECT payload FROM snapshots ORDER BY id DESC LIMIT 1`
	pruneSnapshotsQuery = `
DELETE FROM snapshots
WHERE id NOT IN (SELECT id FROM snapshots ORDER BY id DESC LIMIT $1)`
	countSnapshotsQuery = `SELECT COUNT(*) FROM snapshots`

	undefinedTable = "42P01"
)

// ErrNotMigrated is returned when the snapshots table is missing.
var ErrNotMigrated = errors.New("snapshots table missing, run migrations")

// LoadSnapshot returns the newest snapshot, or nil when none was saved yet.
func (p *Postgres) LoadSnapshot(ctx context.Context) (*entities.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	var payload []byte
	if err := p.db.QueryRow(ctx, latestSnapshotQuery).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load snapshot: %w", mapErr(err))
	}

	var snap entities.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot inserts a new snapshot and prunes all but the newest keep rows.
func (p *Postgres) SaveSnapshot(ctx context.Context, snap entities.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.QueryTimeout)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	if err := tx.QueryRow(ctx, insertSnapshotQuery, snap.TakenAt, payload).Scan(&id); err != nil {
		return fmt.Errorf("insert snapshot: %w", mapErr(err))
	}
	if p.keep > 0 {
		tag, err := tx.Exec(ctx, pruneSnapshotsQuery, p.keep)
		if err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
		if tag.RowsAffected() > 0 {
			p.log.Debugw("snapshots pruned", "removed", tag.RowsAffected())
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	p.log.Infow("snapshot saved", "snapshot_id", id, "bytes", len(payload))
	return nil
}

// CountSnapshots reports how many snapshots are retained.
func (p *Postgres) CountSnapshots(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx, countSnapshotsQuery).Scan(&n); err != nil {
		return 0, fmt.Errorf("count snapshots: %w", mapErr(err))
	}
	return n, nil
}

func mapErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == undefinedTable {
		return ErrNotMigrated
	}
	return err
}
