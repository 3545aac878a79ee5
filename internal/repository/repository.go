// Package repository provides factory for repositories.
package repository

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/memory"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/postgres"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/sqlite"

	"go.uber.org/zap"
)

// Repository aggregates all persistence interfaces.
type Repository interface {
	LifecycleInterface
	UserInterface
	EventInterface
	ParticipantInterface
	EventTeamInterface
	EventSubmissionInterface
	ScoreInterface
	JudgeInterface
	SponsorInterface
	ContentInterface
	TeamInterface
	SubmissionInterface
	LFGInterface
	ApplicationInterface
	AnalyticsInterface
}

var _ Repository = (*memory.Store)(nil)

// New constructs the in-memory store, snapshotted to the named backend.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (Repository, error) {
	snap, err := NewSnapshotter(ctx, name, log, cfg)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return memory.New(log), nil
	}
	return memory.New(log, memory.WithSnapshotter(snap, cfg.Storage.FlushInterval)), nil
}

// NewSnapshotter returns the snapshot backend by name, or nil for plain memory.
func NewSnapshotter(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config) (SnapshotInterface, error) {
	switch name {
	case config.BackendMemory:
		return nil, nil
	case config.BackendPostgres:
		return postgres.New(ctx, log, cfg), nil
	case config.BackendSQLite:
		return sqlite.New(ctx, log, cfg), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
