package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

const (
	defaultTopEvents = 5
	maxListLimit     = 100
)

// PlatformAnalytics returns platform-wide totals.
func (u *Usecase) PlatformAnalytics(ctx context.Context, top int) (entities.PlatformAnalytics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if top < 0 || top > maxListLimit {
		return entities.PlatformAnalytics{}, fmt.Errorf("%w: top must be between 0 and %d", entities.ErrInvalidArgument, maxListLimit)
	}
	if top == 0 {
		top = defaultTopEvents
	}
	return u.repo.PlatformAnalytics(ctx, top)
}

// EventAnalytics returns one event's aggregates.
func (u *Usecase) EventAnalytics(ctx context.Context, eventID string) (entities.EventAnalytics, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return entities.EventAnalytics{}, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.EventAnalytics(ctx, eventID)
}

// Leaderboard ranks an event's scored submissions. limit 0 returns all.
func (u *Usecase) Leaderboard(ctx context.Context, eventID string, limit int) ([]entities.LeaderboardEntry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	if limit < 0 || limit > maxListLimit {
		return nil, fmt.Errorf("%w: limit must be between 0 and %d", entities.ErrInvalidArgument, maxListLimit)
	}
	return u.repo.Leaderboard(ctx, eventID, limit)
}
