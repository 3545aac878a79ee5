package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateTeam creates a platform-wide team led by an existing user.
func (u *Usecase) CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateStruct(t); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, t.LeaderID); err != nil {
		return nil, err
	}
	res, err := u.repo.CreateTeam(ctx, t)
	if err != nil {
		return nil, err
	}
	u.log.Infow("team create", "team_id", res.ID, "leader_id", res.LeaderID)
	return res, nil
}

// Team returns a team by id.
func (u *Usecase) Team(ctx context.Context, id string) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		u.log.Errorw("failed to get team: missing team id")
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, id)
}

// Teams lists every team.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// UpdateTeam applies a team patch.
func (u *Usecase) UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.LeaderID != nil {
		if _, err := u.repo.GetUser(ctx, *patch.LeaderID); err != nil {
			return nil, err
		}
	}
	return u.repo.UpdateTeam(ctx, id, patch)
}

// DeleteTeam hard-deletes a team.
func (u *Usecase) DeleteTeam(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: team id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTeam(ctx, id)
}
