package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateEventTeam forms a team inside an event; the captain becomes its first member.
func (u *Usecase) CreateEventTeam(ctx context.Context, eventID string, t entities.EventTeam) (*entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	t.EventID = eventID
	if err := validateStruct(t); err != nil {
		return nil, err
	}

	res, err := u.repo.CreateEventTeam(ctx, t)
	if err != nil {
		return nil, err
	}
	u.log.Infow("event team create", "event_id", eventID, "team_id", res.ID, "captain_id", res.CaptainID)
	return res, nil
}

// EventTeam returns one team of an event.
func (u *Usecase) EventTeam(ctx context.Context, eventID, id string) (*entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return nil, fmt.Errorf("%w: event id and team id are required", entities.ErrInvalidArgument)
	}
	return u.repo.GetEventTeam(ctx, eventID, id)
}

// EventTeams lists an event's teams.
func (u *Usecase) EventTeams(ctx context.Context, eventID string) ([]entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListEventTeams(ctx, eventID)
}

// UpdateEventTeam applies a team patch.
func (u *Usecase) UpdateEventTeam(ctx context.Context, eventID, id string, patch entities.EventTeamPatch) (*entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return nil, fmt.Errorf("%w: event id and team id are required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.CaptainID != nil && *patch.CaptainID == "" {
		return nil, fmt.Errorf("%w: captainId cannot be empty", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateEventTeam(ctx, eventID, id, patch)
}

// AddTeamMember adds a user to a team.
func (u *Usecase) AddTeamMember(ctx context.Context, eventID, teamID, userID string) (*entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || teamID == "" || userID == "" {
		return nil, fmt.Errorf("%w: event id, team id and user id are required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.AddTeamMember(ctx, eventID, teamID, userID)
	if err != nil {
		return nil, err
	}
	u.log.Infow("team member add", "team_id", teamID, "user_id", userID, "members", len(res.MemberIDs))
	return res, nil
}

// RemoveTeamMember drops a user from a team.
func (u *Usecase) RemoveTeamMember(ctx context.Context, eventID, teamID, userID string) (*entities.EventTeam, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || teamID == "" || userID == "" {
		return nil, fmt.Errorf("%w: event id, team id and user id are required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.RemoveTeamMember(ctx, eventID, teamID, userID)
	if err != nil {
		return nil, err
	}
	u.log.Infow("team member remove", "team_id", teamID, "user_id", userID)
	return res, nil
}

// DeleteEventTeam hard-deletes a team.
func (u *Usecase) DeleteEventTeam(ctx context.Context, eventID, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return fmt.Errorf("%w: event id and team id are required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteEventTeam(ctx, eventID, id)
}
