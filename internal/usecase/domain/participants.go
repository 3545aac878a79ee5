package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// RegisterParticipant registers an existing user for an event.
func (u *Usecase) RegisterParticipant(ctx context.Context, eventID string, p entities.EventParticipant) (*entities.EventParticipant, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	p.EventID = eventID
	if err := validateStruct(p); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, p.UserID); err != nil {
		return nil, err
	}

	res, err := u.repo.RegisterParticipant(ctx, p)
	if err != nil {
		return nil, err
	}
	u.log.Infow("participant register", "event_id", eventID, "user_id", p.UserID)
	return res, nil
}

// Participants lists an event's registrations.
func (u *Usecase) Participants(ctx context.Context, eventID string) ([]entities.EventParticipant, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListParticipants(ctx, eventID)
}

// UpdateParticipant changes a registration's status, role or team.
func (u *Usecase) UpdateParticipant(ctx context.Context, eventID, id string, patch entities.ParticipantPatch) (*entities.EventParticipant, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return nil, fmt.Errorf("%w: event id and participant id are required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.TeamID != nil && *patch.TeamID != "" {
		if _, err := u.repo.GetEventTeam(ctx, eventID, *patch.TeamID); err != nil {
			return nil, err
		}
	}
	return u.repo.UpdateParticipant(ctx, eventID, id, patch)
}

// RemoveParticipant hard-deletes a registration.
func (u *Usecase) RemoveParticipant(ctx context.Context, eventID, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return fmt.Errorf("%w: event id and participant id are required", entities.ErrInvalidArgument)
	}
	if err := u.repo.RemoveParticipant(ctx, eventID, id); err != nil {
		return err
	}
	u.log.Infow("participant remove", "event_id", eventID, "participant_id", id)
	return nil
}
