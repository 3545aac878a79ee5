package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateEventSubmission submits a team's project to an event track.
func (u *Usecase) CreateEventSubmission(ctx context.Context, eventID string, s entities.EventSubmission) (*entities.EventSubmission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	s.EventID = eventID
	if err := validateStruct(s); err != nil {
		return nil, err
	}
	e, err := u.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !e.HasTrack(s.Track) {
		return nil, entities.NewValidationError(entities.FieldError{Path: "track", Rule: "track", Message: "must name one of the event tracks"})
	}
	if _, err := u.repo.GetEventTeam(ctx, eventID, s.TeamID); err != nil {
		return nil, err
	}

	res, err := u.repo.CreateEventSubmission(ctx, s)
	if err != nil {
		return nil, err
	}
	u.log.Infow("event submission create", "event_id", eventID, "submission_id", res.ID, "team_id", res.TeamID)
	return res, nil
}

// EventSubmission returns one submission of an event.
func (u *Usecase) EventSubmission(ctx context.Context, eventID, id string) (*entities.EventSubmission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return nil, fmt.Errorf("%w: event id and submission id are required", entities.ErrInvalidArgument)
	}
	return u.repo.GetEventSubmission(ctx, eventID, id)
}

// EventSubmissions lists an event's submissions.
func (u *Usecase) EventSubmissions(ctx context.Context, eventID string, filter entities.SubmissionFilter) ([]entities.EventSubmission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListEventSubmissions(ctx, eventID, filter)
}

// UpdateEventSubmission applies a submission patch.
func (u *Usecase) UpdateEventSubmission(ctx context.Context, eventID, id string, patch entities.SubmissionPatch) (*entities.EventSubmission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return nil, fmt.Errorf("%w: event id and submission id are required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.Track != nil {
		e, err := u.repo.GetEvent(ctx, eventID)
		if err != nil {
			return nil, err
		}
		if !e.HasTrack(*patch.Track) {
			return nil, entities.NewValidationError(entities.FieldError{Path: "track", Rule: "track", Message: "must name one of the event tracks"})
		}
	}
	return u.repo.UpdateEventSubmission(ctx, eventID, id, patch)
}

// DeleteEventSubmission hard-deletes a submission; its scores stay.
func (u *Usecase) DeleteEventSubmission(ctx context.Context, eventID, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || id == "" {
		return fmt.Errorf("%w: event id and submission id are required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteEventSubmission(ctx, eventID, id); err != nil {
		return err
	}
	u.log.Infow("event submission delete", "event_id", eventID, "submission_id", id)
	return nil
}
