package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateSubmission stores a platform-wide project. A linked event must exist
// and own the chosen track.
func (u *Usecase) CreateSubmission(ctx context.Context, s entities.Submission) (*entities.Submission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateStruct(s); err != nil {
		return nil, err
	}
	if s.EventID != "" {
		e, err := u.repo.GetEvent(ctx, s.EventID)
		if err != nil {
			return nil, err
		}
		if !e.HasTrack(s.Track) {
			return nil, entities.NewValidationError(entities.FieldError{Path: "track", Rule: "track", Message: "must name one of the event tracks"})
		}
	}
	if s.TeamID != "" {
		if _, err := u.repo.GetTeam(ctx, s.TeamID); err != nil {
			return nil, err
		}
	}
	return u.repo.CreateSubmission(ctx, s)
}

// Submission returns a project by id.
func (u *Usecase) Submission(ctx context.Context, id string) (*entities.Submission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: submission id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetSubmission(ctx, id)
}

// Submissions lists projects matching the filter.
func (u *Usecase) Submissions(ctx context.Context, filter entities.SubmissionFilter) ([]entities.Submission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListSubmissions(ctx, filter)
}

// UpdateSubmission applies a project patch.
func (u *Usecase) UpdateSubmission(ctx context.Context, id string, patch entities.SubmissionPatch) (*entities.Submission, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: submission id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateSubmission(ctx, id, patch)
}

// DeleteSubmission hard-deletes a project.
func (u *Usecase) DeleteSubmission(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: submission id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteSubmission(ctx, id)
}
