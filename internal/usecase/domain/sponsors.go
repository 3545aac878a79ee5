package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateSponsor attaches a sponsor to an event.
func (u *Usecase) CreateSponsor(ctx context.Context, eventID string, s entities.EventSponsor) (*entities.EventSponsor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	s.EventID = eventID
	if err := validateStruct(s); err != nil {
		return nil, err
	}
	return u.repo.CreateSponsor(ctx, s)
}

// Sponsors lists an event's sponsors by tier.
func (u *Usecase) Sponsors(ctx context.Context, eventID string, includeInactive bool) ([]entities.EventSponsor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListSponsors(ctx, eventID, includeInactive)
}

// UpdateSponsor applies a sponsor patch.
func (u *Usecase) UpdateSponsor(ctx context.Context, id string, patch entities.SponsorPatch) (*entities.EventSponsor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: sponsor id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateSponsor(ctx, id, patch)
}

// DeactivateSponsor soft-deletes a sponsor.
func (u *Usecase) DeactivateSponsor(ctx context.Context, id string) (*entities.EventSponsor, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: sponsor id is required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.DeactivateSponsor(ctx, id)
	if err != nil {
		return nil, err
	}
	u.log.Infow("sponsor deactivate", "sponsor_id", id)
	return res, nil
}
