package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateContent adds a block to an event page.
func (u *Usecase) CreateContent(ctx context.Context, eventID string, c entities.EventContent) (*entities.EventContent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	c.EventID = eventID
	if err := validateStruct(c); err != nil {
		return nil, err
	}
	return u.repo.CreateContent(ctx, c)
}

// Contents lists an event page in display order.
func (u *Usecase) Contents(ctx context.Context, eventID string, includeDrafts bool) ([]entities.EventContent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListContent(ctx, eventID, includeDrafts)
}

// UpdateContent applies a content patch.
func (u *Usecase) UpdateContent(ctx context.Context, id string, patch entities.ContentPatch) (*entities.EventContent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: content id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateContent(ctx, id, patch)
}

// DeleteContent removes a block.
func (u *Usecase) DeleteContent(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: content id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteContent(ctx, id)
}
