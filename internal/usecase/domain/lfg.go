package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateLFGPost opens a matchmaking post for an existing user.
func (u *Usecase) CreateLFGPost(ctx context.Context, p entities.LFGPost) (*entities.LFGPost, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateStruct(p); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, p.UserID); err != nil {
		return nil, err
	}
	return u.repo.CreateLFGPost(ctx, p)
}

// LFGPost returns a post by id.
func (u *Usecase) LFGPost(ctx context.Context, id string) (*entities.LFGPost, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: post id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetLFGPost(ctx, id)
}

// LFGPosts lists posts matching the filter.
func (u *Usecase) LFGPosts(ctx context.Context, filter entities.LFGFilter) ([]entities.LFGPost, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Kind != nil && *filter.Kind != entities.LookingForTeam && *filter.Kind != entities.LookingForMembers {
		return nil, fmt.Errorf("%w: unknown kind %q", entities.ErrInvalidArgument, *filter.Kind)
	}
	return u.repo.ListLFGPosts(ctx, filter)
}

// UpdateLFGPost applies a post patch.
func (u *Usecase) UpdateLFGPost(ctx context.Context, id string, patch entities.LFGPatch) (*entities.LFGPost, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: post id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateLFGPost(ctx, id, patch)
}

// DeleteLFGPost hard-deletes a post.
func (u *Usecase) DeleteLFGPost(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: post id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteLFGPost(ctx, id)
}
