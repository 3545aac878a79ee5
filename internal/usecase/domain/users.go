package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateUser creates a profile without credentials. Like registration it
// only accepts the participant or organizer role.
func (u *Usecase) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Role == "" {
		user.Role = entities.RoleParticipant
	}
	if err := validateStruct(user); err != nil {
		return nil, err
	}
	if user.Role != entities.RoleParticipant && user.Role != entities.RoleOrganizer {
		return nil, entities.NewValidationError(entities.FieldError{
			Path: "role", Rule: "oneof", Message: "must be one of: participant organizer",
		})
	}
	user.PasswordHash = ""
	return u.repo.CreateUser(ctx, user)
}

// User returns a user by id.
func (u *Usecase) User(ctx context.Context, id string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUser(ctx, id)
}

// Users lists every user.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx)
}

// UpdateUser applies a profile patch. Roles change only through judge
// application review, never through a patch.
func (u *Usecase) UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if patch.Role != nil {
		return nil, entities.NewValidationError(entities.FieldError{
			Path: "role", Rule: "readonly", Message: "cannot be changed",
		})
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateUser(ctx, id, patch)
}

// DeleteUser hard-deletes a user. Records referencing it are kept.
func (u *Usecase) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: user id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	u.log.Infow("user deleted", "user_id", id)
	return nil
}
