package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateJudge adds a judge to the platform pool or to one event.
func (u *Usecase) CreateJudge(ctx context.Context, j entities.Judge) (*entities.Judge, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateStruct(j); err != nil {
		return nil, err
	}
	res, err := u.repo.CreateJudge(ctx, j)
	if err != nil {
		return nil, err
	}
	u.log.Infow("judge create", "judge_id", res.ID, "event_id", res.EventID)
	return res, nil
}

// Judge returns a judge by id.
func (u *Usecase) Judge(ctx context.Context, id string) (*entities.Judge, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: judge id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetJudge(ctx, id)
}

// Judges lists judges; inactive ones only when asked.
func (u *Usecase) Judges(ctx context.Context, filter entities.JudgeFilter) ([]entities.Judge, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.EventID != "" {
		if _, err := u.repo.GetEvent(ctx, filter.EventID); err != nil {
			return nil, err
		}
	}
	return u.repo.ListJudges(ctx, filter)
}

// UpdateJudge applies a judge patch.
func (u *Usecase) UpdateJudge(ctx context.Context, id string, patch entities.JudgePatch) (*entities.Judge, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: judge id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	return u.repo.UpdateJudge(ctx, id, patch)
}

// DeactivateJudge soft-deletes a judge.
func (u *Usecase) DeactivateJudge(ctx context.Context, id string) (*entities.Judge, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: judge id is required", entities.ErrInvalidArgument)
	}
	res, err := u.repo.DeactivateJudge(ctx, id)
	if err != nil {
		return nil, err
	}
	u.log.Infow("judge deactivate", "judge_id", id)
	return res, nil
}
