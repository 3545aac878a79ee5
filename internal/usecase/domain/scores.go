package domain

import (
	"context"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// ScoreSubmission records an active judge's score for an event submission.
func (u *Usecase) ScoreSubmission(ctx context.Context, eventID, submissionID string, s entities.JudgingScore) (*entities.JudgingScore, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || submissionID == "" {
		return nil, fmt.Errorf("%w: event id and submission id are required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(s); err != nil {
		return nil, err
	}
	if err := checkCriteria(s.Criteria); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetEventSubmission(ctx, eventID, submissionID); err != nil {
		return nil, err
	}
	judge, err := u.repo.GetJudge(ctx, s.JudgeID)
	if err != nil {
		return nil, err
	}
	if !judge.IsActive {
		return nil, fmt.Errorf("%w: judge %s is inactive", entities.ErrForbidden, judge.ID)
	}
	if judge.EventID != "" && judge.EventID != eventID {
		return nil, fmt.Errorf("%w: judge %s is not assigned to this event", entities.ErrForbidden, judge.ID)
	}

	s.SubmissionID = submissionID
	res, err := u.repo.CreateScore(ctx, s)
	if err != nil {
		return nil, err
	}
	u.log.Infow("score create", "submission_id", submissionID, "judge_id", s.JudgeID, "total", res.TotalScore)
	return res, nil
}

// Scores lists the scores of one submission.
func (u *Usecase) Scores(ctx context.Context, eventID, submissionID string) ([]entities.JudgingScore, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" || submissionID == "" {
		return nil, fmt.Errorf("%w: event id and submission id are required", entities.ErrInvalidArgument)
	}
	if _, err := u.repo.GetEventSubmission(ctx, eventID, submissionID); err != nil {
		return nil, err
	}
	return u.repo.ListScores(ctx, submissionID)
}

// EventScores lists every score of an event.
func (u *Usecase) EventScores(ctx context.Context, eventID string) ([]entities.JudgingScore, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.ListEventScores(ctx, eventID)
}

// UpdateScore changes a score's criteria or feedback.
func (u *Usecase) UpdateScore(ctx context.Context, id string, patch entities.ScorePatch) (*entities.JudgingScore, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: score id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	if patch.Criteria != nil {
		if err := checkCriteria(*patch.Criteria); err != nil {
			return nil, err
		}
	}
	return u.repo.UpdateScore(ctx, id, patch)
}

// DeleteScore removes a score.
func (u *Usecase) DeleteScore(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: score id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteScore(ctx, id); err != nil {
		return err
	}
	u.log.Infow("score delete", "score_id", id)
	return nil
}

func checkCriteria(criteria []entities.CriterionScore) error {
	verr := entities.NewValidationError()
	seen := make(map[string]struct{}, len(criteria))
	for i, c := range criteria {
		if c.Score > c.MaxScore {
			verr.Add(fmt.Sprintf("criteria[%d].score", i), "lte", "must not exceed maxScore")
		}
		if _, dup := seen[c.Name]; dup {
			verr.Add(fmt.Sprintf("criteria[%d].name", i), "unique", "duplicate criterion")
		}
		seen[c.Name] = struct{}{}
	}
	return verr.OrNil()
}
