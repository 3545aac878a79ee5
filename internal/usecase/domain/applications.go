package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/seed"
)

// StartDraft opens a judge application at the first step. In test mode the
// answers are pre-filled with the sample application.
func (u *Usecase) StartDraft(ctx context.Context, userID string, testMode bool) (*entities.ApplicationDraft, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID != "" {
		if _, err := u.repo.GetUser(ctx, userID); err != nil {
			return nil, err
		}
	}
	d := entities.ApplicationDraft{UserID: userID, TestMode: testMode}
	if testMode {
		answers, err := seed.SampleAnswers()
		if err != nil {
			return nil, fmt.Errorf("load sample answers: %w", err)
		}
		d.Answers = answers
	}
	res, err := u.drafts.SaveDraft(ctx, d)
	if err != nil {
		return nil, err
	}
	u.log.Infow("draft start", "draft_id", res.ID, "test_mode", testMode)
	return res, nil
}

// Draft returns an unexpired draft.
func (u *Usecase) Draft(ctx context.Context, id string) (*entities.ApplicationDraft, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: draft id is required", entities.ErrInvalidArgument)
	}
	return u.drafts.GetDraft(ctx, id)
}

// SaveStep merges the answers owned by step into the draft and moves it to
// the next step. Only the current step or an earlier one may be saved.
func (u *Usecase) SaveStep(ctx context.Context, id string, step int, answers entities.ApplicationAnswers) (*entities.ApplicationDraft, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: draft id is required", entities.ErrInvalidArgument)
	}
	if step < 0 || step > entities.LastStep() {
		return nil, invalid("step must be between 0 and %d", entities.LastStep())
	}
	d, err := u.drafts.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if step > d.Step {
		return nil, fmt.Errorf("%w: draft is at step %d", entities.ErrStepOutOfOrder, d.Step)
	}

	d.Answers.MergeStep(step, answers)
	if !d.TestMode {
		if err := validateFields(d.Answers, entities.WizardSteps[step].Fields); err != nil {
			return nil, err
		}
	}
	if next := min(step+1, entities.LastStep()); next > d.Step {
		d.Step = next
	}
	return u.drafts.SaveDraft(ctx, *d)
}

// BackStep moves the draft one step back, stopping at the first step.
func (u *Usecase) BackStep(ctx context.Context, id string) (*entities.ApplicationDraft, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: draft id is required", entities.ErrInvalidArgument)
	}
	d, err := u.drafts.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Step = max(d.Step-1, 0)
	return u.drafts.SaveDraft(ctx, *d)
}

// SubmitDraft turns a complete draft into a judge application.
func (u *Usecase) SubmitDraft(ctx context.Context, id string) (*entities.JudgeApplication, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: draft id is required", entities.ErrInvalidArgument)
	}
	d, err := u.drafts.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}
	if !d.TestMode {
		if err := validateStruct(d.Answers); err != nil {
			return nil, err
		}
	}

	app, err := u.repo.CreateApplication(ctx, entities.JudgeApplication{
		UserID:   d.UserID,
		Answers:  d.Answers,
		TestMode: d.TestMode,
	})
	if err != nil {
		return nil, err
	}
	if err := u.drafts.DeleteDraft(ctx, id); err != nil && !errors.Is(err, entities.ErrDraftNotFound) {
		u.log.Errorw("failed to drop submitted draft", "draft_id", id, "err", err)
	}
	u.log.Infow("application submit", "application_id", app.ID, "test_mode", app.TestMode)
	return app, nil
}

// Applications lists judge applications, optionally by status.
func (u *Usecase) Applications(ctx context.Context, status *entities.ApplicationStatus) ([]entities.JudgeApplication, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if status != nil {
		switch *status {
		case entities.ApplicationSubmitted, entities.ApplicationApproved, entities.ApplicationRejected:
		default:
			return nil, invalid("unknown application status %q", *status)
		}
	}
	return u.repo.ListApplications(ctx, status)
}

// Application returns a judge application by id.
func (u *Usecase) Application(ctx context.Context, id string) (*entities.JudgeApplication, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: application id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetApplication(ctx, id)
}

// ApproveApplication creates an active pool judge from the answers and marks
// the application approved. A linked participant is promoted to judge.
func (u *Usecase) ApproveApplication(ctx context.Context, id string, in entities.ReviewInput) (*entities.JudgeApplication, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	app, err := u.reviewable(ctx, id, in)
	if err != nil {
		return nil, err
	}

	judge := entities.Judge{
		UserID:    app.UserID,
		Name:      app.Answers.FullName,
		Email:     app.Answers.Email,
		Bio:       app.Answers.Bio,
		Expertise: app.Answers.Expertise,
		Company:   app.Answers.Company,
		Title:     app.Answers.JobTitle,
	}
	if err := validateStruct(judge); err != nil {
		return nil, err
	}
	app.ReviewNote = in.Note
	res, created, err := u.repo.ApproveApplication(ctx, *app, judge)
	if err != nil {
		return nil, err
	}
	if app.UserID != "" {
		u.promote(ctx, app.UserID)
	}
	u.log.Infow("application approve", "application_id", id, "judge_id", created.ID)
	return res, nil
}

// RejectApplication marks a submitted application rejected.
func (u *Usecase) RejectApplication(ctx context.Context, id string, in entities.ReviewInput) (*entities.JudgeApplication, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	app, err := u.reviewable(ctx, id, in)
	if err != nil {
		return nil, err
	}
	app.Status = entities.ApplicationRejected
	app.ReviewNote = in.Note
	res, err := u.repo.ReviewApplication(ctx, *app)
	if err != nil {
		return nil, err
	}
	u.log.Infow("application reject", "application_id", id)
	return res, nil
}

func (u *Usecase) reviewable(ctx context.Context, id string, in entities.ReviewInput) (*entities.JudgeApplication, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: application id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	app, err := u.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != entities.ApplicationSubmitted {
		return nil, fmt.Errorf("%w: status is %s", entities.ErrApplicationReviewed, app.Status)
	}
	return app, nil
}

// promote gives a participant the judge role. Failures are logged only.
func (u *Usecase) promote(ctx context.Context, userID string) {
	user, err := u.repo.GetUser(ctx, userID)
	if err != nil {
		u.log.Warnw("approved applicant has no account", "user_id", userID, "err", err)
		return
	}
	if user.Role != entities.RoleParticipant {
		return
	}
	role := entities.RoleJudge
	if _, err := u.repo.UpdateUser(ctx, userID, entities.UserPatch{Role: &role}); err != nil {
		u.log.Errorw("failed to promote judge", "user_id", userID, "err", err)
	}
}
