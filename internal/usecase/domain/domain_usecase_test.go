package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/drafts"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/memory"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// repoMock stubs the methods a test sets expectations on. Calling anything
// else panics through the nil embedded interface.
type repoMock struct {
	mock.Mock
	repository.Repository
}

func (m *repoMock) GetUser(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetEventBySlug(ctx context.Context, slug string) (*entities.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *repoMock) CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Event), args.Error(1)
}

func (m *repoMock) PlatformAnalytics(ctx context.Context, topLimit int) (entities.PlatformAnalytics, error) {
	args := m.Called(ctx, topLimit)
	return args.Get(0).(entities.PlatformAnalytics), args.Error(1)
}

var testAuth = config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour, Issuer: "hackathon-test"}

type env struct {
	uc     *Usecase
	store  *memory.Store
	drafts *drafts.Store
	now    time.Time
}

func (e *env) advance(d time.Duration) { e.now = e.now.Add(d) }

func newEnv(t *testing.T) *env {
	t.Helper()
	log := zap.NewNop().Sugar()
	e := &env{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return e.now }
	e.store = memory.New(log, memory.WithClock(clock))
	e.drafts = drafts.New(log, 16, 30*time.Minute).WithClock(clock)
	e.uc = New(log, context.Background(), e.store, e.drafts, time.Second, testAuth)
	e.uc.now = clock
	return e
}

func validEvent(organizerID string) entities.Event {
	return entities.Event{
		Title:       "Spring Jam",
		OrganizerID: organizerID,
		StartDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
	}
}

func fieldPaths(t *testing.T, err error) []string {
	t.Helper()
	var verr *entities.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	paths := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		paths = append(paths, f.Path)
	}
	return paths
}

func TestUsecase_CreateEventValidation(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, nil, time.Second, testAuth)

	_, err := uc.CreateEvent(context.Background(), entities.Event{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	paths := fieldPaths(t, err)
	require.Contains(t, paths, "title")
	require.Contains(t, paths, "organizerId")
	repo.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestUsecase_CreateEventDateRules(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, nil, time.Second, testAuth)

	e := validEvent("u1")
	e.EndDate = e.StartDate.Add(-time.Hour)
	late := e.StartDate.Add(72 * time.Hour)
	e.SubmissionDeadline = &late
	e.MinTeamSize, e.MaxTeamSize = 5, 2

	_, err := uc.CreateEvent(context.Background(), e)
	paths := fieldPaths(t, err)
	require.ElementsMatch(t, []string{"endDate", "submissionDeadline", "minTeamSize"}, paths)
	repo.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything)
}

func TestUsecase_CreateEventPicksFreeSlug(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, nil, time.Second, testAuth)

	repo.On("GetUser", mock.Anything, "u1").Return(&entities.User{ID: "u1"}, nil)
	repo.On("GetEventBySlug", mock.Anything, "spring-jam").Return(&entities.Event{ID: "taken"}, nil)
	repo.On("GetEventBySlug", mock.Anything, "spring-jam-2").Return(nil, entities.ErrEventNotFound)
	repo.On("CreateEvent", mock.Anything, mock.MatchedBy(func(e entities.Event) bool {
		return e.Slug == "spring-jam-2" &&
			e.Status == entities.EventDraft &&
			e.Format == entities.FormatOnline &&
			e.MinTeamSize == 1 && e.MaxTeamSize == 4
	})).Return(&entities.Event{ID: "e1", Slug: "spring-jam-2"}, nil)

	res, err := uc.CreateEvent(context.Background(), validEvent("u1"))
	require.NoError(t, err)
	require.Equal(t, "spring-jam-2", res.Slug)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateEventUnknownOrganizer(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, nil, time.Second, testAuth)

	repo.On("GetUser", mock.Anything, "ghost").Return(nil, entities.ErrUserNotFound)

	_, err := uc.CreateEvent(context.Background(), validEvent("ghost"))
	require.ErrorIs(t, err, entities.ErrNotFound)
	repo.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "spring-build-weekend-2026", slugify("  Spring Build: Weekend 2026! "))
	require.Equal(t, "event", slugify("!!!"))
}

func TestUsecase_PlatformAnalyticsTop(t *testing.T) {
	repo := &repoMock{}
	uc := New(zap.NewNop().Sugar(), context.Background(), repo, nil, time.Second, testAuth)

	repo.On("PlatformAnalytics", mock.Anything, 5).Return(entities.PlatformAnalytics{TotalUsers: 3}, nil)

	res, err := uc.PlatformAnalytics(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, 3, res.TotalUsers)

	_, err = uc.PlatformAnalytics(context.Background(), 1000)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNumberOfCalls(t, "PlatformAnalytics", 1)
}

func TestUsecase_RegisterLoginAndParse(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.uc.Register(ctx, entities.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "correct-horse", Role: entities.RoleOrganizer,
	})
	require.NoError(t, err)
	require.Equal(t, entities.RoleOrganizer, res.User.Role)
	require.Empty(t, res.User.PasswordHash)

	login, err := e.uc.Login(ctx, entities.LoginInput{Login: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	p, err := e.uc.ParseToken(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, res.User.ID, p.UserID)
	require.Equal(t, entities.RoleOrganizer, p.Role)

	_, err = e.uc.Login(ctx, entities.LoginInput{Login: "alice", Password: "wrong-password"})
	require.ErrorIs(t, err, entities.ErrUnauthorized)
	_, err = e.uc.Login(ctx, entities.LoginInput{Login: "nobody", Password: "whatever1"})
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_ParseTokenRejectsForeignSecret(t *testing.T) {
	e := newEnv(t)
	res, err := e.uc.Register(context.Background(), entities.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "long-enough",
	})
	require.NoError(t, err)

	other := New(zap.NewNop().Sugar(), context.Background(), e.store, e.drafts, time.Second,
		config.AuthConfig{JWTSecret: "another-secret", TokenTTL: time.Hour, Issuer: testAuth.Issuer})
	_, err = other.ParseToken(context.Background(), res.Token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_RegisterCannotPickAdmin(t *testing.T) {
	e := newEnv(t)
	_, err := e.uc.Register(context.Background(), entities.RegisterInput{
		Username: "mallory", Email: "mallory@example.com", Password: "long-enough", Role: entities.RoleAdmin,
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestUsecase_RolesCannotBeSelfAssigned(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	for _, role := range []entities.UserRole{entities.RoleAdmin, entities.RoleJudge} {
		_, err := e.uc.CreateUser(ctx, entities.User{Username: "eve" + string(role), Email: string(role) + "@example.com", Role: role})
		require.ErrorIs(t, err, entities.ErrInvalidArgument)
		require.Equal(t, []string{"role"}, fieldPaths(t, err))
	}

	user, err := e.uc.CreateUser(ctx, entities.User{Username: "mallory", Email: "mallory@example.com"})
	require.NoError(t, err)
	admin := entities.RoleAdmin
	_, err = e.uc.UpdateUser(ctx, user.ID, entities.UserPatch{Role: &admin})
	require.Equal(t, []string{"role"}, fieldPaths(t, err))

	got, err := e.uc.User(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entities.RoleParticipant, got.Role)
}

func TestUsecase_ParseTokenFollowsAccount(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res, err := e.uc.Register(ctx, entities.RegisterInput{
		Username: "dana", Email: "dana@example.com", Password: "long-enough", Role: entities.RoleOrganizer,
	})
	require.NoError(t, err)

	demoted := entities.RoleParticipant
	_, err = e.store.UpdateUser(ctx, res.User.ID, entities.UserPatch{Role: &demoted})
	require.NoError(t, err)
	p, err := e.uc.ParseToken(ctx, res.Token)
	require.NoError(t, err)
	require.Equal(t, entities.RoleParticipant, p.Role)

	require.NoError(t, e.uc.DeleteUser(ctx, res.User.ID))
	_, err = e.uc.ParseToken(ctx, res.Token)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestUsecase_ScoreSubmissionJudgeRules(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	org, err := e.uc.CreateUser(ctx, entities.User{Username: "org", Email: "org@example.com"})
	require.NoError(t, err)
	captain, err := e.uc.CreateUser(ctx, entities.User{Username: "cap", Email: "cap@example.com"})
	require.NoError(t, err)
	ev, err := e.uc.CreateEvent(ctx, validEvent(org.ID))
	require.NoError(t, err)
	other, err := e.uc.CreateEvent(ctx, validEvent(org.ID))
	require.NoError(t, err)
	require.Equal(t, "spring-jam-2", other.Slug)

	team, err := e.uc.CreateEventTeam(ctx, ev.ID, entities.EventTeam{Name: "Gophers", CaptainID: captain.ID})
	require.NoError(t, err)
	sub, err := e.uc.CreateEventSubmission(ctx, ev.ID, entities.EventSubmission{TeamID: team.ID, Title: "Tiny CDN"})
	require.NoError(t, err)

	pool, err := e.uc.CreateJudge(ctx, entities.Judge{Name: "Pat Pool", Email: "pat@example.com"})
	require.NoError(t, err)
	elsewhere, err := e.uc.CreateJudge(ctx, entities.Judge{Name: "Eli Else", Email: "eli@example.com", EventID: other.ID})
	require.NoError(t, err)

	criteria := []entities.CriterionScore{{Name: "impact", Score: 8, MaxScore: 10}, {Name: "polish", Score: 6, MaxScore: 10}}

	_, err = e.uc.ScoreSubmission(ctx, ev.ID, sub.ID, entities.JudgingScore{JudgeID: elsewhere.ID, Criteria: criteria})
	require.ErrorIs(t, err, entities.ErrForbidden)

	_, err = e.uc.ScoreSubmission(ctx, ev.ID, sub.ID, entities.JudgingScore{
		JudgeID:  pool.ID,
		Criteria: []entities.CriterionScore{{Name: "impact", Score: 11, MaxScore: 10}},
	})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	score, err := e.uc.ScoreSubmission(ctx, ev.ID, sub.ID, entities.JudgingScore{JudgeID: pool.ID, Criteria: criteria})
	require.NoError(t, err)
	require.Equal(t, 14.0, score.TotalScore)

	_, err = e.uc.DeactivateJudge(ctx, pool.ID)
	require.NoError(t, err)
	_, err = e.uc.ScoreSubmission(ctx, ev.ID, sub.ID, entities.JudgingScore{JudgeID: pool.ID, Criteria: criteria})
	require.ErrorIs(t, err, entities.ErrForbidden)

	board, err := e.uc.Leaderboard(ctx, ev.ID, 0)
	require.NoError(t, err)
	require.Len(t, board, 1)
	require.Equal(t, 14.0, board[0].AverageScore)
}

func TestUsecase_CreateEventSubmissionUnknownTrack(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	org, err := e.uc.CreateUser(ctx, entities.User{Username: "org", Email: "org@example.com"})
	require.NoError(t, err)
	ev := validEvent(org.ID)
	ev.Tracks = []entities.Track{{Name: "ai"}, {Name: "climate"}}
	created, err := e.uc.CreateEvent(ctx, ev)
	require.NoError(t, err)
	team, err := e.uc.CreateEventTeam(ctx, created.ID, entities.EventTeam{Name: "Gophers", CaptainID: org.ID})
	require.NoError(t, err)

	_, err = e.uc.CreateEventSubmission(ctx, created.ID, entities.EventSubmission{TeamID: team.ID, Title: "Bot", Track: "games"})
	require.Equal(t, []string{"track"}, fieldPaths(t, err))
}

func TestWizard_StepsAdvanceAndValidateOnlyCurrentStep(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	d, err := e.uc.StartDraft(ctx, "", false)
	require.NoError(t, err)
	require.Equal(t, 0, d.Step)

	_, err = e.uc.SaveStep(ctx, d.ID, 2, entities.ApplicationAnswers{})
	require.ErrorIs(t, err, entities.ErrStepOutOfOrder)

	_, err = e.uc.SaveStep(ctx, d.ID, 0, entities.ApplicationAnswers{FullName: "J", Email: "not-an-email"})
	require.ElementsMatch(t, []string{"fullName", "email"}, fieldPaths(t, err))

	d, err = e.uc.SaveStep(ctx, d.ID, 0, entities.ApplicationAnswers{FullName: "Jordan Lee", Email: "jordan@example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, d.Step)

	d, err = e.uc.SaveStep(ctx, d.ID, 1, entities.ApplicationAnswers{Company: "Acme", JobTitle: "Engineer", YearsExperience: 5})
	require.NoError(t, err)
	require.Equal(t, 2, d.Step)
	require.Equal(t, "Jordan Lee", d.Answers.FullName)

	_, err = e.uc.SaveStep(ctx, d.ID, 2, entities.ApplicationAnswers{Expertise: []string{"go"}, Bio: "too short"})
	require.Equal(t, []string{"bio"}, fieldPaths(t, err))

	d, err = e.uc.BackStep(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, 1, d.Step)

	d, err = e.uc.SaveStep(ctx, d.ID, 0, entities.ApplicationAnswers{FullName: "Jordan Q. Lee", Email: "jordan@example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, d.Step, "saving an earlier step keeps progress")

	_, err = e.uc.SubmitDraft(ctx, d.ID)
	paths := fieldPaths(t, err)
	require.Contains(t, paths, "bio")
	require.Contains(t, paths, "motivation")
	require.Contains(t, paths, "agreeToTerms")
}

func TestWizard_BackStopsAtFirstStep(t *testing.T) {
	e := newEnv(t)
	d, err := e.uc.StartDraft(context.Background(), "", false)
	require.NoError(t, err)

	d, err = e.uc.BackStep(context.Background(), d.ID)
	require.NoError(t, err)
	require.Equal(t, 0, d.Step)

	_, err = e.uc.SaveStep(context.Background(), d.ID, 9, entities.ApplicationAnswers{})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestWizard_TestModeSkipsValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	d, err := e.uc.StartDraft(ctx, "", true)
	require.NoError(t, err)
	require.NotEmpty(t, d.Answers.FullName)
	require.True(t, d.Answers.AgreeToTerms)

	d, err = e.uc.SaveStep(ctx, d.ID, 0, entities.ApplicationAnswers{FullName: "X"})
	require.NoError(t, err)
	require.Equal(t, "X", d.Answers.FullName)

	app, err := e.uc.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	require.True(t, app.TestMode)
	require.Equal(t, entities.ApplicationSubmitted, app.Status)

	_, err = e.uc.Draft(ctx, d.ID)
	require.ErrorIs(t, err, entities.ErrDraftNotFound)
}

func TestWizard_ExpiredDraftIsRejected(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	d, err := e.uc.StartDraft(ctx, "", false)
	require.NoError(t, err)

	e.advance(31 * time.Minute)
	_, err = e.uc.SaveStep(ctx, d.ID, 0, entities.ApplicationAnswers{FullName: "Jordan Lee", Email: "jordan@example.com"})
	require.ErrorIs(t, err, entities.ErrDraftExpired)
}

func TestApplications_ApproveCreatesJudgeAndPromotes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	user, err := e.uc.CreateUser(ctx, entities.User{Username: "jordan", Email: "jordan@example.com"})
	require.NoError(t, err)

	d, err := e.uc.StartDraft(ctx, user.ID, true)
	require.NoError(t, err)
	app, err := e.uc.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)

	approved, err := e.uc.ApproveApplication(ctx, app.ID, entities.ReviewInput{Note: "welcome"})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationApproved, approved.Status)
	require.NotEmpty(t, approved.JudgeID)
	require.NotNil(t, approved.ReviewedAt)

	judge, err := e.uc.Judge(ctx, approved.JudgeID)
	require.NoError(t, err)
	require.True(t, judge.IsActive)
	require.Equal(t, app.Answers.FullName, judge.Name)
	require.Empty(t, judge.EventID)

	promoted, err := e.uc.User(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entities.RoleJudge, promoted.Role)

	_, err = e.uc.RejectApplication(ctx, app.ID, entities.ReviewInput{})
	require.ErrorIs(t, err, entities.ErrApplicationReviewed)
	require.ErrorIs(t, err, entities.ErrConflict)

	st := entities.ApplicationApproved
	list, err := e.uc.Applications(ctx, &st)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestApplications_Reject(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	d, err := e.uc.StartDraft(ctx, "", true)
	require.NoError(t, err)
	app, err := e.uc.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)

	rejected, err := e.uc.RejectApplication(ctx, app.ID, entities.ReviewInput{Note: "not this season"})
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationRejected, rejected.Status)
	require.Equal(t, "not this season", rejected.ReviewNote)
	require.Empty(t, rejected.JudgeID)

	judges, err := e.uc.Judges(ctx, entities.JudgeFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Empty(t, judges)
}
