package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestStore(opts ...Option) *Store {
	c := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	return New(zap.NewNop().Sugar(), append([]Option{WithClock(c.now)}, opts...)...)
}

func mustUser(t *testing.T, s *Store, name string) *entities.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), entities.User{Username: name, Email: name + "@example.com"})
	require.NoError(t, err)
	return u
}

func mustEvent(t *testing.T, s *Store, organizerID, slug string, mutate ...func(*entities.Event)) *entities.Event {
	t.Helper()
	e := entities.Event{
		Title:       "Event " + slug,
		Slug:        slug,
		OrganizerID: organizerID,
		Status:      entities.EventPublished,
		StartDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC),
	}
	for _, m := range mutate {
		m(&e)
	}
	res, err := s.CreateEvent(context.Background(), e)
	require.NoError(t, err)
	return res
}

func TestCreateUserRejectsDuplicates(t *testing.T) {
	s := newTestStore()
	mustUser(t, s, "alice")

	_, err := s.CreateUser(context.Background(), entities.User{Username: "ALICE", Email: "other@example.com"})
	require.ErrorIs(t, err, entities.ErrUserExists)
	require.ErrorIs(t, err, entities.ErrConflict)

	_, err = s.CreateUser(context.Background(), entities.User{Username: "bob", Email: "Alice@example.com"})
	require.ErrorIs(t, err, entities.ErrUserExists)
}

func TestGetUserByLogin(t *testing.T) {
	s := newTestStore()
	u := mustUser(t, s, "alice")

	got, err := s.GetUserByLogin(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)

	_, err = s.GetUserByLogin(context.Background(), "nobody")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestEventCreateAndDeleteTrackOrganizerCount(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	org := mustUser(t, s, "organizer")

	e := mustEvent(t, s, org.ID, "spring")
	u, err := s.GetUser(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, 1, u.EventsOrganized)

	require.NoError(t, s.DeleteEvent(ctx, e.ID))
	u, err = s.GetUser(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, 0, u.EventsOrganized)

	_, err = s.GetEvent(ctx, e.ID)
	require.ErrorIs(t, err, entities.ErrEventNotFound)
}

func TestEventSlugUnique(t *testing.T) {
	s := newTestStore()
	mustEvent(t, s, "", "spring")

	_, err := s.CreateEvent(context.Background(), entities.Event{Title: "again", Slug: "spring"})
	require.ErrorIs(t, err, entities.ErrSlugExists)
}

func TestListEventsFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	mustEvent(t, s, "org-1", "a", func(e *entities.Event) { e.IsPublic = true })
	mustEvent(t, s, "org-2", "b", func(e *entities.Event) { e.Status = entities.EventDraft })

	public, err := s.ListEvents(ctx, entities.EventFilter{PublicOnly: true})
	require.NoError(t, err)
	require.Len(t, public, 1)
	require.Equal(t, "a", public[0].Slug)

	draft := entities.EventDraft
	drafts, err := s.ListEvents(ctx, entities.EventFilter{Status: &draft})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.Equal(t, "b", drafts[0].Slug)

	byOrg, err := s.ListEvents(ctx, entities.EventFilter{OrganizerID: "org-1"})
	require.NoError(t, err)
	require.Len(t, byOrg, 1)
}

func TestParticipantCounters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	u := mustUser(t, s, "alice")
	e := mustEvent(t, s, "", "spring")

	p, err := s.RegisterParticipant(ctx, entities.EventParticipant{EventID: e.ID, UserID: u.ID})
	require.NoError(t, err)
	require.Equal(t, entities.ParticipantRegistered, p.Status)

	got, err := s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.ParticipantCount)
	user, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, 1, user.EventsJoined)

	_, err = s.RegisterParticipant(ctx, entities.EventParticipant{EventID: e.ID, UserID: u.ID})
	require.ErrorIs(t, err, entities.ErrAlreadyRegistered)

	require.NoError(t, s.RemoveParticipant(ctx, e.ID, p.ID))
	got, err = s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.ParticipantCount)

	require.ErrorIs(t, s.RemoveParticipant(ctx, e.ID, p.ID), entities.ErrParticipantNotFound)
	got, err = s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.ParticipantCount)
}

func TestParticipantCountNeverNegative(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring")
	p, err := s.RegisterParticipant(ctx, entities.EventParticipant{EventID: e.ID, UserID: "ghost"})
	require.NoError(t, err)

	// simulate drift
	s.mu.Lock()
	ev := s.events[e.ID]
	ev.ParticipantCount = 0
	s.events[e.ID] = ev
	s.mu.Unlock()

	require.NoError(t, s.RemoveParticipant(ctx, e.ID, p.ID))
	got, err := s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.ParticipantCount)
}

func TestRegisterParticipantEventFull(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "tiny", func(e *entities.Event) { e.MaxParticipants = 1 })

	_, err := s.RegisterParticipant(ctx, entities.EventParticipant{EventID: e.ID, UserID: "u1"})
	require.NoError(t, err)
	_, err = s.RegisterParticipant(ctx, entities.EventParticipant{EventID: e.ID, UserID: "u2"})
	require.ErrorIs(t, err, entities.ErrEventFull)

	_, err = s.RegisterParticipant(ctx, entities.EventParticipant{EventID: "missing", UserID: "u1"})
	require.ErrorIs(t, err, entities.ErrEventNotFound)
}

func TestEventTeamMembership(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring", func(e *entities.Event) { e.MaxTeamSize = 2 })

	team, err := s.CreateEventTeam(ctx, entities.EventTeam{EventID: e.ID, Name: "Rockets", CaptainID: "u1"})
	require.NoError(t, err)
	require.Equal(t, []string{"u1"}, team.MemberIDs)

	team, err = s.AddTeamMember(ctx, e.ID, team.ID, "u2")
	require.NoError(t, err)
	require.Equal(t, []string{"u1", "u2"}, team.MemberIDs)

	_, err = s.AddTeamMember(ctx, e.ID, team.ID, "u3")
	require.ErrorIs(t, err, entities.ErrTeamFull)
	_, err = s.AddTeamMember(ctx, e.ID, team.ID, "u2")
	require.ErrorIs(t, err, entities.ErrAlreadyMember)

	team, err = s.RemoveTeamMember(ctx, e.ID, team.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, "u2", team.CaptainID)

	got, err := s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.TeamCount)

	require.NoError(t, s.DeleteEventTeam(ctx, e.ID, team.ID))
	got, err = s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.TeamCount)
}

func TestEventSubmissionCountAndNoCascade(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring")

	sub, err := s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: e.ID, TeamID: "t1", Title: "Widget"})
	require.NoError(t, err)
	require.Equal(t, entities.SubmissionSubmitted, sub.Status)

	got, err := s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.SubmissionCount)

	_, err = s.CreateScore(ctx, entities.JudgingScore{
		SubmissionID: sub.ID,
		JudgeID:      "j1",
		Criteria:     []entities.CriterionScore{{Name: "impact", Score: 7, MaxScore: 10}},
	})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEventSubmission(ctx, e.ID, sub.ID))
	got, err = s.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.SubmissionCount)

	scores, err := s.ListEventScores(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, scores, 1)
}

func TestScoresRecomputeAggregate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring")
	sub, err := s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: e.ID, TeamID: "t1", Title: "Widget"})
	require.NoError(t, err)

	first, err := s.CreateScore(ctx, entities.JudgingScore{
		SubmissionID: sub.ID,
		JudgeID:      "j1",
		Criteria: []entities.CriterionScore{
			{Name: "impact", Score: 8, MaxScore: 10},
			{Name: "design", Score: 6, MaxScore: 10},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 14.0, first.TotalScore)
	require.Equal(t, e.ID, first.EventID)

	_, err = s.CreateScore(ctx, entities.JudgingScore{
		SubmissionID: sub.ID,
		JudgeID:      "j2",
		Criteria:     []entities.CriterionScore{{Name: "impact", Score: 10, MaxScore: 10}},
	})
	require.NoError(t, err)

	got, err := s.GetEventSubmission(ctx, e.ID, sub.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.ScoreCount)
	require.Equal(t, 24.0, got.TotalScore)
	require.Equal(t, 12.0, got.AverageScore)

	_, err = s.CreateScore(ctx, entities.JudgingScore{SubmissionID: sub.ID, JudgeID: "j1"})
	require.ErrorIs(t, err, entities.ErrAlreadyScored)

	criteria := []entities.CriterionScore{{Name: "impact", Score: 2, MaxScore: 10}}
	_, err = s.UpdateScore(ctx, first.ID, entities.ScorePatch{Criteria: &criteria})
	require.NoError(t, err)
	got, err = s.GetEventSubmission(ctx, e.ID, sub.ID)
	require.NoError(t, err)
	require.Equal(t, 6.0, got.AverageScore)

	require.NoError(t, s.DeleteScore(ctx, first.ID))
	got, err = s.GetEventSubmission(ctx, e.ID, sub.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.ScoreCount)
	require.Equal(t, 10.0, got.AverageScore)
}

func TestJudgeSoftDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	j, err := s.CreateJudge(ctx, entities.Judge{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	require.True(t, j.IsActive)

	j, err = s.DeactivateJudge(ctx, j.ID)
	require.NoError(t, err)
	require.False(t, j.IsActive)

	active, err := s.ListJudges(ctx, entities.JudgeFilter{})
	require.NoError(t, err)
	require.Empty(t, active)

	all, err := s.ListJudges(ctx, entities.JudgeFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, all, 1)

	got, err := s.GetJudge(ctx, j.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)
}

func TestSponsorSoftDeleteAndOrdering(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring")

	bronze, err := s.CreateSponsor(ctx, entities.EventSponsor{EventID: e.ID, Name: "Acme", Tier: entities.TierBronze})
	require.NoError(t, err)
	_, err = s.CreateSponsor(ctx, entities.EventSponsor{EventID: e.ID, Name: "Zeta", Tier: entities.TierPlatinum})
	require.NoError(t, err)

	list, err := s.ListSponsors(ctx, e.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Zeta", list[0].Name)

	_, err = s.DeactivateSponsor(ctx, bronze.ID)
	require.NoError(t, err)

	list, err = s.ListSponsors(ctx, e.ID, false)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = s.ListSponsors(ctx, e.ID, true)
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func TestContentOrderingAndDrafts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring")

	_, err := s.CreateContent(ctx, entities.EventContent{EventID: e.ID, Type: entities.ContentFAQ, Title: "second", Position: 2, IsPublished: true})
	require.NoError(t, err)
	_, err = s.CreateContent(ctx, entities.EventContent{EventID: e.ID, Type: entities.ContentRule, Title: "first", Position: 1, IsPublished: true})
	require.NoError(t, err)
	_, err = s.CreateContent(ctx, entities.EventContent{EventID: e.ID, Type: entities.ContentSchedule, Title: "hidden", Position: 0})
	require.NoError(t, err)

	published, err := s.ListContent(ctx, e.ID, false)
	require.NoError(t, err)
	require.Len(t, published, 2)
	require.Equal(t, "first", published[0].Title)

	all, err := s.ListContent(ctx, e.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "hidden", all[0].Title)
}

func TestSubmissionStampsSubmittedAt(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	sub, err := s.CreateSubmission(ctx, entities.Submission{Title: "Widget"})
	require.NoError(t, err)
	require.Equal(t, entities.SubmissionDraft, sub.Status)
	require.Nil(t, sub.SubmittedAt)

	status := entities.SubmissionSubmitted
	sub, err = s.UpdateSubmission(ctx, sub.ID, entities.SubmissionPatch{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, sub.SubmittedAt)
}

func TestLFGFilters(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	p, err := s.CreateLFGPost(ctx, entities.LFGPost{UserID: "u1", Kind: entities.LookingForTeam, Title: "Backend dev"})
	require.NoError(t, err)
	_, err = s.CreateLFGPost(ctx, entities.LFGPost{UserID: "u2", Kind: entities.LookingForMembers, Title: "Need designer"})
	require.NoError(t, err)

	closed := false
	_, err = s.UpdateLFGPost(ctx, p.ID, entities.LFGPatch{IsOpen: &closed})
	require.NoError(t, err)

	open, err := s.ListLFGPosts(ctx, entities.LFGFilter{OpenOnly: true})
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, "Need designer", open[0].Title)

	kind := entities.LookingForTeam
	byKind, err := s.ListLFGPosts(ctx, entities.LFGFilter{Kind: &kind})
	require.NoError(t, err)
	require.Len(t, byKind, 1)
}

func TestLeaderboardDeterministic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	e := mustEvent(t, s, "", "spring")

	score := func(subID, judge string, v float64) {
		_, err := s.CreateScore(ctx, entities.JudgingScore{
			SubmissionID: subID,
			JudgeID:      judge,
			Criteria:     []entities.CriterionScore{{Name: "overall", Score: v, MaxScore: 10}},
		})
		require.NoError(t, err)
	}

	early, err := s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: e.ID, TeamID: "t1", Title: "Early"})
	require.NoError(t, err)
	late, err := s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: e.ID, TeamID: "t2", Title: "Late"})
	require.NoError(t, err)
	best, err := s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: e.ID, TeamID: "t3", Title: "Best"})
	require.NoError(t, err)
	_, err = s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: e.ID, TeamID: "t4", Title: "Unscored"})
	require.NoError(t, err)

	score(late.ID, "j1", 7)
	score(early.ID, "j1", 7)
	score(best.ID, "j1", 9)

	board, err := s.Leaderboard(ctx, e.ID, 0)
	require.NoError(t, err)
	require.Len(t, board, 3)
	require.Equal(t, best.ID, board[0].SubmissionID)
	require.Equal(t, early.ID, board[1].SubmissionID)
	require.Equal(t, late.ID, board[2].SubmissionID)
	require.Equal(t, 3, board[2].Rank)

	top, err := s.Leaderboard(ctx, e.ID, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	org := mustUser(t, s, "organizer")
	big := mustEvent(t, s, org.ID, "big")
	small := mustEvent(t, s, org.ID, "small", func(e *entities.Event) { e.Status = entities.EventDraft })

	for _, uid := range []string{"u1", "u2"} {
		_, err := s.RegisterParticipant(ctx, entities.EventParticipant{EventID: big.ID, UserID: uid})
		require.NoError(t, err)
	}
	_, err := s.RegisterParticipant(ctx, entities.EventParticipant{EventID: small.ID, UserID: "u1"})
	require.NoError(t, err)

	sub, err := s.CreateEventSubmission(ctx, entities.EventSubmission{EventID: big.ID, TeamID: "t1", Title: "Widget", Track: "ai"})
	require.NoError(t, err)
	_, err = s.CreateScore(ctx, entities.JudgingScore{
		SubmissionID: sub.ID,
		JudgeID:      "j1",
		Criteria:     []entities.CriterionScore{{Name: "overall", Score: 8, MaxScore: 10}},
	})
	require.NoError(t, err)
	j, err := s.CreateJudge(ctx, entities.Judge{Name: "Grace", Email: "grace@example.com"})
	require.NoError(t, err)
	_, err = s.CreateJudge(ctx, entities.Judge{Name: "Linus", Email: "linus@example.com"})
	require.NoError(t, err)
	_, err = s.DeactivateJudge(ctx, j.ID)
	require.NoError(t, err)

	platform, err := s.PlatformAnalytics(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, platform.TotalUsers)
	require.Equal(t, 2, platform.TotalEvents)
	require.Equal(t, 1, platform.ActiveJudges)
	require.Equal(t, 3, platform.Participants)
	require.Len(t, platform.TopEvents, 1)
	require.Equal(t, big.ID, platform.TopEvents[0].EventID)
	require.Len(t, platform.EventsByStatus, len(entities.EventStatuses))

	ev, err := s.EventAnalytics(ctx, big.ID)
	require.NoError(t, err)
	require.Equal(t, 2, ev.ParticipantCount)
	require.Equal(t, 1, ev.SubmissionCount)
	require.Equal(t, 1, ev.ScoredSubmissions)
	require.Equal(t, 8.0, ev.AverageScore)
	require.Equal(t, []entities.TrackCount{{Track: "ai", Count: 1}}, ev.SubmissionsByTrack)

	_, err = s.EventAnalytics(ctx, "missing")
	require.ErrorIs(t, err, entities.ErrEventNotFound)
}

func TestApplicationDecidedOnce(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	app, err := s.CreateApplication(ctx, entities.JudgeApplication{
		Answers: entities.ApplicationAnswers{FullName: "Jordan Lee", Email: "jordan@example.com"},
	})
	require.NoError(t, err)

	const callers = 32
	var (
		wg       sync.WaitGroup
		start    = make(chan struct{})
		approved = make(chan string, callers)
		errs     = make(chan error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, judge, err := s.ApproveApplication(ctx, *app, entities.Judge{Name: "Jordan Lee", Email: "jordan@example.com"})
			if err != nil {
				errs <- err
				return
			}
			approved <- judge.ID
		}()
	}
	close(start)
	wg.Wait()
	close(approved)
	close(errs)

	require.Len(t, approved, 1)
	judgeID := <-approved
	for err := range errs {
		require.ErrorIs(t, err, entities.ErrApplicationReviewed)
	}
	judges, err := s.ListJudges(ctx, entities.JudgeFilter{IncludeInactive: true})
	require.NoError(t, err)
	require.Len(t, judges, 1)

	rejected := *app
	rejected.Status = entities.ApplicationRejected
	_, err = s.ReviewApplication(ctx, rejected)
	require.ErrorIs(t, err, entities.ErrApplicationReviewed)
	require.ErrorIs(t, err, entities.ErrConflict)

	got, err := s.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationApproved, got.Status)
	require.Equal(t, judgeID, got.JudgeID)
	require.NotNil(t, got.ReviewedAt)
}

func TestApproveApplicationUnknownEventCreatesNothing(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()
	app, err := s.CreateApplication(ctx, entities.JudgeApplication{})
	require.NoError(t, err)

	_, _, err = s.ApproveApplication(ctx, *app, entities.Judge{Name: "x", EventID: "nope"})
	require.ErrorIs(t, err, entities.ErrEventNotFound)

	got, err := s.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, entities.ApplicationSubmitted, got.Status)
}

func TestReturnedValuesAreCopies(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	team, err := s.CreateTeam(ctx, entities.Team{Name: "Rockets", LeaderID: "u1", Skills: []string{"go"}})
	require.NoError(t, err)

	team.Skills[0] = "mutated"
	got, err := s.GetTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, []string{"go"}, got.Skills)
}

type snapMock struct {
	mu     sync.Mutex
	loaded *entities.Snapshot
	saved  []entities.Snapshot
	fail   bool
}

func (m *snapMock) OnStart(context.Context) error { return nil }
func (m *snapMock) OnStop(context.Context) error  { return nil }

func (m *snapMock) LoadSnapshot(context.Context) (*entities.Snapshot, error) {
	return m.loaded, nil
}

func (m *snapMock) SaveSnapshot(_ context.Context, snap entities.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("disk full")
	}
	m.saved = append(m.saved, snap)
	return nil
}

func TestSnapshotRoundTripKeepsPasswords(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	u, err := s.CreateUser(ctx, entities.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash"})
	require.NoError(t, err)
	mustEvent(t, s, u.ID, "spring")

	snap := s.Snapshot()
	require.Equal(t, "hash", snap.Passwords[u.ID])

	restored := newTestStore()
	restored.Restore(snap)

	got, err := restored.GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "hash", got.PasswordHash)
	require.Equal(t, 1, got.EventsOrganized)

	ev, err := restored.GetEventBySlug(ctx, "spring")
	require.NoError(t, err)
	require.Equal(t, u.ID, ev.OrganizerID)
}

func TestSnapshotterLifecycle(t *testing.T) {
	ctx := context.Background()
	seed := newTestStore()
	mustUser(t, seed, "alice")
	snap := seed.Snapshot()

	backend := &snapMock{loaded: &snap}
	s := newTestStore(WithSnapshotter(backend, 0))
	require.NoError(t, s.OnStart(ctx))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)

	// nothing changed since load
	require.NoError(t, s.Flush(ctx))
	require.Empty(t, backend.saved)

	mustUser(t, s, "bob")
	require.NoError(t, s.OnStop(ctx))
	require.Len(t, backend.saved, 1)
	require.Len(t, backend.saved[0].Users, 2)
}

func TestFlushErrorKeepsDirty(t *testing.T) {
	ctx := context.Background()
	backend := &snapMock{fail: true}
	s := newTestStore(WithSnapshotter(backend, 0))
	require.NoError(t, s.OnStart(ctx))

	mustUser(t, s, "alice")
	require.Error(t, s.Flush(ctx))

	backend.fail = false
	require.NoError(t, s.Flush(ctx))
	require.Len(t, backend.saved, 1)
}
