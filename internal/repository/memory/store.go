// Package memory implements the repository as map-backed collections guarded by
// a single RWMutex. Derived counters (participantCount, teamCount,
// submissionCount, eventsOrganized, eventsJoined, score aggregates) are kept in
// step with every create and delete; deletes never cascade.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshotter persists and restores whole-store snapshots.
type Snapshotter interface {
	OnStart(ctx context.Context) error
	OnStop(ctx context.Context) error
	LoadSnapshot(ctx context.Context) (*entities.Snapshot, error)
	SaveSnapshot(ctx context.Context, s entities.Snapshot) error
}

// Option configures a Store.
type Option func(*Store)

// WithSnapshotter loads state from snap on start, saves it every interval when
// changed, and once more on stop.
func WithSnapshotter(snap Snapshotter, interval time.Duration) Option {
	return func(s *Store) {
		s.snap = snap
		s.flushEvery = interval
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the in-memory repository.
type Store struct {
	mu  sync.RWMutex
	log *zap.SugaredLogger
	now func() time.Time

	users        map[string]entities.User
	events       map[string]entities.Event
	participants map[string]entities.EventParticipant
	eventTeams   map[string]entities.EventTeam
	eventSubs    map[string]entities.EventSubmission
	scores       map[string]entities.JudgingScore
	judges       map[string]entities.Judge
	sponsors     map[string]entities.EventSponsor
	content      map[string]entities.EventContent
	teams        map[string]entities.Team
	submissions  map[string]entities.Submission
	lfg          map[string]entities.LFGPost
	applications map[string]entities.JudgeApplication

	version atomic.Uint64
	saved   atomic.Uint64

	snap       Snapshotter
	flushEvery time.Duration
	stop       chan struct{}
	done       chan struct{}
}

// New creates an empty store.
func New(log *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		log: log.Named("repo.memory"),
		now: func() time.Time { return time.Now().UTC() },
	}
	s.reset()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) reset() {
	s.users = map[string]entities.User{}
	s.events = map[string]entities.Event{}
	s.participants = map[string]entities.EventParticipant{}
	s.eventTeams = map[string]entities.EventTeam{}
	s.eventSubs = map[string]entities.EventSubmission{}
	s.scores = map[string]entities.JudgingScore{}
	s.judges = map[string]entities.Judge{}
	s.sponsors = map[string]entities.EventSponsor{}
	s.content = map[string]entities.EventContent{}
	s.teams = map[string]entities.Team{}
	s.submissions = map[string]entities.Submission{}
	s.lfg = map[string]entities.LFGPost{}
	s.applications = map[string]entities.JudgeApplication{}
}

// OnStart restores the latest snapshot and starts the flush loop.
func (s *Store) OnStart(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	if err := s.snap.OnStart(ctx); err != nil {
		return fmt.Errorf("snapshot backend start: %w", err)
	}
	snapshot, err := s.snap.LoadSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	if snapshot != nil {
		s.Restore(*snapshot)
		s.log.Infow("snapshot restored", "taken_at", snapshot.TakenAt, "events", len(snapshot.Events), "users", len(snapshot.Users))
	}
	s.saved.Store(s.version.Load())

	if s.flushEvery > 0 {
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		go s.flushLoop()
	}
	return nil
}

// OnStop stops the flush loop, saves a final snapshot and closes the backend.
func (s *Store) OnStop(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	if s.stop != nil {
		close(s.stop)
		<-s.done
		s.stop = nil
	}
	err := s.Flush(ctx)
	if stopErr := s.snap.OnStop(ctx); stopErr != nil && err == nil {
		err = stopErr
	}
	return err
}

// Flush saves a snapshot when the store changed since the last save.
func (s *Store) Flush(ctx context.Context) error {
	if s.snap == nil {
		return nil
	}
	v := s.version.Load()
	if v == s.saved.Load() {
		return nil
	}
	if err := s.snap.SaveSnapshot(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.saved.Store(v)
	s.log.Debugw("snapshot saved", "version", v)
	return nil
}

func (s *Store) flushLoop() {
	defer close(s.done)
	ticker := time.NewTicker(s.flushEvery)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), s.flushEvery)
			if err := s.Flush(ctx); err != nil {
				s.log.Errorw("periodic snapshot failed", "error", err)
			}
			cancel()
		}
	}
}

// Snapshot exports a deep copy of the whole state.
func (s *Store) Snapshot() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := entities.Snapshot{TakenAt: s.now(), Passwords: map[string]string{}}
	for _, u := range s.users {
		snap.Users = append(snap.Users, cloneUser(u))
		if u.PasswordHash != "" {
			snap.Passwords[u.ID] = u.PasswordHash
		}
	}
	for _, e := range s.events {
		snap.Events = append(snap.Events, cloneEvent(e))
	}
	for _, p := range s.participants {
		snap.Participants = append(snap.Participants, p)
	}
	for _, t := range s.eventTeams {
		snap.EventTeams = append(snap.EventTeams, cloneEventTeam(t))
	}
	for _, sub := range s.eventSubs {
		snap.EventSubs = append(snap.EventSubs, cloneEventSubmission(sub))
	}
	for _, sc := range s.scores {
		snap.Scores = append(snap.Scores, cloneScore(sc))
	}
	for _, j := range s.judges {
		snap.Judges = append(snap.Judges, cloneJudge(j))
	}
	for _, sp := range s.sponsors {
		snap.Sponsors = append(snap.Sponsors, sp)
	}
	for _, c := range s.content {
		snap.Content = append(snap.Content, c)
	}
	for _, t := range s.teams {
		snap.Teams = append(snap.Teams, cloneTeam(t))
	}
	for _, sub := range s.submissions {
		snap.Submissions = append(snap.Submissions, cloneSubmission(sub))
	}
	for _, p := range s.lfg {
		snap.LFGPosts = append(snap.LFGPosts, cloneLFG(p))
	}
	for _, a := range s.applications {
		snap.Applications = append(snap.Applications, cloneApplication(a))
	}
	return snap
}

// Restore replaces the whole state with the snapshot contents.
func (s *Store) Restore(snap entities.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	for _, u := range snap.Users {
		u = cloneUser(u)
		u.PasswordHash = snap.Passwords[u.ID]
		s.users[u.ID] = u
	}
	for _, e := range snap.Events {
		s.events[e.ID] = cloneEvent(e)
	}
	for _, p := range snap.Participants {
		s.participants[p.ID] = p
	}
	for _, t := range snap.EventTeams {
		s.eventTeams[t.ID] = cloneEventTeam(t)
	}
	for _, sub := range snap.EventSubs {
		s.eventSubs[sub.ID] = cloneEventSubmission(sub)
	}
	for _, sc := range snap.Scores {
		s.scores[sc.ID] = cloneScore(sc)
	}
	for _, j := range snap.Judges {
		s.judges[j.ID] = cloneJudge(j)
	}
	for _, sp := range snap.Sponsors {
		s.sponsors[sp.ID] = sp
	}
	for _, c := range snap.Content {
		s.content[c.ID] = c
	}
	for _, t := range snap.Teams {
		s.teams[t.ID] = cloneTeam(t)
	}
	for _, sub := range snap.Submissions {
		s.submissions[sub.ID] = cloneSubmission(sub)
	}
	for _, p := range snap.LFGPosts {
		s.lfg[p.ID] = cloneLFG(p)
	}
	for _, a := range snap.Applications {
		s.applications[a.ID] = cloneApplication(a)
	}
	s.changed()
}

// changed bumps the version so the next flush writes a snapshot.
func (s *Store) changed() { s.version.Add(1) }

func newID() string { return uuid.NewString() }

// decr lowers a counter without letting it go negative.
func decr(n int) int {
	if n > 0 {
		return n - 1
	}
	return 0
}

func cloneStrings(src []string) []string {
	if src == nil {
		return []string{}
	}
	return append([]string(nil), src...)
}

func containsString(list []string, target string) bool {
	for _, v := range list {
		if v == target {
			return true
		}
	}
	return false
}

func filterOut(list []string, target string) []string {
	res := make([]string, 0, len(list))
	for _, v := range list {
		if v != target {
			res = append(res, v)
		}
	}
	return res
}

// sortByCreated orders records oldest first, ties broken by id.
func sortByCreated[T any](list []T, created func(T) time.Time, id func(T) string) {
	sort.Slice(list, func(i, j int) bool {
		ci, cj := created(list[i]), created(list[j])
		if !ci.Equal(cj) {
			return ci.Before(cj)
		}
		return id(list[i]) < id(list[j])
	})
}
