// Package drafts keeps unfinished judge applications in a bounded, expiring cache.
package drafts

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// evictionGrace keeps expired drafts around long enough to report them as
// expired rather than missing.
const evictionGrace = time.Hour

// Store is an LRU of drafts keyed by id.
type Store struct {
	log   *zap.SugaredLogger
	cache *expirable.LRU[string, entities.ApplicationDraft]
	ttl   time.Duration
	now   func() time.Time
}

// New creates a store holding at most capacity drafts, each valid for ttl after its last save.
func New(log *zap.SugaredLogger, capacity int, ttl time.Duration) *Store {
	log = log.Named("repo.drafts")
	onEvict := func(id string, _ entities.ApplicationDraft) {
		log.Debugw("draft evicted", "draft_id", id)
	}
	return &Store{
		log:   log,
		cache: expirable.NewLRU[string, entities.ApplicationDraft](capacity, onEvict, ttl+evictionGrace),
		ttl:   ttl,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the clock used for savedAt/expiresAt.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// SaveDraft stores d, assigning an id when empty and pushing expiresAt forward.
func (s *Store) SaveDraft(_ context.Context, d entities.ApplicationDraft) (*entities.ApplicationDraft, error) {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.SavedAt = s.now()
	d.ExpiresAt = d.SavedAt.Add(s.ttl)
	d.Answers.Expertise = append([]string(nil), d.Answers.Expertise...)
	s.cache.Add(d.ID, d)

	s.log.Debugw("draft saved", "draft_id", d.ID, "step", d.Step, "expires_at", d.ExpiresAt)
	res := d
	res.Answers.Expertise = append([]string(nil), d.Answers.Expertise...)
	return &res, nil
}

// GetDraft returns ErrDraftNotFound for unknown ids and ErrDraftExpired once
// expiresAt has passed.
func (s *Store) GetDraft(_ context.Context, id string) (*entities.ApplicationDraft, error) {
	d, ok := s.cache.Get(id)
	if !ok {
		return nil, entities.ErrDraftNotFound
	}
	if d.Expired(s.now()) {
		s.cache.Remove(id)
		return nil, entities.ErrDraftExpired
	}
	d.Answers.Expertise = append([]string(nil), d.Answers.Expertise...)
	return &d, nil
}

// DeleteDraft removes a draft.
func (s *Store) DeleteDraft(_ context.Context, id string) error {
	if !s.cache.Remove(id) {
		return entities.ErrDraftNotFound
	}
	return nil
}

// Len reports how many drafts are held.
func (s *Store) Len() int { return s.cache.Len() }
