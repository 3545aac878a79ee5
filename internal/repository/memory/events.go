package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateEvent inserts an event and bumps the organizer's eventsOrganized.
func (s *Store) CreateEvent(_ context.Context, e entities.Event) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.slugTaken(e.Slug, "") {
		return nil, entities.ErrSlugExists
	}

	now := s.now()
	e.ID = newID()
	e.ParticipantCount = 0
	e.TeamCount = 0
	e.SubmissionCount = 0
	e.CreatedAt = now
	e.UpdatedAt = now
	e = cloneEvent(e)
	s.events[e.ID] = e

	if organizer, ok := s.users[e.OrganizerID]; ok {
		organizer.EventsOrganized++
		s.users[organizer.ID] = organizer
	}
	s.changed()

	s.log.Infow("event created", "event_id", e.ID, "slug", e.Slug, "organizer_id", e.OrganizerID)
	res := cloneEvent(e)
	return &res, nil
}

// GetEvent fetches an event by id.
func (s *Store) GetEvent(_ context.Context, id string) (*entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	if !ok {
		return nil, entities.ErrEventNotFound
	}
	res := cloneEvent(e)
	return &res, nil
}

// GetEventBySlug fetches an event by slug.
func (s *Store) GetEventBySlug(_ context.Context, slug string) (*entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.events {
		if e.Slug == slug {
			res := cloneEvent(e)
			return &res, nil
		}
	}
	return nil, entities.ErrEventNotFound
}

// ListEvents returns events matching the filter ordered by start date.
func (s *Store) ListEvents(_ context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Event, 0)
	for _, e := range s.events {
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if filter.OrganizerID != "" && e.OrganizerID != filter.OrganizerID {
			continue
		}
		if filter.PublicOnly && !e.IsPublic {
			continue
		}
		res = append(res, cloneEvent(e))
	}
	sortByCreated(res, func(e entities.Event) time.Time { return e.StartDate }, func(e entities.Event) string { return e.ID })
	return res, nil
}

// UpdateEvent applies a partial update; the slug stays unique.
func (s *Store) UpdateEvent(_ context.Context, id string, patch entities.EventPatch) (*entities.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return nil, entities.ErrEventNotFound
	}
	if patch.Slug != nil && s.slugTaken(*patch.Slug, id) {
		return nil, entities.ErrSlugExists
	}
	patch.Apply(&e)
	e.UpdatedAt = s.now()
	e = cloneEvent(e)
	s.events[id] = e
	s.changed()

	res := cloneEvent(e)
	return &res, nil
}

// DeleteEvent hard-deletes an event and lowers the organizer's count. Child
// records (participants, teams, submissions, content) are left in place.
func (s *Store) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[id]
	if !ok {
		return entities.ErrEventNotFound
	}
	delete(s.events, id)
	if organizer, ok := s.users[e.OrganizerID]; ok {
		organizer.EventsOrganized = decr(organizer.EventsOrganized)
		s.users[organizer.ID] = organizer
	}
	s.changed()
	s.log.Infow("event deleted", "event_id", id)
	return nil
}

func (s *Store) slugTaken(slug, exceptID string) bool {
	if slug == "" {
		return false
	}
	for _, e := range s.events {
		if e.Slug == slug && e.ID != exceptID {
			return true
		}
	}
	return false
}

func cloneEvent(e entities.Event) entities.Event {
	e.Tracks = append([]entities.Track{}, e.Tracks...)
	e.Prizes = append([]entities.Prize{}, e.Prizes...)
	e.Tags = cloneStrings(e.Tags)
	if e.RegistrationDeadline != nil {
		d := *e.RegistrationDeadline
		e.RegistrationDeadline = &d
	}
	if e.SubmissionDeadline != nil {
		d := *e.SubmissionDeadline
		e.SubmissionDeadline = &d
	}
	return e
}
