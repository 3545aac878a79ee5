package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateEventSubmission inserts a project into an event and bumps submissionCount.
func (s *Store) CreateEventSubmission(_ context.Context, sub entities.EventSubmission) (*entities.EventSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[sub.EventID]
	if !ok {
		return nil, entities.ErrEventNotFound
	}

	now := s.now()
	sub.ID = newID()
	if sub.Status == "" {
		sub.Status = entities.SubmissionSubmitted
	}
	sub.ScoreCount = 0
	sub.TotalScore = 0
	sub.AverageScore = 0
	sub.SubmittedAt = now
	sub.UpdatedAt = now
	sub = cloneEventSubmission(sub)
	s.eventSubs[sub.ID] = sub

	e.SubmissionCount++
	s.events[e.ID] = e
	s.changed()

	s.log.Infow("event submission created", "event_id", sub.EventID, "submission_id", sub.ID, "submission_count", e.SubmissionCount)
	res := cloneEventSubmission(sub)
	return &res, nil
}

// GetEventSubmission fetches a submission of an event.
func (s *Store) GetEventSubmission(_ context.Context, eventID, id string) (*entities.EventSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.eventSubs[id]
	if !ok || sub.EventID != eventID {
		return nil, entities.ErrSubmissionNotFound
	}
	res := cloneEventSubmission(sub)
	return &res, nil
}

// ListEventSubmissions returns an event's submissions filtered by track/team/status.
func (s *Store) ListEventSubmissions(_ context.Context, eventID string, filter entities.SubmissionFilter) ([]entities.EventSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	res := make([]entities.EventSubmission, 0)
	for _, sub := range s.eventSubs {
		if sub.EventID != eventID {
			continue
		}
		if filter.Track != "" && sub.Track != filter.Track {
			continue
		}
		if filter.TeamID != "" && sub.TeamID != filter.TeamID {
			continue
		}
		if filter.Status != nil && sub.Status != *filter.Status {
			continue
		}
		res = append(res, cloneEventSubmission(sub))
	}
	sortByCreated(res, func(sub entities.EventSubmission) time.Time { return sub.SubmittedAt }, func(sub entities.EventSubmission) string { return sub.ID })
	return res, nil
}

// UpdateEventSubmission applies a partial update.
func (s *Store) UpdateEventSubmission(_ context.Context, eventID, id string, patch entities.SubmissionPatch) (*entities.EventSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.eventSubs[id]
	if !ok || sub.EventID != eventID {
		return nil, entities.ErrSubmissionNotFound
	}
	patch.ApplyEvent(&sub)
	sub.UpdatedAt = s.now()
	sub = cloneEventSubmission(sub)
	s.eventSubs[id] = sub
	s.changed()

	res := cloneEventSubmission(sub)
	return &res, nil
}

// DeleteEventSubmission hard-deletes a submission and lowers submissionCount.
// Its scores are left in place.
func (s *Store) DeleteEventSubmission(_ context.Context, eventID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.eventSubs[id]
	if !ok || sub.EventID != eventID {
		return entities.ErrSubmissionNotFound
	}
	delete(s.eventSubs, id)
	if e, ok := s.events[eventID]; ok {
		e.SubmissionCount = decr(e.SubmissionCount)
		s.events[eventID] = e
	}
	s.changed()
	s.log.Infow("event submission deleted", "event_id", eventID, "submission_id", id)
	return nil
}

func cloneEventSubmission(sub entities.EventSubmission) entities.EventSubmission {
	sub.Technologies = cloneStrings(sub.Technologies)
	return sub
}
