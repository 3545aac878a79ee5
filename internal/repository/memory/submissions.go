package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateSubmission adds a platform-wide project.
func (s *Store) CreateSubmission(_ context.Context, sub entities.Submission) (*entities.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sub.ID = newID()
	if sub.Status == "" {
		sub.Status = entities.SubmissionDraft
	}
	sub.CreatedAt = now
	sub.UpdatedAt = now
	sub.SubmittedAt = nil
	if sub.Status != entities.SubmissionDraft {
		sub.SubmittedAt = &now
	}
	sub = cloneSubmission(sub)
	s.submissions[sub.ID] = sub
	s.changed()

	s.log.Infow("submission created", "submission_id", sub.ID, "team_id", sub.TeamID, "status", sub.Status)
	res := cloneSubmission(sub)
	return &res, nil
}

// GetSubmission fetches a submission by id.
func (s *Store) GetSubmission(_ context.Context, id string) (*entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, entities.ErrSubmissionNotFound
	}
	res := cloneSubmission(sub)
	return &res, nil
}

// ListSubmissions returns submissions matching the filter, oldest first.
func (s *Store) ListSubmissions(_ context.Context, filter entities.SubmissionFilter) ([]entities.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Submission, 0)
	for _, sub := range s.submissions {
		if filter.EventID != "" && sub.EventID != filter.EventID {
			continue
		}
		if filter.TeamID != "" && sub.TeamID != filter.TeamID {
			continue
		}
		if filter.Track != "" && sub.Track != filter.Track {
			continue
		}
		if filter.Status != nil && sub.Status != *filter.Status {
			continue
		}
		res = append(res, cloneSubmission(sub))
	}
	sortByCreated(res, func(sub entities.Submission) time.Time { return sub.CreatedAt }, func(sub entities.Submission) string { return sub.ID })
	return res, nil
}

// UpdateSubmission applies a partial update; moving out of draft stamps submittedAt.
func (s *Store) UpdateSubmission(_ context.Context, id string, patch entities.SubmissionPatch) (*entities.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[id]
	if !ok {
		return nil, entities.ErrSubmissionNotFound
	}
	now := s.now()
	patch.Apply(&sub, now)
	sub.UpdatedAt = now
	sub = cloneSubmission(sub)
	s.submissions[id] = sub
	s.changed()

	res := cloneSubmission(sub)
	return &res, nil
}

// DeleteSubmission hard-deletes a submission.
func (s *Store) DeleteSubmission(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.submissions[id]; !ok {
		return entities.ErrSubmissionNotFound
	}
	delete(s.submissions, id)
	s.changed()
	return nil
}

func cloneSubmission(sub entities.Submission) entities.Submission {
	sub.Technologies = cloneStrings(sub.Technologies)
	if sub.SubmittedAt != nil {
		t := *sub.SubmittedAt
		sub.SubmittedAt = &t
	}
	return sub
}
