package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateApplication stores a submitted judge application.
func (s *Store) CreateApplication(_ context.Context, a entities.JudgeApplication) (*entities.JudgeApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = newID()
	a.Status = entities.ApplicationSubmitted
	a.SubmittedAt = s.now()
	a.ReviewedAt = nil
	a = cloneApplication(a)
	s.applications[a.ID] = a
	s.changed()

	s.log.Infow("judge application submitted", "application_id", a.ID, "user_id", a.UserID, "test_mode", a.TestMode)
	res := cloneApplication(a)
	return &res, nil
}

// GetApplication fetches an application by id.
func (s *Store) GetApplication(_ context.Context, id string) (*entities.JudgeApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.applications[id]
	if !ok {
		return nil, entities.ErrApplicationNotFound
	}
	res := cloneApplication(a)
	return &res, nil
}

// ListApplications returns applications, optionally by status, oldest first.
func (s *Store) ListApplications(_ context.Context, status *entities.ApplicationStatus) ([]entities.JudgeApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.JudgeApplication, 0)
	for _, a := range s.applications {
		if status != nil && a.Status != *status {
			continue
		}
		res = append(res, cloneApplication(a))
	}
	sortByCreated(res, func(a entities.JudgeApplication) time.Time { return a.SubmittedAt }, func(a entities.JudgeApplication) string { return a.ID })
	return res, nil
}

// ReviewApplication records a decision on a submitted application. An
// application that was already decided is left untouched.
func (s *Store) ReviewApplication(_ context.Context, a entities.JudgeApplication) (*entities.JudgeApplication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.pendingApplication(a.ID)
	if err != nil {
		return nil, err
	}
	return s.decide(cur, a), nil
}

// ApproveApplication stores the new judge and the approval under one lock,
// so an application yields at most one judge.
func (s *Store) ApproveApplication(_ context.Context, a entities.JudgeApplication, j entities.Judge) (*entities.JudgeApplication, *entities.Judge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.pendingApplication(a.ID)
	if err != nil {
		return nil, nil, err
	}
	judge, err := s.insertJudge(j)
	if err != nil {
		return nil, nil, err
	}
	a.Status = entities.ApplicationApproved
	a.JudgeID = judge.ID
	return s.decide(cur, a), judge, nil
}

func (s *Store) pendingApplication(id string) (entities.JudgeApplication, error) {
	cur, ok := s.applications[id]
	if !ok {
		return entities.JudgeApplication{}, entities.ErrApplicationNotFound
	}
	if cur.Status != entities.ApplicationSubmitted {
		return entities.JudgeApplication{}, fmt.Errorf("%w: status is %s", entities.ErrApplicationReviewed, cur.Status)
	}
	return cur, nil
}

func (s *Store) decide(cur, a entities.JudgeApplication) *entities.JudgeApplication {
	now := s.now()
	cur.Status = a.Status
	cur.ReviewNote = a.ReviewNote
	cur.JudgeID = a.JudgeID
	cur.ReviewedAt = &now
	cur = cloneApplication(cur)
	s.applications[cur.ID] = cur
	s.changed()

	s.log.Infow("judge application reviewed", "application_id", cur.ID, "status", cur.Status)
	res := cloneApplication(cur)
	return &res
}

func cloneApplication(a entities.JudgeApplication) entities.JudgeApplication {
	a.Answers.Expertise = cloneStrings(a.Answers.Expertise)
	if a.ReviewedAt != nil {
		t := *a.ReviewedAt
		a.ReviewedAt = &t
	}
	return a
}
