package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateJudge adds an active judge.
func (s *Store) CreateJudge(_ context.Context, j entities.Judge) (*entities.Judge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertJudge(j)
}

// insertJudge expects s.mu to be held for writing.
func (s *Store) insertJudge(j entities.Judge) (*entities.Judge, error) {
	if j.EventID != "" {
		if _, ok := s.events[j.EventID]; !ok {
			return nil, entities.ErrEventNotFound
		}
	}

	now := s.now()
	j.ID = newID()
	j.IsActive = true
	j.CreatedAt = now
	j.UpdatedAt = now
	j = cloneJudge(j)
	s.judges[j.ID] = j
	s.changed()

	s.log.Infow("judge created", "judge_id", j.ID, "event_id", j.EventID)
	res := cloneJudge(j)
	return &res, nil
}

// GetJudge fetches a judge whether or not it is active.
func (s *Store) GetJudge(_ context.Context, id string) (*entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	j, ok := s.judges[id]
	if !ok {
		return nil, entities.ErrJudgeNotFound
	}
	res := cloneJudge(j)
	return &res, nil
}

// ListJudges returns active judges, or all of them with IncludeInactive.
// An event filter also matches platform-pool judges without an event.
func (s *Store) ListJudges(_ context.Context, filter entities.JudgeFilter) ([]entities.Judge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Judge, 0)
	for _, j := range s.judges {
		if !j.IsActive && !filter.IncludeInactive {
			continue
		}
		if filter.EventID != "" && j.EventID != "" && j.EventID != filter.EventID {
			continue
		}
		res = append(res, cloneJudge(j))
	}
	sortByCreated(res, func(j entities.Judge) time.Time { return j.CreatedAt }, func(j entities.Judge) string { return j.ID })
	return res, nil
}

// UpdateJudge applies a partial update.
func (s *Store) UpdateJudge(_ context.Context, id string, patch entities.JudgePatch) (*entities.Judge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.judges[id]
	if !ok {
		return nil, entities.ErrJudgeNotFound
	}
	patch.Apply(&j)
	j.UpdatedAt = s.now()
	j = cloneJudge(j)
	s.judges[id] = j
	s.changed()

	res := cloneJudge(j)
	return &res, nil
}

// DeactivateJudge clears isActive. The judge and its scores stay.
func (s *Store) DeactivateJudge(_ context.Context, id string) (*entities.Judge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.judges[id]
	if !ok {
		return nil, entities.ErrJudgeNotFound
	}
	j.IsActive = false
	j.UpdatedAt = s.now()
	s.judges[id] = j
	s.changed()

	s.log.Infow("judge deactivated", "judge_id", id)
	res := cloneJudge(j)
	return &res, nil
}

func cloneJudge(j entities.Judge) entities.Judge {
	j.Expertise = cloneStrings(j.Expertise)
	return j
}
