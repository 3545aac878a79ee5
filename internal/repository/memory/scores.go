package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateScore records a judge's score and refreshes the submission aggregate.
// A judge scores a submission at most once.
func (s *Store) CreateScore(_ context.Context, sc entities.JudgingScore) (*entities.JudgingScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.eventSubs[sc.SubmissionID]
	if !ok {
		return nil, entities.ErrSubmissionNotFound
	}
	for _, existing := range s.scores {
		if existing.SubmissionID == sc.SubmissionID && existing.JudgeID == sc.JudgeID {
			return nil, entities.ErrAlreadyScored
		}
	}

	now := s.now()
	sc.ID = newID()
	sc.EventID = sub.EventID
	sc.TotalScore = entities.SumCriteria(sc.Criteria)
	sc.CreatedAt = now
	sc.UpdatedAt = now
	sc = cloneScore(sc)
	s.scores[sc.ID] = sc
	s.recomputeSubmission(sc.SubmissionID)
	s.changed()

	s.log.Infow("score recorded", "submission_id", sc.SubmissionID, "judge_id", sc.JudgeID, "total", sc.TotalScore)
	res := cloneScore(sc)
	return &res, nil
}

// ListScores returns a submission's scores, oldest first.
func (s *Store) ListScores(_ context.Context, submissionID string) ([]entities.JudgingScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.eventSubs[submissionID]; !ok {
		return nil, entities.ErrSubmissionNotFound
	}
	return s.collectScores(func(sc entities.JudgingScore) bool { return sc.SubmissionID == submissionID }), nil
}

// ListEventScores returns every score recorded for an event.
func (s *Store) ListEventScores(_ context.Context, eventID string) ([]entities.JudgingScore, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	return s.collectScores(func(sc entities.JudgingScore) bool { return sc.EventID == eventID }), nil
}

// UpdateScore applies a partial update and refreshes the submission aggregate.
func (s *Store) UpdateScore(_ context.Context, id string, patch entities.ScorePatch) (*entities.JudgingScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scores[id]
	if !ok {
		return nil, entities.ErrScoreNotFound
	}
	patch.Apply(&sc)
	sc.UpdatedAt = s.now()
	sc = cloneScore(sc)
	s.scores[id] = sc
	s.recomputeSubmission(sc.SubmissionID)
	s.changed()

	res := cloneScore(sc)
	return &res, nil
}

// DeleteScore hard-deletes a score and refreshes the submission aggregate.
func (s *Store) DeleteScore(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.scores[id]
	if !ok {
		return entities.ErrScoreNotFound
	}
	delete(s.scores, id)
	s.recomputeSubmission(sc.SubmissionID)
	s.changed()
	return nil
}

func (s *Store) collectScores(keep func(entities.JudgingScore) bool) []entities.JudgingScore {
	res := make([]entities.JudgingScore, 0)
	for _, sc := range s.scores {
		if keep(sc) {
			res = append(res, cloneScore(sc))
		}
	}
	sortByCreated(res, func(sc entities.JudgingScore) time.Time { return sc.CreatedAt }, func(sc entities.JudgingScore) string { return sc.ID })
	return res
}

// recomputeSubmission rebuilds scoreCount/totalScore/averageScore from the
// scores map. Caller holds the write lock.
func (s *Store) recomputeSubmission(submissionID string) {
	sub, ok := s.eventSubs[submissionID]
	if !ok {
		return
	}
	var (
		count int
		total float64
	)
	for _, sc := range s.scores {
		if sc.SubmissionID == submissionID {
			count++
			total += sc.TotalScore
		}
	}
	sub.ScoreCount = count
	sub.TotalScore = total
	sub.AverageScore = 0
	if count > 0 {
		sub.AverageScore = total / float64(count)
	}
	s.eventSubs[submissionID] = sub
}

func cloneScore(sc entities.JudgingScore) entities.JudgingScore {
	sc.Criteria = append([]entities.CriterionScore{}, sc.Criteria...)
	return sc
}
