package memory

import (
	"context"
	"sort"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// PlatformAnalytics aggregates totals across the whole store. topLimit bounds
// the number of top events; zero or less returns none.
func (s *Store) PlatformAnalytics(_ context.Context, topLimit int) (entities.PlatformAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := entities.PlatformAnalytics{
		TotalUsers:       len(s.users),
		TotalEvents:      len(s.events),
		TotalTeams:       len(s.teams) + len(s.eventTeams),
		TotalSubmissions: len(s.submissions) + len(s.eventSubs),
		Participants:     len(s.participants),
		EventsByStatus:   make([]entities.StatusCount, 0, len(entities.EventStatuses)),
		TopEvents:        make([]entities.EventRank, 0),
	}
	for _, j := range s.judges {
		if j.IsActive {
			res.ActiveJudges++
		}
	}
	for _, sp := range s.sponsors {
		if sp.IsActive {
			res.ActiveSponsors++
		}
	}
	for _, p := range s.lfg {
		if p.IsOpen {
			res.OpenLFGPosts++
		}
	}

	byStatus := make(map[entities.EventStatus]int)
	ranks := make([]entities.EventRank, 0, len(s.events))
	for _, e := range s.events {
		byStatus[e.Status]++
		ranks = append(ranks, entities.EventRank{
			EventID:          e.ID,
			Title:            e.Title,
			ParticipantCount: e.ParticipantCount,
			SubmissionCount:  e.SubmissionCount,
		})
	}
	for _, st := range entities.EventStatuses {
		res.EventsByStatus = append(res.EventsByStatus, entities.StatusCount{Status: string(st), Count: byStatus[st]})
	}

	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].ParticipantCount != ranks[j].ParticipantCount {
			return ranks[i].ParticipantCount > ranks[j].ParticipantCount
		}
		return ranks[i].EventID < ranks[j].EventID
	})
	if topLimit > 0 {
		if topLimit > len(ranks) {
			topLimit = len(ranks)
		}
		res.TopEvents = append(res.TopEvents, ranks[:topLimit]...)
	}
	return res, nil
}

// EventAnalytics aggregates one event.
func (s *Store) EventAnalytics(_ context.Context, eventID string) (entities.EventAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[eventID]
	if !ok {
		return entities.EventAnalytics{}, entities.ErrEventNotFound
	}
	res := entities.EventAnalytics{
		EventID:          e.ID,
		ParticipantCount: e.ParticipantCount,
		TeamCount:        e.TeamCount,
		SubmissionCount:  e.SubmissionCount,
	}

	participants := make(map[string]int)
	for _, p := range s.participants {
		if p.EventID == eventID {
			participants[string(p.Status)]++
		}
	}
	res.ParticipantsByStatus = countsOf(participants)

	tracks := make(map[string]int)
	statuses := make(map[string]int)
	var scoreSum float64
	for _, sub := range s.eventSubs {
		if sub.EventID != eventID {
			continue
		}
		tracks[sub.Track]++
		statuses[string(sub.Status)]++
		if sub.ScoreCount > 0 {
			res.ScoredSubmissions++
			scoreSum += sub.AverageScore
		}
	}
	res.SubmissionsByStatus = countsOf(statuses)
	res.SubmissionsByTrack = make([]entities.TrackCount, 0, len(tracks))
	for _, sc := range countsOf(tracks) {
		res.SubmissionsByTrack = append(res.SubmissionsByTrack, entities.TrackCount{Track: sc.Status, Count: sc.Count})
	}
	if res.ScoredSubmissions > 0 {
		res.AverageScore = scoreSum / float64(res.ScoredSubmissions)
	}

	for _, sc := range s.scores {
		if sc.EventID == eventID {
			res.TotalScores++
		}
	}
	for _, j := range s.judges {
		if j.IsActive && (j.EventID == "" || j.EventID == eventID) {
			res.ActiveJudges++
		}
	}
	for _, sp := range s.sponsors {
		if sp.IsActive && sp.EventID == eventID {
			res.ActiveSponsors++
		}
	}
	for _, c := range s.content {
		if c.IsPublished && c.EventID == eventID {
			res.PublishedContent++
		}
	}
	for _, t := range s.eventTeams {
		if t.LookingForMembers && t.EventID == eventID {
			res.TeamsLookingForMembers++
		}
	}
	return res, nil
}

// Leaderboard ranks scored event submissions by average score, earlier
// submissions first on ties. limit <= 0 returns every entry.
func (s *Store) Leaderboard(_ context.Context, eventID string, limit int) ([]entities.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	subs := make([]entities.EventSubmission, 0)
	for _, sub := range s.eventSubs {
		if sub.EventID == eventID && sub.ScoreCount > 0 {
			subs = append(subs, sub)
		}
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].AverageScore != subs[j].AverageScore {
			return subs[i].AverageScore > subs[j].AverageScore
		}
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.Before(subs[j].SubmittedAt)
		}
		return subs[i].ID < subs[j].ID
	})
	if limit > 0 && limit < len(subs) {
		subs = subs[:limit]
	}

	res := make([]entities.LeaderboardEntry, 0, len(subs))
	for i, sub := range subs {
		res = append(res, entities.LeaderboardEntry{
			Rank:         i + 1,
			SubmissionID: sub.ID,
			TeamID:       sub.TeamID,
			Title:        sub.Title,
			Track:        sub.Track,
			AverageScore: sub.AverageScore,
			ScoreCount:   sub.ScoreCount,
		})
	}
	return res, nil
}

// countsOf turns a map of counts into a slice sorted by key.
func countsOf(m map[string]int) []entities.StatusCount {
	res := make([]entities.StatusCount, 0, len(m))
	for k, v := range m {
		res = append(res, entities.StatusCount{Status: k, Count: v})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Status < res[j].Status })
	return res
}
