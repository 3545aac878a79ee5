package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateTeam adds a platform-wide team. The leader is always a member.
func (s *Store) CreateTeam(_ context.Context, t entities.Team) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t.ID = newID()
	members := []string{t.LeaderID}
	for _, id := range t.MemberIDs {
		if !containsString(members, id) {
			members = append(members, id)
		}
	}
	t.MemberIDs = members
	t.Skills = cloneStrings(t.Skills)
	t.CreatedAt = now
	t.UpdatedAt = now
	s.teams[t.ID] = t
	s.changed()

	s.log.Infow("team created", "team_id", t.ID, "leader_id", t.LeaderID, "members", len(t.MemberIDs))
	res := cloneTeam(t)
	return &res, nil
}

// GetTeam fetches a team by id.
func (s *Store) GetTeam(_ context.Context, id string) (*entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	res := cloneTeam(t)
	return &res, nil
}

// ListTeams returns every team, oldest first.
func (s *Store) ListTeams(_ context.Context) ([]entities.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Team, 0, len(s.teams))
	for _, t := range s.teams {
		res = append(res, cloneTeam(t))
	}
	sortByCreated(res, func(t entities.Team) time.Time { return t.CreatedAt }, func(t entities.Team) string { return t.ID })
	return res, nil
}

// UpdateTeam applies a partial update.
func (s *Store) UpdateTeam(_ context.Context, id string, patch entities.TeamPatch) (*entities.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[id]
	if !ok {
		return nil, entities.ErrTeamNotFound
	}
	patch.Apply(&t)
	if t.LeaderID != "" && !containsString(t.MemberIDs, t.LeaderID) {
		t.MemberIDs = append([]string{t.LeaderID}, t.MemberIDs...)
	}
	t.UpdatedAt = s.now()
	t = cloneTeam(t)
	s.teams[id] = t
	s.changed()

	res := cloneTeam(t)
	return &res, nil
}

// DeleteTeam hard-deletes a team. Submissions referencing it are kept.
func (s *Store) DeleteTeam(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[id]; !ok {
		return entities.ErrTeamNotFound
	}
	delete(s.teams, id)
	s.changed()
	s.log.Infow("team deleted", "team_id", id)
	return nil
}

func cloneTeam(t entities.Team) entities.Team {
	t.MemberIDs = cloneStrings(t.MemberIDs)
	t.Skills = cloneStrings(t.Skills)
	return t
}
