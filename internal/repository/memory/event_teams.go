package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateEventTeam inserts a team into an event with the captain as first member
// and bumps the event's teamCount.
func (s *Store) CreateEventTeam(_ context.Context, t entities.EventTeam) (*entities.EventTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[t.EventID]
	if !ok {
		return nil, entities.ErrEventNotFound
	}

	members := []string{t.CaptainID}
	for _, m := range t.MemberIDs {
		if m != "" && !containsString(members, m) {
			members = append(members, m)
		}
	}
	if e.MaxTeamSize > 0 && len(members) > e.MaxTeamSize {
		return nil, entities.ErrTeamFull
	}

	now := s.now()
	t.ID = newID()
	t.MemberIDs = members
	t.CreatedAt = now
	t.UpdatedAt = now
	s.eventTeams[t.ID] = t

	e.TeamCount++
	s.events[e.ID] = e
	for _, m := range members {
		s.setParticipantTeam(t.EventID, m, t.ID)
	}
	s.changed()

	s.log.Infow("event team created", "event_id", t.EventID, "team_id", t.ID, "members", len(members))
	res := cloneEventTeam(t)
	return &res, nil
}

// GetEventTeam fetches a team of an event.
func (s *Store) GetEventTeam(_ context.Context, eventID, id string) (*entities.EventTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.eventTeams[id]
	if !ok || t.EventID != eventID {
		return nil, entities.ErrTeamNotFound
	}
	res := cloneEventTeam(t)
	return &res, nil
}

// ListEventTeams returns an event's teams, oldest first.
func (s *Store) ListEventTeams(_ context.Context, eventID string) ([]entities.EventTeam, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	res := make([]entities.EventTeam, 0)
	for _, t := range s.eventTeams {
		if t.EventID == eventID {
			res = append(res, cloneEventTeam(t))
		}
	}
	sortByCreated(res, func(t entities.EventTeam) time.Time { return t.CreatedAt }, func(t entities.EventTeam) string { return t.ID })
	return res, nil
}

// UpdateEventTeam applies a partial update. A new captain must already be a member.
func (s *Store) UpdateEventTeam(_ context.Context, eventID, id string, patch entities.EventTeamPatch) (*entities.EventTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.eventTeams[id]
	if !ok || t.EventID != eventID {
		return nil, entities.ErrTeamNotFound
	}
	if patch.CaptainID != nil && !t.HasMember(*patch.CaptainID) {
		return nil, entities.ErrNotMember
	}
	patch.Apply(&t)
	t.UpdatedAt = s.now()
	s.eventTeams[id] = t
	s.changed()

	res := cloneEventTeam(t)
	return &res, nil
}

// AddTeamMember adds a user to a team, respecting the event's maxTeamSize.
func (s *Store) AddTeamMember(_ context.Context, eventID, teamID, userID string) (*entities.EventTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.eventTeams[teamID]
	if !ok || t.EventID != eventID {
		return nil, entities.ErrTeamNotFound
	}
	if t.HasMember(userID) {
		return nil, entities.ErrAlreadyMember
	}
	if e, ok := s.events[eventID]; ok && e.MaxTeamSize > 0 && len(t.MemberIDs) >= e.MaxTeamSize {
		return nil, entities.ErrTeamFull
	}

	t.MemberIDs = append(cloneStrings(t.MemberIDs), userID)
	t.UpdatedAt = s.now()
	s.eventTeams[teamID] = t
	s.setParticipantTeam(eventID, userID, teamID)
	s.changed()

	res := cloneEventTeam(t)
	return &res, nil
}

// RemoveTeamMember removes a user from a team. Removing the captain hands the
// captaincy to the next member.
func (s *Store) RemoveTeamMember(_ context.Context, eventID, teamID, userID string) (*entities.EventTeam, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.eventTeams[teamID]
	if !ok || t.EventID != eventID {
		return nil, entities.ErrTeamNotFound
	}
	if !t.HasMember(userID) {
		return nil, entities.ErrNotMember
	}

	t.MemberIDs = filterOut(t.MemberIDs, userID)
	if t.CaptainID == userID {
		t.CaptainID = ""
		if len(t.MemberIDs) > 0 {
			t.CaptainID = t.MemberIDs[0]
		}
	}
	t.UpdatedAt = s.now()
	s.eventTeams[teamID] = t
	s.setParticipantTeam(eventID, userID, "")
	s.changed()

	res := cloneEventTeam(t)
	return &res, nil
}

// DeleteEventTeam hard-deletes a team and lowers the event's teamCount.
func (s *Store) DeleteEventTeam(_ context.Context, eventID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.eventTeams[id]
	if !ok || t.EventID != eventID {
		return entities.ErrTeamNotFound
	}
	delete(s.eventTeams, id)
	if e, ok := s.events[eventID]; ok {
		e.TeamCount = decr(e.TeamCount)
		s.events[eventID] = e
	}
	s.changed()
	s.log.Infow("event team deleted", "event_id", eventID, "team_id", id)
	return nil
}

func cloneEventTeam(t entities.EventTeam) entities.EventTeam {
	t.MemberIDs = cloneStrings(t.MemberIDs)
	return t
}
