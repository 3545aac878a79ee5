package memory

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// RegisterParticipant registers a user for an event, bumping participantCount
// and the user's eventsJoined.
func (s *Store) RegisterParticipant(_ context.Context, p entities.EventParticipant) (*entities.EventParticipant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.events[p.EventID]
	if !ok {
		return nil, entities.ErrEventNotFound
	}
	for _, existing := range s.participants {
		if existing.EventID == p.EventID && existing.UserID == p.UserID {
			return nil, entities.ErrAlreadyRegistered
		}
	}
	if e.MaxParticipants > 0 && e.ParticipantCount >= e.MaxParticipants {
		return nil, entities.ErrEventFull
	}

	p.ID = newID()
	if p.Status == "" {
		p.Status = entities.ParticipantRegistered
	}
	if p.Role == "" {
		p.Role = "participant"
	}
	p.RegisteredAt = s.now()
	s.participants[p.ID] = p

	e.ParticipantCount++
	s.events[e.ID] = e
	if u, ok := s.users[p.UserID]; ok {
		u.EventsJoined++
		s.users[u.ID] = u
	}
	s.changed()

	s.log.Infow("participant registered", "event_id", p.EventID, "user_id", p.UserID, "participant_count", e.ParticipantCount)
	return &p, nil
}

// ListParticipants returns an event's registrations in registration order.
func (s *Store) ListParticipants(_ context.Context, eventID string) ([]entities.EventParticipant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	res := make([]entities.EventParticipant, 0)
	for _, p := range s.participants {
		if p.EventID == eventID {
			res = append(res, p)
		}
	}
	sortByCreated(res, func(p entities.EventParticipant) time.Time { return p.RegisteredAt }, func(p entities.EventParticipant) string { return p.ID })
	return res, nil
}

// UpdateParticipant applies a partial update to a registration.
func (s *Store) UpdateParticipant(_ context.Context, eventID, id string, patch entities.ParticipantPatch) (*entities.EventParticipant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok || p.EventID != eventID {
		return nil, entities.ErrParticipantNotFound
	}
	patch.Apply(&p)
	s.participants[id] = p
	s.changed()
	return &p, nil
}

// RemoveParticipant hard-deletes a registration; counters never drop below zero.
func (s *Store) RemoveParticipant(_ context.Context, eventID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.participants[id]
	if !ok || p.EventID != eventID {
		return entities.ErrParticipantNotFound
	}
	delete(s.participants, id)

	if e, ok := s.events[eventID]; ok {
		e.ParticipantCount = decr(e.ParticipantCount)
		s.events[eventID] = e
	}
	if u, ok := s.users[p.UserID]; ok {
		u.EventsJoined = decr(u.EventsJoined)
		s.users[u.ID] = u
	}
	s.changed()

	s.log.Infow("participant removed", "event_id", eventID, "user_id", p.UserID)
	return nil
}

// setParticipantTeam records teamID on the user's registration for eventID, if any.
func (s *Store) setParticipantTeam(eventID, userID, teamID string) {
	for id, p := range s.participants {
		if p.EventID == eventID && p.UserID == userID {
			p.TeamID = teamID
			s.participants[id] = p
			return
		}
	}
}
