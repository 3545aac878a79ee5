package memory

import (
	"context"
	"strings"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateUser inserts a user; username and email are unique case-insensitively.
func (s *Store) CreateUser(_ context.Context, u entities.User) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, u.Username) || strings.EqualFold(existing.Email, u.Email) {
			return nil, entities.ErrUserExists
		}
	}

	now := s.now()
	u.ID = newID()
	u.EventsOrganized = 0
	u.EventsJoined = 0
	u.CreatedAt = now
	u.UpdatedAt = now
	u = cloneUser(u)
	s.users[u.ID] = u
	s.changed()

	s.log.Infow("user created", "user_id", u.ID, "username", u.Username)
	res := cloneUser(u)
	return &res, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(_ context.Context, id string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	res := cloneUser(u)
	return &res, nil
}

// GetUserByLogin fetches a user by username or email.
func (s *Store) GetUserByLogin(_ context.Context, login string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, login) || strings.EqualFold(u.Email, login) {
			res := cloneUser(u)
			return &res, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

// ListUsers returns all users, oldest first.
func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.User, 0, len(s.users))
	for _, u := range s.users {
		res = append(res, cloneUser(u))
	}
	sortByCreated(res, func(u entities.User) time.Time { return u.CreatedAt }, func(u entities.User) string { return u.ID })
	return res, nil
}

// UpdateUser applies a partial update.
func (s *Store) UpdateUser(_ context.Context, id string, patch entities.UserPatch) (*entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, entities.ErrUserNotFound
	}
	patch.Apply(&u)
	u.UpdatedAt = s.now()
	u = cloneUser(u)
	s.users[id] = u
	s.changed()

	res := cloneUser(u)
	return &res, nil
}

// DeleteUser hard-deletes a user; events, teams and registrations referencing it stay.
func (s *Store) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return entities.ErrUserNotFound
	}
	delete(s.users, id)
	s.changed()
	s.log.Infow("user deleted", "user_id", id)
	return nil
}

func cloneUser(u entities.User) entities.User {
	u.Skills = cloneStrings(u.Skills)
	return u
}
