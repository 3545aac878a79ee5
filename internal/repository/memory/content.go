package memory

import (
	"context"
	"sort"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateContent adds a block to an existing event page.
func (s *Store) CreateContent(_ context.Context, c entities.EventContent) (*entities.EventContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[c.EventID]; !ok {
		return nil, entities.ErrEventNotFound
	}

	now := s.now()
	c.ID = newID()
	c.CreatedAt = now
	c.UpdatedAt = now
	s.content[c.ID] = c
	s.changed()
	return &c, nil
}

// ListContent returns an event's blocks by position. Unpublished blocks are
// included only with includeDrafts.
func (s *Store) ListContent(_ context.Context, eventID string, includeDrafts bool) ([]entities.EventContent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	res := make([]entities.EventContent, 0)
	for _, c := range s.content {
		if c.EventID != eventID || (!c.IsPublished && !includeDrafts) {
			continue
		}
		res = append(res, c)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Position != res[j].Position {
			return res[i].Position < res[j].Position
		}
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

// UpdateContent applies a partial update.
func (s *Store) UpdateContent(_ context.Context, id string, patch entities.ContentPatch) (*entities.EventContent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.content[id]
	if !ok {
		return nil, entities.ErrContentNotFound
	}
	patch.Apply(&c)
	c.UpdatedAt = s.now()
	s.content[id] = c
	s.changed()
	return &c, nil
}

// DeleteContent hard-deletes a block.
func (s *Store) DeleteContent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.content[id]; !ok {
		return entities.ErrContentNotFound
	}
	delete(s.content, id)
	s.changed()
	return nil
}
