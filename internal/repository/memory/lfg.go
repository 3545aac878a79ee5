package memory

import (
	"context"
	"sort"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateLFGPost adds an open matchmaking post.
func (s *Store) CreateLFGPost(_ context.Context, p entities.LFGPost) (*entities.LFGPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.EventID != "" {
		if _, ok := s.events[p.EventID]; !ok {
			return nil, entities.ErrEventNotFound
		}
	}

	now := s.now()
	p.ID = newID()
	p.IsOpen = true
	p.CreatedAt = now
	p.UpdatedAt = now
	p = cloneLFG(p)
	s.lfg[p.ID] = p
	s.changed()

	res := cloneLFG(p)
	return &res, nil
}

// GetLFGPost fetches a post by id.
func (s *Store) GetLFGPost(_ context.Context, id string) (*entities.LFGPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.lfg[id]
	if !ok {
		return nil, entities.ErrLFGPostNotFound
	}
	res := cloneLFG(p)
	return &res, nil
}

// ListLFGPosts returns posts matching the filter, newest first.
func (s *Store) ListLFGPosts(_ context.Context, filter entities.LFGFilter) ([]entities.LFGPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.LFGPost, 0)
	for _, p := range s.lfg {
		if filter.EventID != "" && p.EventID != filter.EventID {
			continue
		}
		if filter.Kind != nil && p.Kind != *filter.Kind {
			continue
		}
		if filter.OpenOnly && !p.IsOpen {
			continue
		}
		res = append(res, cloneLFG(p))
	}
	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.After(res[j].CreatedAt)
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

// UpdateLFGPost applies a partial update.
func (s *Store) UpdateLFGPost(_ context.Context, id string, patch entities.LFGPatch) (*entities.LFGPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.lfg[id]
	if !ok {
		return nil, entities.ErrLFGPostNotFound
	}
	patch.Apply(&p)
	p.UpdatedAt = s.now()
	p = cloneLFG(p)
	s.lfg[id] = p
	s.changed()

	res := cloneLFG(p)
	return &res, nil
}

// DeleteLFGPost hard-deletes a post.
func (s *Store) DeleteLFGPost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lfg[id]; !ok {
		return entities.ErrLFGPostNotFound
	}
	delete(s.lfg, id)
	s.changed()
	return nil
}

func cloneLFG(p entities.LFGPost) entities.LFGPost {
	p.Skills = cloneStrings(p.Skills)
	return p
}
