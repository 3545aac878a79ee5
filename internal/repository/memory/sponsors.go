package memory

import (
	"context"
	"sort"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// CreateSponsor attaches an active sponsor to an existing event.
func (s *Store) CreateSponsor(_ context.Context, sp entities.EventSponsor) (*entities.EventSponsor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[sp.EventID]; !ok {
		return nil, entities.ErrEventNotFound
	}

	now := s.now()
	sp.ID = newID()
	if sp.Tier == "" {
		sp.Tier = entities.TierPartner
	}
	sp.IsActive = true
	sp.CreatedAt = now
	sp.UpdatedAt = now
	s.sponsors[sp.ID] = sp
	s.changed()

	s.log.Infow("sponsor created", "event_id", sp.EventID, "sponsor_id", sp.ID, "tier", sp.Tier)
	return &sp, nil
}

// ListSponsors returns an event's sponsors ordered by tier then name.
func (s *Store) ListSponsors(_ context.Context, eventID string, includeInactive bool) ([]entities.EventSponsor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.events[eventID]; !ok {
		return nil, entities.ErrEventNotFound
	}
	res := make([]entities.EventSponsor, 0)
	for _, sp := range s.sponsors {
		if sp.EventID != eventID || (!sp.IsActive && !includeInactive) {
			continue
		}
		res = append(res, sp)
	}
	sort.Slice(res, func(i, j int) bool {
		ri, rj := entities.TierRank(res[i].Tier), entities.TierRank(res[j].Tier)
		if ri != rj {
			return ri < rj
		}
		if res[i].Name != res[j].Name {
			return res[i].Name < res[j].Name
		}
		return res[i].ID < res[j].ID
	})
	return res, nil
}

// UpdateSponsor applies a partial update.
func (s *Store) UpdateSponsor(_ context.Context, id string, patch entities.SponsorPatch) (*entities.EventSponsor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, ok := s.sponsors[id]
	if !ok {
		return nil, entities.ErrSponsorNotFound
	}
	patch.Apply(&sp)
	sp.UpdatedAt = s.now()
	s.sponsors[id] = sp
	s.changed()
	return &sp, nil
}

// DeactivateSponsor clears isActive.
func (s *Store) DeactivateSponsor(_ context.Context, id string) (*entities.EventSponsor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp, ok := s.sponsors[id]
	if !ok {
		return nil, entities.ErrSponsorNotFound
	}
	sp.IsActive = false
	sp.UpdatedAt = s.now()
	s.sponsors[id] = sp
	s.changed()

	s.log.Infow("sponsor deactivated", "sponsor_id", id)
	return &sp, nil
}
