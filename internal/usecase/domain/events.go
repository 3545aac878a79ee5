package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

const (
	defaultMinTeamSize = 1
	defaultMaxTeamSize = 4
	maxSlugAttempts    = 100
)

// CreateEvent validates an event, fills defaults and stores it.
func (u *Usecase) CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if e.Status == "" {
		e.Status = entities.EventDraft
	}
	if e.Format == "" {
		e.Format = entities.FormatOnline
	}
	if e.MinTeamSize == 0 {
		e.MinTeamSize = defaultMinTeamSize
	}
	if e.MaxTeamSize == 0 {
		e.MaxTeamSize = max(defaultMaxTeamSize, e.MinTeamSize)
	}
	if err := validateStruct(e); err != nil {
		return nil, err
	}
	if err := checkEventRules(e); err != nil {
		return nil, err
	}
	if _, err := u.repo.GetUser(ctx, e.OrganizerID); err != nil {
		return nil, err
	}

	if e.Slug == "" {
		slug, err := u.freeSlug(ctx, slugify(e.Title))
		if err != nil {
			return nil, err
		}
		e.Slug = slug
	}

	res, err := u.repo.CreateEvent(ctx, e)
	if err != nil {
		return nil, err
	}
	u.log.Infow("event create", "event_id", res.ID, "slug", res.Slug, "organizer_id", res.OrganizerID)
	return res, nil
}

// Event returns an event by id.
func (u *Usecase) Event(ctx context.Context, id string) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetEvent(ctx, id)
}

// EventBySlug returns an event by slug.
func (u *Usecase) EventBySlug(ctx context.Context, slug string) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if slug == "" {
		return nil, fmt.Errorf("%w: slug is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetEventBySlug(ctx, slug)
}

// Events lists events matching the filter.
func (u *Usecase) Events(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Status != nil && !knownStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, *filter.Status)
	}
	return u.repo.ListEvents(ctx, filter)
}

// UpdateEvent applies a patch after checking the merged event still holds.
func (u *Usecase) UpdateEvent(ctx context.Context, id string, patch entities.EventPatch) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	cur, err := u.repo.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	merged := *cur
	patch.Apply(&merged)
	if err := checkEventRules(merged); err != nil {
		return nil, err
	}
	if patch.Slug != nil && *patch.Slug == "" {
		return nil, fmt.Errorf("%w: slug cannot be empty", entities.ErrInvalidArgument)
	}

	res, err := u.repo.UpdateEvent(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	u.log.Infow("event update", "event_id", id, "status", res.Status)
	return res, nil
}

// DeleteEvent hard-deletes an event. Its participants, teams and submissions stay.
func (u *Usecase) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id == "" {
		return fmt.Errorf("%w: event id is required", entities.ErrInvalidArgument)
	}
	if err := u.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	u.log.Infow("event delete", "event_id", id)
	return nil
}

func checkEventRules(e entities.Event) error {
	verr := entities.NewValidationError()
	if e.StartDate.IsZero() {
		verr.Add("startDate", "required", "is required")
	}
	if e.EndDate.IsZero() {
		verr.Add("endDate", "required", "is required")
	}
	if !e.StartDate.IsZero() && !e.EndDate.IsZero() && !e.StartDate.Before(e.EndDate) {
		verr.Add("endDate", "after", "must be after startDate")
	}
	if d := e.RegistrationDeadline; d != nil && !e.EndDate.IsZero() && d.After(e.EndDate) {
		verr.Add("registrationDeadline", "before", "must not be after endDate")
	}
	if d := e.SubmissionDeadline; d != nil && !e.EndDate.IsZero() && d.After(e.EndDate) {
		verr.Add("submissionDeadline", "before", "must not be after endDate")
	}
	if e.MaxTeamSize > 0 && e.MinTeamSize > e.MaxTeamSize {
		verr.Add("minTeamSize", "lte", "must not exceed maxTeamSize")
	}
	if !knownStatus(e.Status) {
		verr.Add("status", "oneof", "unknown status")
	}
	seen := make(map[string]struct{}, len(e.Tracks))
	for i, t := range e.Tracks {
		if _, dup := seen[t.Name]; dup {
			verr.Add(fmt.Sprintf("tracks[%d].name", i), "unique", "duplicate track name")
		}
		seen[t.Name] = struct{}{}
	}
	for i, p := range e.Prizes {
		if !e.HasTrack(p.Track) {
			verr.Add(fmt.Sprintf("prizes[%d].track", i), "track", "must name one of the event tracks")
		}
	}
	return verr.OrNil()
}

func knownStatus(s entities.EventStatus) bool {
	for _, st := range entities.EventStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// freeSlug returns base, or base-2, base-3, ... whichever is unused.
func (u *Usecase) freeSlug(ctx context.Context, base string) (string, error) {
	slug := base
	for i := 2; i <= maxSlugAttempts; i++ {
		_, err := u.repo.GetEventBySlug(ctx, slug)
		if errors.Is(err, entities.ErrEventNotFound) {
			return slug, nil
		}
		if err != nil {
			return "", err
		}
		slug = base + "-" + strconv.Itoa(i)
	}
	return "", fmt.Errorf("%w: no free slug for %q", entities.ErrSlugExists, base)
}

// slugify lowercases s and joins its letter/digit runs with dashes.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "event"
	}
	return b.String()
}
