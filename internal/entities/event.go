package entities

import "time"

// EventStatus enumerates event lifecycle states.
type EventStatus string

const (
	EventDraft            EventStatus = "draft"
	EventPublished        EventStatus = "published"
	EventRegistrationOpen EventStatus = "registration_open"
	EventOngoing          EventStatus = "ongoing"
	EventJudging          EventStatus = "judging"
	EventCompleted        EventStatus = "completed"
	EventCancelled        EventStatus = "cancelled"
)

// EventStatuses lists every known status in lifecycle order.
var EventStatuses = []EventStatus{
	EventDraft, EventPublished, EventRegistrationOpen, EventOngoing,
	EventJudging, EventCompleted, EventCancelled,
}

// EventFormat enumerates where an event happens.
type EventFormat string

const (
	FormatOnline   EventFormat = "online"
	FormatInPerson EventFormat = "in_person"
	FormatHybrid   EventFormat = "hybrid"
)

// Track is a thematic category a submission competes in.
type Track struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=80"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// Prize is an award attached to an event, optionally to a track.
type Prize struct {
	Title  string `json:"title" yaml:"title" validate:"required,max=120"`
	Amount string `json:"amount,omitempty" yaml:"amount"`
	Track  string `json:"track,omitempty" yaml:"track"`
}

// Event is a hackathon.
type Event struct {
	ID                   string      `json:"id"`
	Slug                 string      `json:"slug" validate:"omitempty,max=140"`
	Title                string      `json:"title" validate:"required,min=3,max=120"`
	Description          string      `json:"description" validate:"max=10000"`
	OrganizerID          string      `json:"organizerId" validate:"required"`
	Status               EventStatus `json:"status" validate:"omitempty,oneof=draft published registration_open ongoing judging completed cancelled"`
	Format               EventFormat `json:"format" validate:"omitempty,oneof=online in_person hybrid"`
	Location             string      `json:"location,omitempty"`
	StartDate            time.Time   `json:"startDate" validate:"required"`
	EndDate              time.Time   `json:"endDate" validate:"required"`
	RegistrationDeadline *time.Time  `json:"registrationDeadline,omitempty"`
	SubmissionDeadline   *time.Time  `json:"submissionDeadline,omitempty"`
	MaxParticipants      int         `json:"maxParticipants" validate:"min=0"`
	MinTeamSize          int         `json:"minTeamSize" validate:"min=0,max=20"`
	MaxTeamSize          int         `json:"maxTeamSize" validate:"min=0,max=20"`
	Tracks               []Track     `json:"tracks" validate:"dive"`
	Prizes               []Prize     `json:"prizes" validate:"dive"`
	Rules                string      `json:"rules,omitempty"`
	Tags                 []string    `json:"tags"`
	BannerURL            string      `json:"bannerUrl,omitempty" validate:"omitempty,url"`
	IsPublic             bool        `json:"isPublic"`
	ParticipantCount     int         `json:"participantCount"`
	TeamCount            int         `json:"teamCount"`
	SubmissionCount      int         `json:"submissionCount"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
}

// HasTrack reports whether name is one of the event tracks. Events without
// tracks accept any track name.
func (e Event) HasTrack(name string) bool {
	if len(e.Tracks) == 0 || name == "" {
		return true
	}
	for _, t := range e.Tracks {
		if t.Name == name {
			return true
		}
	}
	return false
}

// EventPatch is a partial event update.
type EventPatch struct {
	Slug                 *string      `json:"slug" validate:"omitempty,max=140"`
	Title                *string      `json:"title" validate:"omitempty,min=3,max=120"`
	Description          *string      `json:"description" validate:"omitempty,max=10000"`
	Status               *EventStatus `json:"status" validate:"omitempty,oneof=draft published registration_open ongoing judging completed cancelled"`
	Format               *EventFormat `json:"format" validate:"omitempty,oneof=online in_person hybrid"`
	Location             *string      `json:"location"`
	StartDate            *time.Time   `json:"startDate"`
	EndDate              *time.Time   `json:"endDate"`
	RegistrationDeadline *time.Time   `json:"registrationDeadline"`
	SubmissionDeadline   *time.Time   `json:"submissionDeadline"`
	MaxParticipants      *int         `json:"maxParticipants" validate:"omitempty,min=0"`
	MinTeamSize          *int         `json:"minTeamSize" validate:"omitempty,min=0,max=20"`
	MaxTeamSize          *int         `json:"maxTeamSize" validate:"omitempty,min=0,max=20"`
	Tracks               *[]Track     `json:"tracks" validate:"omitempty,dive"`
	Prizes               *[]Prize     `json:"prizes" validate:"omitempty,dive"`
	Rules                *string      `json:"rules"`
	Tags                 *[]string    `json:"tags"`
	BannerURL            *string      `json:"bannerUrl" validate:"omitempty,url"`
	IsPublic             *bool        `json:"isPublic"`
}

// Apply copies set fields onto e.
func (p EventPatch) Apply(e *Event) {
	setIf(&e.Slug, p.Slug)
	setIf(&e.Title, p.Title)
	setIf(&e.Description, p.Description)
	setIf(&e.Status, p.Status)
	setIf(&e.Format, p.Format)
	setIf(&e.Location, p.Location)
	setIf(&e.StartDate, p.StartDate)
	setIf(&e.EndDate, p.EndDate)
	if p.RegistrationDeadline != nil {
		d := *p.RegistrationDeadline
		e.RegistrationDeadline = &d
	}
	if p.SubmissionDeadline != nil {
		d := *p.SubmissionDeadline
		e.SubmissionDeadline = &d
	}
	setIf(&e.MaxParticipants, p.MaxParticipants)
	setIf(&e.MinTeamSize, p.MinTeamSize)
	setIf(&e.MaxTeamSize, p.MaxTeamSize)
	setIf(&e.Tracks, p.Tracks)
	setIf(&e.Prizes, p.Prizes)
	setIf(&e.Rules, p.Rules)
	setIf(&e.Tags, p.Tags)
	setIf(&e.BannerURL, p.BannerURL)
	setIf(&e.IsPublic, p.IsPublic)
}

// EventFilter narrows event listings.
type EventFilter struct {
	Status      *EventStatus
	OrganizerID string
	PublicOnly  bool
}
