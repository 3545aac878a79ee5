package entities

import "time"

// ContentType enumerates event page sections.
type ContentType string

const (
	ContentAnnouncement ContentType = "announcement"
	ContentFAQ          ContentType = "faq"
	ContentSchedule     ContentType = "schedule"
	ContentResource     ContentType = "resource"
	ContentRule         ContentType = "rule"
)

// EventContent is an organizer-authored block on an event page.
type EventContent struct {
	ID          string      `json:"id"`
	EventID     string      `json:"eventId"`
	Type        ContentType `json:"type" validate:"required,oneof=announcement faq schedule resource rule"`
	Title       string      `json:"title" validate:"required,max=200"`
	Body        string      `json:"body" validate:"max=20000"`
	Position    int         `json:"position" validate:"min=0"`
	IsPublished bool        `json:"isPublished"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// ContentPatch is a partial content update.
type ContentPatch struct {
	Type        *ContentType `json:"type" validate:"omitempty,oneof=announcement faq schedule resource rule"`
	Title       *string      `json:"title" validate:"omitempty,max=200"`
	Body        *string      `json:"body" validate:"omitempty,max=20000"`
	Position    *int         `json:"position" validate:"omitempty,min=0"`
	IsPublished *bool        `json:"isPublished"`
}

// Apply copies set fields onto c.
func (p ContentPatch) Apply(c *EventContent) {
	setIf(&c.Type, p.Type)
	setIf(&c.Title, p.Title)
	setIf(&c.Body, p.Body)
	setIf(&c.Position, p.Position)
	setIf(&c.IsPublished, p.IsPublished)
}
