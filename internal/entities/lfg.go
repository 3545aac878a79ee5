package entities

import "time"

// LFGKind tells whether a post seeks a team or members.
type LFGKind string

const (
	LookingForTeam    LFGKind = "looking_for_team"
	LookingForMembers LFGKind = "looking_for_members"
)

// LFGPost is a "Looking For Group" matchmaking post.
type LFGPost struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId" validate:"required"`
	EventID     string    `json:"eventId,omitempty"`
	Kind        LFGKind   `json:"kind" validate:"required,oneof=looking_for_team looking_for_members"`
	Title       string    `json:"title" validate:"required,min=3,max=120"`
	Description string    `json:"description" validate:"max=5000"`
	Skills      []string  `json:"skills"`
	TeamID      string    `json:"teamId,omitempty"`
	IsOpen      bool      `json:"isOpen"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LFGPatch is a partial post update.
type LFGPatch struct {
	Title       *string   `json:"title" validate:"omitempty,min=3,max=120"`
	Description *string   `json:"description" validate:"omitempty,max=5000"`
	Skills      *[]string `json:"skills"`
	TeamID      *string   `json:"teamId"`
	IsOpen      *bool     `json:"isOpen"`
}

// Apply copies set fields onto p.
func (lp LFGPatch) Apply(p *LFGPost) {
	setIf(&p.Title, lp.Title)
	setIf(&p.Description, lp.Description)
	setIf(&p.Skills, lp.Skills)
	setIf(&p.TeamID, lp.TeamID)
	setIf(&p.IsOpen, lp.IsOpen)
}

// LFGFilter narrows post listings.
type LFGFilter struct {
	EventID  string
	Kind     *LFGKind
	OpenOnly bool
}
