package entities

import "time"

// Team is a platform-wide team that can enter several events.
type Team struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" validate:"required,min=2,max=80"`
	Description       string    `json:"description,omitempty" validate:"max=2000"`
	LeaderID          string    `json:"leaderId" validate:"required"`
	MemberIDs         []string  `json:"memberIds"`
	LookingForMembers bool      `json:"lookingForMembers"`
	Skills            []string  `json:"skills"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// TeamPatch is a partial team update.
type TeamPatch struct {
	Name              *string   `json:"name" validate:"omitempty,min=2,max=80"`
	Description       *string   `json:"description" validate:"omitempty,max=2000"`
	LeaderID          *string   `json:"leaderId"`
	MemberIDs         *[]string `json:"memberIds"`
	LookingForMembers *bool     `json:"lookingForMembers"`
	Skills            *[]string `json:"skills"`
}

// Apply copies set fields onto t.
func (p TeamPatch) Apply(t *Team) {
	setIf(&t.Name, p.Name)
	setIf(&t.Description, p.Description)
	setIf(&t.LeaderID, p.LeaderID)
	setIf(&t.MemberIDs, p.MemberIDs)
	setIf(&t.LookingForMembers, p.LookingForMembers)
	setIf(&t.Skills, p.Skills)
}

// EventTeam is a team formed inside a single event.
type EventTeam struct {
	ID                string    `json:"id"`
	EventID           string    `json:"eventId"`
	Name              string    `json:"name" validate:"required,min=2,max=80"`
	Description       string    `json:"description,omitempty" validate:"max=2000"`
	CaptainID         string    `json:"captainId" validate:"required"`
	MemberIDs         []string  `json:"memberIds"`
	LookingForMembers bool      `json:"lookingForMembers"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// HasMember reports whether userID is on the team.
func (t EventTeam) HasMember(userID string) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// EventTeamPatch is a partial event-team update.
type EventTeamPatch struct {
	Name              *string `json:"name" validate:"omitempty,min=2,max=80"`
	Description       *string `json:"description" validate:"omitempty,max=2000"`
	CaptainID         *string `json:"captainId"`
	LookingForMembers *bool   `json:"lookingForMembers"`
}

// Apply copies set fields onto t.
func (p EventTeamPatch) Apply(t *EventTeam) {
	setIf(&t.Name, p.Name)
	setIf(&t.Description, p.Description)
	setIf(&t.CaptainID, p.CaptainID)
	setIf(&t.LookingForMembers, p.LookingForMembers)
}
