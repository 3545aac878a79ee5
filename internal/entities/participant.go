package entities

import "time"

// ParticipantStatus enumerates registration states.
type ParticipantStatus string

const (
	ParticipantRegistered ParticipantStatus = "registered"
	ParticipantCheckedIn  ParticipantStatus = "checked_in"
	ParticipantWithdrawn  ParticipantStatus = "withdrawn"
)

// EventParticipant is a user's registration for an event.
type EventParticipant struct {
	ID           string            `json:"id"`
	EventID      string            `json:"eventId"`
	UserID       string            `json:"userId" validate:"required"`
	TeamID       string            `json:"teamId,omitempty"`
	Role         string            `json:"role" validate:"omitempty,oneof=participant mentor volunteer"`
	Status       ParticipantStatus `json:"status" validate:"omitempty,oneof=registered checked_in withdrawn"`
	RegisteredAt time.Time         `json:"registeredAt"`
}

// ParticipantPatch is a partial registration update.
type ParticipantPatch struct {
	TeamID *string            `json:"teamId"`
	Role   *string            `json:"role" validate:"omitempty,oneof=participant mentor volunteer"`
	Status *ParticipantStatus `json:"status" validate:"omitempty,oneof=registered checked_in withdrawn"`
}

// Apply copies set fields onto p.
func (pp ParticipantPatch) Apply(p *EventParticipant) {
	setIf(&p.TeamID, pp.TeamID)
	setIf(&p.Role, pp.Role)
	setIf(&p.Status, pp.Status)
}
