package entities

import "time"

// Snapshot is the serialisable state of the whole store.
type Snapshot struct {
	TakenAt      time.Time          `json:"takenAt"`
	Users        []User             `json:"users"`
	Passwords    map[string]string  `json:"passwords,omitempty"`
	Events       []Event            `json:"events"`
	Participants []EventParticipant `json:"participants"`
	EventTeams   []EventTeam        `json:"eventTeams"`
	EventSubs    []EventSubmission  `json:"eventSubmissions"`
	Scores       []JudgingScore     `json:"scores"`
	Judges       []Judge            `json:"judges"`
	Sponsors     []EventSponsor     `json:"sponsors"`
	Content      []EventContent     `json:"content"`
	Teams        []Team             `json:"teams"`
	Submissions  []Submission       `json:"submissions"`
	LFGPosts     []LFGPost          `json:"lfgPosts"`
	Applications []JudgeApplication `json:"applications"`
}
