package entities

import "time"

// SubmissionStatus enumerates project submission states.
type SubmissionStatus string

const (
	SubmissionDraft       SubmissionStatus = "draft"
	SubmissionSubmitted   SubmissionStatus = "submitted"
	SubmissionUnderReview SubmissionStatus = "under_review"
	SubmissionJudged      SubmissionStatus = "judged"
)

// Submission is a platform-wide project entry.
type Submission struct {
	ID           string           `json:"id"`
	Title        string           `json:"title" validate:"required,min=3,max=120"`
	Description  string           `json:"description" validate:"max=10000"`
	TeamID       string           `json:"teamId,omitempty"`
	EventID      string           `json:"eventId,omitempty"`
	Track        string           `json:"track,omitempty"`
	RepoURL      string           `json:"repoUrl,omitempty" validate:"omitempty,url"`
	DemoURL      string           `json:"demoUrl,omitempty" validate:"omitempty,url"`
	VideoURL     string           `json:"videoUrl,omitempty" validate:"omitempty,url"`
	Technologies []string         `json:"technologies"`
	Status       SubmissionStatus `json:"status" validate:"omitempty,oneof=draft submitted under_review judged"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty"`
}

// SubmissionPatch is a partial update of either submission kind.
type SubmissionPatch struct {
	Title        *string           `json:"title" validate:"omitempty,min=3,max=120"`
	Description  *string           `json:"description" validate:"omitempty,max=10000"`
	TeamID       *string           `json:"teamId"`
	Track        *string           `json:"track"`
	RepoURL      *string           `json:"repoUrl" validate:"omitempty,url"`
	DemoURL      *string           `json:"demoUrl" validate:"omitempty,url"`
	VideoURL     *string           `json:"videoUrl" validate:"omitempty,url"`
	Technologies *[]string         `json:"technologies"`
	Status       *SubmissionStatus `json:"status" validate:"omitempty,oneof=draft submitted under_review judged"`
}

// Apply copies set fields onto s and stamps submittedAt on first submit.
func (p SubmissionPatch) Apply(s *Submission, now time.Time) {
	setIf(&s.Title, p.Title)
	setIf(&s.Description, p.Description)
	setIf(&s.TeamID, p.TeamID)
	setIf(&s.Track, p.Track)
	setIf(&s.RepoURL, p.RepoURL)
	setIf(&s.DemoURL, p.DemoURL)
	setIf(&s.VideoURL, p.VideoURL)
	setIf(&s.Technologies, p.Technologies)
	setIf(&s.Status, p.Status)
	if s.Status != SubmissionDraft && s.SubmittedAt == nil {
		s.SubmittedAt = &now
	}
}

// ApplyEvent copies set fields onto an event submission.
func (p SubmissionPatch) ApplyEvent(s *EventSubmission) {
	setIf(&s.Title, p.Title)
	setIf(&s.Description, p.Description)
	setIf(&s.TeamID, p.TeamID)
	setIf(&s.Track, p.Track)
	setIf(&s.RepoURL, p.RepoURL)
	setIf(&s.DemoURL, p.DemoURL)
	setIf(&s.VideoURL, p.VideoURL)
	setIf(&s.Technologies, p.Technologies)
	setIf(&s.Status, p.Status)
}

// SubmissionFilter narrows submission listings.
type SubmissionFilter struct {
	EventID string
	TeamID  string
	Track   string
	Status  *SubmissionStatus
}

// EventSubmission is a project submitted to one event, carrying its score aggregate.
type EventSubmission struct {
	ID           string           `json:"id"`
	EventID      string           `json:"eventId"`
	TeamID       string           `json:"teamId" validate:"required"`
	Title        string           `json:"title" validate:"required,min=3,max=120"`
	Description  string           `json:"description" validate:"max=10000"`
	Track        string           `json:"track,omitempty"`
	RepoURL      string           `json:"repoUrl,omitempty" validate:"omitempty,url"`
	DemoURL      string           `json:"demoUrl,omitempty" validate:"omitempty,url"`
	VideoURL     string           `json:"videoUrl,omitempty" validate:"omitempty,url"`
	Technologies []string         `json:"technologies"`
	Status       SubmissionStatus `json:"status" validate:"omitempty,oneof=draft submitted under_review judged"`
	ScoreCount   int              `json:"scoreCount"`
	TotalScore   float64          `json:"totalScore"`
	AverageScore float64          `json:"averageScore"`
	SubmittedAt  time.Time        `json:"submittedAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}
