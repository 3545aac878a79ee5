package entities

import "time"

// ApplicationStatus enumerates judge application review states.
type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationApproved  ApplicationStatus = "approved"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// ApplicationAnswers holds every field of the judge application wizard.
type ApplicationAnswers struct {
	FullName        string   `json:"fullName" yaml:"fullName" validate:"required,min=2,max=120"`
	Email           string   `json:"email" yaml:"email" validate:"required,email"`
	Phone           string   `json:"phone,omitempty" yaml:"phone" validate:"omitempty,e164"`
	Company         string   `json:"company" yaml:"company" validate:"required,max=120"`
	JobTitle        string   `json:"jobTitle" yaml:"jobTitle" validate:"required,max=120"`
	YearsExperience int      `json:"yearsExperience" yaml:"yearsExperience" validate:"min=1,max=60"`
	LinkedinURL     string   `json:"linkedinUrl,omitempty" yaml:"linkedinUrl" validate:"omitempty,url"`
	Expertise       []string `json:"expertise" yaml:"expertise" validate:"required,min=1,max=10,dive,required"`
	Bio             string   `json:"bio" yaml:"bio" validate:"required,min=50,max=2000"`
	Availability    string   `json:"availability" yaml:"availability" validate:"required,oneof=weekends weekdays flexible"`
	HoursPerWeek    int      `json:"hoursPerWeek" yaml:"hoursPerWeek" validate:"min=1,max=40"`
	Motivation      string   `json:"motivation" yaml:"motivation" validate:"required,min=100,max=5000"`
	PreviousJudging string   `json:"previousJudging,omitempty" yaml:"previousJudging" validate:"max=2000"`
	AgreeToTerms    bool     `json:"agreeToTerms" yaml:"agreeToTerms" validate:"required"`
}

// ApplicationDraft is an unfinished wizard, stored until ExpiresAt.
type ApplicationDraft struct {
	ID        string             `json:"id"`
	UserID    string             `json:"userId,omitempty"`
	Step      int                `json:"step"`
	Answers   ApplicationAnswers `json:"answers"`
	TestMode  bool               `json:"testMode"`
	SavedAt   time.Time          `json:"savedAt"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// Expired reports whether the draft is past its expiry at now.
func (d ApplicationDraft) Expired(now time.Time) bool {
	return !d.ExpiresAt.IsZero() && !now.Before(d.ExpiresAt)
}

// JudgeApplication is a submitted wizard awaiting review.
type JudgeApplication struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId,omitempty"`
	Status      ApplicationStatus  `json:"status"`
	Answers     ApplicationAnswers `json:"answers"`
	TestMode    bool               `json:"testMode"`
	ReviewNote  string             `json:"reviewNote,omitempty"`
	JudgeID     string             `json:"judgeId,omitempty"`
	SubmittedAt time.Time          `json:"submittedAt"`
	ReviewedAt  *time.Time         `json:"reviewedAt,omitempty"`
}
