package entities

import "time"

// Judge evaluates submissions. Deleting a judge only clears IsActive.
type Judge struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	EventID   string    `json:"eventId,omitempty"`
	Name      string    `json:"name" validate:"required,min=2,max=120"`
	Email     string    `json:"email" validate:"required,email"`
	Bio       string    `json:"bio,omitempty" validate:"max=2000"`
	Expertise []string  `json:"expertise"`
	Company   string    `json:"company,omitempty"`
	Title     string    `json:"title,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JudgePatch is a partial judge update.
type JudgePatch struct {
	EventID   *string   `json:"eventId"`
	Name      *string   `json:"name" validate:"omitempty,min=2,max=120"`
	Email     *string   `json:"email" validate:"omitempty,email"`
	Bio       *string   `json:"bio" validate:"omitempty,max=2000"`
	Expertise *[]string `json:"expertise"`
	Company   *string   `json:"company"`
	Title     *string   `json:"title"`
	AvatarURL *string   `json:"avatarUrl" validate:"omitempty,url"`
	IsActive  *bool     `json:"isActive"`
}

// Apply copies set fields onto j.
func (p JudgePatch) Apply(j *Judge) {
	setIf(&j.EventID, p.EventID)
	setIf(&j.Name, p.Name)
	setIf(&j.Email, p.Email)
	setIf(&j.Bio, p.Bio)
	setIf(&j.Expertise, p.Expertise)
	setIf(&j.Company, p.Company)
	setIf(&j.Title, p.Title)
	setIf(&j.AvatarURL, p.AvatarURL)
	setIf(&j.IsActive, p.IsActive)
}

// JudgeFilter narrows judge listings.
type JudgeFilter struct {
	EventID         string
	IncludeInactive bool
}
