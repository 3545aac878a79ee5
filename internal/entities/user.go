package entities

import "time"

// UserRole enumerates platform roles.
type UserRole string

const (
	RoleParticipant UserRole = "participant"
	RoleOrganizer   UserRole = "organizer"
	RoleJudge       UserRole = "judge"
	RoleAdmin       UserRole = "admin"
)

// User is a platform profile.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username" validate:"required,min=3,max=32,alphanumunicode"`
	Email           string    `json:"email" validate:"required,email"`
	FullName        string    `json:"fullName" validate:"max=120"`
	AvatarURL       string    `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Bio             string    `json:"bio,omitempty" validate:"max=1000"`
	Location        string    `json:"location,omitempty"`
	Skills          []string  `json:"skills"`
	GithubURL       string    `json:"githubUrl,omitempty" validate:"omitempty,url"`
	LinkedinURL     string    `json:"linkedinUrl,omitempty" validate:"omitempty,url"`
	Role            UserRole  `json:"role" validate:"omitempty,oneof=participant organizer judge admin"`
	EventsOrganized int       `json:"eventsOrganized"`
	EventsJoined    int       `json:"eventsJoined"`
	PasswordHash    string    `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UserPatch is a partial user update.
type UserPatch struct {
	FullName    *string   `json:"fullName" validate:"omitempty,max=120"`
	AvatarURL   *string   `json:"avatarUrl" validate:"omitempty,url"`
	Bio         *string   `json:"bio" validate:"omitempty,max=1000"`
	Location    *string   `json:"location"`
	Skills      *[]string `json:"skills"`
	GithubURL   *string   `json:"githubUrl" validate:"omitempty,url"`
	LinkedinURL *string   `json:"linkedinUrl" validate:"omitempty,url"`
	// Role is decoded so a client that sends it gets a validation error.
	// Only the review flow sets it, straight on the repository.
	Role *UserRole `json:"role" validate:"omitempty,oneof=participant organizer judge admin"`
}

// Apply copies set fields onto u.
func (p UserPatch) Apply(u *User) {
	setIf(&u.FullName, p.FullName)
	setIf(&u.AvatarURL, p.AvatarURL)
	setIf(&u.Bio, p.Bio)
	setIf(&u.Location, p.Location)
	setIf(&u.Skills, p.Skills)
	setIf(&u.GithubURL, p.GithubURL)
	setIf(&u.LinkedinURL, p.LinkedinURL)
	setIf(&u.Role, p.Role)
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
