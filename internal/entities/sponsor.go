package entities

import "time"

// SponsorTier orders sponsors on the event page.
type SponsorTier string

const (
	TierPlatinum SponsorTier = "platinum"
	TierGold     SponsorTier = "gold"
	TierSilver   SponsorTier = "silver"
	TierBronze   SponsorTier = "bronze"
	TierPartner  SponsorTier = "partner"
)

// TierRank returns the display rank of a tier, lower first.
func TierRank(t SponsorTier) int {
	switch t {
	case TierPlatinum:
		return 0
	case TierGold:
		return 1
	case TierSilver:
		return 2
	case TierBronze:
		return 3
	default:
		return 4
	}
}

// EventSponsor is a sponsor attached to an event. Deleting only clears IsActive.
type EventSponsor struct {
	ID          string      `json:"id"`
	EventID     string      `json:"eventId"`
	Name        string      `json:"name" validate:"required,max=120"`
	Tier        SponsorTier `json:"tier" validate:"omitempty,oneof=platinum gold silver bronze partner"`
	LogoURL     string      `json:"logoUrl,omitempty" validate:"omitempty,url"`
	WebsiteURL  string      `json:"websiteUrl,omitempty" validate:"omitempty,url"`
	Description string      `json:"description,omitempty" validate:"max=2000"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// SponsorPatch is a partial sponsor update.
type SponsorPatch struct {
	Name        *string      `json:"name" validate:"omitempty,max=120"`
	Tier        *SponsorTier `json:"tier" validate:"omitempty,oneof=platinum gold silver bronze partner"`
	LogoURL     *string      `json:"logoUrl" validate:"omitempty,url"`
	WebsiteURL  *string      `json:"websiteUrl" validate:"omitempty,url"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	IsActive    *bool        `json:"isActive"`
}

// Apply copies set fields onto s.
func (p SponsorPatch) Apply(s *EventSponsor) {
	setIf(&s.Name, p.Name)
	setIf(&s.Tier, p.Tier)
	setIf(&s.LogoURL, p.LogoURL)
	setIf(&s.WebsiteURL, p.WebsiteURL)
	setIf(&s.Description, p.Description)
	setIf(&s.IsActive, p.IsActive)
}
