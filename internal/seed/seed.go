// Package seed loads the bundled sample data used by `serve --seed` and by
// judge-application test mode.
package seed

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var fixtureYAML []byte

// Fixture is the parsed sample data set.
type Fixture struct {
	Users             []User                      `yaml:"users"`
	Events            []Event                     `yaml:"events"`
	Judges            []Judge                     `yaml:"judges"`
	LFG               []LFGPost                   `yaml:"lfg"`
	SampleApplication entities.ApplicationAnswers `yaml:"sampleApplication"`
}

// User is a seeded account with a plaintext password.
type User struct {
	Username string            `yaml:"username"`
	Email    string            `yaml:"email"`
	FullName string            `yaml:"fullName"`
	Role     entities.UserRole `yaml:"role"`
	Password string            `yaml:"password"`
	Skills   []string          `yaml:"skills"`
}

// Event is a seeded event. Dates are relative to the load time.
type Event struct {
	Title           string               `yaml:"title"`
	Slug            string               `yaml:"slug"`
	Organizer       string               `yaml:"organizer"`
	Description     string               `yaml:"description"`
	Status          entities.EventStatus `yaml:"status"`
	Format          entities.EventFormat `yaml:"format"`
	Location        string               `yaml:"location"`
	StartInDays     int                  `yaml:"startInDays"`
	DurationDays    int                  `yaml:"durationDays"`
	MaxParticipants int                  `yaml:"maxParticipants"`
	MinTeamSize     int                  `yaml:"minTeamSize"`
	MaxTeamSize     int                  `yaml:"maxTeamSize"`
	IsPublic        bool                 `yaml:"isPublic"`
	Tags            []string             `yaml:"tags"`
	Tracks          []entities.Track     `yaml:"tracks"`
	Prizes          []entities.Prize     `yaml:"prizes"`
	Sponsors        []struct {
		Name       string               `yaml:"name"`
		Tier       entities.SponsorTier `yaml:"tier"`
		WebsiteURL string               `yaml:"websiteUrl"`
	} `yaml:"sponsors"`
	Content []struct {
		Type        entities.ContentType `yaml:"type"`
		Title       string               `yaml:"title"`
		Body        string               `yaml:"body"`
		Position    int                  `yaml:"position"`
		IsPublished bool                 `yaml:"isPublished"`
	} `yaml:"content"`
	Participants []string `yaml:"participants"`
}

// Judge is a seeded judge, optionally bound to an event slug.
type Judge struct {
	Name      string   `yaml:"name"`
	Email     string   `yaml:"email"`
	Company   string   `yaml:"company"`
	Title     string   `yaml:"title"`
	Expertise []string `yaml:"expertise"`
	Event     string   `yaml:"event"`
}

// LFGPost is a seeded matchmaking post.
type LFGPost struct {
	User        string           `yaml:"user"`
	Event       string           `yaml:"event"`
	Kind        entities.LFGKind `yaml:"kind"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	Skills      []string         `yaml:"skills"`
}

// Load parses the embedded fixture.
func Load() (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(fixtureYAML, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &f, nil
}

// SampleAnswers returns the canned judge application used in test mode.
func SampleAnswers() (entities.ApplicationAnswers, error) {
	f, err := Load()
	if err != nil {
		return entities.ApplicationAnswers{}, err
	}
	a := f.SampleApplication
	a.Expertise = append([]string(nil), a.Expertise...)
	return a, nil
}

// Apply writes the fixture into repo. Users that already exist are reused, so
// seeding a restored store is harmless.
func Apply(ctx context.Context, repo repository.Repository, log *zap.SugaredLogger, now time.Time) error {
	f, err := Load()
	if err != nil {
		return err
	}
	log = log.Named("seed")

	users := make(map[string]string, len(f.Users))
	for _, u := range f.Users {
		id, err := ensureUser(ctx, repo, u)
		if err != nil {
			return err
		}
		users[u.Username] = id
	}

	events := make(map[string]string, len(f.Events))
	for _, e := range f.Events {
		if existing, err := repo.GetEventBySlug(ctx, e.Slug); err == nil {
			events[e.Slug] = existing.ID
			continue
		}
		id, err := applyEvent(ctx, repo, e, users, now)
		if err != nil {
			return err
		}
		events[e.Slug] = id
	}

	for _, j := range f.Judges {
		_, err := repo.CreateJudge(ctx, entities.Judge{
			EventID:   events[j.Event],
			Name:      j.Name,
			Email:     j.Email,
			Company:   j.Company,
			Title:     j.Title,
			Expertise: j.Expertise,
		})
		if err != nil {
			return fmt.Errorf("seed judge %s: %w", j.Email, err)
		}
	}

	for _, p := range f.LFG {
		_, err := repo.CreateLFGPost(ctx, entities.LFGPost{
			UserID:      users[p.User],
			EventID:     events[p.Event],
			Kind:        p.Kind,
			Title:       p.Title,
			Description: p.Description,
			Skills:      p.Skills,
		})
		if err != nil {
			return fmt.Errorf("seed lfg post: %w", err)
		}
	}

	log.Infow("fixture applied", "users", len(users), "events", len(events), "judges", len(f.Judges))
	return nil
}

func ensureUser(ctx context.Context, repo repository.Repository, u User) (string, error) {
	existing, err := repo.GetUserByLogin(ctx, u.Username)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	created, err := repo.CreateUser(ctx, entities.User{
		Username:     u.Username,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         u.Role,
		Skills:       u.Skills,
		PasswordHash: string(hash),
	})
	if err != nil {
		return "", fmt.Errorf("seed user %s: %w", u.Username, err)
	}
	return created.ID, nil
}

func applyEvent(ctx context.Context, repo repository.Repository, e Event, users map[string]string, now time.Time) (string, error) {
	start := now.Truncate(24*time.Hour).AddDate(0, 0, e.StartInDays)
	end := start.AddDate(0, 0, max(e.DurationDays, 1))
	deadline := start.Add(-24 * time.Hour)

	created, err := repo.CreateEvent(ctx, entities.Event{
		Slug:                 e.Slug,
		Title:                e.Title,
		Description:          e.Description,
		OrganizerID:          users[e.Organizer],
		Status:               e.Status,
		Format:               e.Format,
		Location:             e.Location,
		StartDate:            start,
		EndDate:              end,
		RegistrationDeadline: &deadline,
		SubmissionDeadline:   &end,
		MaxParticipants:      e.MaxParticipants,
		MinTeamSize:          e.MinTeamSize,
		MaxTeamSize:          e.MaxTeamSize,
		Tracks:               e.Tracks,
		Prizes:               e.Prizes,
		Tags:                 e.Tags,
		IsPublic:             e.IsPublic,
	})
	if err != nil {
		return "", fmt.Errorf("seed event %s: %w", e.Slug, err)
	}

	for _, sp := range e.Sponsors {
		if _, err := repo.CreateSponsor(ctx, entities.EventSponsor{
			EventID:    created.ID,
			Name:       sp.Name,
			Tier:       sp.Tier,
			WebsiteURL: sp.WebsiteURL,
		}); err != nil {
			return "", fmt.Errorf("seed sponsor %s: %w", sp.Name, err)
		}
	}
	for _, c := range e.Content {
		if _, err := repo.CreateContent(ctx, entities.EventContent{
			EventID:     created.ID,
			Type:        c.Type,
			Title:       c.Title,
			Body:        c.Body,
			Position:    c.Position,
			IsPublished: c.IsPublished,
		}); err != nil {
			return "", fmt.Errorf("seed content %s: %w", c.Title, err)
		}
	}
	for _, username := range e.Participants {
		if _, err := repo.RegisterParticipant(ctx, entities.EventParticipant{
			EventID: created.ID,
			UserID:  users[username],
		}); err != nil {
			return "", fmt.Errorf("seed participant %s: %w", username, err)
		}
	}
	return created.ID, nil
}
