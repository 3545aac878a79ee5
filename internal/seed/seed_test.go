package seed

import (
	"context"
	"testing"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/memory"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func TestSampleAnswersAreValid(t *testing.T) {
	a, err := SampleAnswers()
	require.NoError(t, err)
	require.Equal(t, "Jordan Test", a.FullName)

	v := validator.New(validator.WithRequiredStructEnabled())
	require.NoError(t, v.Struct(a))
}

func TestApplySeedsStore(t *testing.T) {
	ctx := context.Background()
	store := memory.New(zap.NewNop().Sugar())
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, Apply(ctx, store, zap.NewNop().Sugar(), now))

	admin, err := store.GetUserByLogin(ctx, "admin")
	require.NoError(t, err)
	require.Equal(t, entities.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin-password")))

	org, err := store.GetUserByLogin(ctx, "orgmaya")
	require.NoError(t, err)
	require.Equal(t, 2, org.EventsOrganized)

	e, err := store.GetEventBySlug(ctx, "spring-build-weekend")
	require.NoError(t, err)
	require.Equal(t, 2, e.ParticipantCount)
	require.True(t, e.StartDate.Before(e.EndDate))

	sponsors, err := store.ListSponsors(ctx, e.ID, false)
	require.NoError(t, err)
	require.Len(t, sponsors, 2)
	require.Equal(t, entities.TierGold, sponsors[0].Tier)

	judges, err := store.ListJudges(ctx, entities.JudgeFilter{EventID: e.ID})
	require.NoError(t, err)
	require.Len(t, judges, 2)
}

func TestApplyIsRepeatable(t *testing.T) {
	ctx := context.Background()
	store := memory.New(zap.NewNop().Sugar())
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	require.NoError(t, Apply(ctx, store, zap.NewNop().Sugar(), now))

	// judges and lfg posts are not deduplicated, but users and events are
	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	events, err := store.ListEvents(ctx, entities.EventFilter{})
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, store, zap.NewNop().Sugar(), now))

	usersAfter, err := store.ListUsers(ctx)
	require.NoError(t, err)
	eventsAfter, err := store.ListEvents(ctx, entities.EventFilter{})
	require.NoError(t, err)
	require.Len(t, usersAfter, len(users))
	require.Len(t, eventsAfter, len(events))
}
