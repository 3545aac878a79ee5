package handlers_fiber

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/drafts"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository/memory"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/seed"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := zap.NewNop().Sugar()
	store := memory.New(log)
	require.NoError(t, seed.Apply(context.Background(), store, log, time.Now().UTC()))

	uc := usecase.New(log, context.Background(), store, drafts.New(log, 64, time.Hour), 2*time.Second,
		config.AuthConfig{JWTSecret: "handler-test", TokenTTL: time.Hour, Issuer: "hackathon-test"})
	return NewApp(log, uc, 5*time.Second)
}

func call(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func login(t *testing.T, app *fiber.App, name, password string) entities.AuthResult {
	t.Helper()
	status, raw := call(t, app, http.MethodPost, "/api/auth/login", entities.LoginInput{Login: name, Password: password}, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	return decode[entities.AuthResult](t, raw)
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	status, _ := call(t, app, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, status)
}

func TestAuthRoutes(t *testing.T) {
	app := newTestApp(t)

	status, raw := call(t, app, http.MethodPost, "/api/auth/register", entities.RegisterInput{
		Username: "newbie", Email: "newbie@example.com", Password: "short",
	}, "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "password", decode[ErrorResponse](t, raw).Errors[0].Path)

	status, raw = call(t, app, http.MethodPost, "/api/auth/register", entities.RegisterInput{
		Username: "newbie", Email: "newbie@example.com", Password: "long-enough-pass",
	}, "")
	require.Equal(t, http.StatusCreated, status, string(raw))
	reg := decode[entities.AuthResult](t, raw)

	status, raw = call(t, app, http.MethodGet, "/api/auth/me", nil, reg.Token)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "newbie", decode[entities.User](t, raw).Username)

	status, _ = call(t, app, http.MethodGet, "/api/auth/me", nil, "")
	require.Equal(t, http.StatusUnauthorized, status)

	status, _ = call(t, app, http.MethodGet, "/api/auth/me", nil, "garbage")
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestEventLifecycle(t *testing.T) {
	app := newTestApp(t)
	org := login(t, app, "orgmaya", "organizer-password")
	sam := login(t, app, "devsam", "participant-password")
	before := org.User.EventsOrganized

	status, raw := call(t, app, http.MethodPost, "/api/events", map[string]any{}, "")
	require.Equal(t, http.StatusBadRequest, status)
	verr := decode[ErrorResponse](t, raw)
	require.Equal(t, CodeValidationFailed, verr.Error.Code)
	require.NotEmpty(t, verr.Errors)

	status, raw = call(t, app, http.MethodPost, "/api/events", map[string]any{
		"title":           "Night Owl Jam",
		"organizerId":     org.User.ID,
		"startDate":       "2026-11-01T18:00:00Z",
		"endDate":         "2026-11-02T18:00:00Z",
		"maxParticipants": 1,
		"tracks":          []map[string]string{{"name": "tools"}},
	}, "")
	require.Equal(t, http.StatusCreated, status, string(raw))
	event := decode[entities.Event](t, raw)
	require.Equal(t, "night-owl-jam", event.Slug)
	require.Equal(t, entities.EventDraft, event.Status)

	status, raw = call(t, app, http.MethodGet, "/api/events/slug/night-owl-jam", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, event.ID, decode[entities.Event](t, raw).ID)

	status, raw = call(t, app, http.MethodGet, "/api/users/"+org.User.ID, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, before+1, decode[entities.User](t, raw).EventsOrganized)

	status, raw = call(t, app, http.MethodPost, "/api/events/"+event.ID+"/participants", map[string]any{"userId": sam.User.ID}, "")
	require.Equal(t, http.StatusCreated, status, string(raw))
	part := decode[entities.EventParticipant](t, raw)

	status, _ = call(t, app, http.MethodPost, "/api/events/"+event.ID+"/participants", map[string]any{"userId": org.User.ID}, "")
	require.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodDelete, "/api/events/"+event.ID+"/participants/"+part.ID, nil, "")
	require.Equal(t, http.StatusNoContent, status)

	status, raw = call(t, app, http.MethodGet, "/api/events/"+event.ID, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, 0, decode[entities.Event](t, raw).ParticipantCount)

	status, raw = call(t, app, http.MethodGet, "/api/events/"+event.ID+"/analytics", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, event.ID, decode[entities.EventAnalytics](t, raw).EventID)

	status, _ = call(t, app, http.MethodDelete, "/api/events/"+event.ID, nil, "")
	require.Equal(t, http.StatusNoContent, status)
	status, _ = call(t, app, http.MethodGet, "/api/events/"+event.ID, nil, "")
	require.Equal(t, http.StatusNotFound, status)
}

func TestJudgeSoftDelete(t *testing.T) {
	app := newTestApp(t)

	status, raw := call(t, app, http.MethodPost, "/api/judges", map[string]any{"name": "Rita Review", "email": "rita@example.com"}, "")
	require.Equal(t, http.StatusCreated, status, string(raw))
	judge := decode[entities.Judge](t, raw)

	status, _ = call(t, app, http.MethodDelete, "/api/judges/"+judge.ID, nil, "")
	require.Equal(t, http.StatusNoContent, status)

	has := func(list []entities.Judge) bool {
		for _, j := range list {
			if j.ID == judge.ID {
				return true
			}
		}
		return false
	}

	_, raw = call(t, app, http.MethodGet, "/api/judges", nil, "")
	require.False(t, has(decode[[]entities.Judge](t, raw)))

	_, raw = call(t, app, http.MethodGet, "/api/judges?includeInactive=true", nil, "")
	require.True(t, has(decode[[]entities.Judge](t, raw)))

	status, raw = call(t, app, http.MethodGet, "/api/judges/"+judge.ID, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.False(t, decode[entities.Judge](t, raw).IsActive)
}

func TestJudgeApplicationFlow(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app, "admin", "admin-password")
	sam := login(t, app, "devsam", "participant-password")

	status, raw := call(t, app, http.MethodGet, "/api/judge-applications/steps", nil, "")
	require.Equal(t, http.StatusOK, status)
	require.Len(t, decode[[]entities.WizardStep](t, raw), len(entities.WizardSteps))

	status, raw = call(t, app, http.MethodPost, "/api/judge-applications/drafts", nil, sam.Token)
	require.Equal(t, http.StatusCreated, status, string(raw))
	draft := decode[entities.ApplicationDraft](t, raw)
	require.Equal(t, sam.User.ID, draft.UserID)

	status, raw = call(t, app, http.MethodPut, "/api/judge-applications/drafts/"+draft.ID+"/steps/personal",
		map[string]any{"fullName": "Sam Okafor", "email": "nope"}, "")
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "email", decode[ErrorResponse](t, raw).Errors[0].Path)

	status, raw = call(t, app, http.MethodPut, "/api/judge-applications/drafts/"+draft.ID+"/steps/3",
		map[string]any{"availability": "weekends", "hoursPerWeek": 4}, "")
	require.Equal(t, http.StatusConflict, status, string(raw))

	status, raw = call(t, app, http.MethodPost, "/api/judge-applications/drafts/"+draft.ID+"/submit", nil, "")
	require.Equal(t, http.StatusBadRequest, status)
	paths := map[string]bool{}
	for _, f := range decode[ErrorResponse](t, raw).Errors {
		paths[f.Path] = true
	}
	require.True(t, paths["bio"])
	require.True(t, paths["motivation"])

	status, raw = call(t, app, http.MethodPost, "/api/judge-applications/drafts", map[string]any{"testMode": true}, sam.Token)
	require.Equal(t, http.StatusCreated, status)
	testDraft := decode[entities.ApplicationDraft](t, raw)

	status, raw = call(t, app, http.MethodPost, "/api/judge-applications/drafts/"+testDraft.ID+"/submit", nil, "")
	require.Equal(t, http.StatusCreated, status, string(raw))
	application := decode[entities.JudgeApplication](t, raw)

	status, _ = call(t, app, http.MethodGet, "/api/judge-applications/drafts/"+testDraft.ID, nil, "")
	require.Equal(t, http.StatusNotFound, status)

	approve := "/api/judge-applications/" + application.ID + "/approve"
	status, _ = call(t, app, http.MethodPost, approve, nil, "")
	require.Equal(t, http.StatusUnauthorized, status)
	status, _ = call(t, app, http.MethodPost, approve, nil, sam.Token)
	require.Equal(t, http.StatusForbidden, status)

	status, raw = call(t, app, http.MethodPost, approve, entities.ReviewInput{Note: "welcome aboard"}, admin.Token)
	require.Equal(t, http.StatusOK, status, string(raw))
	approved := decode[entities.JudgeApplication](t, raw)
	require.Equal(t, entities.ApplicationApproved, approved.Status)

	status, raw = call(t, app, http.MethodGet, "/api/judges/"+approved.JudgeID, nil, "")
	require.Equal(t, http.StatusOK, status)
	require.True(t, decode[entities.Judge](t, raw).IsActive)

	status, _ = call(t, app, http.MethodPost, "/api/judge-applications/"+application.ID+"/reject", nil, admin.Token)
	require.Equal(t, http.StatusConflict, status)
}

func TestUsersCannotGrantRoles(t *testing.T) {
	app := newTestApp(t)

	status, raw := call(t, app, http.MethodPost, "/api/auth/register", entities.RegisterInput{
		Username: "mallory", Email: "mallory@example.com", Password: "long-enough-pass",
	}, "")
	require.Equal(t, http.StatusCreated, status, string(raw))
	mallory := decode[entities.AuthResult](t, raw)

	status, raw = call(t, app, http.MethodPatch, "/api/users/"+mallory.User.ID, map[string]any{"role": "admin"}, "")
	require.Equal(t, http.StatusBadRequest, status, string(raw))
	verr := decode[ErrorResponse](t, raw)
	require.Equal(t, CodeValidationFailed, verr.Error.Code)
	require.Equal(t, "role", verr.Errors[0].Path)

	status, raw = call(t, app, http.MethodPatch, "/api/users/"+mallory.User.ID, map[string]any{"bio": "hi"}, "")
	require.Equal(t, http.StatusOK, status, string(raw))
	require.Equal(t, entities.RoleParticipant, decode[entities.User](t, raw).Role)

	status, raw = call(t, app, http.MethodPost, "/api/users", map[string]any{
		"username": "eve", "email": "eve@example.com", "role": "admin",
	}, "")
	require.Equal(t, http.StatusBadRequest, status, string(raw))
	require.Equal(t, "role", decode[ErrorResponse](t, raw).Errors[0].Path)

	again := login(t, app, "mallory", "long-enough-pass")
	require.Equal(t, entities.RoleParticipant, again.User.Role)
	status, _ = call(t, app, http.MethodPost, "/api/judge-applications/missing/approve", nil, again.Token)
	require.Equal(t, http.StatusForbidden, status)
}

func TestDeletedAdminTokenIsRejected(t *testing.T) {
	app := newTestApp(t)
	admin := login(t, app, "admin", "admin-password")

	status, _ := call(t, app, http.MethodDelete, "/api/users/"+admin.User.ID, nil, admin.Token)
	require.Equal(t, http.StatusNoContent, status)

	status, raw := call(t, app, http.MethodPost, "/api/judge-applications/missing/approve", nil, admin.Token)
	require.Equal(t, http.StatusUnauthorized, status, string(raw))
}

func TestUnknownRouteIsJSON(t *testing.T) {
	app := newTestApp(t)
	status, raw := call(t, app, http.MethodGet, "/api/nowhere", nil, "")
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "NOT_FOUND", decode[ErrorResponse](t, raw).Error.Code)
}
