// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/transport/http/middleware"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the REST API on top of the usecase layer.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log.Named("http"),
		uc:  usecase,
	}
}

// Register mounts every API route under r.
func (h *Handler) Register(r fiber.Router) {
	r.Use(middleware.Authenticate(h.uc))

	auth := r.Group("/auth")
	auth.Post("/register", h.PostRegister)
	auth.Post("/login", h.PostLogin)
	auth.Get("/me", middleware.RequireAuth(), h.GetMe)

	users := r.Group("/users")
	users.Get("/", h.GetUsers)
	users.Post("/", h.PostUser)
	users.Get("/:id", h.GetUser)
	users.Patch("/:id", h.PatchUser)
	users.Delete("/:id", h.DeleteUser)

	events := r.Group("/events")
	events.Get("/", h.GetEvents)
	events.Post("/", h.PostEvent)
	events.Get("/slug/:slug", h.GetEventBySlug)
	events.Get("/:id", h.GetEvent)
	events.Patch("/:id", h.PatchEvent)
	events.Delete("/:id", h.DeleteEvent)

	events.Get("/:id/participants", h.GetParticipants)
	events.Post("/:id/participants", h.PostParticipant)
	events.Patch("/:id/participants/:participantId", h.PatchParticipant)
	events.Delete("/:id/participants/:participantId", h.DeleteParticipant)

	events.Get("/:id/teams", h.GetEventTeams)
	events.Post("/:id/teams", h.PostEventTeam)
	events.Get("/:id/teams/:teamId", h.GetEventTeam)
	events.Patch("/:id/teams/:teamId", h.PatchEventTeam)
	events.Delete("/:id/teams/:teamId", h.DeleteEventTeam)
	events.Post("/:id/teams/:teamId/members", h.PostTeamMember)
	events.Delete("/:id/teams/:teamId/members/:userId", h.DeleteTeamMember)

	events.Get("/:id/submissions", h.GetEventSubmissions)
	events.Post("/:id/submissions", h.PostEventSubmission)
	events.Get("/:id/submissions/:submissionId", h.GetEventSubmission)
	events.Patch("/:id/submissions/:submissionId", h.PatchEventSubmission)
	events.Delete("/:id/submissions/:submissionId", h.DeleteEventSubmission)
	events.Get("/:id/submissions/:submissionId/scores", h.GetScores)
	events.Post("/:id/submissions/:submissionId/scores", h.PostScore)
	events.Get("/:id/scores", h.GetEventScores)

	events.Get("/:id/content", h.GetContent)
	events.Post("/:id/content", h.PostContent)
	events.Get("/:id/sponsors", h.GetSponsors)
	events.Post("/:id/sponsors", h.PostSponsor)
	events.Get("/:id/judges", h.GetEventJudges)
	events.Get("/:id/analytics", h.GetEventAnalytics)
	events.Get("/:id/leaderboard", h.GetLeaderboard)

	r.Patch("/scores/:id", h.PatchScore)
	r.Delete("/scores/:id", h.DeleteScore)
	r.Patch("/content/:id", h.PatchContent)
	r.Delete("/content/:id", h.DeleteContent)
	r.Patch("/sponsors/:id", h.PatchSponsor)
	r.Delete("/sponsors/:id", h.DeleteSponsor)

	judges := r.Group("/judges")
	judges.Get("/", h.GetJudges)
	judges.Post("/", h.PostJudge)
	judges.Get("/:id", h.GetJudge)
	judges.Patch("/:id", h.PatchJudge)
	judges.Delete("/:id", h.DeleteJudge)

	teams := r.Group("/teams")
	teams.Get("/", h.GetTeams)
	teams.Post("/", h.PostTeam)
	teams.Get("/:id", h.GetTeam)
	teams.Patch("/:id", h.PatchTeam)
	teams.Delete("/:id", h.DeleteTeam)

	subs := r.Group("/submissions")
	subs.Get("/", h.GetSubmissions)
	subs.Post("/", h.PostSubmission)
	subs.Get("/:id", h.GetSubmission)
	subs.Patch("/:id", h.PatchSubmission)
	subs.Delete("/:id", h.DeleteSubmission)

	lfg := r.Group("/lfg")
	lfg.Get("/", h.GetLFGPosts)
	lfg.Post("/", h.PostLFGPost)
	lfg.Get("/:id", h.GetLFGPost)
	lfg.Patch("/:id", h.PatchLFGPost)
	lfg.Delete("/:id", h.DeleteLFGPost)

	r.Get("/analytics", h.GetPlatformAnalytics)

	apps := r.Group("/judge-applications")
	apps.Get("/steps", h.GetWizardSteps)
	apps.Post("/drafts", h.PostDraft)
	apps.Get("/drafts/:id", h.GetDraft)
	apps.Put("/drafts/:id/steps/:step", h.PutDraftStep)
	apps.Post("/drafts/:id/back", h.PostDraftBack)
	apps.Post("/drafts/:id/submit", h.PostDraftSubmit)
	apps.Get("/", h.GetApplications)
	apps.Get("/:id", h.GetApplication)
	apps.Post("/:id/approve", middleware.RequireAdmin(), h.PostApprove)
	apps.Post("/:id/reject", middleware.RequireAdmin(), h.PostReject)
}
