// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes user-related operations.
type UserInterface interface {
	CreateUser(ctx context.Context, u entities.User) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByLogin(ctx context.Context, login string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// EventInterface exposes event operations.
type EventInterface interface {
	CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error)
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*entities.Event, error)
	ListEvents(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, id string, patch entities.EventPatch) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// ParticipantInterface exposes event registration operations.
type ParticipantInterface interface {
	RegisterParticipant(ctx context.Context, p entities.EventParticipant) (*entities.EventParticipant, error)
	ListParticipants(ctx context.Context, eventID string) ([]entities.EventParticipant, error)
	UpdateParticipant(ctx context.Context, eventID, id string, patch entities.ParticipantPatch) (*entities.EventParticipant, error)
	RemoveParticipant(ctx context.Context, eventID, id string) error
}

// EventTeamInterface exposes event-scoped team operations.
type EventTeamInterface interface {
	CreateEventTeam(ctx context.Context, t entities.EventTeam) (*entities.EventTeam, error)
	GetEventTeam(ctx context.Context, eventID, id string) (*entities.EventTeam, error)
	ListEventTeams(ctx context.Context, eventID string) ([]entities.EventTeam, error)
	UpdateEventTeam(ctx context.Context, eventID, id string, patch entities.EventTeamPatch) (*entities.EventTeam, error)
	AddTeamMember(ctx context.Context, eventID, teamID, userID string) (*entities.EventTeam, error)
	RemoveTeamMember(ctx context.Context, eventID, teamID, userID string) (*entities.EventTeam, error)
	DeleteEventTeam(ctx context.Context, eventID, id string) error
}

// EventSubmissionInterface exposes event-scoped submission operations.
type EventSubmissionInterface interface {
	CreateEventSubmission(ctx context.Context, s entities.EventSubmission) (*entities.EventSubmission, error)
	GetEventSubmission(ctx context.Context, eventID, id string) (*entities.EventSubmission, error)
	ListEventSubmissions(ctx context.Context, eventID string, filter entities.SubmissionFilter) ([]entities.EventSubmission, error)
	UpdateEventSubmission(ctx context.Context, eventID, id string, patch entities.SubmissionPatch) (*entities.EventSubmission, error)
	DeleteEventSubmission(ctx context.Context, eventID, id string) error
}

// ScoreInterface exposes judging score operations.
type ScoreInterface interface {
	CreateScore(ctx context.Context, s entities.JudgingScore) (*entities.JudgingScore, error)
	ListScores(ctx context.Context, submissionID string) ([]entities.JudgingScore, error)
	ListEventScores(ctx context.Context, eventID string) ([]entities.JudgingScore, error)
	UpdateScore(ctx context.Context, id string, patch entities.ScorePatch) (*entities.JudgingScore, error)
	DeleteScore(ctx context.Context, id string) error
}

// JudgeInterface exposes judge operations. Deletion is soft.
type JudgeInterface interface {
	CreateJudge(ctx context.Context, j entities.Judge) (*entities.Judge, error)
	GetJudge(ctx context.Context, id string) (*entities.Judge, error)
	ListJudges(ctx context.Context, filter entities.JudgeFilter) ([]entities.Judge, error)
	UpdateJudge(ctx context.Context, id string, patch entities.JudgePatch) (*entities.Judge, error)
	DeactivateJudge(ctx context.Context, id string) (*entities.Judge, error)
}

// SponsorInterface exposes sponsor operations. Deletion is soft.
type SponsorInterface interface {
	CreateSponsor(ctx context.Context, s entities.EventSponsor) (*entities.EventSponsor, error)
	ListSponsors(ctx context.Context, eventID string, includeInactive bool) ([]entities.EventSponsor, error)
	UpdateSponsor(ctx context.Context, id string, patch entities.SponsorPatch) (*entities.EventSponsor, error)
	DeactivateSponsor(ctx context.Context, id string) (*entities.EventSponsor, error)
}

// ContentInterface exposes event page content operations.
type ContentInterface interface {
	CreateContent(ctx context.Context, c entities.EventContent) (*entities.EventContent, error)
	ListContent(ctx context.Context, eventID string, includeDrafts bool) ([]entities.EventContent, error)
	UpdateContent(ctx context.Context, id string, patch entities.ContentPatch) (*entities.EventContent, error)
	DeleteContent(ctx context.Context, id string) error
}

// TeamInterface exposes platform-wide team operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id string) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// SubmissionInterface exposes platform-wide submission operations.
type SubmissionInterface interface {
	CreateSubmission(ctx context.Context, s entities.Submission) (*entities.Submission, error)
	GetSubmission(ctx context.Context, id string) (*entities.Submission, error)
	ListSubmissions(ctx context.Context, filter entities.SubmissionFilter) ([]entities.Submission, error)
	UpdateSubmission(ctx context.Context, id string, patch entities.SubmissionPatch) (*entities.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

// LFGInterface exposes matchmaking post operations.
type LFGInterface interface {
	CreateLFGPost(ctx context.Context, p entities.LFGPost) (*entities.LFGPost, error)
	GetLFGPost(ctx context.Context, id string) (*entities.LFGPost, error)
	ListLFGPosts(ctx context.Context, filter entities.LFGFilter) ([]entities.LFGPost, error)
	UpdateLFGPost(ctx context.Context, id string, patch entities.LFGPatch) (*entities.LFGPost, error)
	DeleteLFGPost(ctx context.Context, id string) error
}

// ApplicationInterface exposes submitted judge applications.
type ApplicationInterface interface {
	CreateApplication(ctx context.Context, a entities.JudgeApplication) (*entities.JudgeApplication, error)
	GetApplication(ctx context.Context, id string) (*entities.JudgeApplication, error)
	ListApplications(ctx context.Context, status *entities.ApplicationStatus) ([]entities.JudgeApplication, error)
	// ReviewApplication and ApproveApplication fail with
	// entities.ErrApplicationReviewed unless the application is still submitted.
	ReviewApplication(ctx context.Context, a entities.JudgeApplication) (*entities.JudgeApplication, error)
	ApproveApplication(ctx context.Context, a entities.JudgeApplication, j entities.Judge) (*entities.JudgeApplication, *entities.Judge, error)
}

// AnalyticsInterface exposes aggregated statistics operations.
type AnalyticsInterface interface {
	PlatformAnalytics(ctx context.Context, topLimit int) (entities.PlatformAnalytics, error)
	EventAnalytics(ctx context.Context, eventID string) (entities.EventAnalytics, error)
	Leaderboard(ctx context.Context, eventID string, limit int) ([]entities.LeaderboardEntry, error)
}

// DraftInterface stores unfinished judge applications until they expire.
type DraftInterface interface {
	SaveDraft(ctx context.Context, d entities.ApplicationDraft) (*entities.ApplicationDraft, error)
	GetDraft(ctx context.Context, id string) (*entities.ApplicationDraft, error)
	DeleteDraft(ctx context.Context, id string) error
}

// SnapshotInterface persists whole-store snapshots.
type SnapshotInterface interface {
	LifecycleInterface
	LoadSnapshot(ctx context.Context) (*entities.Snapshot, error)
	SaveSnapshot(ctx context.Context, s entities.Snapshot) error
}
