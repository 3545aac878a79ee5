package usecase

import (
	"context"

	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/entities"
)

// AuthUsecaseInterface abstracts account registration and token handling.
type AuthUsecaseInterface interface {
	Register(ctx context.Context, in entities.RegisterInput) (*entities.AuthResult, error)
	Login(ctx context.Context, in entities.LoginInput) (*entities.AuthResult, error)
	Me(ctx context.Context, p entities.Principal) (*entities.User, error)
	ParseToken(ctx context.Context, token string) (*entities.Principal, error)
}

// UserUsecaseInterface abstracts user-related operations for delivery layer.
type UserUsecaseInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	User(ctx context.Context, id string) (*entities.User, error)
	Users(ctx context.Context) ([]entities.User, error)
	UpdateUser(ctx context.Context, id string, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// EventUsecaseInterface abstracts event operations.
type EventUsecaseInterface interface {
	CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error)
	Event(ctx context.Context, id string) (*entities.Event, error)
	EventBySlug(ctx context.Context, slug string) (*entities.Event, error)
	Events(ctx context.Context, filter entities.EventFilter) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, id string, patch entities.EventPatch) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// ParticipantUsecaseInterface abstracts event registrations.
type ParticipantUsecaseInterface interface {
	RegisterParticipant(ctx context.Context, eventID string, p entities.EventParticipant) (*entities.EventParticipant, error)
	Participants(ctx context.Context, eventID string) ([]entities.EventParticipant, error)
	UpdateParticipant(ctx context.Context, eventID, id string, patch entities.ParticipantPatch) (*entities.EventParticipant, error)
	RemoveParticipant(ctx context.Context, eventID, id string) error
}

// EventTeamUsecaseInterface abstracts teams formed inside an event.
type EventTeamUsecaseInterface interface {
	CreateEventTeam(ctx context.Context, eventID string, t entities.EventTeam) (*entities.EventTeam, error)
	EventTeam(ctx context.Context, eventID, id string) (*entities.EventTeam, error)
	EventTeams(ctx context.Context, eventID string) ([]entities.EventTeam, error)
	UpdateEventTeam(ctx context.Context, eventID, id string, patch entities.EventTeamPatch) (*entities.EventTeam, error)
	AddTeamMember(ctx context.Context, eventID, teamID, userID string) (*entities.EventTeam, error)
	RemoveTeamMember(ctx context.Context, eventID, teamID, userID string) (*entities.EventTeam, error)
	DeleteEventTeam(ctx context.Context, eventID, id string) error
}

// EventSubmissionUsecaseInterface abstracts projects submitted to an event.
type EventSubmissionUsecaseInterface interface {
	CreateEventSubmission(ctx context.Context, eventID string, s entities.EventSubmission) (*entities.EventSubmission, error)
	EventSubmission(ctx context.Context, eventID, id string) (*entities.EventSubmission, error)
	EventSubmissions(ctx context.Context, eventID string, filter entities.SubmissionFilter) ([]entities.EventSubmission, error)
	UpdateEventSubmission(ctx context.Context, eventID, id string, patch entities.SubmissionPatch) (*entities.EventSubmission, error)
	DeleteEventSubmission(ctx context.Context, eventID, id string) error
}

// ScoreUsecaseInterface abstracts judging.
type ScoreUsecaseInterface interface {
	ScoreSubmission(ctx context.Context, eventID, submissionID string, s entities.JudgingScore) (*entities.JudgingScore, error)
	Scores(ctx context.Context, eventID, submissionID string) ([]entities.JudgingScore, error)
	EventScores(ctx context.Context, eventID string) ([]entities.JudgingScore, error)
	UpdateScore(ctx context.Context, id string, patch entities.ScorePatch) (*entities.JudgingScore, error)
	DeleteScore(ctx context.Context, id string) error
}

// JudgeUsecaseInterface abstracts judge management.
type JudgeUsecaseInterface interface {
	CreateJudge(ctx context.Context, j entities.Judge) (*entities.Judge, error)
	Judge(ctx context.Context, id string) (*entities.Judge, error)
	Judges(ctx context.Context, filter entities.JudgeFilter) ([]entities.Judge, error)
	UpdateJudge(ctx context.Context, id string, patch entities.JudgePatch) (*entities.Judge, error)
	DeactivateJudge(ctx context.Context, id string) (*entities.Judge, error)
}

// SponsorUsecaseInterface abstracts event sponsors.
type SponsorUsecaseInterface interface {
	CreateSponsor(ctx context.Context, eventID string, s entities.EventSponsor) (*entities.EventSponsor, error)
	Sponsors(ctx context.Context, eventID string, includeInactive bool) ([]entities.EventSponsor, error)
	UpdateSponsor(ctx context.Context, id string, patch entities.SponsorPatch) (*entities.EventSponsor, error)
	DeactivateSponsor(ctx context.Context, id string) (*entities.EventSponsor, error)
}

// ContentUsecaseInterface abstracts event page content.
type ContentUsecaseInterface interface {
	CreateContent(ctx context.Context, eventID string, c entities.EventContent) (*entities.EventContent, error)
	Contents(ctx context.Context, eventID string, includeDrafts bool) ([]entities.EventContent, error)
	UpdateContent(ctx context.Context, id string, patch entities.ContentPatch) (*entities.EventContent, error)
	DeleteContent(ctx context.Context, id string) error
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, t entities.Team) (*entities.Team, error)
	Team(ctx context.Context, id string) (*entities.Team, error)
	Teams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, id string, patch entities.TeamPatch) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id string) error
}

// SubmissionUsecaseInterface abstracts platform-wide projects.
type SubmissionUsecaseInterface interface {
	CreateSubmission(ctx context.Context, s entities.Submission) (*entities.Submission, error)
	Submission(ctx context.Context, id string) (*entities.Submission, error)
	Submissions(ctx context.Context, filter entities.SubmissionFilter) ([]entities.Submission, error)
	UpdateSubmission(ctx context.Context, id string, patch entities.SubmissionPatch) (*entities.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

// LFGUsecaseInterface abstracts matchmaking posts.
type LFGUsecaseInterface interface {
	CreateLFGPost(ctx context.Context, p entities.LFGPost) (*entities.LFGPost, error)
	LFGPost(ctx context.Context, id string) (*entities.LFGPost, error)
	LFGPosts(ctx context.Context, filter entities.LFGFilter) ([]entities.LFGPost, error)
	UpdateLFGPost(ctx context.Context, id string, patch entities.LFGPatch) (*entities.LFGPost, error)
	DeleteLFGPost(ctx context.Context, id string) error
}

// ApplicationUsecaseInterface abstracts the judge application wizard and review.
type ApplicationUsecaseInterface interface {
	StartDraft(ctx context.Context, userID string, testMode bool) (*entities.ApplicationDraft, error)
	Draft(ctx context.Context, id string) (*entities.ApplicationDraft, error)
	SaveStep(ctx context.Context, id string, step int, answers entities.ApplicationAnswers) (*entities.ApplicationDraft, error)
	BackStep(ctx context.Context, id string) (*entities.ApplicationDraft, error)
	SubmitDraft(ctx context.Context, id string) (*entities.JudgeApplication, error)
	Applications(ctx context.Context, status *entities.ApplicationStatus) ([]entities.JudgeApplication, error)
	Application(ctx context.Context, id string) (*entities.JudgeApplication, error)
	ApproveApplication(ctx context.Context, id string, in entities.ReviewInput) (*entities.JudgeApplication, error)
	RejectApplication(ctx context.Context, id string, in entities.ReviewInput) (*entities.JudgeApplication, error)
}

// AnalyticsUsecaseInterface abstracts statistics operations.
type AnalyticsUsecaseInterface interface {
	PlatformAnalytics(ctx context.Context, top int) (entities.PlatformAnalytics, error)
	EventAnalytics(ctx context.Context, eventID string) (entities.EventAnalytics, error)
	Leaderboard(ctx context.Context, eventID string, limit int) ([]entities.LeaderboardEntry, error)
}
