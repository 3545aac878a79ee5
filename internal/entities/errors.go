// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is the parent of every missing-record error.
	ErrNotFound = errors.New("not found")
	// ErrConflict is the parent of every uniqueness or state conflict.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized signals missing or bad credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden signals an authenticated caller without the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = notFound("user not found")
	// ErrEventNotFound signals missing event.
	ErrEventNotFound = notFound("event not found")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = notFound("team not found")
	// ErrSubmissionNotFound signals missing submission.
	ErrSubmissionNotFound = notFound("submission not found")
	// ErrParticipantNotFound signals missing event registration.
	ErrParticipantNotFound = notFound("participant not found")
	// ErrJudgeNotFound signals missing judge.
	ErrJudgeNotFound = notFound("judge not found")
	// ErrScoreNotFound signals missing judging score.
	ErrScoreNotFound = notFound("score not found")
	// ErrContentNotFound signals missing event content.
	ErrContentNotFound = notFound("content not found")
	// ErrSponsorNotFound signals missing sponsor.
	ErrSponsorNotFound = notFound("sponsor not found")
	// ErrLFGPostNotFound signals missing LFG post.
	ErrLFGPostNotFound = notFound("lfg post not found")
	// ErrApplicationNotFound signals missing judge application.
	ErrApplicationNotFound = notFound("judge application not found")
	// ErrDraftNotFound signals missing application draft.
	ErrDraftNotFound = notFound("draft not found")

	// ErrUserExists signals username or email collision.
	ErrUserExists = conflict("user exists")
	// ErrSlugExists signals event slug collision.
	ErrSlugExists = conflict("event slug exists")
	// ErrAlreadyRegistered signals a second registration of the same user.
	ErrAlreadyRegistered = conflict("already registered")
	// ErrEventFull signals maxParticipants reached.
	ErrEventFull = conflict("event is full")
	// ErrTeamFull signals maxTeamSize reached.
	ErrTeamFull = conflict("team is full")
	// ErrAlreadyMember signals a duplicate team member.
	ErrAlreadyMember = conflict("already a team member")
	// ErrNotMember signals removal of a user that is not on the team.
	ErrNotMember = conflict("not a team member")
	// ErrAlreadyScored signals a second score by the same judge.
	ErrAlreadyScored = conflict("submission already scored by judge")
	// ErrApplicationReviewed signals review of a non-pending application.
	ErrApplicationReviewed = conflict("application already reviewed")
	// ErrDraftExpired signals a draft past its expiry timestamp.
	ErrDraftExpired = conflict("draft expired")
	// ErrStepOutOfOrder signals saving a wizard step ahead of the current one.
	ErrStepOutOfOrder = conflict("wizard step out of order")
)

type kindError struct {
	msg    string
	parent error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.parent }

func notFound(msg string) error { return &kindError{msg: msg, parent: ErrNotFound} }
func conflict(msg string) error { return &kindError{msg: msg, parent: ErrConflict} }
