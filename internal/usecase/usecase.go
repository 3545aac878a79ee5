package usecase

import (
	"context"
	"time"

	"github.com/MaximallyHack/Maximally-Hack-sub000/config"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/repository"
	"github.com/MaximallyHack/Maximally-Hack-sub000/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	EventUsecaseInterface
	ParticipantUsecaseInterface
	EventTeamUsecaseInterface
	EventSubmissionUsecaseInterface
	ScoreUsecaseInterface
	JudgeUsecaseInterface
	SponsorUsecaseInterface
	ContentUsecaseInterface
	TeamUsecaseInterface
	SubmissionUsecaseInterface
	LFGUsecaseInterface
	ApplicationUsecaseInterface
	AnalyticsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	drafts repository.DraftInterface,
	timeout time.Duration,
	auth config.AuthConfig,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, drafts, timeout, auth)
}
