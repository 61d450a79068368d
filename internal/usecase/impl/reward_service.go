package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "weev/internal/delivery/context"
	"weev/internal/domain/constants"
	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	"weev/internal/domain/service"
	"weev/internal/errors"
	"weev/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// rewardService implements the RewardUsecase interface.
type rewardService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	activationRepo repository.ActivationRepository
	grantRepo      repository.RewardGrantRepository
	metrics        service.LedgerMetrics
	notifier       *ledgerNotifier
	logger         *slog.Logger
	now            func() time.Time
}

// RewardServiceParams holds dependencies for RewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	ActivationRepo repository.ActivationRepository
	GrantRepo      repository.RewardGrantRepository
	Publisher      service.EventPublisher `optional:"true"`
	Metrics        service.LedgerMetrics  `optional:"true"`
	Logger         *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	return &rewardService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		activationRepo: params.ActivationRepo,
		grantRepo:      params.GrantRepo,
		metrics:        metricsOrNop(params.Metrics),
		notifier:       &ledgerNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// claimResult carries what the claim transaction committed.
type claimResult struct {
	grant   *entity.RewardGrant
	points  int
	user    *entity.User
	expired bool
}

// Claim moves an available grant to claimed and credits its points. A grant whose
// template expired is committed as expired and ErrRewardExpired is returned.
func (srv *rewardService) Claim(ctx context.Context, principal entity.Principal, grantID uuid.UUID) (*usecase.ClaimOutput, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	now := srv.now().UTC()
	result := &claimResult{}
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return srv.claimInTx(ctx, repos, principal.UserID, grantID, now, result)
	})
	expiryCommitted := err == nil && result.expired
	if expiryCommitted {
		err = domainerrors.ErrRewardExpired
	}
	srv.metrics.ObserveClaim(outcomeOf(err))

	if expiryCommitted {
		srv.metrics.ObserveExpired(1)
		srv.notifier.notify(ctx, &service.LedgerEvent{
			Type:     constants.EventRewardExpired,
			UserID:   principal.UserID.String(),
			GrantIDs: []string{grantID.String()},
		})
	}
	if err != nil {
		logFailure(srv.log(ctx), "Claim failed", err,
			slog.String("userID", principal.UserID.String()),
			slog.String("grantID", grantID.String()),
		)

		return nil, err
	}

	output := &usecase.ClaimOutput{Reward: result.grant, PointsAwarded: result.points}
	if result.user != nil {
		output.TotalPoints = &result.user.Points
		output.CurrentLevel = &result.user.Level
		srv.metrics.ObservePoints("reward", result.points)
	}

	srv.log(ctx).Info("Reward claimed",
		slog.String("userID", principal.UserID.String()),
		slog.String("grantID", grantID.String()),
		slog.Int("points", result.points),
	)
	event := &service.LedgerEvent{
		Type:     constants.EventRewardClaimed,
		UserID:   principal.UserID.String(),
		GrantIDs: []string{grantID.String()},
		Points:   result.points,
	}
	if result.grant.Template != nil {
		event.Attributes = map[string]string{"reward_type": string(result.grant.Template.Type)}
	}
	srv.notifier.notify(ctx, event)

	return output, nil
}

func (srv *rewardService) claimInTx(
	ctx context.Context,
	repos repository.RepositoryFactory,
	userID, grantID uuid.UUID,
	now time.Time,
	result *claimResult,
) error {
	grantRepo := repos.RewardGrantRepo()

	grant, err := grantRepo.FindByIDForUser(ctx, grantID, userID)
	if errors.Is(err, repository.ErrRewardGrantNotFound) {
		return domainerrors.ErrRewardGrantNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to lock reward grant")
	}
	if grant.State != entity.GrantStateAvailable {
		return domainerrors.ErrRewardNotAvailable
	}

	if grant.ShouldExpireAt(now) {
		if err := grant.Expire(); err != nil {
			return domainerrors.ErrRewardNotAvailable
		}
		if err := grantRepo.UpdateState(ctx, grant.ID, entity.GrantStateExpired, nil); err != nil {
			return srv.mapStateError(err)
		}
		// Returning nil commits the expiry; the caller reports it.
		result.expired = true

		return nil
	}

	if err := grant.Claim(now); err != nil {
		return domainerrors.ErrRewardNotAvailable
	}
	if err := grantRepo.UpdateState(ctx, grant.ID, grant.State, grant.ClaimedAt); err != nil {
		return srv.mapStateError(err)
	}
	result.grant = grant

	if grant.Template == nil || grant.Template.Type != entity.RewardTypePoints {
		return nil
	}

	points, ok := grant.Template.PointsValue()
	if !ok {
		srv.log(ctx).Debug("Points reward without a leading amount, nothing credited",
			slog.String("grantID", grant.ID.String()),
			slog.String("value", grant.Template.Value),
		)

		return nil
	}

	user, err := repos.UserRepo().FindByIDForUpdate(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to lock user")
	}
	user.AddPoints(points)
	if err := repos.UserRepo().UpdatePoints(ctx, user.ID, user.Points, user.Level); err != nil {
		return errors.Wrap(err, "failed to update user points")
	}
	result.points = points
	result.user = user

	return nil
}

func (srv *rewardService) mapStateError(err error) error {
	if errors.Is(err, repository.ErrGrantStateConflict) {
		return domainerrors.ErrRewardNotAvailable
	}

	return errors.Wrap(err, "failed to update reward grant state")
}

// ListGrants materializes due expiries and lists the principal's grants. An empty state
// lists every grant.
func (srv *rewardService) ListGrants(ctx context.Context, principal entity.Principal, state string) ([]*entity.RewardGrant, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var filter *entity.GrantState
	if state != "" {
		s := entity.GrantState(state)
		if !s.IsValid() {
			return nil, domainerrors.ErrInvalidGrantState.WithDetails("got " + state)
		}
		filter = &s
	}

	now := srv.now().UTC()
	var (
		grants  []*entity.RewardGrant
		expired []uuid.UUID
	)
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		grantRepo := repos.RewardGrantRepo()

		var err error
		expired, err = grantRepo.ExpireDue(ctx, principal.UserID, now)
		if err != nil {
			return errors.Wrap(err, "failed to expire due grants")
		}

		grants, err = grantRepo.ListByUser(ctx, principal.UserID, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list grants")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list grants", slog.String("userID", principal.UserID.String()), slog.Any("error", err))

		return nil, err
	}

	if len(expired) > 0 {
		srv.metrics.ObserveExpired(len(expired))
		srv.notifier.notify(ctx, &service.LedgerEvent{
			Type:     constants.EventRewardExpired,
			UserID:   principal.UserID.String(),
			GrantIDs: uuidStrings(expired),
		})
	}

	return grants, nil
}

// Stats returns the principal's standing. Grant totals are read without expiring due
// grants first, so an available count may include grants that expire on next listing.
func (srv *rewardService) Stats(ctx context.Context, principal entity.Principal) (*usecase.UserStats, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.userRepo.FindByID(ctx, principal.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	activations, err := srv.activationRepo.CountByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count activations")
	}

	counts, err := srv.grantRepo.CountByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count grants")
	}

	return &usecase.UserStats{
		TotalPoints:       user.Points,
		CurrentLevel:      user.Level,
		PointsToNextLevel: user.PointsToNextLevel(),
		Activations:       activations,
		TotalRewards:      counts.Total,
		AvailableRewards:  counts.Available,
		ClaimedRewards:    counts.Claimed,
		ExpiredRewards:    counts.Expired,
	}, nil
}
