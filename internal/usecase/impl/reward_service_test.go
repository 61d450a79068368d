package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"weev/internal/domain/constants"
	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	"weev/internal/domain/service"
	mockRepo "weev/internal/mocks/repository"
	mockSvc "weev/internal/mocks/service"
	"weev/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRewardServiceWithStore(store *memStore, params RewardServiceParams) *rewardService {
	repos := store.repos()
	params.TxManager = store
	params.UserRepo = repos.UserRepo()
	params.ActivationRepo = repos.ActivationRepo()
	params.GrantRepo = repos.RewardGrantRepo()
	params.Logger = testLogger()

	srv := NewRewardService(params).(*rewardService)
	srv.now = func() time.Time { return testNow }

	return srv
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestRewardService_Claim_PointsReward(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 90)
	product := store.addProduct(uuid.New(), "WEEV-P", true)
	template := store.addTemplate(product.ID, entity.RewardTypePoints, "25 puntos", timePtr(testNow.Add(time.Hour)), true)
	grant := store.addGrant(user.ID, template, entity.GrantStateAvailable, testNow.Add(-time.Hour))

	srv := newRewardServiceWithStore(store, RewardServiceParams{})

	out, err := srv.Claim(context.Background(), consumerPrincipal(user), grant.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.GrantStateClaimed, out.Reward.State)
	require.NotNil(t, out.Reward.ClaimedAt)
	assert.Equal(t, testNow, *out.Reward.ClaimedAt)
	assert.Equal(t, 25, out.PointsAwarded)
	require.NotNil(t, out.TotalPoints)
	assert.Equal(t, 115, *out.TotalPoints)
	assert.Equal(t, 2, *out.CurrentLevel)

	stored := store.user(user.ID)
	assert.Equal(t, 115, stored.Points)
	assert.Equal(t, 2, stored.Level)
	assert.Equal(t, entity.GrantStateClaimed, store.grant(grant.ID).State)
}

func TestRewardService_Claim_UnparsablePointsValueCreditsNothing(t *testing.T) {
	for _, value := range []string{"muchos puntos", "", "-5 puntos", "0 puntos"} {
		t.Run(value, func(t *testing.T) {
			store := newMemStore()
			user := store.addUser(entity.RoleConsumer, 10)
			template := store.addTemplate(uuid.New(), entity.RewardTypePoints, value, nil, true)
			grant := store.addGrant(user.ID, template, entity.GrantStateAvailable, testNow)

			srv := newRewardServiceWithStore(store, RewardServiceParams{})

			out, err := srv.Claim(context.Background(), consumerPrincipal(user), grant.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.GrantStateClaimed, out.Reward.State)
			assert.Zero(t, out.PointsAwarded)
			assert.Nil(t, out.TotalPoints)
			assert.Equal(t, 10, store.user(user.ID).Points)
		})
	}
}

func TestRewardService_Claim_NonPointsRewardLeavesPoints(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 10)
	template := store.addTemplate(uuid.New(), entity.RewardTypeDiscount, "15 %", nil, true)
	grant := store.addGrant(user.ID, template, entity.GrantStateAvailable, testNow)

	srv := newRewardServiceWithStore(store, RewardServiceParams{})

	out, err := srv.Claim(context.Background(), consumerPrincipal(user), grant.ID)
	require.NoError(t, err)
	assert.Zero(t, out.PointsAwarded)
	assert.Equal(t, 10, store.user(user.ID).Points)
}

func TestRewardService_Claim_ExpiredTemplateCommitsExpiry(t *testing.T) {
	for _, expiresAt := range []time.Time{testNow.Add(-24 * time.Hour), testNow} {
		t.Run(expiresAt.String(), func(t *testing.T) {
			store := newMemStore()
			user := store.addUser(entity.RoleConsumer, 0)
			template := store.addTemplate(uuid.New(), entity.RewardTypePoints, "25 puntos", timePtr(expiresAt), true)
			grant := store.addGrant(user.ID, template, entity.GrantStateAvailable, testNow.Add(-48*time.Hour))

			srv := newRewardServiceWithStore(store, RewardServiceParams{})
			ctx := context.Background()

			out, err := srv.Claim(ctx, consumerPrincipal(user), grant.ID)
			require.ErrorIs(t, err, domainerrors.ErrRewardExpired)
			assert.Nil(t, out)

			assert.Equal(t, entity.GrantStateExpired, store.grant(grant.ID).State)
			assert.Nil(t, store.grant(grant.ID).ClaimedAt)
			assert.Zero(t, store.user(user.ID).Points)

			available, err := srv.ListGrants(ctx, consumerPrincipal(user), "available")
			require.NoError(t, err)
			assert.Empty(t, available)

			expired, err := srv.ListGrants(ctx, consumerPrincipal(user), "expired")
			require.NoError(t, err)
			require.Len(t, expired, 1)
			assert.Equal(t, grant.ID, expired[0].ID)
		})
	}
}

func TestRewardService_Claim_Rejections(t *testing.T) {
	store := newMemStore()
	owner := store.addUser(entity.RoleConsumer, 0)
	other := store.addUser(entity.RoleConsumer, 0)
	template := store.addTemplate(uuid.New(), entity.RewardTypePoints, "10 puntos", nil, true)
	claimed := store.addGrant(owner.ID, template, entity.GrantStateClaimed, testNow)
	expired := store.addGrant(owner.ID, template, entity.GrantStateExpired, testNow)
	available := store.addGrant(owner.ID, template, entity.GrantStateAvailable, testNow)

	srv := newRewardServiceWithStore(store, RewardServiceParams{})
	ctx := context.Background()

	tests := []struct {
		name      string
		principal entity.Principal
		grantID   uuid.UUID
		wantErr   error
	}{
		{"already claimed", consumerPrincipal(owner), claimed.ID, domainerrors.ErrRewardNotAvailable},
		{"already expired", consumerPrincipal(owner), expired.ID, domainerrors.ErrRewardNotAvailable},
		{"owned by someone else", consumerPrincipal(other), available.ID, domainerrors.ErrRewardGrantNotFound},
		{"unknown grant", consumerPrincipal(owner), uuid.New(), domainerrors.ErrRewardGrantNotFound},
		{"no principal", entity.Principal{}, available.ID, domainerrors.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.Claim(ctx, tt.principal, tt.grantID)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, entity.GrantStateAvailable, store.grant(available.ID).State)
}

func TestRewardService_Claim_TwiceOnlyCreditsOnce(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 0)
	template := store.addTemplate(uuid.New(), entity.RewardTypePoints, "30 puntos", nil, true)
	grant := store.addGrant(user.ID, template, entity.GrantStateAvailable, testNow)

	srv := newRewardServiceWithStore(store, RewardServiceParams{})
	ctx := context.Background()

	_, err := srv.Claim(ctx, consumerPrincipal(user), grant.ID)
	require.NoError(t, err)

	_, err = srv.Claim(ctx, consumerPrincipal(user), grant.ID)
	require.ErrorIs(t, err, domainerrors.ErrRewardNotAvailable)

	assert.Equal(t, 30, store.user(user.ID).Points)
}

func TestRewardService_Claim_ConcurrentClaimsCreditOnce(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 0)
	template := store.addTemplate(uuid.New(), entity.RewardTypePoints, "40 puntos", nil, true)
	grant := store.addGrant(user.ID, template, entity.GrantStateAvailable, testNow)

	srv := newRewardServiceWithStore(store, RewardServiceParams{})

	const attempts = 6
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	start := make(chan struct{})
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := srv.Claim(context.Background(), consumerPrincipal(user), grant.ID)
			if err != nil {
				assert.ErrorIs(t, err, domainerrors.ErrRewardNotAvailable)

				return
			}
			mu.Lock()
			successes++
			mu.Unlock()
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 40, store.user(user.ID).Points)
	assert.Equal(t, entity.GrantStateClaimed, store.grant(grant.ID).State)
}

func TestRewardService_Claim_StateConflictRollsBack(t *testing.T) {
	userID := uuid.New()
	grantID := uuid.New()
	template := &entity.RewardTemplate{ID: uuid.New(), Type: entity.RewardTypePoints, Value: "10 puntos"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	grantRepo := mockRepo.NewMockRewardGrantRepository(t)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().RewardGrantRepo().Return(grantRepo)
	grantRepo.EXPECT().
		FindByIDForUser(mock.Anything, grantID, userID).
		Return(&entity.RewardGrant{ID: grantID, UserID: userID, Template: template, TemplateID: template.ID, State: entity.GrantStateAvailable}, nil)
	grantRepo.EXPECT().
		UpdateState(mock.Anything, grantID, entity.GrantStateClaimed, mock.AnythingOfType("*time.Time")).
		Return(repository.ErrGrantStateConflict)

	srv := NewRewardService(RewardServiceParams{TxManager: txManager, Logger: testLogger()})

	_, err := srv.Claim(context.Background(), entity.Principal{UserID: userID, Role: entity.RoleConsumer}, grantID)
	require.ErrorIs(t, err, domainerrors.ErrRewardNotAvailable)
}

func TestRewardService_Claim_PublishesEvents(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 0)
	live := store.addTemplate(uuid.New(), entity.RewardTypePoints, "5 puntos", nil, true)
	stale := store.addTemplate(uuid.New(), entity.RewardTypePoints, "5 puntos", timePtr(testNow.Add(-time.Minute)), true)
	claimable := store.addGrant(user.ID, live, entity.GrantStateAvailable, testNow)
	expiring := store.addGrant(user.ID, stale, entity.GrantStateAvailable, testNow)

	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockLedgerMetrics(t)

	metrics.EXPECT().ObserveClaim(outcomeSuccess).Once()
	metrics.EXPECT().ObservePoints("reward", 5).Once()
	metrics.EXPECT().ObserveClaim("reward_expired").Once()
	metrics.EXPECT().ObserveExpired(1).Once()
	publisher.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(event *service.LedgerEvent) bool {
			return event.Type == constants.EventRewardClaimed && event.Points == 5 &&
				event.GrantIDs[0] == claimable.ID.String() && event.Attributes["reward_type"] == "points"
		})).
		Return(nil).
		Once()
	publisher.EXPECT().
		PublishLedgerEvent(mock.Anything, mock.MatchedBy(func(event *service.LedgerEvent) bool {
			return event.Type == constants.EventRewardExpired && event.GrantIDs[0] == expiring.ID.String()
		})).
		Return(nil).
		Once()

	srv := newRewardServiceWithStore(store, RewardServiceParams{Publisher: publisher, Metrics: metrics})
	ctx := context.Background()

	_, err := srv.Claim(ctx, consumerPrincipal(user), claimable.ID)
	require.NoError(t, err)

	_, err = srv.Claim(ctx, consumerPrincipal(user), expiring.ID)
	require.ErrorIs(t, err, domainerrors.ErrRewardExpired)
}

func TestRewardService_ListGrants(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 0)
	other := store.addUser(entity.RoleConsumer, 0)
	live := store.addTemplate(uuid.New(), entity.RewardTypePoints, "10 puntos", nil, true)
	stale := store.addTemplate(uuid.New(), entity.RewardTypeDiscount, "15%", timePtr(testNow.Add(-time.Second)), true)

	newest := store.addGrant(user.ID, live, entity.GrantStateAvailable, testNow)
	dueGrant := store.addGrant(user.ID, stale, entity.GrantStateAvailable, testNow.Add(-time.Hour))
	claimed := store.addGrant(user.ID, live, entity.GrantStateClaimed, testNow.Add(-2*time.Hour))
	store.addGrant(other.ID, stale, entity.GrantStateAvailable, testNow)

	srv := newRewardServiceWithStore(store, RewardServiceParams{})
	ctx := context.Background()

	available, err := srv.ListGrants(ctx, consumerPrincipal(user), "available")
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, newest.ID, available[0].ID)
	require.NotNil(t, available[0].Template)
	assert.Equal(t, live.ID, available[0].Template.ID)

	all, err := srv.ListGrants(ctx, consumerPrincipal(user), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{newest.ID, dueGrant.ID, claimed.ID}, []uuid.UUID{all[0].ID, all[1].ID, all[2].ID})
	assert.Equal(t, entity.GrantStateExpired, all[1].State)

	claimedOnly, err := srv.ListGrants(ctx, consumerPrincipal(user), "claimed")
	require.NoError(t, err)
	require.Len(t, claimedOnly, 1)
	assert.Equal(t, claimed.ID, claimedOnly[0].ID)

	// Other users' grants are left alone.
	otherGrants, err := srv.ListGrants(ctx, consumerPrincipal(other), "")
	require.NoError(t, err)
	require.Len(t, otherGrants, 1)
	assert.Equal(t, entity.GrantStateExpired, otherGrants[0].State)
}

func TestRewardService_ListGrants_RejectsUnknownState(t *testing.T) {
	srv := newRewardServiceWithStore(newMemStore(), RewardServiceParams{})

	_, err := srv.ListGrants(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleConsumer}, "pending")
	require.ErrorIs(t, err, domainerrors.ErrInvalidGrantState)
	assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
}

func TestRewardService_Stats(t *testing.T) {
	store := newMemStore()
	user := store.addUser(entity.RoleConsumer, 0)
	product := store.addProduct(uuid.New(), "WEEV-STATS", true)
	store.addTemplate(product.ID, entity.RewardTypePoints, "25 puntos", nil, true)
	store.addTemplate(product.ID, entity.RewardTypeContent, "Video", timePtr(testNow.Add(-time.Hour)), true)

	activationSrv := newActivationServiceWithStore(store, ActivationServiceParams{})
	rewardSrv := newRewardServiceWithStore(store, RewardServiceParams{})
	ctx := context.Background()

	activated, err := activationSrv.Activate(ctx, consumerPrincipal(user), &usecase.ActivateInput{ActivationCode: "WEEV-STATS"})
	require.NoError(t, err)
	for _, grant := range activated.Rewards {
		if grant.Template.Type == entity.RewardTypePoints {
			_, err := rewardSrv.Claim(ctx, consumerPrincipal(user), grant.ID)
			require.NoError(t, err)
		}
	}
	_, err = rewardSrv.ListGrants(ctx, consumerPrincipal(user), "")
	require.NoError(t, err)

	stats, err := rewardSrv.Stats(ctx, consumerPrincipal(user))
	require.NoError(t, err)
	assert.Equal(t, &usecase.UserStats{
		TotalPoints:       35,
		CurrentLevel:      1,
		PointsToNextLevel: 65,
		Activations:       1,
		TotalRewards:      2,
		AvailableRewards:  0,
		ClaimedRewards:    1,
		ExpiredRewards:    1,
	}, stats)
}

func TestRewardService_Stats_UnknownUser(t *testing.T) {
	srv := newRewardServiceWithStore(newMemStore(), RewardServiceParams{})

	_, err := srv.Stats(context.Background(), entity.Principal{UserID: uuid.New(), Role: entity.RoleConsumer})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
