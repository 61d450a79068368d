package impl

import (
	"context"
	"log/slog"
	"strconv"
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

// activationService implements the ActivationUsecase interface.
type activationService struct {
	txManager      repository.TransactionManager
	productRepo    repository.ProductRepository
	activationRepo repository.ActivationRepository
	qrcodeService  service.QRCodeService
	metrics        service.LedgerMetrics
	notifier       *ledgerNotifier
	logger         *slog.Logger
	now            func() time.Time
}

// ActivationServiceParams holds dependencies for ActivationService, injected by Fx.
type ActivationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProductRepo    repository.ProductRepository
	ActivationRepo repository.ActivationRepository
	QRCodeService  service.QRCodeService
	Publisher      service.EventPublisher `optional:"true"`
	Metrics        service.LedgerMetrics  `optional:"true"`
	Logger         *slog.Logger
}

// NewActivationService is the constructor for activationService.
func NewActivationService(params ActivationServiceParams) usecase.ActivationUsecase {
	return &activationService{
		txManager:      params.TxManager,
		productRepo:    params.ProductRepo,
		activationRepo: params.ActivationRepo,
		qrcodeService:  params.QRCodeService,
		metrics:        metricsOrNop(params.Metrics),
		notifier:       &ledgerNotifier{publisher: params.Publisher, logger: params.Logger},
		logger:         params.Logger,
		now:            time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *activationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Activate redeems an activation code. The activation, the point credit and the reward
// grants are written in one transaction; the user row is locked before its points are read.
func (srv *activationService) Activate(ctx context.Context, principal entity.Principal, input *usecase.ActivateInput) (*usecase.ActivateOutput, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	var code string
	if input != nil {
		code = entity.NormalizeActivationCode(input.ActivationCode)
	}
	if code == "" {
		srv.metrics.ObserveActivation(outcomeOf(domainerrors.ErrActivationCodeRequired))

		return nil, domainerrors.ErrActivationCodeRequired
	}

	now := srv.now().UTC()
	var output *usecase.ActivateOutput
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		var txErr error
		output, txErr = srv.activateInTx(ctx, repos, principal.UserID, code, now)

		return txErr
	})
	srv.metrics.ObserveActivation(outcomeOf(err))
	if err != nil {
		logFailure(srv.log(ctx), "Activation failed", err,
			slog.String("userID", principal.UserID.String()),
			slog.String("code", code),
		)

		return nil, err
	}

	srv.metrics.ObservePoints("activation", output.PointsEarned)
	srv.metrics.ObserveGrantsIssued(len(output.Rewards))
	srv.log(ctx).Info("Product activated",
		slog.String("userID", principal.UserID.String()),
		slog.String("productID", output.Activation.ProductID.String()),
		slog.Int("grants", len(output.Rewards)),
		slog.Int("points", output.TotalPoints),
	)

	srv.notifier.notify(ctx, &service.LedgerEvent{
		Type:      constants.EventProductActivated,
		UserID:    principal.UserID.String(),
		ProductID: output.Activation.ProductID.String(),
		GrantIDs:  grantIDs(output.Rewards),
		Points:    output.PointsEarned,
		Attributes: map[string]string{
			"level": strconv.Itoa(output.CurrentLevel),
		},
	})

	return output, nil
}

func (srv *activationService) activateInTx(
	ctx context.Context,
	repos repository.RepositoryFactory,
	userID uuid.UUID,
	code string,
	now time.Time,
) (*usecase.ActivateOutput, error) {
	product, err := repos.ProductRepo().FindActiveByCode(ctx, code)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrInvalidActivationCode
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by activation code")
	}

	user, err := repos.UserRepo().FindByIDForUpdate(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock user")
	}
	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	activationRepo := repos.ActivationRepo()
	_, err = activationRepo.FindByUserAndProduct(ctx, userID, product.ID)
	if err == nil {
		return nil, domainerrors.ErrAlreadyActivated
	}
	if !errors.Is(err, repository.ErrActivationNotFound) {
		return nil, errors.Wrap(err, "failed to check existing activation")
	}

	activation := &entity.Activation{
		ID:            uuid.New(),
		UserID:        userID,
		ProductID:     product.ID,
		Product:       product,
		PointsAwarded: entity.BasePoints,
		ActivatedAt:   now,
	}
	// The unique (user_id, product_id) constraint decides races the pre-check missed.
	if err := activationRepo.Create(ctx, activation); err != nil {
		if errors.Is(err, repository.ErrDuplicateActivation) {
			return nil, domainerrors.ErrAlreadyActivated
		}

		return nil, errors.Wrap(err, "failed to create activation")
	}

	user.AddPoints(entity.BasePoints)
	if err := repos.UserRepo().UpdatePoints(ctx, user.ID, user.Points, user.Level); err != nil {
		return nil, errors.Wrap(err, "failed to update user points")
	}

	templates, err := repos.RewardTemplateRepo().FindActiveByProduct(ctx, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reward templates")
	}

	grants := make([]*entity.RewardGrant, 0, len(templates))
	for _, template := range templates {
		grants = append(grants, entity.NewRewardGrant(userID, template, now))
	}
	if err := repos.RewardGrantRepo().CreateBatch(ctx, grants); err != nil {
		return nil, errors.Wrap(err, "failed to create reward grants")
	}

	return &usecase.ActivateOutput{
		Activation:   activation,
		PointsEarned: entity.BasePoints,
		TotalPoints:  user.Points,
		CurrentLevel: user.Level,
		Rewards:      grants,
	}, nil
}

// ActivateQR decodes the scanned payload and activates the code it carries.
func (srv *activationService) ActivateQR(ctx context.Context, principal entity.Principal, input *usecase.ActivateQRInput) (*usecase.ActivateOutput, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if input == nil || input.QRData == "" {
		return nil, domainerrors.ErrInvalidQRCode
	}

	code, err := srv.qrcodeService.ParseActivationQR(input.QRData)
	if err != nil {
		srv.log(ctx).Info("Rejected activation QR payload", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidQRCode
	}

	return srv.Activate(ctx, principal, &usecase.ActivateInput{ActivationCode: code})
}

// ValidateCode reports whether code belongs to an active product.
func (srv *activationService) ValidateCode(ctx context.Context, code string) (*usecase.CodeValidation, error) {
	code = entity.NormalizeActivationCode(code)
	if code == "" {
		return nil, domainerrors.ErrActivationCodeRequired
	}

	product, err := srv.productRepo.FindActiveByCode(ctx, code)
	if errors.Is(err, repository.ErrProductNotFound) {
		return &usecase.CodeValidation{Valid: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by activation code")
	}

	return &usecase.CodeValidation{Valid: true, Product: product}, nil
}

// ListActivations returns the principal's activations, newest first.
func (srv *activationService) ListActivations(ctx context.Context, principal entity.Principal) ([]*entity.Activation, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}

	activations, err := srv.activationRepo.ListByUser(ctx, principal.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activations")
	}

	return activations, nil
}
