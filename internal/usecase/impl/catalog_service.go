package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"weev/config"
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

const (
	activationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	activationCodeLength   = 8

	defaultRewardValue       = "10 puntos"
	defaultRewardDescription = "¡Gracias por activar este producto!"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	rewardRepo    repository.RewardTemplateRepository
	brandRepo     repository.BrandRepository
	qrcodeService service.QRCodeService
	expiryDays    int
	codeAttempts  int
	logger        *slog.Logger
	now           func() time.Time
	randomCode    func() (string, error)
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	ProductRepo   repository.ProductRepository
	RewardRepo    repository.RewardTemplateRepository
	BrandRepo     repository.BrandRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	expiryDays, attempts := 365, 10
	if params.Config != nil && params.Config.Catalog != nil {
		if params.Config.Catalog.DefaultRewardExpiryDays > 0 {
			expiryDays = params.Config.Catalog.DefaultRewardExpiryDays
		}
		if params.Config.Catalog.CodeGenerationAttempts > 0 {
			attempts = params.Config.Catalog.CodeGenerationAttempts
		}
	}

	return &catalogService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		rewardRepo:    params.RewardRepo,
		brandRepo:     params.BrandRepo,
		qrcodeService: params.QRCodeService,
		expiryDays:    expiryDays,
		codeAttempts:  attempts,
		logger:        params.Logger,
		now:           time.Now,
		randomCode:    generateActivationCode,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns the active catalog, optionally narrowed to a category.
func (srv *catalogService) ListProducts(ctx context.Context, query usecase.ProductQuery) ([]*entity.Product, error) {
	active := true
	products, err := srv.productRepo.List(ctx, entity.ProductFilter{Category: query.Category, Active: &active})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.productRepo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// CreateProduct adds a product to the caller's brand. The product and its default
// points reward are created in one transaction.
func (srv *catalogService) CreateProduct(ctx context.Context, principal entity.Principal, input *usecase.ProductInput) (*entity.Product, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}
	if input == nil || input.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	now := srv.now().UTC()
	product := &entity.Product{
		ID:          uuid.New(),
		BrandID:     brand.ID,
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		productRepo := repos.ProductRepo()

		code, err := srv.resolveActivationCode(ctx, productRepo, input.ActivationCode)
		if err != nil {
			return err
		}
		product.ActivationCode = code

		if err := productRepo.Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrDuplicateActivationCode) {
				return domainerrors.ErrActivationCodeTaken
			}

			return errors.Wrap(err, "failed to create product")
		}

		expiresAt := now.AddDate(0, 0, srv.expiryDays)
		template := &entity.RewardTemplate{
			ID:          uuid.New(),
			ProductID:   product.ID,
			Name:        "Recompensa por activar " + product.Name,
			Description: defaultRewardDescription,
			Type:        entity.RewardTypePoints,
			Value:       defaultRewardValue,
			ExpiresAt:   &expiresAt,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := repos.RewardTemplateRepo().Create(ctx, template); err != nil {
			return errors.Wrap(err, "failed to create default reward")
		}

		return nil
	})
	if err != nil {
		logFailure(srv.log(ctx), "Failed to create product", err, slog.String("brandID", brand.ID.String()))

		return nil, err
	}

	srv.log(ctx).Info("Product created",
		slog.String("brandID", brand.ID.String()),
		slog.String("productID", product.ID.String()),
		slog.String("code", product.ActivationCode),
	)

	return product, nil
}

// resolveActivationCode normalizes an explicit code or draws an unused one.
func (srv *catalogService) resolveActivationCode(ctx context.Context, productRepo repository.ProductRepository, requested string) (string, error) {
	if code := entity.NormalizeActivationCode(requested); code != "" {
		exists, err := productRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check activation code")
		}
		if exists {
			return "", domainerrors.ErrActivationCodeTaken
		}

		return code, nil
	}

	for range srv.codeAttempts {
		code, err := srv.randomCode()
		if err != nil {
			return "", errors.Wrap(err, "failed to generate activation code")
		}

		exists, err := productRepo.ExistsByCode(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check activation code")
		}
		if !exists {
			return code, nil
		}
	}

	return "", errors.Errorf("no unused activation code after %d attempts", srv.codeAttempts)
}

// generateActivationCode draws a code like WEEV-7K2M9QXA from a CSPRNG.
func generateActivationCode() (string, error) {
	buf := make([]byte, activationCodeLength)
	limit := big.NewInt(int64(len(activationCodeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		buf[i] = activationCodeAlphabet[n.Int64()]
	}

	return constants.ActivationCodePrefix + string(buf), nil
}

// UpdateProduct edits a product of the caller's brand. The activation code is immutable.
func (srv *catalogService) UpdateProduct(ctx context.Context, principal entity.Principal, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	product, err := srv.productRepo.FindByIDAndBrand(ctx, productID, brand.ID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	if code := entity.NormalizeActivationCode(input.ActivationCode); code != "" && code != product.ActivationCode {
		return nil, domainerrors.ErrValidationFailed.WithDetails("activation code cannot be changed")
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	product.Description = input.Description
	product.Category = input.Category
	product.Price = input.Price
	product.ImageURL = input.ImageURL
	if input.Active != nil {
		product.Active = *input.Active
	}
	product.UpdatedAt = srv.now().UTC()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

func (srv *catalogService) ListBrandProducts(ctx context.Context, principal entity.Principal) ([]*entity.Product, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx, entity.ProductFilter{BrandID: &brand.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brand products")
	}

	return products, nil
}

// ProductQR renders the activation QR code of one of the caller's products as PNG.
func (srv *catalogService) ProductQR(ctx context.Context, principal entity.Principal, productID uuid.UUID) ([]byte, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByIDAndBrand(ctx, productID, brand.ID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	png, err := srv.qrcodeService.GenerateActivationQR(product.ActivationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate activation QR code")
	}

	return png, nil
}

// CreateReward attaches a reward template to one of the caller's products.
func (srv *catalogService) CreateReward(ctx context.Context, principal entity.Principal, input *usecase.RewardInput) (*entity.RewardTemplate, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}
	if !input.Type.IsValid() {
		return nil, domainerrors.ErrInvalidRewardType
	}

	product, err := srv.productRepo.FindByIDAndBrand(ctx, input.ProductID, brand.ID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	now := srv.now().UTC()
	template := &entity.RewardTemplate{
		ID:          uuid.New(),
		ProductID:   product.ID,
		Name:        input.Name,
		Description: input.Description,
		Type:        input.Type,
		Value:       input.Value,
		CouponCode:  input.CouponCode,
		ExpiresAt:   srv.expiryFrom(now, input.ExpiryDays),
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Active != nil {
		template.Active = *input.Active
	}

	if err := srv.rewardRepo.Create(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to create reward template")
	}

	srv.log(ctx).Info("Reward template created",
		slog.String("productID", product.ID.String()),
		slog.String("rewardID", template.ID.String()),
		slog.String("type", string(template.Type)),
	)

	return template, nil
}

// UpdateReward edits a reward template of the caller's brand. ExpiryDays, when set,
// restarts the expiry from now; grants already issued follow the new expiry.
func (srv *catalogService) UpdateReward(ctx context.Context, principal entity.Principal, rewardID uuid.UUID, input *usecase.RewardInput) (*entity.RewardTemplate, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	template, err := srv.rewardRepo.FindByIDAndBrand(ctx, rewardID, brand.ID)
	if errors.Is(err, repository.ErrRewardTemplateNotFound) {
		return nil, domainerrors.ErrRewardTemplateNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reward template")
	}

	if input.Type != "" {
		if !input.Type.IsValid() {
			return nil, domainerrors.ErrInvalidRewardType
		}
		template.Type = input.Type
	}
	if input.Name != "" {
		template.Name = input.Name
	}
	if input.Value != "" {
		template.Value = input.Value
	}
	template.Description = input.Description
	template.CouponCode = input.CouponCode
	if input.Active != nil {
		template.Active = *input.Active
	}

	now := srv.now().UTC()
	if input.ExpiryDays > 0 {
		template.ExpiresAt = srv.expiryFrom(now, input.ExpiryDays)
	}
	template.UpdatedAt = now

	if err := srv.rewardRepo.Update(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to update reward template")
	}

	return template, nil
}

func (srv *catalogService) ListBrandRewards(ctx context.Context, principal entity.Principal) ([]*entity.RewardTemplate, error) {
	brand, err := srv.callerBrand(ctx, principal)
	if err != nil {
		return nil, err
	}

	templates, err := srv.rewardRepo.ListByBrand(ctx, brand.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reward templates")
	}

	return templates, nil
}

// callerBrand returns the brand administered by the principal.
func (srv *catalogService) callerBrand(ctx context.Context, principal entity.Principal) (*entity.Brand, error) {
	if principal.IsZero() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !principal.Role.CanAdministerBrands() {
		return nil, domainerrors.ErrForbidden
	}

	brand, err := srv.brandRepo.FindByAdmin(ctx, principal.UserID)
	if errors.Is(err, repository.ErrBrandNotFound) {
		return nil, domainerrors.ErrNoBrand
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand")
	}

	return brand, nil
}

func (srv *catalogService) expiryFrom(now time.Time, days int) *time.Time {
	if days <= 0 {
		days = srv.expiryDays
	}
	expiresAt := now.AddDate(0, 0, days)

	return &expiresAt
}
