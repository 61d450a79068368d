package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	deliverycontext "weev/internal/delivery/context"
	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	"weev/internal/domain/service"
	"weev/internal/errors"
	"weev/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const tokenTypeBearer = "Bearer"

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account. Brand administrators get their brand in the same transaction.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid email")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	role := input.Role
	if role == "" {
		role = entity.RoleConsumer
	}
	if !role.SelfRegistrable() {
		return nil, domainerrors.ErrInvalidRole
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Info("Password validation failed during registration", slog.String("email", email))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := srv.now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		Role:         role,
		Active:       true,
		Points:       0,
		Level:        entity.LevelForPoints(0),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.UserRepo().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create user")
		}

		if role != entity.RoleBrandAdmin {
			return nil
		}

		brandName := strings.TrimSpace(input.BrandName)
		if brandName == "" {
			brandName = "Marca de " + name
		}
		brand := &entity.Brand{
			ID:          uuid.New(),
			AdminID:     user.ID,
			Name:        brandName,
			Description: "Marca administrada por " + name,
			Active:      true,
			CreatedAt:   now,
		}
		if err := repos.BrandRepo().Create(ctx, brand); err != nil {
			return errors.Wrap(err, "failed to create brand")
		}

		return nil
	})
	if err != nil {
		logFailure(srv.log(ctx), "Registration failed", err, slog.String("email", email), slog.String("role", role.String()))

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()), slog.String("role", role.String()))

	return srv.issueToken(user)
}

// Login verifies credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil || input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login failed", slog.String("email", email), slog.String("reason", "wrong password"))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, domainerrors.ErrUserInactive
	}

	return srv.issueToken(user)
}

// Me returns the principal's account.
func (srv *userService) Me(ctx context.Context, principal entity.Principal) (*entity.User, error) {
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

	return user, nil
}

func (srv *userService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		User:        user,
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int(srv.tokenService.AccessTokenTTL().Seconds()),
	}, nil
}
