package impl

import (
	"context"
	"testing"
	"time"

	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/repository"
	mockRepo "weev/internal/mocks/repository"
	mockSvc "weev/internal/mocks/service"
	"weev/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Sup3r$ecret"

type userServiceFixture struct {
	store  *memStore
	hasher *mockSvc.MockPasswordHasher
	tokens *mockSvc.MockTokenService
	srv    usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	store := newMemStore()
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)

	srv := NewUserService(UserServiceParams{
		TxManager:    store,
		UserRepo:     store.repos().UserRepo(),
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       testLogger(),
	})

	return &userServiceFixture{store: store, hasher: hasher, tokens: tokens, srv: srv}
}

func TestUserService_Register_Consumer(t *testing.T) {
	f := newUserServiceFixture(t)

	f.hasher.EXPECT().ValidatePasswordStrength(strongPassword).Return(nil).Once()
	f.hasher.EXPECT().Hash(strongPassword).Return("hashed", nil).Once()
	f.tokens.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleConsumer).Return("token", nil).Once()
	f.tokens.EXPECT().AccessTokenTTL().Return(time.Hour).Once()

	out, err := f.srv.Register(context.Background(), &usecase.RegisterInput{
		Email:    "  Ana@Example.COM ",
		Password: strongPassword,
		Name:     "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.Equal(t, entity.RoleConsumer, out.User.Role)
	assert.Equal(t, "hashed", out.User.PasswordHash)
	assert.Equal(t, 1, out.User.Level)
	assert.Zero(t, out.User.Points)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, 3600, out.ExpiresIn)

	_, err = f.store.repos().BrandRepo().FindByAdmin(context.Background(), out.User.ID)
	require.ErrorIs(t, err, repository.ErrBrandNotFound)
}

func TestUserService_Register_BrandAdminGetsBrand(t *testing.T) {
	f := newUserServiceFixture(t)

	f.hasher.EXPECT().ValidatePasswordStrength(strongPassword).Return(nil).Once()
	f.hasher.EXPECT().Hash(strongPassword).Return("hashed", nil).Once()
	f.tokens.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID"), entity.RoleBrandAdmin).Return("token", nil).Once()
	f.tokens.EXPECT().AccessTokenTTL().Return(time.Hour).Once()

	out, err := f.srv.Register(context.Background(), &usecase.RegisterInput{
		Email:    "marca@example.com",
		Password: strongPassword,
		Name:     "Luis",
		Role:     entity.RoleBrandAdmin,
	})
	require.NoError(t, err)

	brand, err := f.store.repos().BrandRepo().FindByAdmin(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marca de Luis", brand.Name)
	assert.True(t, brand.Active)
}

func TestUserService_Register_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.RegisterInput
		setup   func(f *userServiceFixture)
		wantErr error
	}{
		{
			name:    "bad email",
			input:   &usecase.RegisterInput{Email: "not-an-email", Password: strongPassword, Name: "A"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing name",
			input:   &usecase.RegisterInput{Email: "a@example.com", Password: strongPassword},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "platform admin cannot self register",
			input:   &usecase.RegisterInput{Email: "a@example.com", Password: strongPassword, Name: "A", Role: entity.RolePlatformAdmin},
			wantErr: domainerrors.ErrInvalidRole,
		},
		{
			name:  "weak password",
			input: &usecase.RegisterInput{Email: "a@example.com", Password: "weak", Name: "A"},
			setup: func(f *userServiceFixture) {
				f.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength.WithDetails("too short")).Once()
			},
			wantErr: domainerrors.ErrPasswordStrength,
		},
		{
			name:  "duplicate email",
			input: &usecase.RegisterInput{Email: "dup@example.com", Password: strongPassword, Name: "A"},
			setup: func(f *userServiceFixture) {
				f.store.users[uuid.New()] = entity.User{ID: uuid.New(), Email: "dup@example.com"}
				f.hasher.EXPECT().ValidatePasswordStrength(strongPassword).Return(nil).Once()
				f.hasher.EXPECT().Hash(strongPassword).Return("hashed", nil).Once()
			},
			wantErr: domainerrors.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newUserServiceFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			out, err := f.srv.Register(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, out)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hashed", Role: entity.RoleConsumer, Active: true}

	t.Run("success", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)
		tokens := mockSvc.NewMockTokenService(t)

		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()
		hasher.EXPECT().Check(strongPassword, "hashed").Return(true).Once()
		tokens.EXPECT().GenerateAccessToken(user.ID, entity.RoleConsumer).Return("jwt", nil).Once()
		tokens.EXPECT().AccessTokenTTL().Return(24 * time.Hour).Once()

		srv := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, TokenService: tokens, Logger: testLogger()})

		out, err := srv.Login(ctx, &usecase.LoginInput{Email: "ANA@example.com", Password: strongPassword})
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.AccessToken)
		assert.Equal(t, 86400, out.ExpiresIn)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)

		userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound).Once()
		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil).Once()
		hasher.EXPECT().Check("nope", "hashed").Return(false).Once()

		srv := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: testLogger()})

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "nope"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

		_, err = srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: "nope"})
		require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := *user
		inactive.Active = false

		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockSvc.NewMockPasswordHasher(t)

		userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(&inactive, nil).Once()
		hasher.EXPECT().Check(strongPassword, "hashed").Return(true).Once()

		srv := NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: testLogger()})

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com", Password: strongPassword})
		require.ErrorIs(t, err, domainerrors.ErrUserInactive)
	})

	t.Run("missing fields", func(t *testing.T) {
		srv := NewUserService(UserServiceParams{Logger: testLogger()})

		_, err := srv.Login(ctx, &usecase.LoginInput{Email: "ana@example.com"})
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_Me(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", Role: entity.RoleConsumer, Active: true, Points: 20, Level: 1}

	userRepo := mockRepo.NewMockUserRepository(t)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	userRepo.EXPECT().FindByID(ctx, mock.Anything).Return(nil, repository.ErrUserNotFound).Once()

	srv := NewUserService(UserServiceParams{UserRepo: userRepo, Logger: testLogger()})

	got, err := srv.Me(ctx, entity.Principal{UserID: user.ID, Role: user.Role})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = srv.Me(ctx, entity.Principal{UserID: uuid.New(), Role: entity.RoleConsumer})
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = srv.Me(ctx, entity.Principal{})
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
