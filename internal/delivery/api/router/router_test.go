package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"weev/config"
	"weev/internal/delivery/api/middleware"
	"weev/internal/delivery/api/router/handler"
	"weev/internal/delivery/api/validator"
	deliverymiddleware "weev/internal/delivery/middleware"
	"weev/internal/domain/entity"
	domainerrors "weev/internal/domain/errors"
	"weev/internal/domain/service"
	"weev/internal/errors"
	mockSvc "weev/internal/mocks/service"
	mockUsecase "weev/internal/mocks/usecase"
	"weev/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	consumerToken = "consumer-token"
	brandToken    = "brand-token"
)

var (
	consumer   = entity.Principal{UserID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Role: entity.RoleConsumer}
	brandAdmin = entity.Principal{UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Role: entity.RoleBrandAdmin}
)

type routerFixture struct {
	e          *echo.Echo
	activation *mockUsecase.MockActivationUsecase
	reward     *mockUsecase.MockRewardUsecase
	catalog    *mockUsecase.MockCatalogUsecase
	user       *mockUsecase.MockUserUsecase
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newRouterFixture(t *testing.T, rateLimit *config.RateLimitConfig) *routerFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{RateLimit: rateLimit}

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken(consumerToken).Return(&service.Claims{UserID: consumer.UserID, Role: consumer.Role}, nil).Maybe()
	tokens.EXPECT().ValidateToken(brandToken).Return(&service.Claims{UserID: brandAdmin.UserID, Role: brandAdmin.Role}, nil).Maybe()
	tokens.EXPECT().ValidateToken(mock.Anything).Return(nil, errors.New("bad token")).Maybe()

	f := &routerFixture{
		e:          echo.New(),
		activation: mockUsecase.NewMockActivationUsecase(t),
		reward:     mockUsecase.NewMockRewardUsecase(t),
		catalog:    mockUsecase.NewMockCatalogUsecase(t),
		user:       mockUsecase.NewMockUserUsecase(t),
	}

	f.e.Validator = validator.New()
	f.e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	f.e.Use(deliverymiddleware.NewRequestIDMiddleware(logger).Process)

	r := NewRouter(RouterParams{
		AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: f.user, Logger: logger}),
		ActivationHandler: handler.NewActivationHandler(handler.ActivationHandlerParams{ActivationUC: f.activation, Logger: logger}),
		RewardHandler:     handler.NewRewardHandler(handler.RewardHandlerParams{RewardUC: f.reward, Logger: logger}),
		CatalogHandler:    handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: f.catalog, Logger: logger}),
		AuthMiddleware:    middleware.NewAuthMiddleware(tokens),
		RateLimiter:       middleware.NewRateLimiter(cfg, logger),
	})
	r.RegisterRoutes(f.e)

	return f
}

func (f *routerFixture) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec, env := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get("X-Request-Id"))
}

func TestRouter_Activate(t *testing.T) {
	f := newRouterFixture(t, nil)

	grant := &entity.RewardGrant{ID: uuid.New(), UserID: consumer.UserID, State: entity.GrantStateAvailable}
	f.activation.EXPECT().
		Activate(mock.Anything, consumer, &usecase.ActivateInput{ActivationCode: "WEEV-PREMIUM"}).
		Return(&usecase.ActivateOutput{
			Activation:   &entity.Activation{ID: uuid.New(), UserID: consumer.UserID, PointsAwarded: 10},
			PointsEarned: 10,
			TotalPoints:  10,
			CurrentLevel: 1,
			Rewards:      []*entity.RewardGrant{grant, grant},
		}, nil).Once()

	rec, env := f.do(t, http.MethodPost, "/api/v1/activate", consumerToken, `{"activation_code":"WEEV-PREMIUM"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.EqualValues(t, 10, data["puntos_ganados"])
	assert.EqualValues(t, 10, data["puntos_totales"])
	assert.EqualValues(t, 1, data["nivel_actual"])
	assert.Len(t, data["recompensas_otorgadas"], 2)
	assert.Contains(t, data, "activation")
}

func TestRouter_Activate_Errors(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		body        string
		ucErr       error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:       "no session",
			body:       `{"activation_code":"WEEV-PREMIUM"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "bad token",
			token:      "garbage",
			body:       `{"activation_code":"WEEV-PREMIUM"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHENTICATED",
		},
		{
			name:       "missing code fails validation",
			token:      consumerToken,
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:       "malformed body",
			token:      consumerToken,
			body:       `{"activation_code":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name:        "invalid code",
			token:       consumerToken,
			body:        `{"activation_code":"NOPE"}`,
			ucErr:       domainerrors.ErrInvalidActivationCode,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "INVALID_CODE",
			wantMessage: "invalid code",
		},
		{
			name:        "already activated",
			token:       consumerToken,
			body:        `{"activation_code":"WEEV-PREMIUM"}`,
			ucErr:       domainerrors.ErrAlreadyActivated,
			wantStatus:  http.StatusBadRequest,
			wantCode:    "ALREADY_ACTIVATED",
			wantMessage: "already activated",
		},
		{
			name:        "storage failure is opaque",
			token:       consumerToken,
			body:        `{"activation_code":"WEEV-PREMIUM"}`,
			ucErr:       errors.Wrap(errors.New("connection refused"), "failed to create activation"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, nil)
			if tt.ucErr != nil {
				f.activation.EXPECT().Activate(mock.Anything, consumer, mock.Anything).Return(nil, tt.ucErr).Once()
			}

			rec, env := f.do(t, http.MethodPost, "/api/v1/activate", tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, env.Error.Message)
			}
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestRouter_ActivateQR(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.activation.EXPECT().
		ActivateQR(mock.Anything, consumer, &usecase.ActivateQRInput{QRData: `{"activation_code":"WEEV-PREMIUM"}`}).
		Return(&usecase.ActivateOutput{PointsEarned: 10, TotalPoints: 10, CurrentLevel: 1}, nil).Once()

	rec, _ := f.do(t, http.MethodPost, "/api/v1/activate/qr", consumerToken, `{"qr_data":"{\"activation_code\":\"WEEV-PREMIUM\"}"}`)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestRouter_ValidateCodeIsPublic(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.activation.EXPECT().ValidateCode(mock.Anything, "WEEV-PREMIUM").Return(&usecase.CodeValidation{Valid: true}, nil).Once()

	rec, env := f.do(t, http.MethodPost, "/api/v1/validate-code", "", `{"activation_code":"WEEV-PREMIUM"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true}`, string(env.Data))
}

func TestRouter_Claim(t *testing.T) {
	grantID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newRouterFixture(t, nil)
		f.reward.EXPECT().Claim(mock.Anything, consumer, grantID).Return(&usecase.ClaimOutput{
			Reward: &entity.RewardGrant{ID: grantID, UserID: consumer.UserID, State: entity.GrantStateClaimed},
		}, nil).Once()

		rec, env := f.do(t, http.MethodPost, "/api/v1/claim/"+grantID.String(), consumerToken, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Reward struct {
				State string `json:"state"`
			} `json:"recompensa"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "claimed", data.Reward.State)
	})

	tests := []struct {
		name        string
		ucErr       error
		wantStatus  int
		wantMessage string
	}{
		{name: "not available", ucErr: domainerrors.ErrRewardNotAvailable, wantStatus: http.StatusBadRequest, wantMessage: "not available"},
		{name: "expired", ucErr: domainerrors.ErrRewardExpired, wantStatus: http.StatusBadRequest, wantMessage: "expired"},
		{name: "not owned", ucErr: domainerrors.ErrRewardGrantNotFound, wantStatus: http.StatusNotFound, wantMessage: "reward not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t, nil)
			f.reward.EXPECT().Claim(mock.Anything, consumer, grantID).Return(nil, tt.ucErr).Once()

			rec, env := f.do(t, http.MethodPost, "/api/v1/claim/"+grantID.String(), consumerToken, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantMessage, env.Error.Message)
		})
	}

	t.Run("malformed id", func(t *testing.T) {
		f := newRouterFixture(t, nil)

		rec, env := f.do(t, http.MethodPost, "/api/v1/claim/not-a-uuid", consumerToken, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestRouter_MyRewardsPassesStateFilter(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.reward.EXPECT().ListGrants(mock.Anything, consumer, "expired").Return([]*entity.RewardGrant{}, nil).Once()
	f.reward.EXPECT().ListGrants(mock.Anything, consumer, "bogus").
		Return(nil, domainerrors.ErrInvalidGrantState.WithDetails("got bogus")).Once()

	rec, env := f.do(t, http.MethodGet, "/api/v1/my-rewards?estado=expired", consumerToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))

	rec, env = f.do(t, http.MethodGet, "/api/v1/my-rewards?estado=bogus", consumerToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "got bogus", env.Error.Details)
}

func TestRouter_MyRewardsDefaultsToAvailable(t *testing.T) {
	f := newRouterFixture(t, nil)
	f.reward.EXPECT().ListGrants(mock.Anything, consumer, "available").Return([]*entity.RewardGrant{}, nil).Once()
	f.reward.EXPECT().ListGrants(mock.Anything, consumer, "").Return([]*entity.RewardGrant{}, nil).Once()

	rec, _ := f.do(t, http.MethodGet, "/api/v1/my-rewards", consumerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/my-rewards?estado=", consumerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_BrandRoutesRequireBrandRole(t *testing.T) {
	f := newRouterFixture(t, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/brand/products", consumerToken, `{"name":"Botella"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	rec, _ = f.do(t, http.MethodGet, "/api/v1/brand/rewards", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_BrandProductAdmin(t *testing.T) {
	f := newRouterFixture(t, nil)
	productID := uuid.New()

	f.catalog.EXPECT().
		CreateProduct(mock.Anything, brandAdmin, mock.MatchedBy(func(in *usecase.ProductInput) bool { return in.Name == "Botella" })).
		Return(&entity.Product{ID: productID, Name: "Botella", ActivationCode: "WEEV-ABCD1234", Active: true}, nil).Once()
	f.catalog.EXPECT().ProductQR(mock.Anything, brandAdmin, productID).Return([]byte("\x89PNG"), nil).Once()

	rec, _ := f.do(t, http.MethodPost, "/api/v1/brand/products", brandToken, `{"name":"Botella","category":"bebidas"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, _ = f.do(t, http.MethodGet, "/api/v1/brand/products/"+productID.String()+"/qr", brandToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
}

func TestRouter_RateLimitsActivation(t *testing.T) {
	f := newRouterFixture(t, &config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1})
	f.activation.EXPECT().Activate(mock.Anything, consumer, mock.Anything).Return(nil, domainerrors.ErrInvalidActivationCode).Once()

	rec, _ := f.do(t, http.MethodPost, "/api/v1/activate", consumerToken, `{"activation_code":"X"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env := f.do(t, http.MethodPost, "/api/v1/activate", consumerToken, `{"activation_code":"X"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "RATE_LIMITED", env.Error.Code)

	// Other routes are not limited.
	f.reward.EXPECT().Stats(mock.Anything, consumer).Return(&usecase.UserStats{TotalPoints: 10, CurrentLevel: 1}, nil).Once()
	rec, _ = f.do(t, http.MethodGet, "/api/v1/stats", consumerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AuthRoutes(t *testing.T) {
	f := newRouterFixture(t, nil)

	f.user.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "ana@example.com", Password: "Sup3r$ecret"}).
		Return(&usecase.AuthOutput{AccessToken: "jwt", TokenType: "Bearer", ExpiresIn: 3600}, nil).Once()
	f.user.EXPECT().Me(mock.Anything, consumer).Return(&entity.User{ID: consumer.UserID, Email: "ana@example.com"}, nil).Once()

	rec, env := f.do(t, http.MethodPost, "/auth/login", "", `{"email":"ana@example.com","password":"Sup3r$ecret"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"access_token":"jwt"`)

	rec, _ = f.do(t, http.MethodGet, "/auth/me", consumerToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env = f.do(t, http.MethodPost, "/auth/register", "", `{"email":"not-an-email","password":"x","name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "email must be a valid email")
}
