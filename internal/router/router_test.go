package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

var secret = []byte("router-test-secret")

type RouterSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	accounts     *service_mocks.MockAccountServiceInterface
	transactions *service_mocks.MockTransactionServiceInterface
	summaries    *service_mocks.MockSummaryServiceInterface
	users        *service_mocks.MockUserServiceInterface
	e            *echo.Echo
	userID       uuid.UUID
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accounts = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.transactions = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.summaries = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.users = service_mocks.NewMockUserServiceInterface(s.ctrl)
	scheduler := service_mocks.NewMockInstallmentSchedulerInterface(s.ctrl)
	ledger := service_mocks.NewMockPaymentLedgerInterface(s.ctrl)
	s.userID = uuid.New()

	cfg := &config.Config{
		Server:    config.ServerConfig{CORSAllowOrigins: []string{"*"}},
		Auth:      config.AuthConfig{Issuer: "test", Secret: secret},
		RateLimit: config.RateLimitConfig{RequestsPerSecond: 100, Burst: 100},
	}

	registry := prometheus.NewRegistry()
	db := database.SetupTestDB(s.T())

	s.e = New(cfg, Dependencies{
		Accounts:     handlers.NewAccountHandler(s.accounts, scheduler, ledger),
		Installments: handlers.NewInstallmentHandler(ledger, s.accounts),
		Transactions: handlers.NewTransactionHandler(s.transactions),
		Summaries:    handlers.NewSummaryHandler(s.summaries),
		Users:        handlers.NewUserHandler(s.users),
		Health:       handlers.NewHealthCheckHandler(db.DB),
		Verifier:     middleware.NewTokenVerifier(cfg.Auth),
		RateLimiter:  middleware.NewRateLimiter(cfg.RateLimit),
		Metrics:      services.NewPrometheusMetrics(registry),
		Gatherer:     registry,
	})
}

func (s *RouterSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RouterSuite) token() string {
	claims := &models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: s.userID.String(),
		Email:  "router@example.com",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	s.Require().NoError(err)
	return token
}

func (s *RouterSuite) do(method, path string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token())
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *RouterSuite) TestHealthIsPublic() {
	rec := s.do(http.MethodGet, "/health", false)

	s.Equal(http.StatusOK, rec.Code)
	s.NotEmpty(rec.Header().Get(middleware.TraceIDHeader))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *RouterSuite) TestAPIRequiresToken() {
	rec := s.do(http.MethodGet, "/api/v1/accounts", false)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_002")
}

func (s *RouterSuite) TestRoutesDispatchWithCallerIdentity() {
	s.accounts.EXPECT().ListAccounts(s.userID).Return([]models.Account{}, nil)
	s.transactions.EXPECT().ListTransactions(s.userID, gomock.Any()).Return(nil, int64(0), nil)
	s.summaries.EXPECT().GetMonthlySummary(s.userID, 3, 2024, false).Return(&models.MonthlySummary{ReferenceMonth: 3, ReferenceYear: 2024}, nil)
	s.users.EXPECT().GetUser(s.userID).Return(&models.User{ID: s.userID, Email: "router@example.com"}, nil)

	for _, path := range []string{
		"/api/v1/accounts",
		"/api/v1/transactions",
		"/api/v1/summaries/2024/3",
		"/api/v1/users/me",
	} {
		rec := s.do(http.MethodGet, path, true)
		s.Equal(http.StatusOK, rec.Code, path)
	}
}

func (s *RouterSuite) TestUnknownRouteAndMetrics() {
	rec := s.do(http.MethodGet, "/nope", false)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")

	s.users.EXPECT().GetUser(s.userID).Return(nil, services.ErrUserNotFound)
	rec = s.do(http.MethodGet, "/api/v1/users/me", true)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/metrics", false)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `api_errors_total{code="VALIDATION_001"} 1`)
	s.Contains(rec.Body.String(), `api_errors_total{code="USER_001"} 1`)
}
