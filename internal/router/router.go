package router

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/config"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies are the wired components the routes dispatch to
type Dependencies struct {
	Accounts     *handlers.AccountHandler
	Installments *handlers.InstallmentHandler
	Transactions *handlers.TransactionHandler
	Summaries    *handlers.SummaryHandler
	Users        *handlers.UserHandler
	Health       *handlers.HealthCheckHandler

	Verifier    *middleware.TokenVerifier
	RateLimiter *middleware.RateLimiter
	Metrics     services.MetricsRecorderInterface
	Gatherer    prometheus.Gatherer
}

// New builds the HTTP router with the middleware chain and all API routes
func New(cfg *config.Config, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Metrics)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(requestLogger())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit("1M"))
	e.Use(middleware.ErrorMetrics(deps.Metrics))

	e.GET("/health", deps.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1", deps.RateLimiter.Middleware(), middleware.RequireAuth(deps.Verifier))

	users := api.Group("/users/me")
	users.PUT("", deps.Users.UpsertProfile)
	users.GET("", deps.Users.GetProfile)
	users.DELETE("", deps.Users.DeleteProfile)

	accounts := api.Group("/accounts")
	accounts.POST("", deps.Accounts.CreateAccount)
	accounts.GET("", deps.Accounts.ListAccounts)
	accounts.GET("/:accountId", deps.Accounts.GetAccount)
	accounts.DELETE("/:accountId", deps.Accounts.DeleteAccount)
	accounts.GET("/:accountId/installments", deps.Accounts.ListInstallments)
	accounts.POST("/:accountId/installments/schedule", deps.Accounts.ScheduleInstallments)
	accounts.POST("/:accountId/settle", deps.Accounts.SettleAccount)

	installments := api.Group("/installments")
	installments.POST("/:installmentId/pay", deps.Installments.PayInstallment)
	installments.POST("/:installmentId/unpay", deps.Installments.UnpayInstallment)
	installments.PUT("/:installmentId/period", deps.Installments.AssignPeriod)

	transactions := api.Group("/transactions")
	transactions.POST("", deps.Transactions.CreateTransaction)
	transactions.GET("", deps.Transactions.ListTransactions)
	transactions.GET("/:transactionId", deps.Transactions.GetTransaction)
	transactions.PUT("/:transactionId", deps.Transactions.UpdateTransaction)
	transactions.DELETE("/:transactionId", deps.Transactions.DeleteTransaction)

	summaries := api.Group("/summaries")
	summaries.GET("", deps.Summaries.ListMonthlySummaries)
	summaries.POST("/recalculate", deps.Summaries.RecalculateAllSummaries)
	summaries.GET("/:year/:month", deps.Summaries.GetMonthlySummary)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: false,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(c.Request().Context(), level, "request",
				"trace_id", middleware.GetTraceID(c),
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency_ms", v.Latency.Milliseconds(),
				"remote_ip", v.RemoteIP,
			)
			return nil
		},
	})
}
