package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_RecoverFromPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(handlers.TraceIDContextKey, "test-trace-id")

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("test panic")
	})

	s.NotPanics(func() {
		s.NoError(handler(c))
	})
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.SystemInternalError), resp.Error.Code)
	s.Equal("test-trace-id", resp.Error.TraceID)
	s.NotContains(rec.Body.String(), "test panic")
	s.Equal(string(errors.SystemInternalError), c.Get(handlers.ErrorCodeContextKey))
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_NoPanic() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.String(http.StatusOK, "fine")
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("fine", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanicRecovery_ErrorValue() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		var m map[string]int
		m["boom"] = 1
		return nil
	})

	s.NoError(handler(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)
}
