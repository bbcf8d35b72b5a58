package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/models"
	"finance-tracker/internal/services"
	"finance-tracker/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type SummaryHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockSummaryServiceInterface
	handler     *SummaryHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func TestSummaryHandlerSuite(t *testing.T) {
	suite.Run(t, new(SummaryHandlerSuite))
}

func (s *SummaryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockSummaryServiceInterface(s.ctrl)
	s.handler = NewSummaryHandler(s.mockService)
	s.echo = echo.New()
	s.testUserID = uuid.New()
}

func (s *SummaryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SummaryHandlerSuite) summaryContext(query, year, month string) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newContext(s.echo, http.MethodGet, "/summaries/"+year+"/"+month+query, nil, s.testUserID)
	c.SetParamNames("year", "month")
	c.SetParamValues(year, month)
	return c, rec
}

func (s *SummaryHandlerSuite) TestGetMonthlySummary() {
	s.mockService.EXPECT().GetMonthlySummary(s.testUserID, 2, 2024, false).Return(&models.MonthlySummary{
		ID:               uuid.New(),
		UserID:           s.testUserID,
		ReferenceMonth:   2,
		ReferenceYear:    2024,
		TotalIncome:      300000,
		TotalExpenses:    100000,
		TotalBalance:     200000,
		TotalBillsToPay:  60000,
		BillsCount:       2,
		Status:           models.StatusExcellent,
		LastCalculatedAt: time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC),
	}, nil)

	c, rec := s.summaryContext("", "2024", "2")

	s.NoError(s.handler.GetMonthlySummary(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.MonthlySummaryResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(models.StatusExcellent, resp.Status)
	s.Equal("0.20", resp.BillsRatio)
	s.Equal(2, resp.BillsCount)
}

func (s *SummaryHandlerSuite) TestGetMonthlySummary_ForceRecalculate() {
	s.mockService.EXPECT().GetMonthlySummary(s.testUserID, 12, 2023, true).Return(&models.MonthlySummary{
		ReferenceMonth: 12,
		ReferenceYear:  2023,
		Status:         models.StatusCritical,
	}, nil)

	c, rec := s.summaryContext("?forceRecalculate=true", "2023", "12")

	s.NoError(s.handler.GetMonthlySummary(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *SummaryHandlerSuite) TestGetMonthlySummary_InvalidPeriod() {
	c, rec := s.summaryContext("", "2024", "feb")
	s.NoError(s.handler.GetMonthlySummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	s.mockService.EXPECT().
		GetMonthlySummary(s.testUserID, 13, 2024, false).
		Return(nil, &services.ValidationError{Field: "month", Reason: "must be between 1 and 12"})

	c, rec = s.summaryContext("", "2024", "13")
	s.NoError(s.handler.GetMonthlySummary(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", decodeError(rec).Error.Code)
}

func (s *SummaryHandlerSuite) TestGetMonthlySummary_AggregationFailure() {
	s.mockService.EXPECT().
		GetMonthlySummary(s.testUserID, 1, 2024, false).
		Return(nil, &services.AggregationError{UserID: s.testUserID, Month: 1, Year: 2024, Err: errBoom})

	c, rec := s.summaryContext("", "2024", "1")

	s.NoError(s.handler.GetMonthlySummary(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SUMMARY_002", decodeError(rec).Error.Code)
	s.NotContains(rec.Body.String(), "boom")
}

func (s *SummaryHandlerSuite) TestRecalculateAllSummaries() {
	s.mockService.EXPECT().RecalculateAllSummaries(s.testUserID).
		Return(&models.RecalculationResult{Total: 4, Recalculated: 3, Failed: 1}, nil)

	c, rec := newContext(s.echo, http.MethodPost, "/summaries/recalculate", nil, s.testUserID)

	s.NoError(s.handler.RecalculateAllSummaries(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.RecalculationResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(dto.RecalculationResponse{Total: 4, Recalculated: 3, Failed: 1}, resp)
}

func (s *SummaryHandlerSuite) TestListMonthlySummaries() {
	s.mockService.EXPECT().ListMonthlySummaries(s.testUserID).Return([]models.MonthlySummary{
		{ReferenceMonth: 3, ReferenceYear: 2024, Status: models.StatusGood},
		{ReferenceMonth: 2, ReferenceYear: 2024, Status: models.StatusWarning},
	}, nil)

	c, rec := newContext(s.echo, http.MethodGet, "/summaries", nil, s.testUserID)

	s.NoError(s.handler.ListMonthlySummaries(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.MonthlySummaryListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
	s.Equal(3, resp.Summaries[0].Month)
}
