package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
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

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	scheduler   *service_mocks.MockInstallmentSchedulerInterface
	ledger      *service_mocks.MockPaymentLedgerInterface
	handler     *AccountHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.scheduler = service_mocks.NewMockInstallmentSchedulerInterface(s.ctrl)
	s.ledger = service_mocks.NewMockPaymentLedgerInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService, s.scheduler, s.ledger)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestAccountHandlerSuite runs the test suite
func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

// newContext builds a request context, authenticated when userID is not nil
func newContext(e *echo.Echo, method, path string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	if userID != uuid.Nil {
		c.Set(UserIDContextKey, userID)
	}

	return c, rec
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return resp
}

func (s *AccountHandlerSuite) TestCreateAccount_WithInstallmentPlan() {
	principal := models.Money(120000)
	count := 12
	reqBody := dto.CreateAccountRequest{
		Name:             "Laptop",
		Kind:             models.AccountKindCreditCard,
		Principal:        &principal,
		InstallmentCount: &count,
		StartDate:        "2024-01-15",
		DueDay:           10,
	}

	expected := &models.Account{
		ID:               uuid.New(),
		UserID:           s.testUserID,
		Name:             "Laptop",
		Kind:             models.AccountKindCreditCard,
		Principal:        &principal,
		InstallmentCount: &count,
		StartDate:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DueDay:           10,
	}

	s.mockService.EXPECT().
		CreateAccount(s.testUserID, gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, input services.CreateAccountInput) (*models.Account, error) {
			s.Equal("Laptop", input.Name)
			s.Equal(principal, *input.Principal)
			s.Equal(12, *input.InstallmentCount)
			s.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), input.StartDate)
			return expected, nil
		})

	c, rec := newContext(s.echo, http.MethodPost, "/accounts", reqBody, s.testUserID)

	s.NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(expected.ID, resp.ID)
	s.Equal("1200.00", resp.PrincipalDisplay)
	s.Equal("2024-01-15", resp.StartDate)
}

func (s *AccountHandlerSuite) TestCreateAccount_ValidationErrors() {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"dueDay": 5}},
		{"bad kind", map[string]interface{}{"name": "Gym", "kind": "mortgage", "dueDay": 5}},
		{"due day out of range", map[string]interface{}{"name": "Gym", "dueDay": 32}},
		{"zero installment count", map[string]interface{}{"name": "Gym", "dueDay": 5, "installmentCount": 0}},
		{"bad start date", map[string]interface{}{"name": "Gym", "dueDay": 5, "startDate": "15/01/2024"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := newContext(s.echo, http.MethodPost, "/accounts", tt.body, s.testUserID)

			s.NoError(s.handler.CreateAccount(c))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.NotEmpty(decodeError(rec).Error.Details)
		})
	}
}

func (s *AccountHandlerSuite) TestCreateAccount_Unauthenticated() {
	c, rec := newContext(s.echo, http.MethodPost, "/accounts", map[string]interface{}{"name": "x"}, uuid.Nil)

	s.NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", decodeError(rec).Error.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	accountID := uuid.New()
	s.mockService.EXPECT().GetAccount(accountID, s.testUserID).Return(nil, services.ErrAccountNotFound)

	c, rec := newContext(s.echo, http.MethodGet, "/accounts/"+accountID.String(), nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.GetAccount(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ACCOUNT_001", decodeError(rec).Error.Code)
	s.Equal("test-trace-id", decodeError(rec).Error.TraceID)
}

func (s *AccountHandlerSuite) TestGetAccount_InvalidID() {
	c, rec := newContext(s.echo, http.MethodGet, "/accounts/nope", nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues("nope")

	s.NoError(s.handler.GetAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", decodeError(rec).Error.Code)
}

func (s *AccountHandlerSuite) TestListAccounts() {
	accounts := []models.Account{
		{ID: uuid.New(), UserID: s.testUserID, Name: "Rent", Kind: models.AccountKindRecurringFixed, DueDay: 5},
		{ID: uuid.New(), UserID: s.testUserID, Name: "Gym", Kind: models.AccountKindSubscription, DueDay: 1},
	}
	s.mockService.EXPECT().ListAccounts(s.testUserID).Return(accounts, nil)

	c, rec := newContext(s.echo, http.MethodGet, "/accounts", nil, s.testUserID)

	s.NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
	s.Equal("Gym", resp.Accounts[1].Name)
}

func (s *AccountHandlerSuite) TestDeleteAccount() {
	accountID := uuid.New()
	s.mockService.EXPECT().DeleteAccount(accountID, s.testUserID).Return(nil)

	c, rec := newContext(s.echo, http.MethodDelete, "/accounts/"+accountID.String(), nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AccountHandlerSuite) TestScheduleInstallments_Success() {
	accountID := uuid.New()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	installments := []models.Installment{
		{ID: uuid.New(), AccountID: accountID, SequenceNumber: 1, Amount: 3333, DueDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), ReferenceMonth: 1, ReferenceYear: 2024},
		{ID: uuid.New(), AccountID: accountID, SequenceNumber: 2, Amount: 3333, DueDate: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), ReferenceMonth: 2, ReferenceYear: 2024},
		{ID: uuid.New(), AccountID: accountID, SequenceNumber: 3, Amount: 3334, DueDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), ReferenceMonth: 3, ReferenceYear: 2024},
	}
	s.scheduler.EXPECT().
		ScheduleInstallments(accountID, s.testUserID, models.Money(10000), 3, start, 31).
		Return(installments, nil)

	body := dto.ScheduleInstallmentsRequest{Principal: 10000, InstallmentCount: 3, StartDate: "2024-01-01", DueDay: 31}
	c, rec := newContext(s.echo, http.MethodPost, "/accounts/"+accountID.String()+"/installments/schedule", body, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.ScheduleInstallments(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.InstallmentListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(3, resp.Total)
	s.Equal(models.Money(10000), resp.TotalAmount)
	s.Equal("2024-02-29", resp.Installments[1].DueDate)
}

func (s *AccountHandlerSuite) TestScheduleInstallments_AlreadyScheduled() {
	accountID := uuid.New()
	s.scheduler.EXPECT().
		ScheduleInstallments(accountID, s.testUserID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, services.ErrInstallmentsAlreadyScheduled)

	body := dto.ScheduleInstallmentsRequest{Principal: 10000, InstallmentCount: 3, StartDate: "2024-01-01", DueDay: 10}
	c, rec := newContext(s.echo, http.MethodPost, "/", body, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.ScheduleInstallments(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("ACCOUNT_004", decodeError(rec).Error.Code)
}

func (s *AccountHandlerSuite) TestSettleAccount_ErrorMapping() {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{services.ErrInsufficientAmount, http.StatusUnprocessableEntity, "ACCOUNT_003"},
		{services.ErrAccountAlreadySettled, http.StatusConflict, "ACCOUNT_002"},
		{services.ErrAccountNotFound, http.StatusNotFound, "ACCOUNT_001"},
		{fmt.Errorf("failed to settle: %w", errBoom), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tt := range tests {
		s.Run(tt.code, func() {
			accountID := uuid.New()
			s.ledger.EXPECT().SettleAccount(accountID, s.testUserID, models.Money(5000)).Return(nil, tt.err)

			c, rec := newContext(s.echo, http.MethodPost, "/", dto.SettleAccountRequest{PaymentAmount: 5000}, s.testUserID)
			c.SetParamNames("accountId")
			c.SetParamValues(accountID.String())

			s.NoError(s.handler.SettleAccount(c))
			s.Equal(tt.status, rec.Code)
			s.Equal(tt.code, decodeError(rec).Error.Code)
			s.Equal(tt.code, c.Get(ErrorCodeContextKey))
		})
	}
}

func (s *AccountHandlerSuite) TestSettleAccount_RejectsNonPositiveAmount() {
	accountID := uuid.New()
	c, rec := newContext(s.echo, http.MethodPost, "/", dto.SettleAccountRequest{PaymentAmount: 0}, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.SettleAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("TRANSACTION_002", decodeError(rec).Error.Code)
}

func (s *AccountHandlerSuite) TestSettleAccount_Success() {
	accountID := uuid.New()
	settledAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ledger.EXPECT().SettleAccount(accountID, s.testUserID, models.Money(6000)).Return(&models.Account{
		ID:        accountID,
		UserID:    s.testUserID,
		Name:      "Loan",
		Kind:      models.AccountKindLoan,
		DueDay:    10,
		Settled:   true,
		SettledAt: &settledAt,
	}, nil)

	c, rec := newContext(s.echo, http.MethodPost, "/", dto.SettleAccountRequest{PaymentAmount: 6000}, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.SettleAccount(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.AccountResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Settled)
}

func (s *AccountHandlerSuite) TestListInstallments_ForeignAccount() {
	accountID := uuid.New()
	s.mockService.EXPECT().ListInstallments(accountID, s.testUserID).Return(nil, services.ErrAccountNotFound)

	c, rec := newContext(s.echo, http.MethodGet, "/", nil, s.testUserID)
	c.SetParamNames("accountId")
	c.SetParamValues(accountID.String())

	s.NoError(s.handler.ListInstallments(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
