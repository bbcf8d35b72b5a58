package handlers

import (
	"net/http"
	"strconv"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"

	"github.com/labstack/echo/v4"
)

// SummaryHandler serves monthly summaries
type SummaryHandler struct {
	summaryService services.SummaryServiceInterface
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService services.SummaryServiceInterface) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// GetMonthlySummary returns the stored summary of a month, computing it on first request
// @Summary Get monthly summary
// @Tags Summaries
// @Security BearerAuth
// @Produce json
// @Param year path int true "Reference year"
// @Param month path int true "Reference month (1-12)"
// @Param forceRecalculate query bool false "Recompute even when a stored summary exists"
// @Success 200 {object} dto.MonthlySummaryResponse "Monthly totals and status"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid month or year"
// @Failure 500 {object} errors.ErrorResponse "SUMMARY_002 - Summary could not be calculated"
// @Router /summaries/{year}/{month} [get]
func (h *SummaryHandler) GetMonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("year must be a number"))
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("month must be a number"))
	}

	summary, err := h.summaryService.GetMonthlySummary(userID, month, year, getBoolParam(c, "forceRecalculate"))
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlySummaryResponse(summary))
}

// ListMonthlySummaries returns every stored summary of the user, newest first
// @Summary List monthly summaries
// @Tags Summaries
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MonthlySummaryListResponse "Stored summaries"
// @Router /summaries [get]
func (h *SummaryHandler) ListMonthlySummaries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summaries, err := h.summaryService.ListMonthlySummaries(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMonthlySummaryListResponse(summaries))
}

// RecalculateAllSummaries recomputes every stored summary of the user
// @Summary Recalculate all summaries
// @Description Months that fail are counted and skipped
// @Tags Summaries
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RecalculationResponse "Recalculation counts"
// @Router /summaries/recalculate [post]
func (h *SummaryHandler) RecalculateAllSummaries(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	result, err := h.summaryService.RecalculateAllSummaries(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewRecalculationResponse(result))
}
