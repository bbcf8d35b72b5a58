package handlers

import (
	"log/slog"
	"net/http"

	"finance-tracker/internal/dto"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/services"
	"finance-tracker/internal/validation"

	"github.com/labstack/echo/v4"
)

// UserHandler handles the authenticated user's own profile
type UserHandler struct {
	userService services.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpsertProfile creates the user row for the token identity on first call and returns it
// @Summary Create or fetch own profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest false "Optional display name"
// @Success 200 {object} dto.UserProfileResponse "User profile"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Token carries no usable email"
// @Failure 409 {object} errors.ErrorResponse "USER_002 - Email registered to another user"
// @Router /users/me [put]
func (h *UserHandler) UpsertProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
		if err := c.Validate(req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
		}
	}

	user, err := h.userService.EnsureUser(userID, getUserEmailFromContext(c), req.DisplayName)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserProfileResponse(user))
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse "User profile"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - Profile not created yet"
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.userService.GetUser(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewUserProfileResponse(user))
}

// DeleteProfile removes the user and everything they own
// @Summary Delete own profile
// @Tags Users
// @Security BearerAuth
// @Success 204 "User deleted"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/me [delete]
func (h *UserHandler) DeleteProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	if err := h.userService.DeleteUser(userID); err != nil {
		return SendServiceError(c, err)
	}

	slog.Info("user deleted",
		"trace_id", getTraceID(c),
		"user_id", userID,
		"ip_address", getClientIP(c),
	)

	return c.NoContent(http.StatusNoContent)
}
