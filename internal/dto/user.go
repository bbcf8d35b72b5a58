package dto

import (
	"time"

	"finance-tracker/internal/models"

	"github.com/google/uuid"
)

// UpdateProfileRequest carries the optional profile fields a user can set on first sight
type UpdateProfileRequest struct {
	DisplayName string `json:"displayName" validate:"max=100"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewUserProfileResponse maps a user model to its API representation
func NewUserProfileResponse(user *models.User) UserProfileResponse {
	return UserProfileResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}
}
