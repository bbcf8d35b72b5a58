package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by the bearer tokens this service accepts.
// Tokens are issued elsewhere; the service only verifies them.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
