package middleware

import (
	stderrors "errors"
	"fmt"
	"strings"

	"finance-tracker/internal/config"
	"finance-tracker/internal/errors"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	ErrMalformedHeader = stderrors.New("authorization header must be in the form 'Bearer <token>'")
	ErrExpiredToken    = stderrors.New("token has expired")
	ErrInvalidToken    = stderrors.New("invalid token")
)

// TokenVerifier checks bearer tokens issued by the identity provider.
// RS256 is used when a public key is configured, HS256 with the shared secret otherwise.
type TokenVerifier struct {
	issuer    string
	secret    []byte
	publicKey interface{}
}

// NewTokenVerifier creates a verifier from the auth configuration
func NewTokenVerifier(cfg config.AuthConfig) *TokenVerifier {
	v := &TokenVerifier{issuer: cfg.Issuer, secret: cfg.Secret}
	if cfg.PublicKey != nil {
		v.publicKey = cfg.PublicKey
	}
	return v
}

// ExtractTokenFromHeader returns the token part of a "Bearer <token>" header
func ExtractTokenFromHeader(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrMalformedHeader
	}
	return strings.TrimSpace(parts[1]), nil
}

// Verify parses the token and validates its signature, expiry and issuer
func (v *TokenVerifier) Verify(tokenString string) (*models.CustomClaims, error) {
	methods := []string{jwt.SigningMethodHS256.Alg()}
	if v.publicKey != nil {
		methods = []string{jwt.SigningMethodRS256.Alg()}
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods(methods), jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &models.CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc, opts...)
	if err != nil {
		if stderrors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (v *TokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if v.publicKey != nil {
		return v.publicKey, nil
	}
	return v.secret, nil
}

// subject prefers the explicit user_id claim and falls back to sub
func subject(claims *models.CustomClaims) string {
	if claims.UserID != "" {
		return claims.UserID
	}
	return claims.Subject
}

// RequireAuth rejects requests without a valid bearer token and
// exposes the caller's user ID and email to the handlers.
func RequireAuth(verifier *TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := verifier.Verify(token)
			if err != nil {
				if stderrors.Is(err, ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidToken)
			}

			userID, err := uuid.Parse(subject(claims))
			if err != nil || userID == uuid.Nil {
				return handlers.SendError(c, errors.AuthInvalidToken, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set(handlers.UserEmailContextKey, claims.Email)

			return next(c)
		}
	}
}
