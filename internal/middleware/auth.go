package middleware

import (
	stderrors "errors"
	"fmt"
	"strings"

	"budget-engine/internal/errors"
	"budget-engine/internal/handlers"
	"budget-engine/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	ErrInvalidToken       = stderrors.New("invalid token")
	ErrExpiredToken       = stderrors.New("token has expired")
	ErrInvalidTokenFormat = stderrors.New("authorization header must be 'Bearer <token>'")
)

// TokenValidator verifies HMAC-signed access tokens issued by the identity provider
type TokenValidator struct {
	secret []byte
	issuer string
}

// NewTokenValidator creates a validator. An empty issuer accepts any issuer.
func NewTokenValidator(secret []byte, issuer string) *TokenValidator {
	return &TokenValidator{secret: secret, issuer: issuer}
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header
func (v *TokenValidator) ExtractTokenFromHeader(authHeader string) (string, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrInvalidTokenFormat
	}
	return strings.TrimSpace(parts[1]), nil
}

// ValidateAccessToken parses the token and checks signature, expiry and issuer
func (v *TokenValidator) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	claims := &models.CustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, options...)
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

// RequireAuth creates a middleware that requires a valid JWT token and
// stores the caller's user id in the context
func RequireAuth(validator *TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := validator.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			rawUserID := claims.UserID
			if rawUserID == "" {
				rawUserID = claims.Subject
			}

			userID, err := uuid.Parse(rawUserID)
			if err != nil || userID == uuid.Nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDKey, userID)
			c.Set("user_email", claims.Email)
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}
