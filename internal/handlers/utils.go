package handlers

import (
	"errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key holding the authenticated caller's uuid.UUID
const UserIDKey = "user_id"

var ErrUnauthorized = errors.New("unauthorized")

// currentUserID returns the caller set by the auth middleware
func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
