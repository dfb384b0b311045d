package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the claims carried by access tokens issued by the
// identity provider in front of this service
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
