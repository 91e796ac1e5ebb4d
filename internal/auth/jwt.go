// Package auth validates bearer tokens issued by the identity service.
// Token issuance, refresh, and user management live outside this backend;
// only HS256 validation and claim extraction happen here.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is the resolved caller: who they are, which practice they act
// within, and their role inside that practice.
type Identity struct {
	UserID     uuid.UUID
	PracticeID uuid.UUID
	Role       string
}

// JWTValidator validates HS256 access tokens from the identity service.
type JWTValidator struct {
	secret []byte
	issuer string
}

// NewJWTValidator creates a validator. secret must match the identity
// service's signing key (at least 32 characters for HS256).
func NewJWTValidator(secret, issuer string) *JWTValidator {
	return &JWTValidator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// accessClaims extends standard JWT claims with the tenant and role.
type accessClaims struct {
	jwt.RegisteredClaims
	PracticeID string `json:"practice_id"`
	Role       string `json:"role,omitempty"`
}

// Validate parses and validates an access token and returns the caller's
// identity. The subject is the user ID; practice_id scopes every subsequent
// store access to one tenant.
func (v *JWTValidator) Validate(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return Identity{}, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != v.issuer {
		return Identity{}, fmt.Errorf("invalid issuer: expected %s, got %s", v.issuer, claims.Issuer)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid subject UUID: %w", err)
	}

	practiceID, err := uuid.Parse(claims.PracticeID)
	if err != nil {
		return Identity{}, fmt.Errorf("invalid practice_id UUID: %w", err)
	}

	return Identity{
		UserID:     userID,
		PracticeID: practiceID,
		Role:       claims.Role,
	}, nil
}
