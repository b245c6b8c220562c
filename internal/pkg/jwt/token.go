package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

// Scopes carried by single-purpose tokens.
const (
	ScopeRegistration  = "registration"
	ScopePasswordReset = "password_reset"
)

// GenerateTokenPair generates an access+refresh pair embedding the role
// claim.
func GenerateTokenPair(userID uuid.UUID, email, role string, cfg models.JWTConfig) (*models.TokenPair, error) {
	access, err := signToken(jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"role":    role,
		"type":    "access",
		"exp":     time.Now().Add(time.Duration(cfg.AccessExpiration) * time.Minute).Unix(),
		"iss":     cfg.Issuer,
	}, cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := signToken(jwt.MapClaims{
		"user_id": userID.String(),
		"type":    "refresh",
		"exp":     time.Now().Add(time.Duration(cfg.RefreshExpiration) * time.Minute).Unix(),
		"iss":     cfg.Issuer,
	}, cfg.Secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

// GenerateScopedToken generates a short-lived token restricted to one
// named purpose. Endpoints requiring a different scope must reject it.
func GenerateScopedToken(userID uuid.UUID, scope string, cfg models.JWTConfig) (string, error) {
	token, err := signToken(jwt.MapClaims{
		"user_id": userID.String(),
		"scope":   scope,
		"exp":     time.Now().Add(time.Duration(cfg.ScopedExpiration) * time.Minute).Unix(),
		"iss":     cfg.Issuer,
	}, cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign scoped token: %w", err)
	}
	return token, nil
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ValidateScopedToken validates a token and enforces its scope claim,
// returning the user id it was issued for.
func ValidateScopedToken(tokenString, requiredScope, secret string) (uuid.UUID, error) {
	claims, err := ValidateToken(tokenString, secret)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid token: %w", err)
	}

	scope, _ := claims["scope"].(string)
	if scope != requiredScope {
		return uuid.Nil, fmt.Errorf("invalid scope: expected %s", requiredScope)
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	return userID, nil
}
