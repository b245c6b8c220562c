package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftload/swiftload/internal/pkg/models"
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:            "test-secret",
		AccessExpiration:  60,
		RefreshExpiration: 1440,
		ScopedExpiration:  5,
		Issuer:            "test-issuer",
	}
}

func TestGenerateTokenPair(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	pair, err := GenerateTokenPair(userID, "jane@example.com", models.RoleCustomer, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	claims, err := ValidateToken(pair.Access, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, models.RoleCustomer, claims["role"])
	assert.Equal(t, "access", claims["type"])

	refreshClaims, err := ValidateToken(pair.Refresh, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims["type"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testJWTConfig()

	pair, err := GenerateTokenPair(uuid.New(), "jane@example.com", models.RoleCustomer, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(pair.Access, "other-secret")
	assert.Error(t, err)
}

func TestValidateScopedToken(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateScopedToken(userID, ScopeRegistration, cfg)
	require.NoError(t, err)

	got, err := ValidateScopedToken(token, ScopeRegistration, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestValidateScopedToken_WrongScope(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateScopedToken(uuid.New(), ScopePasswordReset, cfg)
	require.NoError(t, err)

	_, err = ValidateScopedToken(token, ScopeRegistration, cfg.Secret)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scope")
}

func TestValidateScopedToken_Expired(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	claims := jwtlib.MapClaims{
		"user_id": userID.String(),
		"scope":   ScopeRegistration,
		"exp":     time.Now().Add(-1 * time.Minute).Unix(),
		"iss":     cfg.Issuer,
	}
	token, err := signToken(claims, cfg.Secret)
	require.NoError(t, err)

	_, err = ValidateScopedToken(token, ScopeRegistration, cfg.Secret)
	assert.Error(t, err)
}
