package utils

import (
	"testing"
	"time"

	"coursehub/backend/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret", JWTExpiryHours: 168}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateToken(42, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := VerifyToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateToken(42, cfg)
	require.NoError(t, err)

	other := &config.Config{JWTSecret: "othersecret", JWTExpiryHours: 168}
	_, err = VerifyToken(token, other)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret", JWTExpiryHours: -1}
	token, err := GenerateToken(42, cfg)
	require.NoError(t, err)

	_, err = VerifyToken(token, testConfig())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenMalformed(t *testing.T) {
	_, err := VerifyToken("not-a-token", testConfig())
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsOtherAlgorithm(t *testing.T) {
	cfg := testConfig()

	// Same secret, different HMAC variant: must still be rejected.
	claims := jwt.MapClaims{
		"userId": float64(42),
		"exp":    time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = VerifyToken(token, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
