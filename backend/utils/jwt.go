package utils

import (
	"errors"
	"time"

	"coursehub/backend/config"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is the single failure signal for token verification.
// Callers never learn whether a token was malformed, expired or forged.
var ErrInvalidToken = errors.New("invalid token")

// GenerateToken issues a signed session token for the given user.
func GenerateToken(userID uint, cfg *config.Config) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID,
		"iat":    now.Unix(),
		"exp":    now.Add(time.Duration(cfg.JWTExpiryHours) * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyToken validates the signature and expiry and returns the user id.
// Only HS256 is accepted; a token carrying any other algorithm in its header
// is rejected outright.
func VerifyToken(tokenString string, cfg *config.Config) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	userIDFloat, ok := claims["userId"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(userIDFloat), nil
}
