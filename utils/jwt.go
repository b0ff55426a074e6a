package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTTL  = time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func signToken(userID uint, email, tokenType string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"type":   tokenType,
		"exp":    time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// GenerateTokenPair mints an access/refresh pair for the user.
func GenerateTokenPair(userID uint, email string) (TokenPair, error) {
	access, err := signToken(userID, email, "access", accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := signToken(userID, email, "refresh", refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// ParseToken validates the signature and returns the claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		return nil, errors.New("JWT_SECRET not set")
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns the user id.
func ParseRefreshToken(tokenString string) (uint, string, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return 0, "", err
	}
	if t, _ := claims["type"].(string); t != "refresh" {
		return 0, "", errors.New("not a refresh token")
	}
	id, ok := claims["userId"].(float64)
	if !ok {
		return 0, "", errors.New("userId claim missing")
	}
	email, _ := claims["email"].(string)
	return uint(id), email, nil
}
