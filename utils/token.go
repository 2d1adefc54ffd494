package utils

import (
	"fmt"
	"time"

	"github.com/aromabeans/coffee-feedback/config"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken generates a JWT token for the shopkeeper
func GenerateToken(shopkeeperID string) (string, error) {
	jwtSecret := []byte(config.JWTSecret)
	if len(jwtSecret) == 0 {
		return "", fmt.Errorf("JWT_SECRET is not set")
	}

	claims := jwt.MapClaims{
		"shopkeeper_id": shopkeeperID,
		"exp":           time.Now().Add(time.Hour * 24).Unix(), // Token valid for 24 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken parses and validates the token, returning the shopkeeper ID.
func ValidateToken(tokenString string) (string, error) {
	jwtSecret := []byte(config.JWTSecret)

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	id, ok := claims["shopkeeper_id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("invalid token claims")
	}
	return id, nil
}
