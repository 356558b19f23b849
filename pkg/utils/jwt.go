package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Demo fallback when JWT_SECRET is unset. Matches the reference deployment.
const defaultSecret = "secret_key"

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte(defaultSecret)
}

func GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken parses a token and returns the email claim. Expired tokens
// surface jwt.ErrTokenExpired so callers can report them distinctly.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return email, nil
}
