package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"arenaslot/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "arenaslot-dev"
	}
	return []byte(secret)
}

// TokenClaims is the decoded identity carried by a bearer token.
type TokenClaims struct {
	UserID   string
	FullName string
	Email    string
	Role     string
}

// GenerateToken creates a signed JWT for the given user identity.
// The token expires after the specified duration.
func GenerateToken(userID, fullName, email, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":      userID,
		"fullName": fullName,
		"email":    email,
		"role":     role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken validates a token string and extracts the identity claims.
func ExtractClaimsFromToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	tc := &TokenClaims{UserID: sub}
	if v, ok := claims["fullName"].(string); ok {
		tc.FullName = v
	}
	if v, ok := claims["email"].(string); ok {
		tc.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		tc.Role = v
	}
	return tc, nil
}
