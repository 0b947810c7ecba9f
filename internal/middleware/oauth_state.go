package middleware

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	stateSubject = "oauth_state"
	stateTTL     = 10 * time.Minute
)

// StateClaims represents the JWT claims for the OAuth state parameter
type StateClaims struct {
	Nonce string `json:"nonce"`
	jwt.RegisteredClaims
}

// GenerateStateToken signs a short-lived state parameter for the OAuth round trip
func GenerateStateToken(secret string) (string, error) {
	now := time.Now()
	claims := &StateClaims{
		Nonce: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(stateTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "travelshare",
			Subject:   stateSubject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateStateToken checks a state parameter returned by the identity provider
func ValidateStateToken(tokenString, secret string) (*StateClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &StateClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*StateClaims); ok && token.Valid {
		if claims.Subject != stateSubject {
			return nil, errors.New("invalid token type")
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
