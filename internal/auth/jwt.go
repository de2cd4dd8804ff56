package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the identity fields of a token issued by the external
// auth provider. The subject is the provider's user id.
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

// ParseToken verifies an externally issued HS256 token against the shared
// secret and returns the user id from the subject claim.
func ParseToken(secret, tokenStr string) (string, *Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", nil, ErrInvalidToken
	}
	userID := claims.Subject
	if _, err := uuid.Parse(userID); err != nil {
		return "", nil, ErrInvalidToken
	}
	return userID, claims, nil
}
