package helpers

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// JWTManager signs and verifies session tokens. Tokens carry only the user
// identity; lifetime is bounded by the cookie, not by an exp claim.
type JWTManager struct {
	Secret []byte
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{Secret: []byte(secret)}
}

type Claims struct {
	UserID string `json:"_id"`
	jwt.RegisteredClaims
}

func (m *JWTManager) Generate(userID string) (string, error) {
	claims := &Claims{UserID: userID}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.Secret)
}

func (m *JWTManager) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" {
		return nil, errors.New("token carries no identity")
	}
	return claims, nil
}
