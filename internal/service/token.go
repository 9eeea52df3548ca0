package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and verifies the signed session tokens carried in the
// Authorization header. Tokens embed the user's email and nothing else.
type TokenService interface {
	Issue(email string) (string, error)
	Verify(token string) (string, error) // returns the email claim
}

type tokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret), ttl: time.Hour}
}

func (t *tokenService) Issue(email string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(t.ttl).Unix(),
	})
	return tok.SignedString(t.secret)
}

func (t *tokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	return email, nil
}
