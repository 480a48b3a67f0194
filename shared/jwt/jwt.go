package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	internal_errors "github.com/itchan-dev/filestate/shared/errors"
	"github.com/itchan-dev/filestate/shared/logger"
)

// Event producers authenticate with HS256 tokens whose subject names the producer.

type JwtService interface {
	NewToken(producer string) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
	Producer(token *jwt.Token) (string, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) JwtService {
	return &Jwt{secretKey, ttl}
}

func (j *Jwt) NewToken(producer string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:  producer,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if j.ttl != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(j.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign producer token", "error", err)
		return "", errors.New("Can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(jwtStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		logger.Log.Debug("producer token rejected", "error", err)
		return nil, internal_errors.Unauthorized("Invalid token signature")
	}

	if !token.Valid {
		return nil, internal_errors.Unauthorized("Invalid access token")
	}

	return token, nil
}

// Producer returns the producer name a decoded token was issued to.
func (j *Jwt) Producer(token *jwt.Token) (string, error) {
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", internal_errors.Unauthorized("Invalid token claims")
	}
	return claims.Subject, nil
}
