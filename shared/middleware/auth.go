package middleware

import (
	"context"
	"net/http"
	"strings"

	jwt_internal "github.com/itchan-dev/filestate/shared/jwt"
	"github.com/itchan-dev/filestate/shared/logger"
	"github.com/itchan-dev/filestate/shared/utils"
)

// Key to store the producer name in the request context
type key int

const ProducerKey key = 0

// Auth guards the event feed with producer tokens
type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedProducer returns middleware that requires a valid producer token
// in the Authorization header.
func (a *Auth) NeedProducer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !found || tokenString == "" {
				http.Error(w, "Missing producer token", http.StatusUnauthorized)
				return
			}

			token, err := a.jwtService.DecodeToken(tokenString)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			producer, err := a.jwtService.Producer(token)
			if err != nil {
				logger.Component("auth").Warn("producer token without subject")
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ProducerKey, producer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetProducerFromContext returns the authenticated producer, or "" when the
// request did not pass NeedProducer.
func GetProducerFromContext(r *http.Request) string {
	producer, _ := r.Context().Value(ProducerKey).(string)
	return producer
}

// JSONHeaders sets the headers every JSON API response carries.
func JSONHeaders(isHTTPS bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			headers.Set("X-Content-Type-Options", "nosniff")
			headers.Set("X-Frame-Options", "DENY")
			headers.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
			headers.Set("Cache-Control", "no-store")
			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
