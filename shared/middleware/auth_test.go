package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt_internal "github.com/itchan-dev/filestate/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeedProducer(t *testing.T) {
	jwtService := jwt_internal.New("test_secret", time.Hour)
	token, err := jwtService.NewToken("gateway")
	require.NoError(t, err)
	foreign, err := jwt_internal.New("other_secret", time.Hour).NewToken("gateway")
	require.NoError(t, err)

	tests := []struct {
		name             string
		header           string
		expectedStatus   int
		expectedProducer string
	}{
		{
			name:             "Valid token",
			header:           "Bearer " + token,
			expectedStatus:   http.StatusOK,
			expectedProducer: "gateway",
		},
		{
			name:           "No header",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Not a bearer token",
			header:         "Basic abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			header:         "Bearer invalid_token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Token signed with another key",
			header:         "Bearer " + foreign,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "http://example.com/v1/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			var producer string
			handler := NewAuth(jwtService).NeedProducer()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				producer = GetProducerFromContext(r)
				w.WriteHeader(http.StatusOK)
			}))
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedProducer, producer)
		})
	}
}

func TestGetProducerFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", GetProducerFromContext(req))
}

func TestJSONHeaders(t *testing.T) {
	for _, https := range []bool{false, true} {
		rr := httptest.NewRecorder()
		JSONHeaders(https)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
		assert.Equal(t, https, rr.Header().Get("Strict-Transport-Security") != "")
	}
}
