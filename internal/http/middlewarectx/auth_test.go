package middlewarectx

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/hackerhosting/backend/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwtlib.NewJWTMaker("test_secret", time.Hour)
	validToken, err := maker.GenerateToken("u_1", "a@x.com", "a")
	require.NoError(t, err)

	expiredMaker := jwtlib.NewJWTMaker("test_secret", -time.Hour)
	expiredToken, err := expiredMaker.GenerateToken("u_1", "a@x.com", "a")
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid token",
			header:         "Bearer " + validToken,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "missing header",
			header:         "",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "Missing authorization header",
		},
		{
			name:           "single part header",
			header:         "Bearer",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "Invalid authorization format",
		},
		{
			name:           "three part header",
			header:         "Bearer " + validToken + " extra",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "Invalid authorization format",
		},
		{
			name:           "garbage token",
			header:         "Bearer not.a.token",
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "Invalid token",
		},
		{
			name:           "expired token",
			header:         "Bearer " + expiredToken,
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "Invalid token",
		},
		{
			name:           "wrong secret",
			header:         "Bearer " + tokenSignedWith(t, "other_secret"),
			wantStatusCode: http.StatusUnauthorized,
			wantError:      "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotClaims *jwtlib.CustomClaims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = Claims(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(maker, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/myservers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantError != "" {
				var got map[string]any
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				assert.Equal(t, tt.wantError, got["error"])
				assert.Nil(t, gotClaims)
			} else {
				require.NotNil(t, gotClaims)
				assert.Equal(t, "u_1", gotClaims.UserID)
				assert.Equal(t, "a@x.com", gotClaims.Email)
				assert.Equal(t, "a", gotClaims.Username)
			}
		})
	}
}

func tokenSignedWith(t *testing.T, secret string) string {
	t.Helper()
	maker := jwtlib.NewJWTMaker(secret, time.Hour)
	token, err := maker.GenerateToken("u_1", "a@x.com", "a")
	require.NoError(t, err)
	return token
}
