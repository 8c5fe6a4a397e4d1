package signup

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hackerhosting/backend/internal/models"
	authservice "github.com/hackerhosting/backend/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, email, rawPassword string) (string, models.PublicUser, error) {
	args := m.Called(ctx, username, email, rawPassword)
	return args.String(0), args.Get(1).(models.PublicUser), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestSignupHandler_ServeHTTP(t *testing.T) {
	user := models.PublicUser{ID: "u_1", Username: "a", Email: "a@x.com"}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockUser       models.PublicUser
		mockErr        error
		mockExpected   bool
		wantStatusCode int
		wantError      string
	}{
		{
			name:           "valid signup",
			requestBody:    Request{Username: "a", Email: "a@x.com", Password: "pw"},
			mockToken:      "tok",
			mockUser:       user,
			mockExpected:   true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "missing email",
			requestBody:    Request{Username: "a", Password: "pw"},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Email is a required field",
		},
		{
			name:           "missing everything",
			requestBody:    Request{},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field Username is a required field, field Email is a required field, field Password is a required field",
		},
		{
			name:           "duplicate email",
			requestBody:    Request{Username: "b", Email: "a@x.com", Password: "pw2"},
			mockErr:        authservice.ErrEmailTaken,
			mockExpected:   true,
			wantStatusCode: http.StatusBadRequest,
			wantError:      "User already exists",
		},
		{
			name:           "storage failure",
			requestBody:    Request{Username: "a", Email: "a@x.com", Password: "pw"},
			mockErr:        errors.New("disk full"),
			mockExpected:   true,
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			handler := New(newNoopLogger(), authMock)

			if tt.mockExpected {
				req := tt.requestBody.(Request)
				authMock.On("Register", mock.Anything, req.Username, req.Email, req.Password).
					Return(tt.mockToken, tt.mockUser, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/signup", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "tok", got["token"])
				gotUser, ok := got["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, user.ID, gotUser["id"])
				assert.Equal(t, user.Email, gotUser["email"])
				assert.NotContains(t, gotUser, "password")
			}

			authMock.AssertExpectations(t)
		})
	}
}
