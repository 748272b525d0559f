package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/sushihentaime/blogora/internal/common"
	"github.com/sushihentaime/blogora/internal/userservice"
)

// testApplication builds an application with just enough wiring for the
// middleware. Token verification is pure, so no database is needed.
func testApplication() *application {
	return &application{
		config:      &Config{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		userService: userservice.NewUserService(nil, common.NopMessageProducer{}, "test-secret", "test-pepper", bcrypt.MinCost),
	}
}

func signTestToken(t *testing.T, role userservice.Role) string {
	t.Helper()

	f := userservice.NewTokenFactory("test-secret")
	token, err := f.Sign(&userservice.User{ID: 1, Email: "testuser@example.com", Role: role})
	assert.NoError(t, err)

	return token
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"Error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	return body.Error
}

func TestRequireAuth(t *testing.T) {
	app := testApplication()

	next := func(w http.ResponseWriter, r *http.Request) {
		claims := app.getAuthContext(r)
		assert.NotNil(t, claims)
		assert.Equal(t, 1, claims.UserID)
		w.WriteHeader(http.StatusOK)
	}

	testCases := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Basic abc123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid token",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + signTestToken(t, userservice.RoleUser),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/blogs", nil)
			if tc.authHeader != "" {
				r.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			app.requireAuth(next).ServeHTTP(rr, r)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusUnauthorized {
				assert.Equal(t, "Unauthorized Access", errorMessage(t, rr))
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	app := testApplication()

	next := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	testCases := []struct {
		name           string
		role           userservice.Role
		expectedStatus int
		expectedErr    string
	}{
		{
			name:           "user role rejected",
			role:           userservice.RoleUser,
			expectedStatus: http.StatusUnauthorized,
			expectedErr:    "Unauthorized Access, Admin privilege is required",
		},
		{
			name:           "admin role allowed",
			role:           userservice.RoleAdmin,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/users", nil)
			r.Header.Set("Authorization", "Bearer "+signTestToken(t, tc.role))
			rr := httptest.NewRecorder()

			app.requireAdmin(next).ServeHTTP(rr, r)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedErr != "" {
				assert.Equal(t, tc.expectedErr, errorMessage(t, rr))
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	app := testApplication()
	app.config.Limiter.Enabled = true
	app.config.Limiter.RPS = 2
	app.config.Limiter.Burst = 4

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := app.rateLimit(next)

	var limited bool
	for i := 0; i < 10; i++ {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, r)

		if rr.Code == http.StatusTooManyRequests {
			limited = true
			assert.Equal(t, "rate limit exceeded", errorMessage(t, rr))
		}
	}

	assert.True(t, limited, "expected the burst to be exhausted")
}

func TestRateLimitDisabled(t *testing.T) {
	app := testApplication()
	app.config.Limiter.Enabled = false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := app.rateLimit(next)

	for i := 0; i < 10; i++ {
		r := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, r)

		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestRecoverPanic(t *testing.T) {
	app := testApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something broke")
	})

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	app.recoverPanic(next).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
}

func TestEnableCORS(t *testing.T) {
	app := testApplication()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodOptions, "/blogs", nil)
	rr := httptest.NewRecorder()

	app.enableCORS(next).ServeHTTP(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}
