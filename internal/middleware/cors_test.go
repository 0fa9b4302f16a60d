package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorsMiddleware(t *testing.T) {
	allowedOrigins := []string{"http://localhost:8080", "https://gymquest.app"}

	testCases := []struct {
		name              string
		origins           []string
		origin            string
		userAgent         string
		method            string
		expectAllowOrigin string
		expectedStatus    int
		expectNextCalled  bool
	}{
		{
			name:              "AllowedOrigin",
			origins:           allowedOrigins,
			origin:            "https://gymquest.app",
			expectAllowOrigin: "https://gymquest.app",
			expectedStatus:    http.StatusOK,
			expectNextCalled:  true,
		},
		{
			name:             "NotAllowedOrigin",
			origins:          allowedOrigins,
			origin:           "https://www.notallowed.com",
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name:              "CurlWithoutOrigin",
			origins:           allowedOrigins,
			userAgent:         "curl/8.4.0",
			expectAllowOrigin: "*",
			expectedStatus:    http.StatusOK,
			expectNextCalled:  true,
		},
		{
			name:             "UnknownAgentWithoutOrigin",
			origins:          allowedOrigins,
			userAgent:        "UnknownAgent/1.0",
			expectedStatus:   http.StatusForbidden,
			expectNextCalled: false,
		},
		{
			name:              "Wildcard",
			origins:           []string{"*"},
			origin:            "https://anything.example",
			expectAllowOrigin: "https://anything.example",
			expectedStatus:    http.StatusOK,
			expectNextCalled:  true,
		},
		{
			name:              "PreflightStopsHere",
			origins:           allowedOrigins,
			origin:            "http://localhost:8080",
			method:            http.MethodOptions,
			expectAllowOrigin: "http://localhost:8080",
			expectedStatus:    http.StatusOK,
			expectNextCalled:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			method := tc.method
			if method == "" {
				method = http.MethodGet
			}

			rr := httptest.NewRecorder()
			req, err := http.NewRequest(method, "/status", nil)
			require.NoError(t, err)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			req.Header.Set("User-Agent", tc.userAgent)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})
			Cors(tc.origins)(nextHandler).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Unexpected status code")
			assert.Equal(t, tc.expectAllowOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.expectNextCalled, nextCalled)
		})
	}
}
