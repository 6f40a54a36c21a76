package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/middleware"
)

const backofficeKey = "backoffice-key-7f3a"

// operationWriteRequest builds a mutating operation request with the given
// auth headers; empty values leave the header unset.
func operationWriteRequest(apiKey, timeToken string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/operation", nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	if timeToken != "" {
		req.Header.Set("X-Time-Token", timeToken)
	}
	return req
}

// TestAPIKeyMiddleware tests the guard on mutating operation and expense routes.
//
// WHY: creating, editing or deleting operations changes every commission
// report, so only the back office holding INTERNAL_API_KEY and a fresh time
// token may reach those handlers.
func TestAPIKeyMiddleware(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", backofficeKey)

	tests := []struct {
		name        string
		apiKey      string
		timeToken   string
		wantStatus  int
		wantDetails string
	}{
		{
			name:        "missing API key",
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Missing API key",
		},
		{
			name:        "wrong API key",
			apiKey:      "agent-portal-key",
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Invalid API key",
		},
		{
			name:        "API key that is a prefix of the real one",
			apiKey:      backofficeKey[:len(backofficeKey)-1],
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Invalid API key",
		},
		{
			name:        "API key extending the real one",
			apiKey:      backofficeKey + "0",
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Invalid API key",
		},
		{
			name:        "missing time token",
			apiKey:      backofficeKey,
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Missing Time token",
		},
		{
			name:        "malformed time token",
			apiKey:      backofficeKey,
			timeToken:   "not-a-fernet-token",
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Time token is invalid or expired",
		},
		{
			name:        "time token sealed with another key",
			apiKey:      backofficeKey,
			timeToken:   middleware.GenerateTimeToken("agent-portal-key"),
			wantStatus:  http.StatusUnauthorized,
			wantDetails: "Time token is invalid or expired",
		},
		{
			name:       "valid key and fresh token",
			apiKey:     backofficeKey,
			timeToken:  middleware.GenerateTimeToken(backofficeKey),
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusCreated)
			})

			w := httptest.NewRecorder()
			middleware.APIKeyMiddleware(next).ServeHTTP(w, operationWriteRequest(tt.apiKey, tt.timeToken))

			if w.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if handlerCalled != (tt.wantDetails == "") {
				t.Errorf("Expected handler called=%v, got %v", tt.wantDetails == "", handlerCalled)
			}
			if tt.wantDetails == "" {
				return
			}

			var body map[string]string
			//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
			json.NewDecoder(w.Body).Decode(&body)
			if body["error"] != "authentication failed" || body["details"] != tt.wantDetails {
				t.Errorf("Expected authentication failed / %q, got %v", tt.wantDetails, body)
			}
		})
	}
}

func TestAPIKeyMiddleware_KeyNotConfigured(t *testing.T) {
	t.Setenv("INTERNAL_API_KEY", "")

	handlerCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		handlerCalled = true
	})

	w := httptest.NewRecorder()
	middleware.APIKeyMiddleware(next).ServeHTTP(w, operationWriteRequest(backofficeKey, middleware.GenerateTimeToken(backofficeKey)))

	if handlerCalled {
		t.Error("Expected operation handler not to run without a configured key")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", w.Code)
	}

	var body map[string]string
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&body)
	if body["details"] != "Authentication not loaded" {
		t.Errorf("Expected 'Authentication not loaded', got %q", body["details"])
	}
}
