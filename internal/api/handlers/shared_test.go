package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
)

// WHY: every mutating handler relies on parseJSON; malformed bodies must surface as errors
// so handlers answer 400 instead of acting on a zero value.
func TestParseJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	t.Run("decodes valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Venta"}`))

		got, err := parseJSON[payload](req)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.Name != "Venta" {
			t.Errorf("Expected name 'Venta', got '%s'", got.Name)
		}
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))

		if _, err := parseJSON[payload](req); err == nil {
			t.Error("Expected error for malformed JSON")
		}
	})
}

// WHY: reports default to "now" but must honour an explicit as_of so results are reproducible.
func TestParseAsOf(t *testing.T) {
	t.Run("parses explicit date", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?as_of=2024-06-15", nil)

		got, err := parseAsOf(req)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("defaults to now", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		got, err := parseAsOf(req)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if time.Since(got) > time.Minute {
			t.Errorf("Expected current time, got %v", got)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?as_of=yesterday", nil)

		_, err := parseAsOf(req)
		if !errors.Is(err, apperrors.ErrInvalidDate) {
			t.Errorf("Expected ErrInvalidDate, got %v", err)
		}
	})
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    int
		wantErr bool
	}{
		{"missing uses default", "", 1, false},
		{"valid value", "page=3", 3, false},
		{"zero rejected", "page=0", 0, true},
		{"text rejected", "page=two", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			got, err := parsePositiveInt(req, "page", 1, apperrors.ErrInvalidPage)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}
