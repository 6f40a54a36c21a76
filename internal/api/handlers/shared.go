package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/apperrors"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/validation"
)

// parseJSON decodes the request body into a value of type T.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	if r.Body == nil {
		return v, fmt.Errorf("request body is empty")
	}
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		return v, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v, nil
}

// parseAsOf reads the as_of query parameter, defaulting to the current time.
func parseAsOf(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("as_of")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	asOf, err := validation.ParseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidDate, raw)
	}
	return asOf, nil
}

// parseOptionalDate reads a date query parameter; a missing value yields the zero time.
func parseOptionalDate(r *http.Request, key string) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	date, err := validation.ParseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s=%s", apperrors.ErrInvalidDate, key, raw)
	}
	return date, nil
}

// parsePositiveInt reads an integer query parameter that must be >= 1 when present.
func parsePositiveInt(r *http.Request, key string, defaultValue int, invalid error) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %s", invalid, raw)
	}
	return n, nil
}

// validationDetails returns the per-field messages of a validation.Error,
// or the plain error text for anything else.
func validationDetails(err error) interface{} {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		return vErr.Fields
	}
	return err.Error()
}
