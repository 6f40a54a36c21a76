package middleware

import (
	"log"
	"net/http"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

var sanitizeLogValue = strings.NewReplacer("\n", "", "\r", "").Replace

// Logger logs one line per request with the chi request ID, status and duration.
// It must run after chi's RequestID middleware for the ID to be present.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		//nolint:gosec // G706: method and path have CR/LF stripped before logging.
		log.Printf(
			"[%s] %s %s %d %s",
			chimw.GetReqID(r.Context()),
			sanitizeLogValue(r.Method),
			sanitizeLogValue(r.URL.Path),
			wrapped.statusCode,
			time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
