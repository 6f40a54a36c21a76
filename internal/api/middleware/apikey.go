package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/response"
)

// TimeTokenTTL is how long a generated X-Time-Token stays valid.
const TimeTokenTTL = 5 * time.Minute

// timeTokenPayload is the fixed plaintext sealed into every time token.
const timeTokenPayload = "brokerage-backoffice"

// fernetKey derives a fernet key from the API key.
func fernetKey(apiKey string) *fernet.Key {
	sum := sha256.Sum256([]byte(apiKey))
	var key fernet.Key
	copy(key[:], sum[:])
	return &key
}

// GenerateTimeToken creates a fernet token for the X-Time-Token header.
// It returns an empty string if the token cannot be sealed.
func GenerateTimeToken(apiKey string) string {
	tok, err := fernet.EncryptAndSign([]byte(timeTokenPayload), fernetKey(apiKey))
	if err != nil {
		return ""
	}
	return string(tok)
}

func verifyTimeToken(token, apiKey string) bool {
	msg := fernet.VerifyAndDecrypt([]byte(token), TimeTokenTTL, []*fernet.Key{fernetKey(apiKey)})
	return string(msg) == timeTokenPayload
}

// APIKeyMiddleware protects mutating routes.
// Requests must carry X-API-Key equal to INTERNAL_API_KEY and an X-Time-Token
// produced by GenerateTimeToken within the last TimeTokenTTL.
// INTERNAL_API_KEY is read on every request.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := os.Getenv("INTERNAL_API_KEY")
		if apiKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "authentication failed", "Authentication not loaded")
			return
		}

		provided := r.Header.Get("X-API-Key")
		if provided == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Missing API key")
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Missing Time token")
			return
		}
		if !verifyTimeToken(timeToken, apiKey) {
			response.RespondError(w, http.StatusUnauthorized, "authentication failed", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
