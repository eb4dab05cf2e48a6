package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"os"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/response"
)

// timeTokenTTL is how long a time token stays valid after generation.
const timeTokenTTL = 5 * time.Minute

// deriveKey turns the shared API key into a fernet key. Both sides derive
// the same key from the same secret, so no key exchange is needed.
func deriveKey(apiKey string) *fernet.Key {
	sum := sha256.Sum256([]byte(apiKey))
	key := fernet.Key(sum)
	return &key
}

// GenerateTimeToken creates a fernet token encrypting the current timestamp,
// keyed off the shared API key. Clients send it as X-Time-Token so replayed
// requests expire after timeTokenTTL.
func GenerateTimeToken(apiKey string) string {
	token, err := fernet.EncryptAndSign(
		[]byte(time.Now().UTC().Format(time.RFC3339)),
		deriveKey(apiKey),
	)
	if err != nil {
		return ""
	}
	return string(token)
}

// APIKeyMiddleware protects mutating routes with a shared secret.
// Requests must carry the key in X-API-Key and a fresh time token in
// X-Time-Token. Returns 401 on any mismatch and 500 when the server
// itself has no INTERNAL_API_KEY configured.
func APIKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		internalKey := os.Getenv("INTERNAL_API_KEY")
		if internalKey == "" {
			response.RespondError(w, http.StatusInternalServerError, "internal server error", "Authentication not loaded")
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
			return
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(internalKey)) != 1 {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
			return
		}

		timeToken := r.Header.Get("X-Time-Token")
		if timeToken == "" {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing Time token")
			return
		}

		payload := fernet.VerifyAndDecrypt([]byte(timeToken), timeTokenTTL, []*fernet.Key{deriveKey(internalKey)})
		if payload == nil {
			response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Time token is invalid or expired")
			return
		}

		next.ServeHTTP(w, r)
	})
}
