package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/maxikash/condonaciones-api/pkg/response"
)

// APIKeyHeader carries the caller credential on every report request
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware rejects requests whose X-API-Key header does not match
// the configured key. Health endpoints are mounted outside this middleware.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)
			if provided == "" {
				response.Unauthorized(w, "API Key faltante")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "API Key inválida")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
