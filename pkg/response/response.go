package response

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	apperrors "github.com/maxikash/condonaciones-api/pkg/errors"
)

// Base carries the envelope fields every operation returns.
type Base struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
	Mensaje       string `json:"mensaje,omitempty"`
}

// OK builds the success envelope with the given count summary.
func OK(mensaje string) Base {
	return Base{
		StatusCode:    http.StatusOK,
		StatusMessage: "OK",
		Success:       true,
		Mensaje:       mensaje,
	}
}

// ErrorBody is the envelope returned on any failure.
type ErrorBody struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
	Success       bool   `json:"success"`
	Mensaje       string `json:"mensaje"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("error encoding JSON response")
	}
}

// Fail sends an error envelope with the given status code and message
func Fail(w http.ResponseWriter, statusCode int, mensaje string) {
	JSON(w, statusCode, ErrorBody{
		StatusCode:    statusCode,
		StatusMessage: http.StatusText(statusCode),
		Success:       false,
		Mensaje:       mensaje,
	})
}

// FromError translates a service error into its envelope through the
// business-error taxonomy.
func FromError(w http.ResponseWriter, err error) {
	Fail(w, apperrors.HTTPStatus(err), apperrors.Message(err))
}

// Unauthorized sends a 401 envelope
func Unauthorized(w http.ResponseWriter, mensaje string) {
	Fail(w, http.StatusUnauthorized, mensaje)
}

// JSONMiddleware sets JSON content type for all responses
func JSONMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs HTTP requests with a per-request id, echoed back
// in the X-Request-ID header for correlation.
func LoggingMiddleware(log *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := uuid.NewString()
			w.Header().Set("X-Request-ID", requestID)

			recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(recorder, r)

			log.WithFields(logrus.Fields{
				"request_id": requestID,
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     recorder.statusCode,
				"duration":   time.Since(start).String(),
			}).Info("request completed")
		})
	}
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(statusCode int) {
	rec.statusCode = statusCode
	rec.ResponseWriter.WriteHeader(statusCode)
}
