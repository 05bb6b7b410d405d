package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/controllers"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/storage"
	"github.com/pujaananta1/AI-Powered-Chatbot-Customer-Support-Assistant/server/utils/logging"
)

// handleJSON wraps a handler returning (payload, success status, error)
// and maps errors onto the response via statusFor.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeError(w, statusFor(err), err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// statusFor maps the error taxonomy to HTTP: validation 400, missing id
// 404, bad credentials 401, everything else 500.
func statusFor(err error) int {
	var ve *storage.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, controllers.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"message": clientMessage(err)})
}

// clientMessage is the error text shown to the caller. Internal
// failures are logged and replaced with a generic message; validation
// and not-found errors carry their detail through.
func clientMessage(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		logging.ErrorLogger.Error("request failed", zap.Error(err))
		return "internal server error"
	}
	return err.Error()
}

func badRequest(field, reason string) error {
	return &storage.ValidationError{Field: field, Reason: reason}
}
