package fixture

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// RespondJSON writes data as a JSON body with the given status.
func RespondJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			return
		}
	}
}

// HttpError logs the failure and writes a plain text error response.
func HttpError(w http.ResponseWriter, logger *slog.Logger, message string, status int, err error) {
	attrs := []any{slog.Int("status", status), slog.String("message", message)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.Warn("http error", attrs...)
	http.Error(w, message, status)
}
