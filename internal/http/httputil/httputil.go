// Package httputil holds small helpers shared by the HTTP handlers.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

// Detail writes a JSON error body of the form {"detail": "..."} with the
// given status code.
func Detail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(detailResponse{Detail: msg}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
