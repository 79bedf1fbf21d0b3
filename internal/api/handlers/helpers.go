package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorEnvelope is the JSON shape of every non-2xx response body.
type errorEnvelope struct {
	Error string `json:"error"`
}

// writeJSON encodes v with the given status. Encoding failures are
// logged rather than surfaced: the status line is already committed.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

// writeError sends the inline error message clients render next to the
// triggering control.
func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorEnvelope{Error: msg})
}
