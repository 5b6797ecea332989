package handler

import (
	"encoding/json"
	"net/http"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"error_code,omitempty"`
}

// FieldErrorEnvelope carries per-field validation messages for inline
// display next to the offending inputs.
type FieldErrorEnvelope struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// RedirectEnvelope is a navigation-guard outcome: not an error, just where
// the client should go instead.
type RedirectEnvelope struct {
	Redirect string `json:"redirect"`
}

// CooldownEnvelope is returned when resend is refused while the countdown
// is still running.
type CooldownEnvelope struct {
	Error         string `json:"error"`
	ResendSeconds int    `json:"resend_seconds"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}
