package handler

import (
	"net/http"

	"github.com/careerlift/careerlift-api/internal/application/notify"
	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/transport/http/middleware"
)

// SessionEnvelope is the current-session payload derived from JWT claims.
// The token is the whole session; there is nothing server-side to look up.
type SessionEnvelope struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// SessionHandler handles session endpoints.
type SessionHandler struct {
	notify notify.Service
}

func NewSessionHandler(notify notify.Service) *SessionHandler {
	return &SessionHandler{notify: notify}
}

func (h *SessionHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, SessionEnvelope{
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	})
}

// Logout acknowledges a client-side token discard and queues the goodbye
// toast. No server state is invalidated because none exists.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.ClaimsFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	h.notify.Publish("Signed out", "You have been signed out", domain.VariantDefault)
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "logged out"})
}
