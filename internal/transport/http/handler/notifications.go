package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/careerlift/careerlift-api/internal/application/notify"
	"github.com/go-chi/chi/v5"
)

// NotificationHandler exposes the toast queue: list active, dismiss early,
// and an SSE stream for the toast surface.
type NotificationHandler struct {
	svc notify.Service
}

func NewNotificationHandler(svc notify.Service) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) ListActive(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Active())
}

func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	h.svc.Dismiss(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "dismissed"})
}

// Stream pushes toasts to the client as server-sent events until the client
// disconnects.
func (h *NotificationHandler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ch, cancel := h.svc.Subscribe()
	defer cancel()

	for {
		select {
		case <-r.Context().Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(n)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
