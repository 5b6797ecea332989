package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerlift/careerlift-api/internal/application/forms"
	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// FormHandler handles the public intake forms.
type FormHandler struct {
	svc forms.Service
}

func NewFormHandler(svc forms.Service) *FormHandler {
	return &FormHandler{svc: svc}
}

func (h *FormHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req domain.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Subscribe(r.Context(), req); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			writeError(w, http.StatusConflict, "This email is already subscribed")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, MessageEnvelope{Message: "subscribed"})
}

func (h *FormHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req domain.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Unsubscribe(r.Context(), req); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "This email is not subscribed")
			return
		}
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "unsubscribed"})
}

func (h *FormHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req domain.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	m, err := h.svc.SubmitContact(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *FormHandler) RegisterForEvent(w http.ResponseWriter, r *http.Request) {
	var req domain.EventRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reg, err := h.svc.RegisterForEvent(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "event not found")
		case errors.Is(err, forms.ErrEventFull):
			writeError(w, http.StatusConflict, err.Error())
		case errors.Is(err, domain.ErrForbidden):
			writeError(w, http.StatusForbidden, "This event is not open for registration")
		default:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

// Registrations lists an event's recorded signups for staff.
func (h *FormHandler) Registrations(w http.ResponseWriter, r *http.Request) {
	regs, err := h.svc.Registrations(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, regs)
}
