package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/careerlift/careerlift-api/internal/application/dashboard"
)

// DashboardHandler serves the sample datasets, chart stats and the modal
// submit endpoints.
type DashboardHandler struct {
	svc dashboard.Service
}

func NewDashboardHandler(svc dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// filterFromQuery maps the query string onto the dataset filter. Unset
// params are ignored; set params combine with AND.
func filterFromQuery(r *http.Request) dashboard.Filter {
	q := r.URL.Query()
	f := dashboard.Filter{
		Query:    q.Get("q"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
	}
	if from := q.Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			f.From = t
		}
	}
	if to := q.Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			f.To = t
		}
	}
	return f
}

func (h *DashboardHandler) Users(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Users(filterFromQuery(r)))
}

func (h *DashboardHandler) Events(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Events(filterFromQuery(r)))
}

func (h *DashboardHandler) Messages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Messages(filterFromQuery(r)))
}

func (h *DashboardHandler) Locations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Locations(filterFromQuery(r)))
}

func (h *DashboardHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

func (h *DashboardHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dashboard.UserModalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SubmitUserModal(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "user added"})
}

func (h *DashboardHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dashboard.EventModalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.SubmitEventModal(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{Message: "event created"})
}
