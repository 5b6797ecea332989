package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/careerlift/careerlift-api/internal/application/content"
	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// PageHandler serves the read-only public pages.
type PageHandler struct {
	svc content.Service
}

func NewPageHandler(svc content.Service) *PageHandler {
	return &PageHandler{svc: svc}
}

func (h *PageHandler) Home(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Home())
}

func (h *PageHandler) About(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.About())
}

func (h *PageHandler) Team(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Team())
}

func (h *PageHandler) Programs(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Programs())
}

func (h *PageHandler) DonationTiers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.DonationTiers())
}

func (h *PageHandler) Resources(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Resources())
}

func (h *PageHandler) Events(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Events())
}

func (h *PageHandler) Event(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Event(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// ResourceLink hands out a time-limited direct link to the resource object.
func (h *PageHandler) ResourceLink(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.ResourceLink(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "resource not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "unexpected error occurred")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// DownloadResource streams the resource file from object storage.
func (h *PageHandler) DownloadResource(w http.ResponseWriter, r *http.Request) {
	rc, contentType, err := h.svc.DownloadResource(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "resource not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "unexpected error occurred")
		return
	}
	defer rc.Close()
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, rc)
}
