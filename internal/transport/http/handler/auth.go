package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/careerlift/careerlift-api/internal/application/authflow"
	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
)

// AuthHandler exposes the authentication flow: sign-up, sign-in, the two
// verification steps, resend and the page-mount guard.
type AuthHandler struct {
	svc authflow.Service
}

func NewAuthHandler(svc authflow.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// writeFlowError maps the flow's error taxonomy onto HTTP. A navigation
// guard failure is a 200 with a redirect, never an error.
func writeFlowError(w http.ResponseWriter, err error) {
	var fe authflow.FieldErrors
	if errors.As(err, &fe) {
		writeJSON(w, http.StatusUnprocessableEntity, FieldErrorEnvelope{Error: fe.Error(), Fields: fe})
		return
	}
	var re *authflow.RedirectError
	if errors.As(err, &re) {
		writeJSON(w, http.StatusOK, RedirectEnvelope{Redirect: re.To})
		return
	}
	var ce *authflow.CooldownError
	if errors.As(err, &ce) {
		writeJSON(w, http.StatusTooManyRequests, CooldownEnvelope{Error: ce.Error(), ResendSeconds: ce.Seconds})
		return
	}
	switch {
	case errors.Is(err, validate.ErrIncompleteOTP):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "unexpected error occurred")
	}
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var draft domain.RegistrationDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.StartSignUp(r.Context(), draft)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req domain.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.StartSignIn(r.Context(), req)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// VerifyOTP serves both verification pages: the signin OTP form and the
// signup confirmation code form.
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FlowID string `json:"flow_id"`
		Code   string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	result, err := h.svc.VerifyOTP(r.Context(), req.FlowID, req.Code)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Callback lands the email-confirmation link. flow_id may be absent when the
// link is opened in a fresh browser.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	flowID := r.URL.Query().Get("flow_id")
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, http.StatusBadRequest, "token required")
		return
	}
	result, err := h.svc.ConfirmCallback(r.Context(), flowID, token)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Resend(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FlowID string `json:"flow_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FlowID == "" {
		writeError(w, http.StatusBadRequest, "flow_id required")
		return
	}
	status, err := h.svc.Resend(r.Context(), req.FlowID)
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// Guard is the verification-page mount check.
func (h *AuthHandler) Guard(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Guard(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeFlowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
