package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/careerlift/careerlift-api/internal/application/authflow"
	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/pkg/validate"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFlowSvc struct{ mock.Mock }

func (m *mockFlowSvc) StartSignUp(ctx context.Context, draft domain.RegistrationDraft) (*authflow.StartResult, error) {
	args := m.Called(ctx, draft)
	if r, _ := args.Get(0).(*authflow.StartResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlowSvc) StartSignIn(ctx context.Context, req domain.CredentialRequest) (*authflow.StartResult, error) {
	args := m.Called(ctx, req)
	if r, _ := args.Get(0).(*authflow.StartResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlowSvc) VerifyOTP(ctx context.Context, flowID, code string) (*authflow.SessionResult, error) {
	args := m.Called(ctx, flowID, code)
	if r, _ := args.Get(0).(*authflow.SessionResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlowSvc) ConfirmCallback(ctx context.Context, flowID, token string) (*authflow.SessionResult, error) {
	args := m.Called(ctx, flowID, token)
	if r, _ := args.Get(0).(*authflow.SessionResult); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlowSvc) Resend(ctx context.Context, flowID string) (*authflow.FlowStatus, error) {
	args := m.Called(ctx, flowID)
	if r, _ := args.Get(0).(*authflow.FlowStatus); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFlowSvc) Guard(ctx context.Context, flowID string) (*authflow.FlowStatus, error) {
	args := m.Called(ctx, flowID)
	if r, _ := args.Get(0).(*authflow.FlowStatus); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func withChiID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// --- Sign-up ---

func TestSignUp_HappyPath(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("StartSignUp", mock.Anything, mock.Anything).
		Return(&authflow.StartResult{FlowID: "f1", Next: authflow.RouteVerifyEmail}, nil)
	h := NewAuthHandler(svc)

	body, _ := json.Marshal(domain.RegistrationDraft{Email: "jane@example.com"})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-up", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.SignUp(rr, r)

	assert.Equal(t, http.StatusCreated, rr.Code)
	var resp authflow.StartResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "f1", resp.FlowID)
	assert.Equal(t, authflow.RouteVerifyEmail, resp.Next)
}

func TestSignUp_FieldErrorsAreInline(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("StartSignUp", mock.Anything, mock.Anything).
		Return(nil, authflow.FieldErrors{"email": "Please enter a valid email address"})
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-up", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	h.SignUp(rr, r)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp FieldErrorEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Please enter a valid email address", resp.Fields["email"])
}

func TestSignUp_CollaboratorMessageVerbatim(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("StartSignUp", mock.Anything, mock.Anything).
		Return(nil, &domainErr{msg: "Email address already in use", wrapped: domain.ErrConflict})
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-up", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	h.SignUp(rr, r)

	assert.Equal(t, http.StatusConflict, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Email address already in use", resp.Error)
}

func TestSignUp_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockFlowSvc{})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-up", bytes.NewBufferString("not-json"))
	rr := httptest.NewRecorder()
	h.SignUp(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// --- Sign-in ---

func TestSignIn_HappyPath_RoutesToOTP(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("StartSignIn", mock.Anything, domain.CredentialRequest{Identifier: "janedoe", Password: "secret12345"}).
		Return(&authflow.StartResult{FlowID: "f2", Next: authflow.RouteVerifyOTP}, nil)
	h := NewAuthHandler(svc)

	body, _ := json.Marshal(domain.CredentialRequest{Identifier: "janedoe", Password: "secret12345"})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.SignIn(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp authflow.StartResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, authflow.RouteVerifyOTP, resp.Next)
}

func TestSignIn_UnknownUsername(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("StartSignIn", mock.Anything, mock.Anything).
		Return(nil, &domainErr{msg: "Username not found", wrapped: domain.ErrNotFound})
	h := NewAuthHandler(svc)

	body, _ := json.Marshal(domain.CredentialRequest{Identifier: "ghost", Password: "secret12345"})
	r := httptest.NewRequest(http.MethodPost, "/v1/auth/sign-in", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.SignIn(rr, r)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Username not found", resp.Error)
}

// --- OTP verification ---

func TestVerifyOTP_ShortCode(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("VerifyOTP", mock.Anything, "f1", "123").Return(nil, validate.ErrIncompleteOTP)
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/verify-otp", bytes.NewBufferString(`{"flow_id":"f1","code":"123"}`))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, r)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Please enter a complete 6-digit OTP code", resp.Error)
}

func TestVerifyOTP_MissingFlowRedirects(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("VerifyOTP", mock.Anything, "gone", "123456").
		Return(nil, &authflow.RedirectError{To: authflow.RouteSignIn})
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/verify-otp", bytes.NewBufferString(`{"flow_id":"gone","code":"123456"}`))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, r)

	// A guard failure is not an error: 200 plus the redirect target.
	assert.Equal(t, http.StatusOK, rr.Code)
	var resp RedirectEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, authflow.RouteSignIn, resp.Redirect)
}

func TestVerifyOTP_Success(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("VerifyOTP", mock.Anything, "f1", "123456").
		Return(&authflow.SessionResult{Token: "jwt-token", Redirect: authflow.RouteDashboard}, nil)
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/verify-otp", bytes.NewBufferString(`{"flow_id":"f1","code":"123456"}`))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp authflow.SessionResult
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "jwt-token", resp.Token)
	assert.Equal(t, authflow.RouteDashboard, resp.Redirect)
}

func TestVerifyOTP_RejectedCodeVerbatim(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("VerifyOTP", mock.Anything, "f1", "999999").
		Return(nil, &domainErr{msg: "Invalid or expired code", wrapped: domain.ErrUnauthorized})
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/verify-otp", bytes.NewBufferString(`{"flow_id":"f1","code":"999999"}`))
	rr := httptest.NewRecorder()
	h.VerifyOTP(rr, r)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	var resp MessageEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Invalid or expired code", resp.Error)
}

// --- Callback ---

func TestCallback_MissingToken(t *testing.T) {
	h := NewAuthHandler(&mockFlowSvc{})
	r := httptest.NewRequest(http.MethodGet, "/v1/auth/callback", nil)
	rr := httptest.NewRecorder()
	h.Callback(rr, r)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCallback_FailureRedirectsToSignIn(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("ConfirmCallback", mock.Anything, "f1", "bad-token").
		Return(nil, &authflow.RedirectError{To: authflow.RouteSignIn})
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodGet, "/v1/auth/callback?flow_id=f1&token=bad-token", nil)
	rr := httptest.NewRecorder()
	h.Callback(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp RedirectEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, authflow.RouteSignIn, resp.Redirect)
}

// --- Resend ---

func TestResend_CooldownRefusal(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("Resend", mock.Anything, "f1").Return(nil, &authflow.CooldownError{Seconds: 42})
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/resend", bytes.NewBufferString(`{"flow_id":"f1"}`))
	rr := httptest.NewRecorder()
	h.Resend(rr, r)

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	var resp CooldownEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 42, resp.ResendSeconds)
}

func TestResend_Reissued(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("Resend", mock.Anything, "f1").
		Return(&authflow.FlowStatus{Email: "jane@example.com", ResendSeconds: 60}, nil)
	h := NewAuthHandler(svc)

	r := httptest.NewRequest(http.MethodPost, "/v1/auth/resend", bytes.NewBufferString(`{"flow_id":"f1"}`))
	rr := httptest.NewRecorder()
	h.Resend(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp authflow.FlowStatus
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 60, resp.ResendSeconds)
}

// --- Guard ---

func TestGuard_ActiveFlow(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("Guard", mock.Anything, "f1").
		Return(&authflow.FlowStatus{Email: "jane@example.com", Mode: domain.ModeSignInOTP, ResendSeconds: 45}, nil)
	h := NewAuthHandler(svc)

	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/auth/flows/f1", nil), "f1")
	rr := httptest.NewRecorder()
	h.Guard(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp authflow.FlowStatus
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "jane@example.com", resp.Email)
	assert.Equal(t, 45, resp.ResendSeconds)
}

func TestGuard_ExpiredFlowRedirects(t *testing.T) {
	svc := &mockFlowSvc{}
	svc.On("Guard", mock.Anything, "gone").
		Return(nil, &authflow.RedirectError{To: authflow.RouteSignIn})
	h := NewAuthHandler(svc)

	r := withChiID(httptest.NewRequest(http.MethodGet, "/v1/auth/flows/gone", nil), "gone")
	rr := httptest.NewRecorder()
	h.Guard(rr, r)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp RedirectEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, authflow.RouteSignIn, resp.Redirect)
}

// domainErr simulates a collaborator rejection: a verbatim user-facing
// message wrapping a domain sentinel.
type domainErr struct {
	msg     string
	wrapped error
}

func (e *domainErr) Error() string { return e.msg }
func (e *domainErr) Unwrap() error { return e.wrapped }
