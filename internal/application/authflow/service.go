// Package authflow drives a user from anonymous to authenticated through the
// fixed step sequence: registration or password check, email/OTP
// verification, session confirmation, dashboard redirect. All credential
// verification is delegated to the external identity service.
package authflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/infrastructure/identity"
	"github.com/careerlift/careerlift-api/internal/pkg/validate"
)

// Routes the controller redirects to. These are the client-side pages; the
// API only names them.
const (
	RouteSignIn      = "/auth/sign-in"
	RouteSignUp      = "/auth/sign-up"
	RouteVerifyEmail = "/auth/verify-email"
	RouteVerifyOTP   = "/auth/verify-otp"
	RouteDashboard   = "/dashboard"
)

// FieldErrors maps form fields to inline validation messages. Surfaced next
// to the field; the identity service is never contacted when present.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k + ": " + fe[k])
	}
	return b.String()
}

// RedirectError is a navigation-guard failure: required flow state is
// missing, so the client should silently navigate to the entry page. Not
// user-visible by design.
type RedirectError struct {
	To string
}

func (e *RedirectError) Error() string { return "redirect to " + e.To }

// CooldownError is returned when resend is invoked while the countdown is
// still running.
type CooldownError struct {
	Seconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("resend available in %d seconds", e.Seconds)
}

// StartResult is where the client goes after a successful sign-up or
// sign-in submit.
type StartResult struct {
	FlowID string `json:"flow_id"`
	Next   string `json:"next"`
}

// SessionResult is a completed verification: a signed application token plus
// the dashboard redirect.
type SessionResult struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}

// FlowStatus is the guard-check payload for a verification page mount.
type FlowStatus struct {
	Email         string                  `json:"email"`
	Mode          domain.VerificationMode `json:"mode"`
	State         domain.FlowState        `json:"state"`
	ResendSeconds int                     `json:"resend_seconds"`
}

type identityClient interface {
	Register(ctx context.Context, email, password string, profile identity.Profile) error
	SignInWithPassword(ctx context.Context, email, password string) error
	VerifyOTP(ctx context.Context, email, code string, mode domain.VerificationMode) (*identity.Session, error)
	Resend(ctx context.Context, mode domain.VerificationMode, email string) error
	GetSession(ctx context.Context, token string) (*identity.Session, error)
	LookupEmailByUsername(ctx context.Context, username string) (string, error)
}

type tokenSigner interface {
	Sign(email, name, role string) (string, error)
}

type notifier interface {
	Publish(title, message, variant string) *domain.Notification
}

type Service interface {
	StartSignUp(ctx context.Context, draft domain.RegistrationDraft) (*StartResult, error)
	StartSignIn(ctx context.Context, req domain.CredentialRequest) (*StartResult, error)
	VerifyOTP(ctx context.Context, flowID, code string) (*SessionResult, error)
	ConfirmCallback(ctx context.Context, flowID, token string) (*SessionResult, error)
	Resend(ctx context.Context, flowID string) (*FlowStatus, error)
	Guard(ctx context.Context, flowID string) (*FlowStatus, error)
}

type service struct {
	flows    *Store
	identity identityClient
	signer   tokenSigner
	notify   notifier
}

type ServiceDeps struct {
	Flows    *Store
	Identity identityClient
	Signer   tokenSigner
	Notifier notifier
}

func NewService(deps ServiceDeps) Service {
	return &service{
		flows:    deps.Flows,
		identity: deps.Identity,
		signer:   deps.Signer,
		notify:   deps.Notifier,
	}
}

// StartSignUp validates the registration draft, registers the account with
// the identity service and opens a signup-confirmation flow. The draft
// (password included) is discarded either way; only the email travels
// forward.
func (s *service) StartSignUp(ctx context.Context, draft domain.RegistrationDraft) (*StartResult, error) {
	if fe := validateDraft(draft); len(fe) > 0 {
		return nil, fe
	}
	profile := identity.Profile{
		FirstName:       draft.FirstName,
		LastName:        draft.LastName,
		Username:        draft.Username,
		PhoneNumber:     draft.PhoneNumber,
		CountryOfBirth:  draft.CountryOfBirth,
		CityOfResidence: draft.CityOfResidence,
		UserType:        draft.UserType,
	}
	if err := s.identity.Register(ctx, draft.Email, draft.Password, profile); err != nil {
		// Collaborator message is surfaced verbatim; the form stays filled
		// client-side so the user can retry.
		s.notify.Publish("Sign up failed", err.Error(), domain.VariantDestructive)
		return nil, err
	}
	f := s.flows.Create(draft.Email, draft.FirstName, draft.UserType,
		domain.ModeSignUpConfirmation, domain.StateAwaitingEmailVerification)
	slog.Info("registration accepted", "flow_id", f.FlowID)
	return &StartResult{FlowID: f.FlowID, Next: f.VerifyRoute()}, nil
}

// StartSignIn resolves non-email identifiers to an account email first, then
// delegates the password check. A successful check always routes through
// OTP; sign-in is never a single step.
func (s *service) StartSignIn(ctx context.Context, req domain.CredentialRequest) (*StartResult, error) {
	fe := FieldErrors{}
	if err := validate.Required("identifier", req.Identifier); err != nil {
		fe["identifier"] = "Email or username is required"
	}
	if err := validate.Required("password", req.Password); err != nil {
		fe["password"] = "Password is required"
	}
	if len(fe) > 0 {
		return nil, fe
	}

	email := req.Identifier
	if !validate.IsEmail(req.Identifier) {
		resolved, err := s.identity.LookupEmailByUsername(ctx, req.Identifier)
		if err != nil {
			msg := "Unable to find user email"
			if errors.Is(err, domain.ErrNotFound) {
				msg = "Username not found"
			}
			s.notify.Publish("Sign in failed", msg, domain.VariantDestructive)
			return nil, fmt.Errorf("%s: %w", msg, domain.ErrNotFound)
		}
		email = resolved
	}

	if err := s.identity.SignInWithPassword(ctx, email, req.Password); err != nil {
		s.notify.Publish("Sign in failed", err.Error(), domain.VariantDestructive)
		return nil, err
	}
	f := s.flows.Create(email, "", "", domain.ModeSignInOTP, domain.StateAwaitingOTP)
	slog.Info("password accepted, awaiting OTP", "flow_id", f.FlowID)
	return &StartResult{FlowID: f.FlowID, Next: f.VerifyRoute()}, nil
}

// VerifyOTP checks a 6-digit code with the identity service. Short codes are
// rejected locally without a network call; a collaborator rejection leaves
// the flow and its cooldown untouched.
func (s *service) VerifyOTP(ctx context.Context, flowID, code string) (*SessionResult, error) {
	f, _, ok := s.flows.Get(flowID)
	if !ok || f.Email == "" {
		return nil, &RedirectError{To: RouteSignIn}
	}
	if err := validate.OTPCode(code); err != nil {
		return nil, err
	}
	sess, err := s.identity.VerifyOTP(ctx, f.Email, code, f.Mode)
	if err != nil {
		s.notify.Publish("Verification failed", err.Error(), domain.VariantDestructive)
		return nil, err
	}
	return s.establishSession(f, sess)
}

// ConfirmCallback lands the out-of-band email-confirmation link: the token
// it carries is exchanged for a session. On failure the user is sent back to
// sign-in.
func (s *service) ConfirmCallback(ctx context.Context, flowID, token string) (*SessionResult, error) {
	f, _, hasFlow := s.flows.Get(flowID)
	if hasFlow {
		s.flows.SetState(flowID, domain.StateAwaitingSessionConfirmation)
	}
	sess, err := s.identity.GetSession(ctx, token)
	if err != nil {
		s.notify.Publish("Verification failed", err.Error(), domain.VariantDestructive)
		return nil, &RedirectError{To: RouteSignIn}
	}
	if hasFlow {
		return s.establishSession(f, sess)
	}
	// Link opened outside the originating flow (fresh browser): the session
	// from the identity service is still good.
	tok, err := s.signer.Sign(sess.Email, sess.Name, sess.Role)
	if err != nil {
		return nil, err
	}
	s.notify.Publish("Welcome", "Your email has been verified", domain.VariantSuccess)
	return &SessionResult{Token: tok, Redirect: RouteDashboard}, nil
}

// Resend reissues the verification email or OTP, guarded by the flow's
// cooldown. One shot per send: invoking it resets the countdown to its full
// duration.
func (s *service) Resend(ctx context.Context, flowID string) (*FlowStatus, error) {
	f, cd, ok := s.flows.Get(flowID)
	if !ok || f.Email == "" {
		return nil, &RedirectError{To: RouteSignIn}
	}
	if !cd.Ready() {
		return nil, &CooldownError{Seconds: cd.Seconds()}
	}
	if err := s.identity.Resend(ctx, f.Mode, f.Email); err != nil {
		s.notify.Publish("Resend failed", err.Error(), domain.VariantDestructive)
		return nil, err
	}
	cd.Start()
	if f.Mode == domain.ModeSignUpConfirmation {
		s.notify.Publish("Email sent", "Confirmation email resent to "+f.Email, domain.VariantSuccess)
	} else {
		s.notify.Publish("Code sent", "A new OTP code was sent to "+f.Email, domain.VariantSuccess)
	}
	return s.status(flowID)
}

// Guard is the verification-page mount check: a missing flow or empty email
// silently redirects to the flow's entry page.
func (s *service) Guard(_ context.Context, flowID string) (*FlowStatus, error) {
	f, _, ok := s.flows.Get(flowID)
	if !ok {
		return nil, &RedirectError{To: RouteSignIn}
	}
	if f.Email == "" {
		return nil, &RedirectError{To: f.EntryRoute()}
	}
	return s.status(flowID)
}

func (s *service) status(flowID string) (*FlowStatus, error) {
	f, cd, ok := s.flows.Get(flowID)
	if !ok {
		return nil, &RedirectError{To: RouteSignIn}
	}
	return &FlowStatus{
		Email:         f.Email,
		Mode:          f.Mode,
		State:         f.State,
		ResendSeconds: cd.Seconds(),
	}, nil
}

// establishSession is the terminal transition: mint the application token,
// destroy the flow, announce success.
func (s *service) establishSession(f *domain.Flow, sess *identity.Session) (*SessionResult, error) {
	name := sess.Name
	if name == "" {
		name = f.FirstName
	}
	role := sess.Role
	if role == "" {
		role = f.UserType
	}
	tok, err := s.signer.Sign(f.Email, name, role)
	if err != nil {
		return nil, err
	}
	s.flows.Delete(f.FlowID)
	s.notify.Publish("Welcome", "You are now signed in", domain.VariantSuccess)
	return &SessionResult{Token: tok, Redirect: RouteDashboard}, nil
}

func validateDraft(d domain.RegistrationDraft) FieldErrors {
	fe := FieldErrors{}
	if err := validate.Email(d.Email); err != nil {
		fe["email"] = err.Error()
	}
	if err := validate.Password(d.Password); err != nil {
		fe["password"] = err.Error()
	}
	if err := validate.Username(d.Username); err != nil {
		fe["username"] = err.Error()
	}
	required := map[string]string{
		"first_name":        d.FirstName,
		"last_name":         d.LastName,
		"phone_number":      d.PhoneNumber,
		"country_of_birth":  d.CountryOfBirth,
		"city_of_residence": d.CityOfResidence,
	}
	for field, value := range required {
		if err := validate.Required(field, value); err != nil {
			fe[field] = "This field is required"
		}
	}
	if d.UserType != domain.UserTypeVolunteer && d.UserType != domain.UserTypeStudent {
		fe["user_type"] = "Select volunteer or student"
	}
	return fe
}
