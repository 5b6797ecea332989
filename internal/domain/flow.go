package domain

import "time"

// FlowState tracks where a user is in the credential lifecycle.
type FlowState string

const (
	StateAnonymous                   FlowState = "anonymous"
	StateAwaitingEmailVerification   FlowState = "awaiting_email_verification"
	StateAwaitingOTP                 FlowState = "awaiting_otp"
	StateAwaitingSessionConfirmation FlowState = "awaiting_session_confirmation"
	StateAuthenticated               FlowState = "authenticated"
)

// VerificationMode distinguishes the two verification flavours a flow can carry.
type VerificationMode string

const (
	ModeSignUpConfirmation VerificationMode = "signup_confirmation"
	ModeSignInOTP          VerificationMode = "signin_otp"
)

// UserType is the audience a registrant signs up as.
const (
	UserTypeVolunteer = "volunteer"
	UserTypeStudent   = "student"
	UserTypeAdmin     = "admin"
)

// Flow is a short-lived pending-verification record carried between auth
// steps. It replaces navigation-state payloads: the client holds only the
// flow id, the server holds the email and mode. A flow must always carry a
// non-empty email; guards redirect to the entry route otherwise.
type Flow struct {
	FlowID    string           `json:"flow_id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name,omitempty"`
	UserType  string           `json:"user_type,omitempty"`
	Mode      VerificationMode `json:"mode"`
	State     FlowState        `json:"state"`
	CreatedAt time.Time        `json:"created"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// EntryRoute is where a guard failure sends the user: the page that starts
// the flow the record belonged to.
func (f *Flow) EntryRoute() string {
	if f.Mode == ModeSignUpConfirmation {
		return "/auth/sign-up"
	}
	return "/auth/sign-in"
}

// VerifyRoute is the verification page for the flow's mode.
func (f *Flow) VerifyRoute() string {
	if f.Mode == ModeSignUpConfirmation {
		return "/auth/verify-email"
	}
	return "/auth/verify-otp"
}

// RegistrationDraft is the sign-up form payload. It is validated, submitted
// to the identity service once and discarded; the password is never retained
// after submit.
type RegistrationDraft struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	Username        string `json:"username" validate:"required"`
	PhoneNumber     string `json:"phone_number" validate:"required"`
	CountryOfBirth  string `json:"country_of_birth" validate:"required"`
	CityOfResidence string `json:"city_of_residence" validate:"required"`
	UserType        string `json:"user_type" validate:"required,oneof=volunteer student"`
}

// CredentialRequest is the sign-in form payload. Identifier may be an email
// or a username; non-email identifiers are resolved via the identity
// service before any credential check.
type CredentialRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}
