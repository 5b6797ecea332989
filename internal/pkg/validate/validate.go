package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

// Struct validates the given struct using its validate tags.
// Returns a human-readable error string or nil.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return nil
}

// MaxEmailLength is the clamp applied to every email field.
const MaxEmailLength = 254

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field-level validation errors. Messages are user-facing; handlers surface
// them verbatim.
var (
	ErrEmailRequired = errors.New("Email is required")
	ErrEmailTooLong  = errors.New("Email is too long")
	ErrEmailFormat   = errors.New("Please enter a valid email address")

	ErrPasswordLength  = errors.New("Password must be 10-24 characters long")
	ErrPasswordCharset = errors.New("Password must contain at least one letter and one digit")

	ErrUsernameLength  = errors.New("Username must be 3-20 characters long")
	ErrUsernameCharset = errors.New("Username may only contain letters and digits")

	ErrIncompleteOTP = errors.New("Please enter a complete 6-digit OTP code")

	ErrDateFormat = errors.New("Date must be in YYYY-MM-DD format")
)

// Email checks shape and length of an email address.
// Distinguishes "required" vs "too long" vs "invalid format".
func Email(email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailRequired
	}
	if len(email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	if !emailRe.MatchString(email) {
		return ErrEmailFormat
	}
	return nil
}

// IsEmail reports whether s is email-shaped. Used by the sign-in flow to
// decide whether a username lookup is needed before the credential check.
func IsEmail(s string) bool {
	return len(s) <= MaxEmailLength && emailRe.MatchString(s)
}

// Password enforces the registration password policy: 10-24 characters with
// at least one letter and one digit.
func Password(password string) error {
	if len(password) < 10 || len(password) > 24 {
		return ErrPasswordLength
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return ErrPasswordCharset
	}
	return nil
}

// Username enforces the registration username policy: 3-20 alphanumeric.
func Username(username string) error {
	if len(username) < 3 || len(username) > 20 {
		return ErrUsernameLength
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return ErrUsernameCharset
		}
	}
	return nil
}

// Required checks a free-text field is non-empty after trimming.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", field)
	}
	return nil
}

// OTPCode checks a one-time passcode is exactly 6 digits. Callers must not
// contact the identity service when this fails.
func OTPCode(code string) error {
	if len(code) != 6 {
		return ErrIncompleteOTP
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrIncompleteOTP
		}
	}
	return nil
}
