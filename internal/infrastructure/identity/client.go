// Package identity is the HTTP client for the external identity service.
// Every credential operation (registration, password check, OTP issue and
// verify, session retrieval) is delegated there; this app never sees a
// stored credential.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/careerlift/careerlift-api/internal/domain"
)

// RemoteError carries the identity service's message verbatim so the auth
// flow can surface it to the user unchanged.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Unwrap maps remote status codes onto domain sentinels for handler-side
// discrimination.
func (e *RemoteError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusConflict:
		return domain.ErrConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	default:
		return domain.ErrBadRequest
	}
}

// Profile is the attribute set forwarded with a registration.
type Profile struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	PhoneNumber     string `json:"phone_number"`
	CountryOfBirth  string `json:"country_of_birth"`
	CityOfResidence string `json:"city_of_residence"`
	UserType        string `json:"user_type"`
}

// Session is the identity the service reports for a confirmed token.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Client talks JSON over HTTP to the identity service.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: httpClient}
}

func (c *Client) Register(ctx context.Context, email, password string, profile Profile) error {
	body := struct {
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Profile  Profile `json:"profile"`
	}{email, password, profile}
	return c.post(ctx, "/v1/accounts", body, nil)
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) error {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}
	return c.post(ctx, "/v1/credentials/verify", body, nil)
}

// VerifyOTP confirms a one-time passcode. On success the service returns the
// session it established.
func (c *Client) VerifyOTP(ctx context.Context, email, code string, mode domain.VerificationMode) (*Session, error) {
	body := struct {
		Email string `json:"email"`
		Code  string `json:"code"`
		Mode  string `json:"mode"`
	}{email, code, string(mode)}
	var sess Session
	if err := c.post(ctx, "/v1/otp/verify", body, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Resend asks the service to reissue the verification email or OTP.
func (c *Client) Resend(ctx context.Context, mode domain.VerificationMode, email string) error {
	body := struct {
		Email string `json:"email"`
		Mode  string `json:"mode"`
	}{email, string(mode)}
	return c.post(ctx, "/v1/otp/resend", body, nil)
}

// GetSession resolves the token carried by the email-confirmation callback.
func (c *Client) GetSession(ctx context.Context, token string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/sessions/current", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	var sess Session
	if err := c.do(req, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// LookupEmailByUsername resolves a username to its account email via the
// service's scoped lookup endpoint. Not-found comes back as a RemoteError
// wrapping domain.ErrNotFound.
func (c *Client) LookupEmailByUsername(ctx context.Context, username string) (string, error) {
	body := struct {
		Username string `json:"username"`
	}{username}
	var out struct {
		Email string `json:"email"`
	}
	if err := c.post(ctx, "/v1/accounts/lookup", body, &out); err != nil {
		return "", err
	}
	if out.Email == "" {
		return "", &RemoteError{Status: http.StatusNotFound, Message: "Unable to find user email"}
	}
	return out.Email, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("identity service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var envelope struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		_ = json.Unmarshal(raw, &envelope)
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return &RemoteError{Status: resp.StatusCode, Message: msg}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
