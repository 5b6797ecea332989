// Package dashboard serves the admin dashboard's sample datasets. Filtering
// is pure and synchronous: criteria combine with AND, an empty filter
// returns the source collection itself (order preserved), and nothing is
// ever mutated or persisted — modal submits only emit a toast.
package dashboard

import (
	"strings"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/pkg/validate"
)

// User is a sample dashboard user row.
type User struct {
	UserID   string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	UserType string    `json:"user_type"`
	Status   string    `json:"status"`
	Joined   time.Time `json:"joined"`
}

// Message is a sample inbox row.
type Message struct {
	MessageID  string    `json:"id"`
	From       string    `json:"from"`
	Subject    string    `json:"subject"`
	Status     string    `json:"status"`
	ReceivedAt time.Time `json:"received_at"`
}

// Location is a sample program-location row.
type Location struct {
	LocationID     string `json:"id"`
	City           string `json:"city"`
	Country        string `json:"country"`
	ActivePrograms int    `json:"active_programs"`
	Students       int    `json:"students"`
}

// MonthCount is one bar of the signups chart.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// Enrollment is one progress bar of the enrollment panel. Percent is
// derived, clamped to 100.
type Enrollment struct {
	Program  string `json:"program"`
	Enrolled int    `json:"enrolled"`
	Capacity int    `json:"capacity"`
	Percent  int    `json:"percent"`
}

// Stats is the chart-panel payload.
type Stats struct {
	MonthlySignups []MonthCount `json:"monthly_signups"`
	Enrollment     []Enrollment `json:"enrollment"`
}

// Filter holds the user-selected criteria. Zero-value fields are ignored;
// set fields combine with AND.
type Filter struct {
	Query    string
	Category string
	Status   string
	From     time.Time
	To       time.Time
}

// IsZero reports whether no criterion is set.
func (f Filter) IsZero() bool {
	return f.Query == "" && f.Category == "" && f.Status == "" && f.From.IsZero() && f.To.IsZero()
}

func (f Filter) matchText(fields ...string) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	for _, s := range fields {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func (f Filter) matchStatus(status string) bool {
	return f.Status == "" || strings.EqualFold(f.Status, status)
}

func (f Filter) matchCategory(category string) bool {
	return f.Category == "" || strings.EqualFold(f.Category, category)
}

func (f Filter) matchDate(t time.Time) bool {
	if !f.From.IsZero() && t.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.After(f.To) {
		return false
	}
	return true
}

// UserModalRequest is the "add user" modal payload. Submitting it emits a
// toast and nothing else.
type UserModalRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	UserType string `json:"user_type" validate:"required,oneof=volunteer student"`
}

// EventModalRequest is the "create event" modal payload.
type EventModalRequest struct {
	Title    string `json:"title" validate:"required,max=120"`
	Category string `json:"category" validate:"required"`
	Date     string `json:"date" validate:"required"` // YYYY-MM-DD
	Location string `json:"location" validate:"required"`
}

type notifier interface {
	Publish(title, message, variant string) *domain.Notification
}

type Service interface {
	Users(f Filter) []User
	Events(f Filter) []domain.Event
	Messages(f Filter) []Message
	Locations(f Filter) []Location
	Stats() Stats
	SubmitUserModal(req UserModalRequest) error
	SubmitEventModal(req EventModalRequest) error
}

type service struct {
	notify notifier
}

func NewService(notify notifier) Service {
	return &service{notify: notify}
}

func (s *service) Users(f Filter) []User {
	if f.IsZero() {
		return sampleUsers
	}
	out := make([]User, 0, len(sampleUsers))
	for _, u := range sampleUsers {
		if f.matchText(u.Name, u.Email) && f.matchCategory(u.UserType) && f.matchStatus(u.Status) && f.matchDate(u.Joined) {
			out = append(out, u)
		}
	}
	return out
}

func (s *service) Events(f Filter) []domain.Event {
	if f.IsZero() {
		return sampleEvents
	}
	out := make([]domain.Event, 0, len(sampleEvents))
	for _, e := range sampleEvents {
		if f.matchText(e.Title, e.Location) && f.matchCategory(e.Category) && f.matchStatus(e.Status) && f.matchDate(e.Date) {
			out = append(out, e)
		}
	}
	return out
}

func (s *service) Messages(f Filter) []Message {
	if f.IsZero() {
		return sampleMessages
	}
	out := make([]Message, 0, len(sampleMessages))
	for _, m := range sampleMessages {
		if f.matchText(m.From, m.Subject) && f.matchStatus(m.Status) && f.matchDate(m.ReceivedAt) {
			out = append(out, m)
		}
	}
	return out
}

func (s *service) Locations(f Filter) []Location {
	if f.IsZero() {
		return sampleLocations
	}
	out := make([]Location, 0, len(sampleLocations))
	for _, l := range sampleLocations {
		if f.matchText(l.City, l.Country) {
			out = append(out, l)
		}
	}
	return out
}

func (s *service) Stats() Stats {
	enrollment := make([]Enrollment, len(programEnrollment))
	for i, e := range programEnrollment {
		e.Percent = percent(e.Enrolled, e.Capacity)
		enrollment[i] = e
	}
	return Stats{
		MonthlySignups: monthlySignups,
		Enrollment:     enrollment,
	}
}

// SubmitUserModal validates the modal payload and emits the success toast.
// No user is actually created anywhere.
func (s *service) SubmitUserModal(req UserModalRequest) error {
	if err := validate.Struct(&req); err != nil {
		return err
	}
	if err := validate.Email(req.Email); err != nil {
		return err
	}
	s.notify.Publish("User added", req.Name+" has been added", domain.VariantSuccess)
	return nil
}

// SubmitEventModal validates the modal payload and emits the success toast.
func (s *service) SubmitEventModal(req EventModalRequest) error {
	if err := validate.Struct(&req); err != nil {
		return err
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return validate.ErrDateFormat
	}
	s.notify.Publish("Event created", req.Title+" has been scheduled", domain.VariantSuccess)
	return nil
}

func percent(n, total int) int {
	if total <= 0 {
		return 0
	}
	p := n * 100 / total
	if p > 100 {
		p = 100
	}
	return p
}
