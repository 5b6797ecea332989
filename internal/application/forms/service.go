// Package forms handles public form intake: newsletter signups, contact
// messages and event registrations. Submissions are validated with the
// shared predicates, recorded in DynamoDB and acknowledged by email (and
// SMS when a phone number is given) before a success toast is published.
package forms

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/careerlift/careerlift-api/internal/domain"
	"github.com/careerlift/careerlift-api/internal/pkg/id"
	"github.com/careerlift/careerlift-api/internal/pkg/validate"
)

type subscriberStore interface {
	Put(ctx context.Context, s *domain.Subscriber) error
	Get(ctx context.Context, email string) (*domain.Subscriber, error)
	Delete(ctx context.Context, email string) error
}

type messageStore interface {
	Put(ctx context.Context, m *domain.ContactMessage) error
}

type registrationStore interface {
	Put(ctx context.Context, reg *domain.EventRegistration) error
	CountByEvent(ctx context.Context, eventID string) (int, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.EventRegistration, error)
}

type eventLookup interface {
	Event(eventID string) (*domain.Event, error)
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type notifier interface {
	Publish(title, message, variant string) *domain.Notification
}

// ErrEventFull is returned when an event has no remaining capacity.
var ErrEventFull = errors.New("This event is fully booked")

type Service interface {
	Subscribe(ctx context.Context, req domain.NewsletterRequest) error
	Unsubscribe(ctx context.Context, req domain.NewsletterRequest) error
	SubmitContact(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error)
	RegisterForEvent(ctx context.Context, eventID string, req domain.EventRegistrationRequest) (*domain.EventRegistration, error)
	Registrations(ctx context.Context, eventID string) ([]domain.EventRegistration, error)
}

type service struct {
	subscribers   subscriberStore
	messages      messageStore
	registrations registrationStore
	events        eventLookup
	mail          mailer
	sms           smsSender
	notify        notifier
	staffInbox    string
	now           func() time.Time
}

type ServiceDeps struct {
	Subscribers   subscriberStore
	Messages      messageStore
	Registrations registrationStore
	Events        eventLookup
	Mailer        mailer
	SMS           smsSender
	Notifier      notifier
	StaffInbox    string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		subscribers:   deps.Subscribers,
		messages:      deps.Messages,
		registrations: deps.Registrations,
		events:        deps.Events,
		mail:          deps.Mailer,
		sms:           deps.SMS,
		notify:        deps.Notifier,
		staffInbox:    deps.StaffInbox,
		now:           time.Now,
	}
}

// Subscribe records a newsletter signup. A duplicate email surfaces as
// domain.ErrConflict from the conditional write.
func (s *service) Subscribe(ctx context.Context, req domain.NewsletterRequest) error {
	if err := validate.Email(req.Email); err != nil {
		return err
	}
	sub := &domain.Subscriber{Email: req.Email, CreatedAt: s.now()}
	if err := s.subscribers.Put(ctx, sub); err != nil {
		return err
	}
	s.notify.Publish("Subscribed", "You are now on the CareerLift newsletter", domain.VariantSuccess)
	return nil
}

// Unsubscribe removes a newsletter subscription. Unsubscribing an unknown
// email surfaces domain.ErrNotFound rather than silently succeeding.
func (s *service) Unsubscribe(ctx context.Context, req domain.NewsletterRequest) error {
	if err := validate.Email(req.Email); err != nil {
		return err
	}
	if _, err := s.subscribers.Get(ctx, req.Email); err != nil {
		return err
	}
	if err := s.subscribers.Delete(ctx, req.Email); err != nil {
		return err
	}
	s.notify.Publish("Unsubscribed", "You have been removed from the newsletter", domain.VariantDefault)
	return nil
}

// SubmitContact stores the message and forwards it to the staff inbox. A
// mail failure is logged but does not fail the submission once the message
// is stored.
func (s *service) SubmitContact(ctx context.Context, req domain.ContactRequest) (*domain.ContactMessage, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}

	m := &domain.ContactMessage{
		MessageID: id.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Message,
		CreatedAt: s.now(),
	}
	if err := s.messages.Put(ctx, m); err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}

	body := fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message)
	if err := s.mail.SendEmail(s.staffInbox, "[contact] "+req.Subject, body); err != nil {
		slog.Error("failed to forward contact message", slog.String("message_id", m.MessageID), slog.Any("error", err))
	}

	s.notify.Publish("Message sent", "Thanks for reaching out, we will get back to you soon", domain.VariantSuccess)
	return m, nil
}

// RegisterForEvent records a registration for an open event with remaining
// capacity, then confirms by email and, when a phone number was given, SMS.
func (s *service) RegisterForEvent(ctx context.Context, eventID string, req domain.EventRegistrationRequest) (*domain.EventRegistration, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, err
	}
	if err := validate.Email(req.Email); err != nil {
		return nil, err
	}

	event, err := s.events.Event(eventID)
	if err != nil {
		return nil, err
	}
	if event.Status != "open" {
		return nil, fmt.Errorf("event %s is not open for registration: %w", eventID, domain.ErrForbidden)
	}

	count, err := s.registrations.CountByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count registrations: %w", err)
	}
	if count >= event.Capacity {
		return nil, ErrEventFull
	}

	reg := &domain.EventRegistration{
		RegistrationID: id.New(),
		EventID:        eventID,
		FullName:       req.FullName,
		Email:          req.Email,
		Phone:          req.Phone,
		CreatedAt:      s.now(),
	}
	if err := s.registrations.Put(ctx, reg); err != nil {
		return nil, fmt.Errorf("store registration: %w", err)
	}

	confirmation := fmt.Sprintf("Hi %s,\n\nYou are registered for %s on %s at %s. See you there!",
		req.FullName, event.Title, event.Date.Format("2 January 2006"), event.Location)
	if err := s.mail.SendEmail(req.Email, "Registration confirmed: "+event.Title, confirmation); err != nil {
		slog.Error("failed to send registration confirmation", slog.String("registration_id", reg.RegistrationID), slog.Any("error", err))
	}
	if req.Phone != nil && s.sms != nil {
		text := fmt.Sprintf("CareerLift: you are registered for %s on %s.", event.Title, event.Date.Format("2 Jan"))
		if err := s.sms.SendSMS(ctx, *req.Phone, text); err != nil {
			slog.Error("failed to send registration SMS", slog.String("registration_id", reg.RegistrationID), slog.Any("error", err))
		}
	}

	s.notify.Publish("Registration confirmed", "You are registered for "+event.Title, domain.VariantSuccess)
	return reg, nil
}

// Registrations lists the recorded signups for an event. Staff-facing.
func (s *service) Registrations(ctx context.Context, eventID string) ([]domain.EventRegistration, error) {
	if _, err := s.events.Event(eventID); err != nil {
		return nil, err
	}
	return s.registrations.ListByEvent(ctx, eventID)
}
