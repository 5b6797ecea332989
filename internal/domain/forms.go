package domain

import "time"

// Subscriber is a stored newsletter signup. Email is the partition key so
// duplicate signups surface as ErrConflict.
type Subscriber struct {
	Email     string    `json:"email" dynamodbav:"email"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

// ContactMessage is a stored contact-form submission.
type ContactMessage struct {
	MessageID string    `json:"id" dynamodbav:"message_id"`
	Name      string    `json:"name" dynamodbav:"name"`
	Email     string    `json:"email" dynamodbav:"email"`
	Subject   string    `json:"subject" dynamodbav:"subject"`
	Body      string    `json:"body" dynamodbav:"body"`
	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
}

// EventRegistration is a stored signup for a public event.
type EventRegistration struct {
	RegistrationID string    `json:"id" dynamodbav:"registration_id"`
	EventID        string    `json:"event_id" dynamodbav:"event_id"`
	FullName       string    `json:"full_name" dynamodbav:"full_name"`
	Email          string    `json:"email" dynamodbav:"email"`
	Phone          *string   `json:"phone,omitempty" dynamodbav:"phone"`
	CreatedAt      time.Time `json:"created" dynamodbav:"created_at"`
}

// NewsletterRequest is the newsletter signup payload.
type NewsletterRequest struct {
	Email string `json:"email"`
}

// ContactRequest is the contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required,max=120"`
	Message string `json:"message" validate:"required,max=2000"`
}

// EventRegistrationRequest is the event-registration payload.
type EventRegistrationRequest struct {
	FullName string  `json:"full_name" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Phone    *string `json:"phone"`
}
