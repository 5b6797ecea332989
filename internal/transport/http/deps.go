package http

import (
	"github.com/careerlift/careerlift-api/internal/application/notify"
	"github.com/careerlift/careerlift-api/internal/infrastructure/dynamo"
	"github.com/careerlift/careerlift-api/internal/infrastructure/identity"
	jwtinfra "github.com/careerlift/careerlift-api/internal/infrastructure/jwt"
	s3infra "github.com/careerlift/careerlift-api/internal/infrastructure/s3"
	"github.com/careerlift/careerlift-api/internal/infrastructure/smtp"
	"github.com/careerlift/careerlift-api/internal/infrastructure/sns"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	SubscriberRepo   *dynamo.SubscriberRepo
	MessageRepo      *dynamo.ContactMessageRepo
	RegistrationRepo *dynamo.RegistrationRepo
	S3Store          *s3infra.Store
	Mailer           smtp.Mailer
	SMSSender        sns.SMSSender
	Identity         *identity.Client
	JWTProvider      *jwtinfra.Provider
	Notify           notify.Service
}
