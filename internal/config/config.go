package config

import (
	"os"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	// External identity service. All credential checks are delegated there;
	// this app never stores or compares a password.
	IdentityBaseURL string
	IdentityAPIKey  string
	IdentityTimeout time.Duration

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string
	StaffInboxTo string // where contact-form messages are forwarded
	SNSRegion    string

	FlowTTL        time.Duration // pending-verification flow lifetime
	ResendCooldown time.Duration

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each persisted entity.
type DynamoTables struct {
	Subscribers        string
	ContactMessages    string
	EventRegistrations string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		IdentityBaseURL: getEnv("IDENTITY_BASE_URL", "http://localhost:9099"),
		IdentityAPIKey:  getEnv("IDENTITY_API_KEY", ""),
		IdentityTimeout: getEnvDuration("IDENTITY_TIMEOUT", 10*time.Second),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Subscribers:        getEnv("DYNAMO_TABLE_SUBSCRIBERS", "subscribers"),
			ContactMessages:    getEnv("DYNAMO_TABLE_CONTACT_MESSAGES", "contact_messages"),
			EventRegistrations: getEnv("DYNAMO_TABLE_EVENT_REGISTRATIONS", "event_registrations"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "careerlift-resources"),

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         getEnvDuration("JWT_EXPIRY", 24*time.Hour),

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@careerlift.org"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		StaffInboxTo: getEnv("STAFF_INBOX_TO", "hello@careerlift.org"),
		SNSRegion:    getEnv("SNS_REGION", "us-east-1"),

		FlowTTL:        getEnvDuration("AUTH_FLOW_TTL", 15*time.Minute),
		ResendCooldown: getEnvDuration("RESEND_COOLDOWN", 60*time.Second),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
