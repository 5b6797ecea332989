package domain

import "time"

// Notification variants mirror the toast styles the dashboard renders.
const (
	VariantDefault     = "default"
	VariantSuccess     = "success"
	VariantDestructive = "destructive"
)

// Notification is one toast record in the process-wide queue. Each item
// expires after its display duration; Dismiss removes it earlier.
type Notification struct {
	NotificationID string    `json:"id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Variant        string    `json:"variant"`
	CreatedAt      time.Time `json:"created"`
	ExpiresAt      time.Time `json:"expires_at"`
}
