package models

import "time"

// Audit event types.
const (
	EventDeviceCreated   = "DEVICE_CREATED"
	EventDeviceUpdated   = "DEVICE_UPDATED"
	EventDeviceDeleted   = "DEVICE_DELETED"
	EventSettingsUpdated = "SETTINGS_UPDATED"
)

// AuditEvent is a single audit log entry.
type AuditEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // DEVICE_CREATED | DEVICE_UPDATED | DEVICE_DELETED | SETTINGS_UPDATED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
