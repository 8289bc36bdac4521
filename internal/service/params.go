package service

import "time"

// LogFilter supports audit history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "DEVICE_CREATED", "DEVICE_UPDATED", "DEVICE_DELETED", "SETTINGS_UPDATED"
}

// DeviceFilter narrows device listings; empty fields match everything.
type DeviceFilter struct {
	Type   string
	Status string
}
