package models

import "time"

type SystemSettings struct {
	ID                   int       `json:"id"`
	TemperatureUnit      string    `json:"temperature_unit"` // celsius | fahrenheit
	Theme                string    `json:"theme"`            // light | dark | system
	NotificationsEnabled bool      `json:"notifications_enabled"`
	RefreshIntervalSec   int       `json:"refresh_interval_sec"`
	UpdatedAt            time.Time `json:"updated_at"`
}
