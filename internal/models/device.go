package models

import "time"

// Device statuses.
const (
	DeviceOnline      = "online"
	DeviceOffline     = "offline"
	DeviceMaintenance = "maintenance"
)

// HVACDevice is a registered piece of HVAC equipment.
type HVACDevice struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // chiller | boiler | ahu | cooling_tower | pump | heat_pump
	Location  string    `json:"location"`
	Status    string    `json:"status"`     // online | offline | maintenance
	SetpointC float64   `json:"setpoint_c"` // °C
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
