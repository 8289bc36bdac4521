package contracts

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Device enumerations accepted by the schemas and list filters.
var (
	DeviceTypes    = []string{"chiller", "boiler", "ahu", "cooling_tower", "pump", "heat_pump"}
	DeviceStatuses = []string{"online", "offline", "maintenance"}
)

// UserSignUp is the sign-up payload.
type UserSignUp struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UserSignIn is the sign-in payload.
type UserSignIn struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// DeviceCreate is the payload for registering an HVAC device.
type DeviceCreate struct {
	Name      string  `json:"name" validate:"required,notblank,max=64"`
	Type      string  `json:"type" validate:"required,oneof=chiller boiler ahu cooling_tower pump heat_pump"`
	Location  string  `json:"location" validate:"required,notblank,max=64"`
	Status    string  `json:"status" validate:"omitempty,oneof=online offline maintenance"`
	SetpointC float64 `json:"setpoint_c" validate:"gte=5,lte=35"`
}

// DeviceUpdate is a partial update; nil fields are left unchanged.
type DeviceUpdate struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,notblank,max=64"`
	Type      *string  `json:"type,omitempty" validate:"omitempty,oneof=chiller boiler ahu cooling_tower pump heat_pump"`
	Location  *string  `json:"location,omitempty" validate:"omitempty,notblank,max=64"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=online offline maintenance"`
	SetpointC *float64 `json:"setpoint_c,omitempty" validate:"omitempty,gte=5,lte=35"`
}

// Empty reports whether the update changes nothing.
func (u DeviceUpdate) Empty() bool {
	return u.Name == nil && u.Type == nil && u.Location == nil && u.Status == nil && u.SetpointC == nil
}

// MessageSend is a chat message submitted to the assistant.
type MessageSend struct {
	Content string `json:"content" validate:"required,notblank,max=500"`
}

// SettingsUpdate replaces the system settings.
type SettingsUpdate struct {
	TemperatureUnit      string `json:"temperature_unit" validate:"required,oneof=celsius fahrenheit"`
	Theme                string `json:"theme" validate:"required,oneof=light dark system"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	RefreshIntervalSec   int    `json:"refresh_interval_sec" validate:"gte=5,lte=3600"`
}

// FieldError describes one failed constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field errors for a payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validate checks v against its validate tags. Constraint failures are
// returned as *ValidationError.
func Validate(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate %T: %w", v, err)
	}
	out := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: describe(fe)})
	}
	return out
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report JSON field names instead of Go field names.
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
	return validate
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "alphanum":
		return "must contain only letters and digits"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "must be <= " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag()
	}
}
