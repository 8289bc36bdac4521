package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hvac_assistant/internal/models"
)

var (
	// ErrNotFound is returned when a row addressed by id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUsernameTaken is returned by Authorization.Create for a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// DeviceFilter narrows device listings; empty fields are ignored.
type DeviceFilter struct {
	Type   string
	Status string
}

type DeviceRepo interface {
	Create(ctx context.Context, d models.HVACDevice) error
	Get(ctx context.Context, id string) (*models.HVACDevice, error)
	List(ctx context.Context, f DeviceFilter) ([]models.HVACDevice, error)
	Update(ctx context.Context, d models.HVACDevice) error
	Delete(ctx context.Context, id string) error
}

type SettingsRepo interface {
	Save(ctx context.Context, s models.SystemSettings) error
	Load(ctx context.Context) (models.SystemSettings, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.AuditEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.AuditEvent, error)
}

type Repository struct {
	DeviceRepo   DeviceRepo
	SettingsRepo SettingsRepo
	EventRepo    EventRepo
	Auth         Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		DeviceRepo:   NewDeviceSQLite(db),
		SettingsRepo: NewSettingsSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Auth:         NewUserRepository(db),
	}
}
