package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hvac_assistant/internal/models"
)

// settings live in a single row
const settingsRowID = 1

type SettingsSQLite struct {
	db *sql.DB
}

func NewSettingsSQLite(db *sql.DB) *SettingsSQLite { return &SettingsSQLite{db: db} }

var _ SettingsRepo = (*SettingsSQLite)(nil)

const (
	upsertSettingsSQL = `
		INSERT INTO system_settings (id, temperature_unit, theme, notifications, refresh_interval_s, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			temperature_unit = excluded.temperature_unit,
			theme = excluded.theme,
			notifications = excluded.notifications,
			refresh_interval_s = excluded.refresh_interval_s,
			updated_at = excluded.updated_at
	`
	selectSettingsSQL = `
		SELECT id, temperature_unit, theme, notifications, refresh_interval_s, updated_at
		FROM system_settings WHERE id = ?
	`
)

// Save upserts the settings row. A zero UpdatedAt is set to now.
func (r *SettingsSQLite) Save(ctx context.Context, s models.SystemSettings) error {
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx, upsertSettingsSQL,
		settingsRowID,
		s.TemperatureUnit,
		s.Theme,
		s.NotificationsEnabled,
		s.RefreshIntervalSec,
		s.UpdatedAt.UTC(),
	)
	return err
}

// Load returns the stored settings, or the zero value if none were saved.
func (r *SettingsSQLite) Load(ctx context.Context) (models.SystemSettings, error) {
	var s models.SystemSettings
	err := r.db.QueryRowContext(ctx, selectSettingsSQL, settingsRowID).Scan(
		&s.ID,
		&s.TemperatureUnit,
		&s.Theme,
		&s.NotificationsEnabled,
		&s.RefreshIntervalSec,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SystemSettings{}, nil
	}
	if err != nil {
		return models.SystemSettings{}, err
	}
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
