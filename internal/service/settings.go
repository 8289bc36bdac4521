package service

import (
	"context"
	"time"

	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultTemperatureUnit = "celsius"
	defaultTheme           = "light"
	defaultRefreshInterval = 30
)

type SettingsService struct {
	settingsRepo repository.SettingsRepo
	eventRepo    repository.EventRepo
	log          *logger.Logger
}

func NewSettingsService(settingsRepo repository.SettingsRepo, eventRepo repository.EventRepo, log *logger.Logger) *SettingsService {
	if log == nil {
		log = logger.Nop()
	}
	return &SettingsService{settingsRepo: settingsRepo, eventRepo: eventRepo, log: log}
}

// GetSettings returns the persisted settings.
// If nothing is persisted yet, returns the baseline defaults.
func (s *SettingsService) GetSettings(ctx context.Context) (models.SystemSettings, error) {
	st, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return models.SystemSettings{}, err
	}
	if st.ID == 0 {
		return baselineSettings(), nil
	}
	st.UpdatedAt = normalizeToUTC(st.UpdatedAt)
	return st, nil
}

// UpdateSettings replaces the settings row and logs SETTINGS_UPDATED.
func (s *SettingsService) UpdateSettings(ctx context.Context, in contracts.SettingsUpdate) (models.SystemSettings, error) {
	if err := contracts.Validate(in); err != nil {
		return models.SystemSettings{}, err
	}
	now := time.Now().UTC()

	st := models.SystemSettings{
		ID:                   1,
		TemperatureUnit:      in.TemperatureUnit,
		Theme:                in.Theme,
		NotificationsEnabled: in.NotificationsEnabled,
		RefreshIntervalSec:   in.RefreshIntervalSec,
		UpdatedAt:            now,
	}
	if err := s.settingsRepo.Save(ctx, st); err != nil {
		return models.SystemSettings{}, err
	}

	recordEvent(ctx, s.eventRepo, s.log, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventSettingsUpdated,
		Description: "System settings updated",
		Metadata: map[string]any{
			"temperature_unit":      st.TemperatureUnit,
			"theme":                 st.Theme,
			"notifications_enabled": st.NotificationsEnabled,
			"refresh_interval_sec":  st.RefreshIntervalSec,
		},
	})
	return st, nil
}

// baselineSettings is the snapshot served before any update is stored.
func baselineSettings() models.SystemSettings {
	return models.SystemSettings{
		ID:                   1, // DB schema enforces a single settings row with id=1
		TemperatureUnit:      defaultTemperatureUnit,
		Theme:                defaultTheme,
		NotificationsEnabled: true,
		RefreshIntervalSec:   defaultRefreshInterval,
		UpdatedAt:            time.Now().UTC(),
	}
}
