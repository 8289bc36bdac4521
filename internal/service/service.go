package service

import (
	"context"
	"time"

	"hvac_assistant/internal/assistant"
	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Assistant owns chat sessions and runs user commands through the pipeline.
type Assistant interface {
	QuickCommands() []string
	Classify(text string) assistant.ClassificationResult
	CreateSession(ctx context.Context) (Session, error)
	ProcessCommand(ctx context.Context, sessionID, text string) (Exchange, error)
	History(ctx context.Context, sessionID string) ([]models.Message, error)
	Stats(ctx context.Context, sessionID string) (SessionStats, error)
	Display(ctx context.Context, sessionID string) (*Display, error)
}

// Devices manages the HVAC device registry.
type Devices interface {
	CreateDevice(ctx context.Context, in contracts.DeviceCreate) (models.HVACDevice, error)
	GetDevice(ctx context.Context, id string) (models.HVACDevice, error)
	ListDevices(ctx context.Context, f DeviceFilter) ([]models.HVACDevice, error)
	UpdateDevice(ctx context.Context, id string, in contracts.DeviceUpdate) (models.HVACDevice, error)
	DeleteDevice(ctx context.Context, id string) error
}

// Settings exposes the single system settings record.
type Settings interface {
	GetSettings(ctx context.Context) (models.SystemSettings, error)
	UpdateSettings(ctx context.Context, in contracts.SettingsUpdate) (models.SystemSettings, error)
}

// EventLog exposes append-only audit events with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.AuditEvent, error)
}

// Janitor runs the background loop that expires idle chat sessions.
// Stop via context cancellation in main() for graceful shutdown.
type Janitor interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Assistant
	Devices
	Settings
	EventLog
	Janitor
	Authorization
}

// Config carries the tunables read from configs/config.yml.
type Config struct {
	SigningKey      string
	TokenTTL        time.Duration
	ProcessingDelay time.Duration
	MaxSessions     int
	SessionTTL      time.Duration
}

// NewService wires the repository layer and the assistant pipeline into concrete services.
func NewService(repos *repository.Repository, cfg Config, log *logger.Logger) *Service {
	chat := NewAssistantService(assistant.NewPipeline(), cfg.ProcessingDelay, cfg.MaxSessions, log)
	return &Service{
		Assistant:     chat,
		Devices:       NewDeviceService(repos.DeviceRepo, repos.EventRepo, log),
		Settings:      NewSettingsService(repos.SettingsRepo, repos.EventRepo, log),
		EventLog:      NewEventLogService(repos.EventRepo),
		Janitor:       NewSessionJanitor(chat, cfg.SessionTTL, log),
		Authorization: NewAuthService(repos.Auth, cfg.SigningKey, cfg.TokenTTL),
	}
}
