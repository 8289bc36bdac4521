package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/repository"

	"github.com/samber/lo"
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

// AuditEventTypes lists the accepted type filters.
var AuditEventTypes = []string{
	models.EventDeviceCreated,
	models.EventDeviceUpdated,
	models.EventDeviceDeleted,
	models.EventSettingsUpdated,
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidEventType = errors.New("invalid event type")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// normalizeAndValidateFilter prepares query parameters and validates the time range and type.
func normalizeAndValidateFilter(f LogFilter) (time.Time, time.Time, string, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)

	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return time.Time{}, time.Time{}, "", ErrInvalidTimeRange
	}

	eventType := normalizeEventType(f.Type)
	if eventType != "" && !lo.Contains(AuditEventTypes, eventType) {
		return time.Time{}, time.Time{}, "", ErrInvalidEventType
	}
	return from, to, eventType, nil
}

func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.AuditEvent, error) {
	from, to, typ, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, from, to, typ)
}

// recordEvent appends ev after the primary write has succeeded. A failed
// append is logged; the caller's write stands.
func recordEvent(ctx context.Context, repo repository.EventRepo, log *logger.Logger, ev models.AuditEvent) {
	if err := repo.Append(ctx, ev); err != nil {
		log.Warnw("audit_append_failed", "type", ev.Type, "event_id", ev.EventID, "err", err)
	}
}
