package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/repository"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrDeviceNotFound      = errors.New("device not found")
	ErrEmptyDeviceUpdate   = errors.New("device update has no fields")
	ErrInvalidDeviceFilter = errors.New("invalid device filter")
)

// DeviceService owns the device registry. Audit events are best effort: a
// failed append is logged and never undoes or fails the device write.
type DeviceService struct {
	deviceRepo repository.DeviceRepo
	eventRepo  repository.EventRepo
	log        *logger.Logger
}

func NewDeviceService(deviceRepo repository.DeviceRepo, eventRepo repository.EventRepo, log *logger.Logger) *DeviceService {
	if log == nil {
		log = logger.Nop()
	}
	return &DeviceService{deviceRepo: deviceRepo, eventRepo: eventRepo, log: log}
}

// CreateDevice validates the payload, stores a new device and logs DEVICE_CREATED.
// A missing status defaults to online.
func (s *DeviceService) CreateDevice(ctx context.Context, in contracts.DeviceCreate) (models.HVACDevice, error) {
	if err := contracts.Validate(in); err != nil {
		return models.HVACDevice{}, err
	}
	now := time.Now().UTC()

	d := models.HVACDevice{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(in.Name),
		Type:      in.Type,
		Location:  strings.TrimSpace(in.Location),
		Status:    lo.Ternary(in.Status == "", models.DeviceOnline, in.Status),
		SetpointC: in.SetpointC,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.deviceRepo.Create(ctx, d); err != nil {
		return models.HVACDevice{}, err
	}

	recordEvent(ctx, s.eventRepo, s.log, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventDeviceCreated,
		Description: "Device " + d.Name + " created",
		Metadata: map[string]any{
			"device_id": d.ID,
			"type":      d.Type,
			"location":  d.Location,
		},
	})
	return d, nil
}

func (s *DeviceService) GetDevice(ctx context.Context, id string) (models.HVACDevice, error) {
	d, err := s.deviceRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.HVACDevice{}, ErrDeviceNotFound
		}
		return models.HVACDevice{}, err
	}
	return *d, nil
}

// ListDevices returns devices ordered by name, optionally filtered by type and status.
func (s *DeviceService) ListDevices(ctx context.Context, f DeviceFilter) ([]models.HVACDevice, error) {
	typ := strings.ToLower(strings.TrimSpace(f.Type))
	status := strings.ToLower(strings.TrimSpace(f.Status))

	if typ != "" && !lo.Contains(contracts.DeviceTypes, typ) {
		return nil, fmt.Errorf("%w: type %q", ErrInvalidDeviceFilter, f.Type)
	}
	if status != "" && !lo.Contains(contracts.DeviceStatuses, status) {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidDeviceFilter, f.Status)
	}
	return s.deviceRepo.List(ctx, repository.DeviceFilter{Type: typ, Status: status})
}

// UpdateDevice applies the non-nil fields of in and logs DEVICE_UPDATED with
// the names of the changed fields.
func (s *DeviceService) UpdateDevice(ctx context.Context, id string, in contracts.DeviceUpdate) (models.HVACDevice, error) {
	if in.Empty() {
		return models.HVACDevice{}, ErrEmptyDeviceUpdate
	}
	if err := contracts.Validate(in); err != nil {
		return models.HVACDevice{}, err
	}

	d, err := s.GetDevice(ctx, id)
	if err != nil {
		return models.HVACDevice{}, err
	}

	var changed []string
	if in.Name != nil {
		d.Name = strings.TrimSpace(*in.Name)
		changed = append(changed, "name")
	}
	if in.Type != nil {
		d.Type = *in.Type
		changed = append(changed, "type")
	}
	if in.Location != nil {
		d.Location = strings.TrimSpace(*in.Location)
		changed = append(changed, "location")
	}
	if in.Status != nil {
		d.Status = *in.Status
		changed = append(changed, "status")
	}
	if in.SetpointC != nil {
		d.SetpointC = *in.SetpointC
		changed = append(changed, "setpoint_c")
	}
	now := time.Now().UTC()
	d.UpdatedAt = now

	if err := s.deviceRepo.Update(ctx, d); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.HVACDevice{}, ErrDeviceNotFound
		}
		return models.HVACDevice{}, err
	}

	recordEvent(ctx, s.eventRepo, s.log, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  now,
		Type:        models.EventDeviceUpdated,
		Description: "Device " + d.Name + " updated",
		Metadata: map[string]any{
			"device_id": d.ID,
			"fields":    changed,
		},
	})
	return d, nil
}

func (s *DeviceService) DeleteDevice(ctx context.Context, id string) error {
	if err := s.deviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDeviceNotFound
		}
		return err
	}
	recordEvent(ctx, s.eventRepo, s.log, models.AuditEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventDeviceDeleted,
		Description: "Device deleted",
		Metadata:    map[string]any{"device_id": id},
	})
	return nil
}
