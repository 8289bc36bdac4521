package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"hvac_assistant/internal/models"
)

type DeviceSQLite struct {
	db *sql.DB
}

func NewDeviceSQLite(db *sql.DB) *DeviceSQLite { return &DeviceSQLite{db: db} }

var _ DeviceRepo = (*DeviceSQLite)(nil)

const (
	deviceColumns = `id, name, type, location, status, setpoint_c, created_at, updated_at`

	insertDeviceSQL = `INSERT INTO hvac_devices (` + deviceColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectDeviceSQL = `SELECT ` + deviceColumns + ` FROM hvac_devices WHERE id = ?`
	updateDeviceSQL = `UPDATE hvac_devices SET name = ?, type = ?, location = ?, status = ?, setpoint_c = ?, updated_at = ? WHERE id = ?`
	deleteDeviceSQL = `DELETE FROM hvac_devices WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(s rowScanner) (models.HVACDevice, error) {
	var d models.HVACDevice
	err := s.Scan(&d.ID, &d.Name, &d.Type, &d.Location, &d.Status, &d.SetpointC, &d.CreatedAt, &d.UpdatedAt)
	d.CreatedAt = d.CreatedAt.UTC()
	d.UpdatedAt = d.UpdatedAt.UTC()
	return d, err
}

func (r *DeviceSQLite) Create(ctx context.Context, d models.HVACDevice) error {
	_, err := r.db.ExecContext(ctx, insertDeviceSQL,
		d.ID, d.Name, d.Type, d.Location, d.Status, d.SetpointC,
		d.CreatedAt.UTC(), d.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert device %q: %w", d.ID, err)
	}
	return nil
}

// Get returns the device with the given id, or ErrNotFound.
func (r *DeviceSQLite) Get(ctx context.Context, id string) (*models.HVACDevice, error) {
	d, err := scanDevice(r.db.QueryRowContext(ctx, selectDeviceSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select device %q: %w", id, err)
	}
	return &d, nil
}

// List returns devices matching f ordered by name.
func (r *DeviceSQLite) List(ctx context.Context, f DeviceFilter) ([]models.HVACDevice, error) {
	var (
		conds []string
		args  []any
	)
	if t := strings.TrimSpace(f.Type); t != "" {
		conds = append(conds, "type = ?")
		args = append(args, t)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		conds = append(conds, "status = ?")
		args = append(args, s)
	}

	q := `SELECT ` + deviceColumns + ` FROM hvac_devices`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY name ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	defer rows.Close()

	out := make([]models.HVACDevice, 0, 16)
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan device: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *DeviceSQLite) Update(ctx context.Context, d models.HVACDevice) error {
	res, err := r.db.ExecContext(ctx, updateDeviceSQL,
		d.Name, d.Type, d.Location, d.Status, d.SetpointC, d.UpdatedAt.UTC(), d.ID,
	)
	if err != nil {
		return fmt.Errorf("update device %q: %w", d.ID, err)
	}
	return requireAffected(res)
}

func (r *DeviceSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteDeviceSQL, id)
	if err != nil {
		return fmt.Errorf("delete device %q: %w", id, err)
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
