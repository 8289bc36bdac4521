package repository

import (
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"hvac_assistant/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var deviceRowColumns = []string{"id", "name", "type", "location", "status", "setpoint_c", "created_at", "updated_at"}

func sampleDevice() models.HVACDevice {
	ts := time.Date(2025, 2, 3, 9, 0, 0, 0, time.UTC)
	return models.HVACDevice{
		ID:        "d1",
		Name:      "Chiller 1",
		Type:      "chiller",
		Location:  "Roof",
		Status:    models.DeviceOnline,
		SetpointC: 7,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func TestDeviceCreate(t *testing.T) {
	t.Parallel()
	db, mock := newSQLMock(t)
	repo := NewDeviceSQLite(db)
	d := sampleDevice()

	mock.ExpectExec(regexp.QuoteMeta(insertDeviceSQL)).
		WithArgs(d.ID, d.Name, d.Type, d.Location, d.Status, d.SetpointC, d.CreatedAt, d.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(ctx(t), d); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestDeviceGet(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewDeviceSQLite(db)
		d := sampleDevice()

		mock.ExpectQuery(regexp.QuoteMeta(selectDeviceSQL)).
			WithArgs("d1").
			WillReturnRows(sqlmock.NewRows(deviceRowColumns).
				AddRow(d.ID, d.Name, d.Type, d.Location, d.Status, d.SetpointC, d.CreatedAt, d.UpdatedAt))

		got, err := repo.Get(ctx(t), "d1")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if *got != d {
			t.Fatalf("got %+v, want %+v", *got, d)
		}
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newSQLMock(t)
		repo := NewDeviceSQLite(db)

		mock.ExpectQuery(regexp.QuoteMeta(selectDeviceSQL)).
			WithArgs("nope").
			WillReturnRows(sqlmock.NewRows(deviceRowColumns))

		got, err := repo.Get(ctx(t), "nope")
		if !errors.Is(err, ErrNotFound) || got != nil {
			t.Fatalf("want ErrNotFound, got %v, %v", got, err)
		}
	})
}

func TestDeviceList_Filters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		filter DeviceFilter
		query  string
		args   []driver.Value
	}{
		{
			name:  "no filter",
			query: `SELECT ` + deviceColumns + ` FROM hvac_devices ORDER BY name ASC`,
		},
		{
			name:   "type only",
			filter: DeviceFilter{Type: "boiler"},
			query:  `SELECT ` + deviceColumns + ` FROM hvac_devices WHERE type = ? ORDER BY name ASC`,
			args:   []driver.Value{"boiler"},
		},
		{
			name:   "type and status",
			filter: DeviceFilter{Type: " pump ", Status: "offline"},
			query:  `SELECT ` + deviceColumns + ` FROM hvac_devices WHERE type = ? AND status = ? ORDER BY name ASC`,
			args:   []driver.Value{"pump", "offline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMock(t)
			repo := NewDeviceSQLite(db)
			d := sampleDevice()

			exp := mock.ExpectQuery(regexp.QuoteMeta(tt.query))
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnRows(sqlmock.NewRows(deviceRowColumns).
				AddRow(d.ID, d.Name, d.Type, d.Location, d.Status, d.SetpointC, d.CreatedAt, d.UpdatedAt))

			got, err := repo.List(ctx(t), tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != 1 || got[0].ID != "d1" {
				t.Fatalf("unexpected devices: %+v", got)
			}
		})
	}
}

func TestDeviceUpdate(t *testing.T) {
	t.Parallel()
	d := sampleDevice()

	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{"updated", 1, nil},
		{"missing", 0, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newSQLMock(t)
			repo := NewDeviceSQLite(db)

			mock.ExpectExec(regexp.QuoteMeta(updateDeviceSQL)).
				WithArgs(d.Name, d.Type, d.Location, d.Status, d.SetpointC, d.UpdatedAt, d.ID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			if err := repo.Update(ctx(t), d); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Update err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeviceDelete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		db, mock := newSQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta(deleteDeviceSQL)).
			WithArgs("d1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		if err := NewDeviceSQLite(db).Delete(ctx(t), "d1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	})

	t.Run("db error", func(t *testing.T) {
		db, mock := newSQLMock(t)
		mock.ExpectExec(regexp.QuoteMeta(deleteDeviceSQL)).
			WithArgs("d1").
			WillReturnError(errors.New("locked"))
		err := NewDeviceSQLite(db).Delete(ctx(t), "d1")
		if err == nil || errors.Is(err, ErrNotFound) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})
}
