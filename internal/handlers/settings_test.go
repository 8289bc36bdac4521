package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/service"
)

func TestSettingsHandlers_GetAndPut(t *testing.T) {
	settings := &mockSettings{settings: models.SystemSettings{ID: 1, TemperatureUnit: "celsius", Theme: "dark", RefreshIntervalSec: 30}}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Settings: settings})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil), authHeader("valid")))
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
	var got models.SystemSettings
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.Theme != "dark" {
		t.Fatalf("unexpected settings: %+v", got)
	}

	w = httptest.NewRecorder()
	body := `{"temperature_unit":"fahrenheit","theme":"light","notifications_enabled":true,"refresh_interval_sec":60}`
	req := withHeaders(httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewBufferString(body)), authHeader("valid"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d body=%s", w.Code, w.Body.String())
	}
	want := contracts.SettingsUpdate{TemperatureUnit: "fahrenheit", Theme: "light", NotificationsEnabled: true, RefreshIntervalSec: 60}
	if settings.lastUpdate != want {
		t.Fatalf("service got %+v, want %+v", settings.lastUpdate, want)
	}
}

func TestSettingsHandlers_Errors(t *testing.T) {
	settings := &mockSettings{
		getErr:    errors.New("db down"),
		updateErr: &contracts.ValidationError{Fields: []contracts.FieldError{{Field: "theme", Message: "must be one of: light, dark, system"}}},
	}
	r := newTestRouter(&service.Service{Authorization: &mockAuth{parseID: 1}, Settings: settings})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withHeaders(httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil), authHeader("valid")))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := withHeaders(httptest.NewRequest(http.MethodPut, "/api/v1/settings", bytes.NewBufferString(`{"theme":"neon"}`)), authHeader("valid"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
