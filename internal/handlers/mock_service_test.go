package handlers

import (
	"context"
	"net/http"
	"time"

	"hvac_assistant/internal/assistant"
	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockAssistant struct {
	session    service.Session
	sessionErr error
	exchange   service.Exchange
	processErr error
	history    []models.Message
	stats      service.SessionStats
	display    *service.Display
	lookupErr  error

	lastSessionID string
	lastText      string
	processCalls  int
}

func (m *mockAssistant) QuickCommands() []string {
	return []string{"Show chiller efficiency", "What is COP?"}
}
func (m *mockAssistant) Classify(text string) assistant.ClassificationResult {
	m.lastText = text
	return assistant.Classify(text)
}
func (m *mockAssistant) CreateSession(ctx context.Context) (service.Session, error) {
	return m.session, m.sessionErr
}
func (m *mockAssistant) ProcessCommand(ctx context.Context, sessionID, text string) (service.Exchange, error) {
	m.processCalls++
	m.lastSessionID = sessionID
	m.lastText = text
	ex := m.exchange
	ex.SessionID = sessionID
	return ex, m.processErr
}
func (m *mockAssistant) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	m.lastSessionID = sessionID
	return m.history, m.lookupErr
}
func (m *mockAssistant) Stats(ctx context.Context, sessionID string) (service.SessionStats, error) {
	m.lastSessionID = sessionID
	return m.stats, m.lookupErr
}
func (m *mockAssistant) Display(ctx context.Context, sessionID string) (*service.Display, error) {
	m.lastSessionID = sessionID
	return m.display, m.lookupErr
}

type mockDevices struct {
	device     models.HVACDevice
	devices    []models.HVACDevice
	err        error
	lastFilter service.DeviceFilter
	lastCreate contracts.DeviceCreate
	lastUpdate contracts.DeviceUpdate
	lastID     string
}

func (m *mockDevices) CreateDevice(ctx context.Context, in contracts.DeviceCreate) (models.HVACDevice, error) {
	m.lastCreate = in
	return m.device, m.err
}
func (m *mockDevices) GetDevice(ctx context.Context, id string) (models.HVACDevice, error) {
	m.lastID = id
	return m.device, m.err
}
func (m *mockDevices) ListDevices(ctx context.Context, f service.DeviceFilter) ([]models.HVACDevice, error) {
	m.lastFilter = f
	return m.devices, m.err
}
func (m *mockDevices) UpdateDevice(ctx context.Context, id string, in contracts.DeviceUpdate) (models.HVACDevice, error) {
	m.lastID = id
	m.lastUpdate = in
	return m.device, m.err
}
func (m *mockDevices) DeleteDevice(ctx context.Context, id string) error {
	m.lastID = id
	return m.err
}

type mockSettings struct {
	settings   models.SystemSettings
	getErr     error
	updateErr  error
	lastUpdate contracts.SettingsUpdate
}

func (m *mockSettings) GetSettings(ctx context.Context) (models.SystemSettings, error) {
	return m.settings, m.getErr
}
func (m *mockSettings) UpdateSettings(ctx context.Context, in contracts.SettingsUpdate) (models.SystemSettings, error) {
	m.lastUpdate = in
	return m.settings, m.updateErr
}

type mockEventLog struct {
	resp     []models.AuditEvent
	err      error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.AuditEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// withHeaders copies hdr onto req and returns it.
func withHeaders(req *http.Request, hdr http.Header) *http.Request {
	for k, vv := range hdr {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	return req
}
