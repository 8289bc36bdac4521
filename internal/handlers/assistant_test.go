package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hvac_assistant/internal/assistant"
	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/models"
	"hvac_assistant/internal/service"
)

func TestAssistantHandlers_QuickCommandsAndClassify(t *testing.T) {
	r := newTestRouter(&service.Service{Assistant: &mockAssistant{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/quick-commands", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("quick-commands status=%d", w.Code)
	}
	var qc struct {
		Commands []string `json:"commands"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &qc)
	if len(qc.Commands) != 2 {
		t.Fatalf("unexpected commands: %v", qc.Commands)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/classify", bytes.NewBufferString(`{"content":"Monitor temperature"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("classify status=%d body=%s", w.Code, w.Body.String())
	}
	var cls assistant.ClassificationResult
	if err := json.Unmarshal(w.Body.Bytes(), &cls); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if cls.Intent != assistant.IntentTemperatureCheck || cls.Confidence != 0.95 {
		t.Fatalf("unexpected classification: %+v", cls)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/assistant/classify", bytes.NewBufferString(`{"content":"   "}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank content, got %d", w.Code)
	}
}

func TestAssistantHandlers_SessionLifecycle(t *testing.T) {
	chat := &mockAssistant{
		session: service.Session{ID: "s1"},
		exchange: service.Exchange{
			UserMessage:      models.Message{ID: "m1", Role: models.RoleUser, Content: "What is COP?"},
			AssistantMessage: models.Message{ID: "m2", Role: models.RoleAssistant, Content: "COP is an important HVAC performance metric."},
		},
		history: []models.Message{{ID: "m1"}, {ID: "m2"}},
		stats:   service.SessionStats{TotalMessages: 2, UserMessages: 1, AssistantMessages: 1},
	}
	r := newTestRouter(&service.Service{Assistant: chat})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("create session status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/s1/messages", bytes.NewBufferString(`{"content":"What is COP?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("send status=%d body=%s", w.Code, w.Body.String())
	}
	var ex service.Exchange
	_ = json.Unmarshal(w.Body.Bytes(), &ex)
	if ex.SessionID != "s1" || !strings.Contains(ex.AssistantMessage.Content, "COP is an important") {
		t.Fatalf("unexpected exchange: %+v", ex)
	}
	if chat.lastSessionID != "s1" || chat.lastText != "What is COP?" {
		t.Fatalf("service got session=%q text=%q", chat.lastSessionID, chat.lastText)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/s1/messages", nil))
	var hist struct {
		Count int `json:"count"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &hist)
	if w.Code != http.StatusOK || hist.Count != 2 {
		t.Fatalf("history status=%d count=%d", w.Code, hist.Count)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/s1/stats", nil))
	var st service.SessionStats
	_ = json.Unmarshal(w.Body.Bytes(), &st)
	if w.Code != http.StatusOK || st.TotalMessages != 2 {
		t.Fatalf("stats status=%d body=%+v", w.Code, st)
	}
}

func TestAssistantHandlers_SendMessageErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
		code int
	}{
		{"malformed json", `{"content":`, nil, http.StatusBadRequest},
		{"validation", `{"content":""}`, &contracts.ValidationError{Fields: []contracts.FieldError{{Field: "content", Message: "is required"}}}, http.StatusBadRequest},
		{"unknown session", `{"content":"hi"}`, service.ErrSessionNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Assistant: &mockAssistant{processErr: tc.err}})
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions/x/messages", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.code, w.Body.String())
			}
		})
	}
}

func TestAssistantHandlers_Display(t *testing.T) {
	chat := &mockAssistant{}
	r := newTestRouter(&service.Service{Assistant: chat})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/s1/display", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 before any exchange, got %d", w.Code)
	}

	res := assistant.NewPipeline().Run("Check system status")
	chat.display = &service.Display{Composition: res.Composition, View: res.View}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/s1/display?format=html", nil))
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/html") {
		t.Fatalf("html display status=%d content-type=%q", w.Code, w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), res.Composition.PrimaryComponent.Title) {
		t.Fatalf("rendered fragment missing title: %s", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/s1/display", nil))
	var d struct {
		View struct {
			Type string `json:"type"`
		} `json:"view"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &d)
	if d.View.Type != string(assistant.ComponentStatusPanel) {
		t.Fatalf("unexpected json display: %s", w.Body.String())
	}

	chat.lookupErr = service.ErrSessionNotFound
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assistant/sessions/gone/display", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAssistantHandlers_CreateSessionCancelled(t *testing.T) {
	r := newTestRouter(&service.Service{Assistant: &mockAssistant{sessionErr: context.Canceled}})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/assistant/sessions", nil))

	if w.Code != http.StatusRequestTimeout {
		t.Fatalf("expected 408, got %d", w.Code)
	}
}
