package service

import (
	"errors"
	"sync"
	"time"

	"hvac_assistant/internal/assistant"
	"hvac_assistant/internal/models"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var ErrSessionNotFound = errors.New("session not found")

const defaultMaxSessions = 1000

// SessionStats summarises one conversation.
type SessionStats struct {
	TotalMessages       int                      `json:"total_messages"`
	UserMessages        int                      `json:"user_messages"`
	AssistantMessages   int                      `json:"assistant_messages"`
	ComponentsGenerated int                      `json:"components_generated"`
	FallbackRenders     int                      `json:"fallback_renders"`
	ProcessingErrors    int                      `json:"processing_errors"`
	IntentCounts        map[assistant.Intent]int `json:"intent_counts"`
	LastIntent          assistant.Intent         `json:"last_intent,omitempty"`
}

// Display is what the component region of a session currently shows.
type Display struct {
	Composition assistant.Composition `json:"composition"`
	View        assistant.View        `json:"view"`
}

type session struct {
	Session
	messages []models.Message
	current  *Display
	stats    SessionStats
	touched  time.Time
}

// sessionStore keeps conversations in memory. When full, the oldest session
// is dropped to make room.
type sessionStore struct {
	mu       sync.Mutex
	max      int
	sessions map[string]*session
	order    []string
}

func newSessionStore(limit int) *sessionStore {
	if limit <= 0 {
		limit = defaultMaxSessions
	}
	return &sessionStore{max: limit, sessions: make(map[string]*session)}
}

// create registers a new session and returns it with the id of the evicted
// session, if any.
func (st *sessionStore) create() (Session, string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var evicted string
	if len(st.order) >= st.max {
		evicted = st.order[0]
		st.order = st.order[1:]
		delete(st.sessions, evicted)
	}

	s := &session{
		Session: Session{ID: uuid.NewString(), CreatedAt: time.Now().UTC()},
		stats:   SessionStats{IntentCounts: map[assistant.Intent]int{}},
	}
	s.touched = s.CreatedAt
	st.sessions[s.ID] = s
	st.order = append(st.order, s.ID)
	return s.Session, evicted
}

func (st *sessionStore) append(id string, m models.Message) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.messages = append(s.messages, m)
	s.touched = m.Timestamp
	s.stats.TotalMessages++
	s.stats.UserMessages++
	return nil
}

// complete records the assistant reply. A nil composition marks a processing error.
func (st *sessionStore) complete(id string, reply models.Message, comp *assistant.Composition, view *assistant.View) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	s.messages = append(s.messages, reply)
	s.touched = reply.Timestamp
	s.stats.TotalMessages++
	s.stats.AssistantMessages++

	if comp == nil {
		s.stats.ProcessingErrors++
		return nil
	}
	s.current = &Display{Composition: *comp}
	if view != nil {
		s.current.View = *view
	}
	s.stats.ComponentsGenerated++
	s.stats.IntentCounts[comp.Intent]++
	s.stats.LastIntent = comp.Intent
	if view != nil && view.Fallback {
		s.stats.FallbackRenders++
	}
	return nil
}

func (st *sessionStore) history(id string) ([]models.Message, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (st *sessionStore) stats(id string) (SessionStats, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return SessionStats{}, ErrSessionNotFound
	}
	out := s.stats
	out.IntentCounts = lo.Assign(s.stats.IntentCounts)
	return out, nil
}

// display returns the latest rendered component, or nil before the first
// successful exchange.
func (st *sessionStore) display(id string) (*Display, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.current == nil {
		return nil, nil
	}
	d := *s.current
	return &d, nil
}

// prune removes sessions last touched before cutoff and reports how many went.
func (st *sessionStore) prune(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	kept, dropped := lo.FilterReject(st.order, func(id string, _ int) bool {
		return !st.sessions[id].touched.Before(cutoff)
	})
	for _, id := range dropped {
		delete(st.sessions, id)
	}
	st.order = kept
	return len(dropped)
}
