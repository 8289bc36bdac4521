package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hvac_assistant/internal/assistant"
	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/logger"
	"hvac_assistant/internal/models"

	"github.com/google/uuid"
)

// ProcessingErrorMessage is the assistant reply used when the pipeline panics.
const ProcessingErrorMessage = "Sorry, I encountered an error processing your request. Please try rephrasing your command."

var quickCommands = []string{
	"Show chiller efficiency",
	"Monitor temperature",
	"What is COP?",
	"View system overview",
	"Show weather data",
	"Check system status",
}

// Runner runs one input through classification, composition and rendering.
type Runner interface {
	Run(text string) assistant.Result
}

// Session identifies a conversation.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Exchange is the result of one processed command: the user message, the
// single assistant reply and, unless processing failed, the pipeline output.
type Exchange struct {
	SessionID        string                          `json:"session_id"`
	UserMessage      models.Message                  `json:"user_message"`
	AssistantMessage models.Message                  `json:"assistant_message"`
	Classification   *assistant.ClassificationResult `json:"classification,omitempty"`
	Composition      *assistant.Composition          `json:"composition,omitempty"`
	View             *assistant.View                 `json:"view,omitempty"`
}

type AssistantService struct {
	pipeline Runner
	delay    time.Duration
	sessions *sessionStore
	log      *logger.Logger
}

// NewAssistantService builds the chat orchestrator. delay is the cosmetic
// pause before each pipeline run; maxSessions bounds the in-memory store.
func NewAssistantService(pipeline Runner, delay time.Duration, maxSessions int, log *logger.Logger) *AssistantService {
	if log == nil {
		log = logger.Nop()
	}
	return &AssistantService{
		pipeline: pipeline,
		delay:    delay,
		sessions: newSessionStore(maxSessions),
		log:      log,
	}
}

func (s *AssistantService) QuickCommands() []string {
	out := make([]string, len(quickCommands))
	copy(out, quickCommands)
	return out
}

func (s *AssistantService) Classify(text string) assistant.ClassificationResult {
	return assistant.Classify(text)
}

func (s *AssistantService) CreateSession(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	sess, evicted := s.sessions.create()
	if evicted != "" {
		s.log.Infow("assistant_session_evicted", "session_id", evicted)
	}
	return sess, nil
}

// ProcessCommand appends the user message, waits the processing delay, runs the
// pipeline and appends exactly one assistant message. Once the user message is
// recorded the command always completes, even if ctx is cancelled.
func (s *AssistantService) ProcessCommand(ctx context.Context, sessionID, text string) (Exchange, error) {
	if err := contracts.Validate(contracts.MessageSend{Content: text}); err != nil {
		return Exchange{}, err
	}
	text = strings.TrimSpace(text)

	userMsg := newMessage(models.RoleUser, text)
	if err := s.sessions.append(sessionID, userMsg); err != nil {
		return Exchange{}, err
	}

	s.pause(ctx)

	ex := Exchange{SessionID: sessionID, UserMessage: userMsg}
	res, err := s.run(text)
	if err != nil {
		s.log.Errorw("assistant_pipeline_failed", "session_id", sessionID, "input", text, "err", err)
		ex.AssistantMessage = newMessage(models.RoleAssistant, ProcessingErrorMessage)
	} else {
		ex.AssistantMessage = newMessage(models.RoleAssistant, res.Reply)
		ex.Classification = &res.Classification
		ex.Composition = &res.Composition
		ex.View = &res.View
	}

	if err := s.sessions.complete(sessionID, ex.AssistantMessage, ex.Composition, ex.View); err != nil {
		// session evicted while processing; the exchange is still returned
		s.log.Warnw("assistant_session_gone", "session_id", sessionID, "err", err)
	}
	return ex, nil
}

func (s *AssistantService) History(ctx context.Context, sessionID string) ([]models.Message, error) {
	return s.sessions.history(sessionID)
}

func (s *AssistantService) Stats(ctx context.Context, sessionID string) (SessionStats, error) {
	return s.sessions.stats(sessionID)
}

// Display returns the component currently shown for the session. It is nil
// until a command has been processed successfully.
func (s *AssistantService) Display(ctx context.Context, sessionID string) (*Display, error) {
	return s.sessions.display(sessionID)
}

// PruneIdle expires sessions with no activity since cutoff.
func (s *AssistantService) PruneIdle(cutoff time.Time) int {
	return s.sessions.prune(cutoff)
}

// pause holds for the cosmetic processing delay. A done ctx only cuts the
// pause short; the command is still processed and answered.
func (s *AssistantService) pause(ctx context.Context) {
	if s.delay <= 0 {
		return
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// run invokes the pipeline and converts a panic into an error.
func (s *AssistantService) run(text string) (res assistant.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errPipelinePanic, r)
		}
	}()
	return s.pipeline.Run(text), nil
}

var errPipelinePanic = errors.New("pipeline panic")

func newMessage(role, content string) models.Message {
	return models.Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
