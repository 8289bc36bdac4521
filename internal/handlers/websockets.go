package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
)

// Envelope types emitted on the chat socket.
const (
	wsTypeSession    = "session"
	wsTypeProcessing = "processing"
	wsTypeExchange   = "exchange"
	wsTypeError      = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Upgrader for HTTP -> WebSocket. Consider tightening CheckOrigin in production.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary      Chat over WebSocket
// @Description  Client frames are {"content":"..."}. Each produces a "processing" envelope followed by "exchange" or "error". Without session_id a new session is created and announced in a "session" envelope.
// @Tags         assistant
// @Param        session_id  query  string  false  "Existing session ID"
// @Success      101
// @Failure      404  {object}  map[string]string
// @Router       /ws/assistant [get]
func (h *Handler) wsAssistant(c *gin.Context) {
	ctx := c.Request.Context()

	var announce *service.Session
	sessionID := c.Query("session_id")
	if sessionID == "" {
		sess, err := h.services.CreateSession(ctx)
		if err != nil {
			h.respondServiceError(c, "ws_create_session_failed", err)
			return
		}
		sessionID = sess.ID
		announce = &sess
	} else if _, err := h.services.Stats(ctx, sessionID); err != nil {
		h.respondServiceError(c, "ws_session_lookup_failed", err, "session_id", sessionID)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	// Configure read limits and pong handler to extend read deadline.
	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine forwards frames; the loop below is the only writer.
	incoming := make(chan wsFrame)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go h.startReader(conn, incoming, done, stop)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if announce != nil {
		if err := h.writeEnvelope(conn, wsEnvelope{Type: wsTypeSession, Data: announce}); err != nil {
			return
		}
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case f := <-incoming:
			if f.err != nil {
				if err := h.writeEnvelope(conn, wsEnvelope{Type: wsTypeError, Error: errInvalidBodyPref + f.err.Error()}); err != nil {
					return
				}
				continue
			}
			if err := h.handleCommand(c, conn, sessionID, f.msg); err != nil {
				return
			}
		}
	}
}

// handleCommand runs one command and writes its envelopes. Only write
// failures are returned; service errors are reported to the client.
func (h *Handler) handleCommand(c *gin.Context, conn *websocket.Conn, sessionID string, msg contracts.MessageSend) error {
	if err := h.writeEnvelope(conn, wsEnvelope{Type: wsTypeProcessing}); err != nil {
		return err
	}

	ex, err := h.services.ProcessCommand(c.Request.Context(), sessionID, msg.Content)
	if err != nil {
		if h.log != nil {
			h.log.Infow("ws_command_failed", "session_id", sessionID, "err", err)
		}
		return h.writeEnvelope(conn, wsEnvelope{Type: wsTypeError, Error: wsErrorText(err)})
	}
	return h.writeEnvelope(conn, wsEnvelope{Type: wsTypeExchange, Data: ex})
}

func wsErrorText(err error) string {
	var verr *contracts.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, service.ErrSessionNotFound):
		return err.Error()
	default:
		return errInternal
	}
}

// wsFrame is one decoded client frame, or the reason it could not be decoded.
type wsFrame struct {
	msg contracts.MessageSend
	err error
}

// startReader decodes client frames, handles control frames and detects closure.
func (h *Handler) startReader(conn *websocket.Conn, incoming chan<- wsFrame, done chan<- struct{}, stop <-chan struct{}) {
	defer close(done)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		var f wsFrame
		f.err = json.Unmarshal(data, &f.msg)
		select {
		case incoming <- f:
		case <-stop:
			return
		}
	}
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	err := conn.WriteJSON(env)
	if err != nil && h.log != nil {
		h.log.Infow("ws_write_failed", "type", env.Type, "err", err)
	}
	return err
}
