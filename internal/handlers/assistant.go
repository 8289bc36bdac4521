package handlers

import (
	"net/http"

	"hvac_assistant/internal/contracts"

	"github.com/gin-gonic/gin"
)

// @Summary      Quick commands
// @Description  Preset commands offered as one-click buttons
// @Tags         assistant
// @Produce      json
// @Success      200  {object}  map[string][]string  "commands"
// @Router       /api/v1/assistant/quick-commands [get]
func (h *Handler) quickCommands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commands": h.services.QuickCommands()})
}

// @Summary      Classify text
// @Description  Runs only the intent classifier; nothing is recorded
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      contracts.MessageSend  true  "Text to classify"
// @Success      200   {object}  assistant.ClassificationResult
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/assistant/classify [post]
func (h *Handler) classify(c *gin.Context) {
	var req contracts.MessageSend
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if err := contracts.Validate(req); err != nil {
		h.respondServiceError(c, "assistant_classify_failed", err)
		return
	}
	c.JSON(http.StatusOK, h.services.Classify(req.Content))
}

// @Summary      Create chat session
// @Tags         assistant
// @Produce      json
// @Success      201  {object}  service.Session
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/assistant/sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	sess, err := h.services.CreateSession(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "assistant_create_session_failed", err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// @Summary      Send a command
// @Description  Records the message, runs the assistant pipeline and returns the exchange
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Session ID"
// @Param        body  body      contracts.MessageSend  true  "Command"
// @Success      200   {object}  service.Exchange
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/assistant/sessions/{id}/messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	var req contracts.MessageSend
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id := c.Param("id")

	ex, err := h.services.ProcessCommand(c.Request.Context(), id, req.Content)
	if err != nil {
		h.respondServiceError(c, "assistant_process_failed", err, "session_id", id)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// @Summary      Conversation history
// @Tags         assistant
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  map[string]interface{}  "count, messages"
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/assistant/sessions/{id}/messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	id := c.Param("id")
	msgs, err := h.services.History(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "assistant_history_failed", err, "session_id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(msgs),
		"messages": msgs,
	})
}

// @Summary      Session statistics
// @Tags         assistant
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  service.SessionStats
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/assistant/sessions/{id}/stats [get]
func (h *Handler) sessionStats(c *gin.Context) {
	id := c.Param("id")
	st, err := h.services.Stats(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "assistant_stats_failed", err, "session_id", id)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Current component
// @Description  The component last generated for the session. format=html returns the rendered fragment.
// @Tags         assistant
// @Produce      json
// @Produce      html
// @Param        id      path      string  true   "Session ID"
// @Param        format  query     string  false  "Response format"  Enums(json,html)
// @Success      200     {object}  service.Display
// @Success      204     "Nothing processed yet"
// @Failure      404     {object}  map[string]string
// @Router       /api/v1/assistant/sessions/{id}/display [get]
func (h *Handler) sessionDisplay(c *gin.Context) {
	id := c.Param("id")
	d, err := h.services.Display(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "assistant_display_failed", err, "session_id", id)
		return
	}
	if d == nil {
		c.Status(http.StatusNoContent)
		return
	}
	if c.Query("format") == "html" {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(d.View.HTML))
		return
	}
	c.JSON(http.StatusOK, d)
}
