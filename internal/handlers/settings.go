package handlers

import (
	"net/http"

	"hvac_assistant/internal/contracts"

	"github.com/gin-gonic/gin"
)

// @Summary      Get system settings
// @Description  Baseline defaults are returned until settings are first saved
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.SystemSettings
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings [get]
// @Security     BearerAuth
func (h *Handler) getSettings(c *gin.Context) {
	st, err := h.services.GetSettings(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load settings", "settings_get_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Replace system settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      contracts.SettingsUpdate  true  "Settings"
// @Success      200   {object}  models.SystemSettings
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/settings [put]
// @Security     BearerAuth
func (h *Handler) updateSettings(c *gin.Context) {
	var req contracts.SettingsUpdate
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	st, err := h.services.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "settings_update_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
