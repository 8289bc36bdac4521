package handlers

import (
	"net/http"

	"hvac_assistant/internal/contracts"
	"hvac_assistant/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List devices
// @Tags         devices
// @Produce      json
// @Param        type    query     string  false  "Device type"    Enums(chiller,boiler,ahu,cooling_tower,pump,heat_pump)
// @Param        status  query     string  false  "Device status"  Enums(online,offline,maintenance)
// @Success      200     {object}  map[string]interface{}  "count, devices"
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/devices [get]
// @Security     BearerAuth
func (h *Handler) listDevices(c *gin.Context) {
	devices, err := h.services.ListDevices(c.Request.Context(), service.DeviceFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	})
	if err != nil {
		h.respondServiceError(c, "device_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(devices),
		"devices": devices,
	})
}

// @Summary      Register device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        body  body      contracts.DeviceCreate  true  "Device"
// @Success      201   {object}  models.HVACDevice
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/devices [post]
// @Security     BearerAuth
func (h *Handler) createDevice(c *gin.Context) {
	var req contracts.DeviceCreate
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	d, err := h.services.CreateDevice(c.Request.Context(), req)
	if err != nil {
		h.respondServiceError(c, "device_create_failed", err, "name", req.Name)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// @Summary      Get device
// @Tags         devices
// @Produce      json
// @Param        id   path      string  true  "Device ID"
// @Success      200  {object}  models.HVACDevice
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/devices/{id} [get]
// @Security     BearerAuth
func (h *Handler) getDevice(c *gin.Context) {
	id := c.Param("id")
	d, err := h.services.GetDevice(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, "device_get_failed", err, "device_id", id)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Update device
// @Description  Partial update; omitted fields are left unchanged
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Device ID"
// @Param        body  body      contracts.DeviceUpdate  true  "Changed fields"
// @Success      200   {object}  models.HVACDevice
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/devices/{id} [patch]
// @Security     BearerAuth
func (h *Handler) updateDevice(c *gin.Context) {
	var req contracts.DeviceUpdate
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	id := c.Param("id")
	d, err := h.services.UpdateDevice(c.Request.Context(), id, req)
	if err != nil {
		h.respondServiceError(c, "device_update_failed", err, "device_id", id)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Delete device
// @Tags         devices
// @Param        id   path  string  true  "Device ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/devices/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteDevice(c *gin.Context) {
	id := c.Param("id")
	if err := h.services.DeleteDevice(c.Request.Context(), id); err != nil {
		h.respondServiceError(c, "device_delete_failed", err, "device_id", id)
		return
	}
	c.Status(http.StatusNoContent)
}
