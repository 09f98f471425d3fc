package handlers

import (
	"net/http"

	"wearable_display/internal/models"

	"github.com/gin-gonic/gin"
)

type keepAwakeRequest struct {
	Enabled *bool `json:"enabled" binding:"required" example:"true"`
}

type batteryRequest struct {
	Low *bool `json:"low" binding:"required" example:"false"`
}

// ProgressRequest opens the progress screen.
type ProgressRequest struct {
	Title    string `json:"title" binding:"required" example:"Syncing"`
	Subtitle string `json:"subtitle,omitempty" example:"Uploading records"`
}

// @Summary      Power the display off
// @Tags         power
// @Produce      json
// @Success      202  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /api/v1/power/off [post]
// @Security     BearerAuth
func (h *Handler) powerOff(c *gin.Context) {
	if err := h.services.Power.PowerOff(); err != nil {
		h.respondServiceError(c, "power_off_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusQueued})
}

// @Summary      Boot the display after power-off
// @Tags         power
// @Produce      json
// @Success      202  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      429  {object}  map[string]string
// @Router       /api/v1/power/boot [post]
// @Security     BearerAuth
func (h *Handler) boot(c *gin.Context) {
	if err := h.services.Power.Boot(); err != nil {
		h.respondServiceError(c, "power_boot_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusQueued})
}

// @Summary      Hold the display awake
// @Description  While enabled the display stays ON and never enters inactivity sleep
// @Tags         power
// @Accept       json
// @Produce      json
// @Param        body  body      keepAwakeRequest  true  "Keep-awake flag"
// @Success      202   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/power/keep-awake [post]
// @Security     BearerAuth
func (h *Handler) keepAwake(c *gin.Context) {
	var req keepAwakeRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Power.SetKeepAwake(*req.Enabled); err != nil {
		h.respondServiceError(c, "power_keep_awake_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusQueued, "enabled": *req.Enabled})
}

// @Summary      Drive the simulated low-battery line
// @Tags         power
// @Accept       json
// @Produce      json
// @Param        body  body      batteryRequest  true  "Low battery flag"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "battery line is a real GPIO input"
// @Router       /api/v1/power/battery [post]
// @Security     BearerAuth
func (h *Handler) setBattery(c *gin.Context) {
	var req batteryRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Power.SetLowBattery(*req.Low); err != nil {
		h.respondServiceError(c, "power_battery_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusOK, "low": *req.Low})
}

// @Summary      Start a progress session
// @Tags         power
// @Accept       json
// @Produce      json
// @Param        body  body      ProgressRequest  true  "Progress titles"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/power/progress [post]
// @Security     BearerAuth
func (h *Handler) beginProgress(c *gin.Context) {
	var req ProgressRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Power.BeginProgress(req.Title, req.Subtitle); err != nil {
		h.respondServiceError(c, "power_progress_begin_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusQueued})
}

// @Summary      Update the progress screen
// @Description  done=true returns the display to ACTIVE
// @Tags         power
// @Accept       json
// @Produce      json
// @Param        body  body      models.ProgressUpdate  true  "Progress update"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/power/progress/update [post]
// @Security     BearerAuth
func (h *Handler) updateProgress(c *gin.Context) {
	var req models.ProgressUpdate
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Power.UpdateProgress(req); err != nil {
		h.respondServiceError(c, "power_progress_update_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusAccepted})
}
