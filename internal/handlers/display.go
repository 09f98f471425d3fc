package handlers

import (
	"net/http"

	"wearable_display/internal/models"

	"github.com/gin-gonic/gin"
)

// ScreenRequest selects a screen by name, e.g. "SPL_PLOT_ECG".
type ScreenRequest struct {
	Screen *models.ScreenID `json:"screen" binding:"required" swaggertype:"string" example:"HOME"`
}

type ScreenResponse struct {
	Screen models.ScreenID `json:"screen" swaggertype:"string" example:"HOME"`
}

// NavigateRequest loads a screen with its redraw context.
type NavigateRequest struct {
	Screen    *models.ScreenID       `json:"screen" binding:"required" swaggertype:"string" example:"SPL_PLOT_ECG"`
	Direction models.ScrollDirection `json:"direction,omitempty" swaggertype:"string" example:"UP"`
	Args      [4]uint32              `json:"args,omitempty"`
}

// GestureRequest submits one touch or button input.
type GestureRequest struct {
	Gesture models.Gesture `json:"gesture" swaggertype:"string" example:"SWIPE_LEFT"`
}

// @Summary      Display status
// @Description  Live state, current screen, history slot, inactivity and channel fill levels
// @Tags         display
// @Produce      json
// @Success      200  {object}  models.DisplayStatus
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/display/status [get]
// @Security     BearerAuth
func (h *Handler) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Monitoring.Status())
}

// @Summary      Current screen
// @Tags         display
// @Produce      json
// @Success      200  {object}  ScreenResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/display/screen [get]
// @Security     BearerAuth
func (h *Handler) getScreen(c *gin.Context) {
	c.JSON(http.StatusOK, ScreenResponse{Screen: h.services.Navigation.CurrentScreen()})
}

// @Summary      Set current screen
// @Description  Writes the screen register without a redraw. Use navigate to load a screen.
// @Tags         display
// @Accept       json
// @Produce      json
// @Param        body  body      ScreenRequest  true  "Screen"
// @Success      200   {object}  ScreenResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/display/screen [put]
// @Security     BearerAuth
func (h *Handler) setScreen(c *gin.Context) {
	var req ScreenRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Navigation.SetScreen(*req.Screen); err != nil {
		h.respondServiceError(c, "display_set_screen_failed", err)
		return
	}
	c.JSON(http.StatusOK, ScreenResponse{Screen: h.services.Navigation.CurrentScreen()})
}

// @Summary      Navigate to a screen
// @Tags         display
// @Accept       json
// @Produce      json
// @Param        body  body      NavigateRequest  true  "Navigation context"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/display/navigate [post]
// @Security     BearerAuth
func (h *Handler) navigate(c *gin.Context) {
	var req NavigateRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	nav := models.NavContext{Screen: *req.Screen, Direction: req.Direction, Args: req.Args}
	if err := h.services.Navigation.Navigate(nav); err != nil {
		h.respondServiceError(c, "display_navigate_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusQueued, "screen": nav.Screen})
}

// @Summary      Submit a gesture
// @Description  Counts as user activity immediately; dispatched on the next display tick
// @Tags         display
// @Accept       json
// @Produce      json
// @Param        body  body      GestureRequest  true  "Gesture"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/v1/display/gesture [post]
// @Security     BearerAuth
func (h *Handler) gesture(c *gin.Context) {
	var req GestureRequest
	if !h.bindJSONOrBadRequest(c, &req) {
		return
	}
	if err := h.services.Navigation.Gesture(req.Gesture); err != nil {
		h.respondServiceError(c, "display_gesture_failed", err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusQueued, "gesture": req.Gesture})
}

// @Summary      Register user activity
// @Description  Restarts the inactivity timer and wakes a sleeping display
// @Tags         display
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/display/activity [post]
// @Security     BearerAuth
func (h *Handler) activity(c *gin.Context) {
	h.services.Navigation.Activity()
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}

// @Summary      Last persisted history slot
// @Tags         display
// @Produce      json
// @Success      200  {object}  models.SavedSnapshot
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/display/snapshot [get]
// @Security     BearerAuth
func (h *Handler) getSnapshot(c *gin.Context) {
	snap, err := h.services.Monitoring.Snapshot(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load snapshot", "display_snapshot_failed", err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
