package handlers

import (
	"errors"
	"net/http"

	"wearable_display/internal/display"
	"wearable_display/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK       = "ok"
	statusAccepted = "accepted"
	statusQueued   = "queued"

	errInvalidBodyPref = "invalid body: "
	errDisplayBusy     = "display busy, retry"
	errChannelFull     = "channel full, record dropped"
	errInternal        = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if id, ok := operatorID(c); ok {
			fields = append(fields, "operator", id)
		}
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps service and controller errors onto HTTP codes.
// Client mistakes and back-pressure are not logged as errors.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error) {
	switch {
	case errors.Is(err, display.ErrInvalidScreen), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDisplayBusy):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": errDisplayBusy})
	case errors.Is(err, display.ErrFull):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": errChannelFull})
	case errors.Is(err, service.ErrBatteryReadOnly), errors.Is(err, display.ErrDisplayOff):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternal, logKey, err)
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}
