package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// pushRecord binds one record of type T and hands it to push. A full channel is 429.
func pushRecord[T any](h *Handler, c *gin.Context, logKey string, push func(T) error) {
	var rec T
	if !h.bindJSONOrBadRequest(c, &rec) {
		return
	}
	if err := push(rec); err != nil {
		h.respondServiceError(c, logKey, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": statusAccepted})
}

// @Summary      Push an ECG/bioZ record
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      models.ECGBioZSample  true  "ECG record"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string  "channel full, record dropped"
// @Router       /api/v1/sensors/ecg [post]
// @Security     BearerAuth
func (h *Handler) pushECG(c *gin.Context) {
	pushRecord(h, c, "sensors_ecg_failed", h.services.Sensors.PushECG)
}

// @Summary      Push a wrist PPG record
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      models.PPGWristSample  true  "PPG wrist record"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string  "channel full, record dropped"
// @Router       /api/v1/sensors/ppg-wrist [post]
// @Security     BearerAuth
func (h *Handler) pushPPGWrist(c *gin.Context) {
	pushRecord(h, c, "sensors_ppg_wrist_failed", h.services.Sensors.PushPPGWrist)
}

// @Summary      Push a finger PPG record
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      models.PPGFingerSample  true  "PPG finger record"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string  "channel full, record dropped"
// @Router       /api/v1/sensors/ppg-finger [post]
// @Security     BearerAuth
func (h *Handler) pushPPGFinger(c *gin.Context) {
	pushRecord(h, c, "sensors_ppg_finger_failed", h.services.Sensors.PushPPGFinger)
}

// @Summary      Push a boot self-test line
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      models.BootMessage  true  "Boot message"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string  "channel full, record dropped"
// @Router       /api/v1/sensors/boot [post]
// @Security     BearerAuth
func (h *Handler) pushBoot(c *gin.Context) {
	pushRecord(h, c, "sensors_boot_failed", h.services.Sensors.PushBoot)
}

// @Summary      Update widget vitals
// @Description  Only the fields present in the body are changed
// @Tags         sensors
// @Accept       json
// @Produce      json
// @Param        body  body      models.VitalsUpdate  true  "Vitals"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/sensors/vitals [post]
// @Security     BearerAuth
func (h *Handler) updateVitals(c *gin.Context) {
	pushRecord(h, c, "sensors_vitals_failed", h.services.Sensors.UpdateVitals)
}
