package service

import (
	"fmt"
	"time"

	"wearable_display/internal/models"
)

// SensorService forwards records to the display channels. A full channel drops the
// record and the error wraps display.ErrFull.
type SensorService struct {
	display Display
	now     func() time.Time
}

func NewSensorService(d Display) *SensorService {
	return &SensorService{display: d, now: time.Now}
}

func (s *SensorService) PushECG(r models.ECGBioZSample) error {
	if int(r.ECGCount) > models.ECGSamplesPerRecord || int(r.BioZCount) > models.BioZSamplesPerRecord {
		return fmt.Errorf("%w: ecg record counts exceed array size", ErrInvalidInput)
	}
	return wrapPush("ecg", s.display.PushECG(r))
}

func (s *SensorService) PushPPGWrist(r models.PPGWristSample) error {
	if int(r.PPGCount) > models.PPGSamplesPerRecord {
		return fmt.Errorf("%w: ppg_count exceeds array size", ErrInvalidInput)
	}
	return wrapPush("ppg_wrist", s.display.PushPPGWrist(r))
}

func (s *SensorService) PushPPGFinger(r models.PPGFingerSample) error {
	if int(r.PPGCount) > models.PPGSamplesPerRecord {
		return fmt.Errorf("%w: ppg_count exceeds array size", ErrInvalidInput)
	}
	if r.BPTProgress > 100 {
		return fmt.Errorf("%w: bpt_progress above 100", ErrInvalidInput)
	}
	return wrapPush("ppg_finger", s.display.PushPPGFinger(r))
}

func (s *SensorService) PushBoot(r models.BootMessage) error {
	return wrapPush("boot", s.display.PushBoot(r))
}

// UpdateVitals merges the present fields into the widget vitals.
func (s *SensorService) UpdateVitals(u models.VitalsUpdate) error {
	if u.BatteryLevel != nil && *u.BatteryLevel > 100 {
		return fmt.Errorf("%w: battery_level above 100", ErrInvalidInput)
	}
	s.display.Vitals().Update(s.now(), u.Apply)
	return nil
}

func wrapPush(channel string, err error) error {
	if err != nil {
		return fmt.Errorf("push %s: %w", channel, err)
	}
	return nil
}
