package service

import (
	"errors"
	"fmt"

	"wearable_display/internal/models"
)

// ErrBatteryReadOnly is returned when the low-battery line is a real input.
var ErrBatteryReadOnly = errors.New("battery line is read-only")

type PowerService struct {
	display Display
	battery BatterySwitch
}

func NewPowerService(d Display, battery BatterySwitch) *PowerService {
	return &PowerService{display: d, battery: battery}
}

func (s *PowerService) PowerOff() error {
	return command("power off", s.display.PowerOff())
}

func (s *PowerService) Boot() error {
	return command("boot", s.display.Boot())
}

func (s *PowerService) SetKeepAwake(enabled bool) error {
	return command("keep awake", s.display.SetKeepAwake(enabled))
}

// SetLowBattery flips the simulated battery line; the controller sees it on its next tick.
func (s *PowerService) SetLowBattery(low bool) error {
	if s.battery == nil {
		return ErrBatteryReadOnly
	}
	s.battery.SetLow(low)
	return nil
}

func (s *PowerService) BeginProgress(title, subtitle string) error {
	if title == "" {
		return fmt.Errorf("%w: progress title is required", ErrInvalidInput)
	}
	return command("begin progress", s.display.BeginProgress(title, subtitle))
}

func (s *PowerService) UpdateProgress(u models.ProgressUpdate) error {
	if u.Percent > 100 {
		return fmt.Errorf("%w: percent above 100", ErrInvalidInput)
	}
	return wrapPush("progress", s.display.PushProgress(u))
}
