package models

import (
	"fmt"
	"time"
)

// UserProfile feeds the calorie estimate. Read-only for the display core.
type UserProfile struct {
	HeightCM float64 `json:"height_cm" mapstructure:"height_cm"`
	WeightKG float64 `json:"weight_kg" mapstructure:"weight_kg"`
	MET      float64 `json:"met" mapstructure:"met"`
}

const (
	DefaultHeightCM = 170
	DefaultWeightKG = 70
	DefaultMET      = 3.5
)

// DefaultUserProfile is used until the user configures their own values.
func DefaultUserProfile() UserProfile {
	return UserProfile{HeightCM: DefaultHeightCM, WeightKG: DefaultWeightKG, MET: DefaultMET}
}

// Vitals holds the latest computed values shown by periodic widgets.
type Vitals struct {
	HR            uint16    `json:"hr"`
	SpO2          uint8     `json:"spo2"`
	TempF         float64   `json:"temp_f"`
	BatteryLevel  uint8     `json:"battery_level"`
	Charging      bool      `json:"charging"`
	Steps         uint32    `json:"steps"`
	Kcals         uint16    `json:"kcals"`
	ActiveMinutes uint16    `json:"active_minutes"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Widget is a periodically refreshed part of a screen.
type Widget int

const (
	WidgetTime Widget = iota
	WidgetBattery
	WidgetTemp
	WidgetTrends
	WidgetToday
	WidgetSettings
)

var widgetNames = [...]string{"TIME", "BATTERY", "TEMP", "TRENDS", "TODAY", "SETTINGS"}

func (w Widget) String() string {
	if w < WidgetTime || w > WidgetSettings {
		return fmt.Sprintf("WIDGET(%d)", int(w))
	}
	return widgetNames[w]
}

func (w Widget) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// VitalsUpdate carries the fields a sensor report actually contains.
// Nil fields leave the stored value unchanged.
type VitalsUpdate struct {
	HR           *uint16  `json:"hr,omitempty"`
	SpO2         *uint8   `json:"spo2,omitempty"`
	TempF        *float64 `json:"temp_f,omitempty"`
	BatteryLevel *uint8   `json:"battery_level,omitempty"`
	Charging     *bool    `json:"charging,omitempty"`
	Steps        *uint32  `json:"steps,omitempty"`
}

// Apply copies the present fields into v.
func (u VitalsUpdate) Apply(v *Vitals) {
	if u.HR != nil {
		v.HR = *u.HR
	}
	if u.SpO2 != nil {
		v.SpO2 = *u.SpO2
	}
	if u.TempF != nil {
		v.TempF = *u.TempF
	}
	if u.BatteryLevel != nil {
		v.BatteryLevel = *u.BatteryLevel
	}
	if u.Charging != nil {
		v.Charging = *u.Charging
	}
	if u.Steps != nil {
		v.Steps = *u.Steps
	}
}
