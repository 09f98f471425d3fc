package models

import (
	"fmt"
	"strings"
)

// ScreenID identifies one addressable view on the watch display.
type ScreenID int

// Main carousel screens come first, special (SPL_*) sub-screens after.
const (
	ScreenHome ScreenID = iota
	ScreenHR
	ScreenSpO2
	ScreenTemp
	ScreenBPT
	ScreenECG
	ScreenToday
	ScreenSplBoot
	ScreenSplRawPPG
	ScreenSplECGScr2
	ScreenSplFiSensWear
	ScreenSplFiSensCheck
	ScreenSplBPTMeasure
	ScreenSplBPTCalComplete
	ScreenSplECGComplete
	ScreenSplPlotHRV
	ScreenSplSpO2Scr2
	ScreenSplSpO2Measure
	ScreenSplSpO2Complete
	ScreenSplSpO2Timeout
	ScreenSplLowBattery
	ScreenSplSpO2Select
	ScreenSplBPTCalProgress
	ScreenSplBPTFailed
	ScreenSplBPTEstComplete
	ScreenSplBPTCalRequired
	ScreenSplBLE
	ScreenSplSettings
	ScreenSplHRScr2
	ScreenSplPlotECG

	// ScreenListEnd is one past the last valid screen.
	ScreenListEnd
)

// ScreenListStart is the first valid screen.
const ScreenListStart = ScreenHome

var screenNames = [...]string{
	ScreenHome:              "HOME",
	ScreenHR:                "HR",
	ScreenSpO2:              "SPO2",
	ScreenTemp:              "TEMP",
	ScreenBPT:               "BPT",
	ScreenECG:               "ECG",
	ScreenToday:             "TODAY",
	ScreenSplBoot:           "SPL_BOOT",
	ScreenSplRawPPG:         "SPL_RAW_PPG",
	ScreenSplECGScr2:        "SPL_ECG_SCR2",
	ScreenSplFiSensWear:     "SPL_FI_SENS_WEAR",
	ScreenSplFiSensCheck:    "SPL_FI_SENS_CHECK",
	ScreenSplBPTMeasure:     "SPL_BPT_MEASURE",
	ScreenSplBPTCalComplete: "SPL_BPT_CAL_COMPLETE",
	ScreenSplECGComplete:    "SPL_ECG_COMPLETE",
	ScreenSplPlotHRV:        "SPL_PLOT_HRV",
	ScreenSplSpO2Scr2:       "SPL_SPO2_SCR2",
	ScreenSplSpO2Measure:    "SPL_SPO2_MEASURE",
	ScreenSplSpO2Complete:   "SPL_SPO2_COMPLETE",
	ScreenSplSpO2Timeout:    "SPL_SPO2_TIMEOUT",
	ScreenSplLowBattery:     "SPL_LOW_BATTERY",
	ScreenSplSpO2Select:     "SPL_SPO2_SELECT",
	ScreenSplBPTCalProgress: "SPL_BPT_CAL_PROGRESS",
	ScreenSplBPTFailed:      "SPL_BPT_FAILED",
	ScreenSplBPTEstComplete: "SPL_BPT_EST_COMPLETE",
	ScreenSplBPTCalRequired: "SPL_BPT_CAL_REQUIRED",
	ScreenSplBLE:            "SPL_BLE",
	ScreenSplSettings:       "SPL_SETTINGS",
	ScreenSplHRScr2:         "SPL_HR_SCR2",
	ScreenSplPlotECG:        "SPL_PLOT_ECG",
}

// Valid reports whether s lies in [ScreenListStart, ScreenListEnd).
func (s ScreenID) Valid() bool {
	return s >= ScreenListStart && s < ScreenListEnd
}

// Special reports whether s is one of the SPL_* sub-screens.
func (s ScreenID) Special() bool {
	return s >= ScreenSplBoot && s < ScreenListEnd
}

func (s ScreenID) String() string {
	if !s.Valid() {
		return fmt.Sprintf("SCREEN(%d)", int(s))
	}
	return screenNames[s]
}

// ParseScreen accepts a screen name ("spl_plot_ecg", "HOME").
func ParseScreen(name string) (ScreenID, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, v := range screenNames {
		if v == n {
			return ScreenID(i), nil
		}
	}
	return 0, fmt.Errorf("unknown screen %q", name)
}

func (s ScreenID) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("screen id %d out of range", int(s))
	}
	return []byte(s.String()), nil
}

func (s *ScreenID) UnmarshalText(b []byte) error {
	v, err := ParseScreen(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ScrollDirection tells the renderer which transition animation to use.
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollLeft
	ScrollRight
	ScrollUp
	ScrollDown
)

var scrollNames = [...]string{"NONE", "LEFT", "RIGHT", "UP", "DOWN"}

func (d ScrollDirection) String() string {
	if d < ScrollNone || d > ScrollDown {
		return fmt.Sprintf("SCROLL(%d)", int(d))
	}
	return scrollNames[d]
}

func (d ScrollDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *ScrollDirection) UnmarshalText(b []byte) error {
	n := strings.ToUpper(strings.TrimSpace(string(b)))
	if n == "" {
		*d = ScrollNone
		return nil
	}
	for i, v := range scrollNames {
		if v == n {
			*d = ScrollDirection(i)
			return nil
		}
	}
	return fmt.Errorf("unknown scroll direction %q", string(b))
}

// NavContext is everything needed to redraw a screen.
type NavContext struct {
	Screen    ScreenID        `json:"screen"`
	Direction ScrollDirection `json:"direction"`
	Args      [4]uint32       `json:"args"`
}
