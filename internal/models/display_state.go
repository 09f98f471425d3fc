package models

import (
	"fmt"
	"strings"
	"time"
)

// DisplayState is the top-level node of the display state machine.
type DisplayState int

const (
	StateInit DisplayState = iota
	StateSplash
	StateBoot
	StateScrProgress
	StateActive
	StateSleep
	StateOn
	StateOff
)

var stateNames = [...]string{"INIT", "SPLASH", "BOOT", "SCR_PROGRESS", "ACTIVE", "SLEEP", "ON", "OFF"}

func (s DisplayState) String() string {
	if s < StateInit || s > StateOff {
		return fmt.Sprintf("STATE(%d)", int(s))
	}
	return stateNames[s]
}

func (s DisplayState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *DisplayState) UnmarshalText(b []byte) error {
	n := strings.ToUpper(strings.TrimSpace(string(b)))
	for i, v := range stateNames {
		if v == n {
			*s = DisplayState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown display state %q", string(b))
}

// SavedSnapshot is the single-slot navigation history.
type SavedSnapshot struct {
	Context   NavContext `json:"context"`
	Saved     bool       `json:"saved"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ChannelStats describes one sample channel.
type ChannelStats struct {
	Name    string `json:"name"`
	Len     int    `json:"len"`
	Cap     int    `json:"cap"`
	Dropped uint64 `json:"dropped"`
}

// DisplayStatus is a read-only view of the controller.
type DisplayStatus struct {
	State         DisplayState   `json:"state"`
	Screen        ScreenID       `json:"screen"`
	Snapshot      SavedSnapshot  `json:"snapshot"`
	InactiveMs    int64          `json:"inactive_ms"`
	LowBattery    bool           `json:"low_battery"`
	KeepAwake     bool           `json:"keep_awake"`
	SleepEligible bool           `json:"sleep_eligible"`
	Channels      []ChannelStats `json:"channels"`
}
