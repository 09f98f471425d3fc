package models

import "time"

// Journal event types.
const (
	EventStateChange   = "STATE_CHANGE"
	EventNavigate      = "NAVIGATE"
	EventScreenSave    = "SCREEN_SAVE"
	EventScreenRestore = "SCREEN_RESTORE"
	EventScreenClear   = "SCREEN_CLEAR"
	EventPowerOff      = "POWER_OFF"
	EventLowBattery    = "LOW_BATTERY"
	EventProgress      = "PROGRESS"
)

var eventTypes = map[string]bool{
	EventStateChange:   true,
	EventNavigate:      true,
	EventScreenSave:    true,
	EventScreenRestore: true,
	EventScreenClear:   true,
	EventPowerOff:      true,
	EventLowBattery:    true,
	EventProgress:      true,
}

// IsEventType reports whether t is one of the journal event types above.
func IsEventType(t string) bool { return eventTypes[t] }

// DisplayEvent is a single journal entry.
type DisplayEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // STATE_CHANGE | NAVIGATE | SCREEN_SAVE | ...
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
