package models

import (
	"fmt"
	"strings"
)

// Gesture is a touch or button input from the UI context.
type Gesture int

const (
	GestureNone Gesture = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureTap
	GestureCrownPress
	GestureLongPress
)

var gestureNames = [...]string{"NONE", "SWIPE_LEFT", "SWIPE_RIGHT", "SWIPE_UP", "SWIPE_DOWN", "TAP", "CROWN_PRESS", "LONG_PRESS"}

func (g Gesture) String() string {
	if g < GestureNone || g > GestureLongPress {
		return fmt.Sprintf("GESTURE(%d)", int(g))
	}
	return gestureNames[g]
}

// ParseGesture accepts names like "swipe_left".
func ParseGesture(name string) (Gesture, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	for i, v := range gestureNames {
		if v == n {
			return Gesture(i), nil
		}
	}
	return GestureNone, fmt.Errorf("unknown gesture %q", name)
}

func (g Gesture) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gesture) UnmarshalText(b []byte) error {
	v, err := ParseGesture(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}
