package models

import (
	"encoding/json"
	"testing"
)

func TestScreenID_Valid(t *testing.T) {
	tests := []struct {
		id   ScreenID
		want bool
	}{
		{ScreenListStart, true},
		{ScreenSplPlotECG, true},
		{ScreenListEnd, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := tt.id.Valid(); got != tt.want {
			t.Fatalf("ScreenID(%d).Valid() = %v, want %v", int(tt.id), got, tt.want)
		}
	}
}

func TestParseScreen(t *testing.T) {
	for id := ScreenListStart; id < ScreenListEnd; id++ {
		got, err := ParseScreen(id.String())
		if err != nil || got != id {
			t.Fatalf("ParseScreen(%q) = %v, %v", id.String(), got, err)
		}
	}
	if got, err := ParseScreen(" spl_plot_ecg "); err != nil || got != ScreenSplPlotECG {
		t.Fatalf("lowercase name: got %v, %v", got, err)
	}
	if _, err := ParseScreen("WATCHFACE"); err == nil {
		t.Fatalf("expected error for unknown screen")
	}
}

func TestScreenID_MarshalRejectsOutOfRange(t *testing.T) {
	if _, err := json.Marshal(NavContext{Screen: ScreenListEnd}); err == nil {
		t.Fatalf("expected marshal error for out-of-range screen")
	}
}

func TestNavContext_JSON(t *testing.T) {
	var nav NavContext
	body := `{"screen":"SPL_SPO2_MEASURE","direction":"up","args":[1,2,0,0]}`
	if err := json.Unmarshal([]byte(body), &nav); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if nav.Screen != ScreenSplSpO2Measure || nav.Direction != ScrollUp || nav.Args[1] != 2 {
		t.Fatalf("unexpected nav: %+v", nav)
	}
}

func TestParseGesture(t *testing.T) {
	g, err := ParseGesture("long_press")
	if err != nil || g != GestureLongPress {
		t.Fatalf("ParseGesture = %v, %v", g, err)
	}
	if _, err := ParseGesture("pinch"); err == nil {
		t.Fatalf("expected error for unknown gesture")
	}
}

func TestDisplayState_Text(t *testing.T) {
	var s DisplayState
	if err := s.UnmarshalText([]byte("scr_progress")); err != nil || s != StateScrProgress {
		t.Fatalf("UnmarshalText = %v, %v", s, err)
	}
	if StateOff.String() != "OFF" {
		t.Fatalf("String() = %q", StateOff.String())
	}
}
