package display

import (
	"context"
	"errors"
	"testing"
	"time"

	"wearable_display/internal/models"
)

func TestController_BootSequence(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	if h.renderer.splash != 1 || h.renderer.boot != 1 {
		t.Fatalf("splash=%d boot=%d, want 1 each", h.renderer.splash, h.renderer.boot)
	}
	if len(h.renderer.bootMsgs) != 1 || !h.renderer.bootMsgs[0].Complete {
		t.Fatalf("boot messages not forwarded: %+v", h.renderer.bootMsgs)
	}
	if on, ok := h.panel.last(); !ok || !on {
		t.Fatalf("panel should be on after init")
	}
	if got := h.renderer.lastLoad(t).Screen; got != models.ScreenHome {
		t.Fatalf("first screen = %s, want HOME", got)
	}
}

func TestController_BootTimesOut(t *testing.T) {
	h := newHarness(t)
	h.c.Tick()
	h.clock.Advance(DefaultSplashTimeout)
	h.c.Tick()
	if got := h.c.State(); got != models.StateBoot {
		t.Fatalf("state = %s, want BOOT", got)
	}
	h.clock.Advance(DefaultBootTimeout)
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE after boot timeout", got)
	}
}

func TestController_SleepSavesAndWakeRestores(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	if err := h.c.Navigate(models.NavContext{Screen: models.ScreenSplPlotECG, Direction: models.ScrollUp}); err != nil {
		t.Fatalf("navigate: %v", err)
	}
	h.c.Tick()
	h.drainEvents()

	h.clock.Advance(DefaultSleepThreshold + time.Millisecond)
	h.c.Tick()
	if got := h.c.State(); got != models.StateSleep {
		t.Fatalf("state = %s, want SLEEP", got)
	}
	if on, _ := h.panel.last(); on {
		t.Fatalf("panel should be off while sleeping")
	}
	snap := h.c.History().Snapshot()
	if !snap.Saved || snap.Context.Screen != models.ScreenSplPlotECG {
		t.Fatalf("snapshot not saved on sleep: %+v", snap)
	}
	if evs := h.drainEvents(); !hasEvent(evs, models.EventScreenSave) {
		t.Fatalf("missing SCREEN_SAVE event in %+v", evs)
	}

	// samples keep arriving while the panel is dark
	for i := 0; i < 5; i++ {
		_ = h.c.PushECG(models.ECGBioZSample{ECGCount: 4})
	}
	_ = h.c.SetCurrentScreen(models.ScreenHome)

	h.c.Tick()
	if got := h.c.State(); got != models.StateSleep {
		t.Fatalf("state = %s, want SLEEP without activity", got)
	}

	if err := h.c.SubmitGesture(models.GestureTap); err != nil {
		t.Fatalf("gesture: %v", err)
	}
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE after wake", got)
	}
	if on, _ := h.panel.last(); !on {
		t.Fatalf("panel should be on after wake")
	}
	if got := h.renderer.lastLoad(t).Screen; got != models.ScreenSplPlotECG {
		t.Fatalf("woke on %s, want SPL_PLOT_ECG", got)
	}
	if h.c.History().Saved() {
		t.Fatalf("snapshot should be consumed on wake")
	}
	if n := h.c.Channels().ECG.Len(); n != 0 {
		t.Fatalf("stale samples survived wake: %d", n)
	}
	evs := h.drainEvents()
	if !hasEvent(evs, models.EventScreenRestore) || !hasEvent(evs, models.EventScreenClear) {
		t.Fatalf("missing restore/clear events in %+v", evs)
	}
}

func TestController_WakeOnRegisterActivity(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)
	h.clock.Advance(11 * time.Second)
	h.c.Tick()
	if h.c.State() != models.StateSleep {
		t.Fatalf("expected SLEEP")
	}
	h.c.RegisterActivity()
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE", got)
	}
}

func TestController_GestureBeatsSleep(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	h.clock.Advance(DefaultSleepThreshold + time.Second)
	if err := h.c.SubmitGesture(models.GestureSwipeLeft); err != nil {
		t.Fatalf("gesture: %v", err)
	}
	h.c.Tick()

	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE", got)
	}
	if got := h.c.CurrentScreen(); got != models.ScreenToday {
		t.Fatalf("screen = %s, want TODAY", got)
	}
	if nav := h.renderer.lastLoad(t); nav.Direction != models.ScrollLeft {
		t.Fatalf("direction = %s, want LEFT", nav.Direction)
	}
}

func TestController_LowBatteryBlocksSleep(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)
	h.drainEvents()

	h.battery.low = true
	h.clock.Advance(time.Minute)
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE on low battery", got)
	}
	if got := h.c.CurrentScreen(); got != models.ScreenSplLowBattery {
		t.Fatalf("screen = %s, want SPL_LOW_BATTERY", got)
	}

	h.c.Tick()
	count := 0
	for _, ev := range h.drainEvents() {
		if ev.Type == models.EventLowBattery {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("LOW_BATTERY emitted %d times, want 1", count)
	}
}

func TestController_PowerOffAndBoot(t *testing.T) {
	tests := []struct {
		name string
		off  func(c *Controller) error
	}{
		{"power off command", func(c *Controller) error { return c.PowerOff() }},
		{"long press", func(c *Controller) error { return c.SubmitGesture(models.GestureLongPress) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.toActive(t)
			h.drainEvents()

			if err := tt.off(h.c); err != nil {
				t.Fatalf("off: %v", err)
			}
			h.c.Tick()
			if got := h.c.State(); got != models.StateOff {
				t.Fatalf("state = %s, want OFF", got)
			}
			if on, _ := h.panel.last(); on {
				t.Fatalf("panel should be off")
			}
			if !hasEvent(h.drainEvents(), models.EventPowerOff) {
				t.Fatalf("missing POWER_OFF event")
			}

			_ = h.c.SubmitGesture(models.GestureTap)
			h.c.Tick()
			if got := h.c.State(); got != models.StateOff {
				t.Fatalf("gesture woke an OFF display: %s", got)
			}

			_ = h.c.Boot()
			h.c.Tick()
			if got := h.c.State(); got != models.StateInit {
				t.Fatalf("state = %s, want INIT", got)
			}
			h.c.Tick()
			if got := h.c.State(); got != models.StateSplash {
				t.Fatalf("state = %s, want SPLASH", got)
			}
		})
	}
}

func TestController_PowerOffFromSleepSkipsRestore(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)
	h.clock.Advance(11 * time.Second)
	h.c.Tick()
	calls := len(h.panel.calls)

	_ = h.c.PowerOff()
	h.c.Tick()
	if got := h.c.State(); got != models.StateOff {
		t.Fatalf("state = %s, want OFF", got)
	}
	for _, on := range h.panel.calls[calls:] {
		if on {
			t.Fatalf("panel switched on while powering off from sleep")
		}
	}
	if h.c.History().Saved() {
		t.Fatalf("history should be cleared on power off")
	}
}

func TestController_KeepAwake(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	_ = h.c.SetKeepAwake(true)
	h.c.Tick()
	if got := h.c.State(); got != models.StateOn {
		t.Fatalf("state = %s, want ON", got)
	}
	if !h.c.Status().KeepAwake {
		t.Fatalf("status should report keep-awake")
	}
	loads := len(h.renderer.loads)

	h.clock.Advance(time.Minute)
	h.c.Tick()
	if got := h.c.State(); got != models.StateOn {
		t.Fatalf("state = %s, want ON past the sleep threshold", got)
	}

	_ = h.c.SetKeepAwake(false)
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE", got)
	}
	if len(h.renderer.loads) != loads {
		t.Fatalf("leaving ON should not reload the screen")
	}
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE right after keep-awake ends", got)
	}
}

func TestController_Progress(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	_ = h.c.BeginProgress("Calibrating", "BPT")
	h.c.Tick()
	if got := h.c.State(); got != models.StateScrProgress {
		t.Fatalf("state = %s, want SCR_PROGRESS", got)
	}
	if len(h.renderer.titles) != 1 || h.renderer.titles[0] != "Calibrating" {
		t.Fatalf("progress screen not shown: %v", h.renderer.titles)
	}

	_ = h.c.PushProgress(models.ProgressUpdate{Percent: 50})
	h.c.Tick()
	if got := h.c.State(); got != models.StateScrProgress {
		t.Fatalf("state = %s, want SCR_PROGRESS", got)
	}

	_ = h.c.PushProgress(models.ProgressUpdate{Percent: 100, Done: true})
	h.c.Tick()
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE", got)
	}
	if len(h.renderer.progress) != 2 || h.renderer.progress[1] != 100 {
		t.Fatalf("progress updates = %v", h.renderer.progress)
	}
}

func TestController_DrainsOnlyVisiblePlot(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	_ = h.c.Navigate(models.NavContext{Screen: models.ScreenSplPlotECG})
	h.c.Tick()

	for i := 0; i < 20; i++ {
		_ = h.c.PushECG(models.ECGBioZSample{ECGCount: 8})
	}
	_ = h.c.PushPPGWrist(models.PPGWristSample{})
	h.c.Tick()

	if h.renderer.ecg != DefaultMaxDrainPerTick {
		t.Fatalf("drew %d ECG records, want %d", h.renderer.ecg, DefaultMaxDrainPerTick)
	}
	if n := h.c.Channels().ECG.Len(); n != 20-DefaultMaxDrainPerTick {
		t.Fatalf("ECG left = %d", n)
	}
	if h.renderer.wrist != 0 || h.c.Channels().PPGWrist.Len() != 1 {
		t.Fatalf("wrist channel should keep buffering off-screen")
	}
}

func TestController_InvalidScreen(t *testing.T) {
	h := newHarness(t)
	if err := h.c.Navigate(models.NavContext{Screen: models.ScreenListEnd}); !errors.Is(err, ErrInvalidScreen) {
		t.Fatalf("navigate: want ErrInvalidScreen, got %v", err)
	}
	if err := h.c.SetCurrentScreen(-1); !errors.Is(err, ErrInvalidScreen) {
		t.Fatalf("set: want ErrInvalidScreen, got %v", err)
	}
}

func TestController_StatusListsChannels(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)
	st := h.c.Status()
	if st.State != models.StateActive || st.Screen != models.ScreenHome {
		t.Fatalf("unexpected status: %+v", st)
	}
	if len(st.Channels) != 7 {
		t.Fatalf("channels = %d, want 7", len(st.Channels))
	}
}

func TestController_RunStopsOnCancel(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.c.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestController_NavigateHeldWhileAsleep(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)
	h.clock.Advance(DefaultSleepThreshold + time.Millisecond)
	h.c.Tick()
	if h.c.State() != models.StateSleep {
		t.Fatalf("expected SLEEP")
	}
	loads := len(h.renderer.loads)
	h.drainEvents()

	for _, id := range []models.ScreenID{models.ScreenHR, models.ScreenSpO2} {
		if err := h.c.Navigate(models.NavContext{Screen: id, Direction: models.ScrollUp}); err != nil {
			t.Fatalf("navigate %s: %v", id, err)
		}
	}
	h.c.Tick()
	if got := h.c.State(); got != models.StateSleep {
		t.Fatalf("navigate woke the display: %s", got)
	}
	if got := h.c.CurrentScreen(); got != models.ScreenHome {
		t.Fatalf("screen = %s while asleep, want HOME", got)
	}
	if len(h.renderer.loads) != loads {
		t.Fatalf("screen loaded while the panel is off")
	}

	h.c.RegisterActivity()
	h.c.Tick() // SLEEP -> ACTIVE, restores HOME
	h.c.Tick() // held navigation applied
	if got := h.c.CurrentScreen(); got != models.ScreenSpO2 {
		t.Fatalf("screen = %s after wake, want SPO2 (latest request)", got)
	}
	if nav := h.renderer.lastLoad(t); nav.Screen != models.ScreenSpO2 || nav.Direction != models.ScrollUp {
		t.Fatalf("last load = %+v", nav)
	}
	if !hasEvent(h.drainEvents(), models.EventNavigate) {
		t.Fatalf("missing NAVIGATE event")
	}

	h.c.Tick()
	if got := h.c.CurrentScreen(); got != models.ScreenSpO2 {
		t.Fatalf("held navigation replayed: %s", got)
	}
}

func TestController_NavigateHeldDuringProgress(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)

	_ = h.c.BeginProgress("Update", "")
	h.c.Tick()
	if got := h.c.State(); got != models.StateScrProgress {
		t.Fatalf("state = %s, want SCR_PROGRESS", got)
	}
	_ = h.c.Navigate(models.NavContext{Screen: models.ScreenHR})
	h.c.Tick()
	if got := h.c.CurrentScreen(); got == models.ScreenHR {
		t.Fatalf("navigation applied over the progress screen")
	}

	_ = h.c.PushProgress(models.ProgressUpdate{Percent: 100, Done: true})
	h.c.Tick()
	h.c.Tick()
	if got := h.c.CurrentScreen(); got != models.ScreenHR {
		t.Fatalf("screen = %s, want HR after progress", got)
	}
}

func TestController_NavigateWhileOff(t *testing.T) {
	h := newHarness(t)
	h.toActive(t)
	h.drainEvents()

	// queued in the same tick as the power-off: dropped and journaled
	_ = h.c.Navigate(models.NavContext{Screen: models.ScreenHR})
	_ = h.c.PowerOff()
	h.c.Tick()
	if got := h.c.State(); got != models.StateOff {
		t.Fatalf("state = %s, want OFF", got)
	}
	dropped := false
	for _, ev := range h.drainEvents() {
		if meta, ok := ev.Metadata.(map[string]any); ok && ev.Type == models.EventNavigate && meta["dropped"] == true {
			dropped = true
		}
	}
	if !dropped {
		t.Fatalf("dropped navigation not journaled")
	}

	if err := h.c.Navigate(models.NavContext{Screen: models.ScreenHR}); !errors.Is(err, ErrDisplayOff) {
		t.Fatalf("navigate while off: want ErrDisplayOff, got %v", err)
	}

	_ = h.c.Boot()
	h.c.Tick()
	h.toActive(t)
	h.c.Tick()
	if got := h.c.CurrentScreen(); got != models.ScreenHome {
		t.Fatalf("screen = %s after boot, want HOME", got)
	}
}
