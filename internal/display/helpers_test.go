package display

import (
	"sync"
	"testing"
	"time"

	"wearable_display/internal/models"
)

// ---- Test doubles ----

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

type fakeBattery struct{ low bool }

func (b *fakeBattery) IsLowBattery() bool { return b.low }

type fakePanel struct {
	calls []bool
	err   error
}

func (p *fakePanel) SetPower(enable bool) error {
	p.calls = append(p.calls, enable)
	return p.err
}

func (p *fakePanel) last() (bool, bool) {
	if len(p.calls) == 0 {
		return false, false
	}
	return p.calls[len(p.calls)-1], true
}

// recordingRenderer remembers what the tick loop asked it to draw.
type recordingRenderer struct {
	NopRenderer
	splash   int
	boot     int
	bootMsgs []models.BootMessage
	loads    []models.NavContext
	ecg      int
	wrist    int
	finger   int
	widgets  []models.Widget
	progress []uint8
	titles   []string
}

func (r *recordingRenderer) ShowSplash() { r.splash++ }
func (r *recordingRenderer) ShowBoot() { r.boot++ }
func (r *recordingRenderer) AddBootStatus(m models.BootMessage) { r.bootMsgs = append(r.bootMsgs, m) }
func (r *recordingRenderer) ShowProgress(title, _ string) { r.titles = append(r.titles, title) }
func (r *recordingRenderer) UpdateProgress(p uint8, _ string) { r.progress = append(r.progress, p) }
func (r *recordingRenderer) LoadScreen(nav models.NavContext) { r.loads = append(r.loads, nav) }
func (r *recordingRenderer) DrawECG([]int16, bool) { r.ecg++ }
func (r *recordingRenderer) DrawPPGWrist(models.PPGWristSample) { r.wrist++ }
func (r *recordingRenderer) DrawPPGFinger(models.PPGFingerSample) {
	r.finger++
}
func (r *recordingRenderer) RefreshWidget(w models.Widget, _ models.Vitals) {
	r.widgets = append(r.widgets, w)
}

func (r *recordingRenderer) lastLoad(t *testing.T) models.NavContext {
	t.Helper()
	if len(r.loads) == 0 {
		t.Fatalf("expected at least one LoadScreen call")
	}
	return r.loads[len(r.loads)-1]
}

type harness struct {
	c        *Controller
	clock    *fakeClock
	panel    *fakePanel
	battery  *fakeBattery
	renderer *recordingRenderer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		clock:    newFakeClock(),
		panel:    &fakePanel{},
		battery:  &fakeBattery{},
		renderer: &recordingRenderer{},
	}
	h.c = New(Config{}, Deps{
		Renderer: h.renderer,
		Panel:    h.panel,
		Battery:  h.battery,
		Clock:    h.clock.Now,
	})
	return h
}

// toActive boots the controller through INIT, SPLASH and BOOT.
func (h *harness) toActive(t *testing.T) {
	t.Helper()
	h.c.Tick() // INIT -> SPLASH
	if err := h.c.PushBoot(models.BootMessage{Message: "ready", Complete: true}); err != nil {
		t.Fatalf("push boot: %v", err)
	}
	h.c.Tick() // SPLASH -> BOOT
	h.c.Tick() // BOOT -> ACTIVE (boot flag already set)
	if got := h.c.State(); got != models.StateActive {
		t.Fatalf("state = %s, want ACTIVE", got)
	}
}

func (h *harness) drainEvents() []models.DisplayEvent {
	var out []models.DisplayEvent
	for {
		ev, err := h.c.NextEvent()
		if err != nil {
			return out
		}
		out = append(out, ev)
	}
}

func hasEvent(evs []models.DisplayEvent, typ string) bool {
	for _, e := range evs {
		if e.Type == typ {
			return true
		}
	}
	return false
}
