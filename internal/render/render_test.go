package render

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"wearable_display/internal/models"
)

var fbTestTime = time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

func TestHub_FanOut(t *testing.T) {
	h := NewHub(4)
	a, cancelA := h.Subscribe()
	b, cancelB := h.Subscribe()
	defer cancelA()
	defer cancelB()

	h.LoadScreen(models.NavContext{Screen: models.ScreenHR, Direction: models.ScrollLeft})

	for _, ch := range []<-chan Command{a, b} {
		cmd := <-ch
		if cmd.Op != OpLoadScreen || cmd.Seq != 1 {
			t.Fatalf("unexpected command: %+v", cmd)
		}
		nav, ok := cmd.Data.(models.NavContext)
		if !ok || nav.Screen != models.ScreenHR {
			t.Fatalf("unexpected payload: %#v", cmd.Data)
		}
	}
}

func TestHub_SlowSubscriberDrops(t *testing.T) {
	h := NewHub(2)
	ch, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < 5; i++ {
		h.ShowSplash()
	}
	if len(ch) != 2 {
		t.Fatalf("buffered = %d, want 2", len(ch))
	}
	if h.Dropped() != 3 {
		t.Fatalf("dropped = %d, want 3", h.Dropped())
	}
}

func TestHub_UnsubscribeClosesStream(t *testing.T) {
	h := NewHub(1)
	ch, cancel := h.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("stream should be closed")
	}
	if h.Subscribers() != 0 {
		t.Fatalf("subscribers = %d", h.Subscribers())
	}
	h.ShowBoot()
}

func TestHub_DrawECGCopiesSamples(t *testing.T) {
	h := NewHub(1)
	ch, cancel := h.Subscribe()
	defer cancel()

	samples := []int16{1, 2, 3}
	h.DrawECG(samples, false)
	samples[0] = 99

	got := (<-ch).Data.(ecgData)
	if got.Samples[0] != 1 {
		t.Fatalf("published samples alias the caller's slice")
	}
}

func TestFramebuffer_SetPixelBounds(t *testing.T) {
	fb := NewFramebuffer(8, 4, nil)
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	fb.SetPixel(-1, 0, white)
	fb.SetPixel(8, 0, white)
	fb.SetPixel(0, 4, white)
	for _, b := range fb.Frame() {
		if b != 0 {
			t.Fatalf("out-of-range SetPixel wrote into the frame")
		}
	}

	fb.SetPixel(3, 2, white)
	if got := fb.Pixel(3, 2); got != 0xffff {
		t.Fatalf("pixel = %#04x, want 0xffff", got)
	}
}

func TestFramebuffer_LoadScreenDrawsHeader(t *testing.T) {
	var frames int
	fb := NewFramebuffer(0, 0, func([]byte) error {
		frames++
		return nil
	})
	fb.LoadScreen(models.NavContext{Screen: models.ScreenSplPlotECG})

	if frames != 1 {
		t.Fatalf("flushed %d frames, want 1", frames)
	}
	lit := false
	for x := 0; x < 100 && !lit; x++ {
		for y := 0; y < headerHeight; y++ {
			if fb.Pixel(x, y) != 0 {
				lit = true
				break
			}
		}
	}
	if !lit {
		t.Fatalf("header area is blank")
	}
}

func TestFramebuffer_ProgressBar(t *testing.T) {
	fb := NewFramebuffer(100, 100, nil)
	fb.ShowProgress("Calibrating", "")
	fb.UpdateProgress(50, "")

	cursor := rgb565From888(colorCursor.R, colorCursor.G, colorCursor.B)
	if got := fb.Pixel(20, 51); got != cursor {
		t.Fatalf("filled part = %#04x, want %#04x", got, cursor)
	}
	if got := fb.Pixel(80, 51); got == cursor {
		t.Fatalf("bar filled past 50%%")
	}
}

func TestFramebuffer_FlushError(t *testing.T) {
	boom := errors.New("device gone")
	fb := NewFramebuffer(10, 10, func([]byte) error { return boom })
	if err := fb.Display(); !errors.Is(err, boom) {
		t.Fatalf("want wrapped flush error, got %v", err)
	}
}

func TestWidgetText(t *testing.T) {
	v := models.Vitals{BatteryLevel: 80, Charging: true, Steps: 1200, Kcals: 45, ActiveMinutes: 15}
	if got := widgetText(models.WidgetBattery, v, fbTestTime); got != "BAT 80% +" {
		t.Fatalf("battery = %q", got)
	}
	if got := widgetText(models.WidgetToday, v, fbTestTime); got != "1200 steps  45 kcal  15 min" {
		t.Fatalf("today = %q", got)
	}
	if got := widgetText(models.WidgetTime, v, fbTestTime); got != "09:30:00" {
		t.Fatalf("time = %q", got)
	}
}
