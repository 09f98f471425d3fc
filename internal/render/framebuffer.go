package render

import (
	"fmt"
	"image/color"
	"sync"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/models"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	DefaultWidth  = 240
	DefaultHeight = 240

	fontHeight   = 10
	fontOffset   = 8
	headerHeight = 14
	maxBootLines = 12
)

var (
	colorBG     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorFG     = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorDim    = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorHeader = color.RGBA{R: 0x18, G: 0x18, B: 0x18, A: 0xff}
	colorOK     = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorFail   = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	colorTrace  = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorCursor = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

// FlushFunc pushes a finished RGB565 frame to the output device.
type FlushFunc func(frame []byte) error

// Framebuffer renders into an in-memory RGB565 frame with tinyfont text and
// scrolling waveform traces. It is a tinygo drivers.Displayer, so any
// tinyfont font or tinydraw routine can target it.
type Framebuffer struct {
	mu    sync.Mutex
	w, h  int
	buf   []byte
	font  tinyfont.Fonter
	flush FlushFunc
	clock func() time.Time

	bootLines []models.BootMessage
	traceX    int
	traceY    int16
	flushErrs uint64
}

var (
	_ drivers.Displayer = (*Framebuffer)(nil)
	_ display.Renderer  = (*Framebuffer)(nil)
)

// NewFramebuffer allocates a w x h frame. flush may be nil for headless use.
func NewFramebuffer(w, h int, flush FlushFunc) *Framebuffer {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return &Framebuffer{
		w:     w,
		h:     h,
		buf:   make([]byte, w*h*2),
		font:  &proggy.TinySZ8pt7b,
		flush: flush,
		clock: time.Now,
	}
}

func (f *Framebuffer) Size() (x, y int16) {
	return int16(f.w), int16(f.h)
}

func (f *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.w || iy < 0 || iy >= f.h {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	off := (iy*f.w + ix) * 2
	f.buf[off] = byte(p)
	f.buf[off+1] = byte(p >> 8)
}

// Display hands the frame to the flush func.
func (f *Framebuffer) Display() error {
	if f.flush == nil {
		return nil
	}
	if err := f.flush(f.buf); err != nil {
		f.flushErrs++
		return fmt.Errorf("flush frame: %w", err)
	}
	return nil
}

// Pixel reads back one RGB565 value.
func (f *Framebuffer) Pixel(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return 0
	}
	off := (y*f.w + x) * 2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// Frame returns a copy of the current frame.
func (f *Framebuffer) Frame() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.buf...)
}

func (f *Framebuffer) fillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := clampInt(x, 0, f.w), clampInt(y, 0, f.h)
	x1, y1 := clampInt(x+w, 0, f.w), clampInt(y+h, 0, f.h)
	p := rgb565From888(c.R, c.G, c.B)
	lo, hi := byte(p), byte(p>>8)
	for py := y0; py < y1; py++ {
		row := py * f.w * 2
		for px := x0; px < x1; px++ {
			f.buf[row+px*2] = lo
			f.buf[row+px*2+1] = hi
		}
	}
}

func (f *Framebuffer) text(x, row int, c color.RGBA, s string) {
	tinyfont.WriteLine(f, f.font, int16(x), int16(row*fontHeight+fontOffset), s, c)
}

func (f *Framebuffer) centered(row int, c color.RGBA, s string) {
	w, _ := tinyfont.LineWidth(f.font, s)
	f.text((f.w-int(w))/2, row, c, s)
}

func (f *Framebuffer) header(title string) {
	f.fillRect(0, 0, f.w, headerHeight, colorHeader)
	f.text(4, 0, colorFG, title)
}

func (f *Framebuffer) present() {
	_ = f.Display()
}

func (f *Framebuffer) ShowSplash() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillRect(0, 0, f.w, f.h, colorBG)
	mid := f.h / fontHeight / 2
	f.centered(mid, colorFG, "HEALTH WATCH")
	f.centered(mid+1, colorDim, "starting")
	f.present()
}

func (f *Framebuffer) ShowBoot() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bootLines = f.bootLines[:0]
	f.fillRect(0, 0, f.w, f.h, colorBG)
	f.header("SELF TEST")
	f.present()
}

func (f *Framebuffer) AddBootStatus(msg models.BootMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bootLines = append(f.bootLines, msg)
	if len(f.bootLines) > maxBootLines {
		f.bootLines = f.bootLines[len(f.bootLines)-maxBootLines:]
	}
	f.fillRect(0, headerHeight, f.w, f.h-headerHeight, colorBG)
	for i, m := range f.bootLines {
		f.text(4, i+2, colorFG, m.Message)
		if !m.ShowStatus {
			continue
		}
		status, c := "OK", colorOK
		if !m.Status {
			status, c = "FAIL", colorFail
		}
		f.text(f.w-40, i+2, c, status)
	}
	f.present()
}

func (f *Framebuffer) ShowProgress(title, subtitle string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillRect(0, 0, f.w, f.h, colorBG)
	f.header(title)
	f.text(4, 2, colorDim, subtitle)
	f.drawBar(0)
	f.present()
}

func (f *Framebuffer) UpdateProgress(percent uint8, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if percent > 100 {
		percent = 100
	}
	f.drawBar(percent)
	f.fillRect(0, f.h/2+fontHeight, f.w, fontHeight*2, colorBG)
	f.text(4, f.h/2/fontHeight+2, colorFG, fmt.Sprintf("%3d%% %s", percent, message))
	f.present()
}

func (f *Framebuffer) drawBar(percent uint8) {
	x, y, w, h := 10, f.h/2, f.w-20, 8
	f.fillRect(x, y, w, h, colorHeader)
	f.fillRect(x, y, w*int(percent)/100, h, colorCursor)
}

func (f *Framebuffer) LoadScreen(nav models.NavContext) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fillRect(0, 0, f.w, f.h, colorBG)
	f.header(nav.Screen.String())
	f.traceX = 0
	f.traceY = int16(f.traceTop() + f.traceHeight()/2)
	f.present()
}

func (f *Framebuffer) traceTop() int { return f.h / 2 }
func (f *Framebuffer) traceHeight() int { return f.h/2 - 4 }

// plot advances the sweep cursor across the lower half of the frame, one
// column per sample, erasing the column ahead of it.
func (f *Framebuffer) plot(samples []int32, lo, hi int32) {
	if len(samples) == 0 || hi <= lo {
		return
	}
	top, height := f.traceTop(), f.traceHeight()
	for _, s := range samples {
		if s < lo {
			s = lo
		} else if s > hi {
			s = hi
		}
		y := int16(top + height - 1 - int(int64(s-lo)*int64(height-1)/int64(hi-lo)))

		f.fillRect(f.traceX, top, 2, height, colorBG)
		f.line(int16(f.traceX), f.traceY, y)
		f.traceY = y
		f.traceX++
		if f.traceX >= f.w {
			f.traceX = 0
		}
	}
	f.fillRect(f.traceX, top, 1, height, colorCursor)
}

func (f *Framebuffer) line(x, y0, y1 int16) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		f.SetPixel(x, y, colorTrace)
	}
}

func (f *Framebuffer) DrawECG(samples []int16, leadOff bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if leadOff {
		f.fillRect(0, headerHeight, f.w, fontHeight, colorBG)
		f.text(4, 2, colorFail, "LEAD OFF")
		f.present()
		return
	}
	wide := make([]int32, len(samples))
	for i, s := range samples {
		wide[i] = int32(s)
	}
	f.plot(wide, -2048, 2047)
	f.present()
}

func (f *Framebuffer) DrawPPGWrist(rec models.PPGWristSample) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vitalsLine(fmt.Sprintf("HR %d  SpO2 %d%%", rec.HR, rec.SpO2))
	f.plot(ppgSamples(rec.PPG[:], rec.PPGCount), 0, 1<<19)
	f.present()
}

func (f *Framebuffer) DrawPPGFinger(rec models.PPGFingerSample) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vitalsLine(fmt.Sprintf("HR %d  SpO2 %d%%  BPT %d%%", rec.HR, rec.SpO2, rec.BPTProgress))
	f.plot(ppgSamples(rec.PPG[:], rec.PPGCount), 0, 1<<19)
	f.present()
}

func (f *Framebuffer) vitalsLine(s string) {
	f.fillRect(0, headerHeight, f.w, fontHeight+2, colorBG)
	f.text(4, 2, colorFG, s)
}

func ppgSamples(all []int32, count uint8) []int32 {
	n := int(count)
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// widgetRow places each widget on its own text row below the header.
var widgetRow = map[models.Widget]int{
	models.WidgetTime:     3,
	models.WidgetBattery:  5,
	models.WidgetTemp:     7,
	models.WidgetTrends:   9,
	models.WidgetToday:    11,
	models.WidgetSettings: 13,
}

func (f *Framebuffer) RefreshWidget(w models.Widget, v models.Vitals) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row := widgetRow[w]
	f.fillRect(0, row*fontHeight, f.w, fontHeight, colorBG)
	f.text(4, row, colorFG, widgetText(w, v, f.clock()))
	f.present()
}

func widgetText(w models.Widget, v models.Vitals, now time.Time) string {
	switch w {
	case models.WidgetTime:
		return now.Format("15:04:05")
	case models.WidgetBattery:
		if v.Charging {
			return fmt.Sprintf("BAT %d%% +", v.BatteryLevel)
		}
		return fmt.Sprintf("BAT %d%%", v.BatteryLevel)
	case models.WidgetTemp:
		return fmt.Sprintf("%.1f F", v.TempF)
	case models.WidgetTrends:
		return fmt.Sprintf("HR %d  SpO2 %d%%", v.HR, v.SpO2)
	case models.WidgetToday:
		return fmt.Sprintf("%d steps  %d kcal  %d min", v.Steps, v.Kcals, v.ActiveMinutes)
	case models.WidgetSettings:
		return "settings"
	}
	return w.String()
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
