package display

import "wearable_display/internal/models"

// Renderer consumes draw commands from the tick loop. Implementations own
// pixel composition and must not block; slices passed in are only valid for
// the duration of the call.
type Renderer interface {
	ShowSplash()
	ShowBoot()
	AddBootStatus(msg models.BootMessage)
	ShowProgress(title, subtitle string)
	UpdateProgress(percent uint8, message string)

	LoadScreen(nav models.NavContext)
	DrawECG(samples []int16, leadOff bool)
	DrawPPGWrist(rec models.PPGWristSample)
	DrawPPGFinger(rec models.PPGFingerSample)
	RefreshWidget(w models.Widget, v models.Vitals)
}

// Panel switches the display rail.
type Panel interface {
	SetPower(enable bool) error
}

// NopRenderer drops every call. Embed it to implement a subset of Renderer.
type NopRenderer struct{}

func (NopRenderer) ShowSplash() {}
func (NopRenderer) ShowBoot() {}
func (NopRenderer) AddBootStatus(models.BootMessage) {}
func (NopRenderer) ShowProgress(string, string) {}
func (NopRenderer) UpdateProgress(uint8, string) {}
func (NopRenderer) LoadScreen(models.NavContext) {}
func (NopRenderer) DrawECG([]int16, bool) {}
func (NopRenderer) DrawPPGWrist(models.PPGWristSample) {}
func (NopRenderer) DrawPPGFinger(models.PPGFingerSample) {}
func (NopRenderer) RefreshWidget(models.Widget, models.Vitals) {}

// MultiRenderer fans every call out to several renderers in order.
type MultiRenderer []Renderer

func (m MultiRenderer) ShowSplash() {
	for _, r := range m {
		r.ShowSplash()
	}
}

func (m MultiRenderer) ShowBoot() {
	for _, r := range m {
		r.ShowBoot()
	}
}

func (m MultiRenderer) AddBootStatus(msg models.BootMessage) {
	for _, r := range m {
		r.AddBootStatus(msg)
	}
}

func (m MultiRenderer) ShowProgress(title, subtitle string) {
	for _, r := range m {
		r.ShowProgress(title, subtitle)
	}
}

func (m MultiRenderer) UpdateProgress(percent uint8, message string) {
	for _, r := range m {
		r.UpdateProgress(percent, message)
	}
}

func (m MultiRenderer) LoadScreen(nav models.NavContext) {
	for _, r := range m {
		r.LoadScreen(nav)
	}
}

func (m MultiRenderer) DrawECG(samples []int16, leadOff bool) {
	for _, r := range m {
		r.DrawECG(samples, leadOff)
	}
}

func (m MultiRenderer) DrawPPGWrist(rec models.PPGWristSample) {
	for _, r := range m {
		r.DrawPPGWrist(rec)
	}
}

func (m MultiRenderer) DrawPPGFinger(rec models.PPGFingerSample) {
	for _, r := range m {
		r.DrawPPGFinger(rec)
	}
}

func (m MultiRenderer) RefreshWidget(w models.Widget, v models.Vitals) {
	for _, r := range m {
		r.RefreshWidget(w, v)
	}
}
