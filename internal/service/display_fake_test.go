package service

import (
	"wearable_display/internal/display"
	"wearable_display/internal/models"
)

// fakeDisplay records what the services ask the controller to do.
type fakeDisplay struct {
	screen   models.ScreenID
	err      error // returned by every command and push
	activity int

	gestures  []models.Gesture
	navs      []models.NavContext
	powerOffs int
	boots     int
	keepAwake []bool
	titles    []string
	progress  []models.ProgressUpdate
	ecg       []models.ECGBioZSample
	wrist     []models.PPGWristSample
	finger    []models.PPGFingerSample
	bootMsgs  []models.BootMessage

	events []models.DisplayEvent
	status models.DisplayStatus
	vitals *display.VitalsStore
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{vitals: display.NewVitalsStore(models.DefaultUserProfile())}
}

func (f *fakeDisplay) CurrentScreen() models.ScreenID { return f.screen }

func (f *fakeDisplay) SetCurrentScreen(id models.ScreenID) error {
	if !id.Valid() {
		return display.ErrInvalidScreen
	}
	f.screen = id
	return nil
}

func (f *fakeDisplay) RegisterActivity() { f.activity++ }

func (f *fakeDisplay) SubmitGesture(g models.Gesture) error {
	f.gestures = append(f.gestures, g)
	return f.err
}

func (f *fakeDisplay) Navigate(nav models.NavContext) error {
	if !nav.Screen.Valid() {
		return display.ErrInvalidScreen
	}
	f.navs = append(f.navs, nav)
	return f.err
}

func (f *fakeDisplay) PowerOff() error { f.powerOffs++; return f.err }
func (f *fakeDisplay) Boot() error { f.boots++; return f.err }

func (f *fakeDisplay) SetKeepAwake(enabled bool) error {
	f.keepAwake = append(f.keepAwake, enabled)
	return f.err
}

func (f *fakeDisplay) BeginProgress(title, _ string) error {
	f.titles = append(f.titles, title)
	return f.err
}

func (f *fakeDisplay) PushProgress(u models.ProgressUpdate) error {
	f.progress = append(f.progress, u)
	return f.err
}

func (f *fakeDisplay) PushECG(r models.ECGBioZSample) error {
	f.ecg = append(f.ecg, r)
	return f.err
}

func (f *fakeDisplay) PushPPGWrist(r models.PPGWristSample) error {
	f.wrist = append(f.wrist, r)
	return f.err
}

func (f *fakeDisplay) PushPPGFinger(r models.PPGFingerSample) error {
	f.finger = append(f.finger, r)
	return f.err
}

func (f *fakeDisplay) PushBoot(r models.BootMessage) error {
	if f.err != nil {
		return f.err
	}
	f.bootMsgs = append(f.bootMsgs, r)
	return nil
}

func (f *fakeDisplay) NextEvent() (models.DisplayEvent, error) {
	if len(f.events) == 0 {
		return models.DisplayEvent{}, display.ErrEmpty
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func (f *fakeDisplay) Status() models.DisplayStatus { return f.status }
func (f *fakeDisplay) Vitals() *display.VitalsStore { return f.vitals }

type fakeBattery struct {
	low  bool
	sets int
}

func (b *fakeBattery) SetLow(low bool) { b.low = low; b.sets++ }
