package display

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"wearable_display/internal/logger"
	"wearable_display/internal/models"
)

var (
	// ErrInvalidScreen is returned for ids outside [ScreenListStart, ScreenListEnd).
	ErrInvalidScreen = errors.New("screen id out of range")
	// ErrDisplayOff is returned for navigation while powered off; Boot first.
	ErrDisplayOff = errors.New("display is powered off")
)

const (
	DefaultTick            = 50 * time.Millisecond
	DefaultSplashTimeout   = 2 * time.Second
	DefaultBootTimeout     = 30 * time.Second
	DefaultMaxDrainPerTick = 16
	defaultCommandCapacity = 16
	defaultEventCapacity   = 128
	defaultProgressCap     = 4
)

// Config tunes the controller. Zero fields fall back to defaults.
type Config struct {
	SleepThreshold  time.Duration
	SplashTimeout   time.Duration
	BootTimeout     time.Duration
	MaxDrainPerTick int
	PlotCapacity    int
	BootCapacity    int
	EventCapacity   int
	StartScreen     models.ScreenID
	Profile         models.UserProfile
}

func DefaultConfig() Config {
	return Config{
		SleepThreshold:  DefaultSleepThreshold,
		SplashTimeout:   DefaultSplashTimeout,
		BootTimeout:     DefaultBootTimeout,
		MaxDrainPerTick: DefaultMaxDrainPerTick,
		PlotCapacity:    DefaultPlotCapacity,
		BootCapacity:    DefaultBootCapacity,
		EventCapacity:   defaultEventCapacity,
		StartScreen:     models.ScreenHome,
		Profile:         models.DefaultUserProfile(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SleepThreshold <= 0 {
		c.SleepThreshold = d.SleepThreshold
	}
	if c.SplashTimeout <= 0 {
		c.SplashTimeout = d.SplashTimeout
	}
	if c.BootTimeout <= 0 {
		c.BootTimeout = d.BootTimeout
	}
	if c.MaxDrainPerTick <= 0 {
		c.MaxDrainPerTick = d.MaxDrainPerTick
	}
	if c.PlotCapacity <= 0 {
		c.PlotCapacity = d.PlotCapacity
	}
	if c.BootCapacity <= 0 {
		c.BootCapacity = d.BootCapacity
	}
	if c.EventCapacity <= 0 {
		c.EventCapacity = d.EventCapacity
	}
	if !c.StartScreen.Valid() {
		c.StartScreen = d.StartScreen
	}
	if c.Profile == (models.UserProfile{}) {
		c.Profile = d.Profile
	}
	return c
}

// Deps are the collaborators the controller drives.
type Deps struct {
	Renderer Renderer
	Panel    Panel
	Battery  BatterySource
	Gestures GestureTable
	Log      *logger.Logger
	Clock    func() time.Time
}

type commandKind int

const (
	cmdGesture commandKind = iota + 1
	cmdNavigate
	cmdPowerOff
	cmdBoot
	cmdKeepAwake
	cmdBeginProgress
)

type command struct {
	kind     commandKind
	gesture  models.Gesture
	nav      models.NavContext
	enabled  bool
	title    string
	subtitle string
}

// Controller is the display state machine together with the state it arbitrates.
//
// Tick and Run must be driven from a single goroutine. Every other method is
// safe to call from any goroutine and never blocks on the tick.
type Controller struct {
	cfg   Config
	log   *logger.Logger
	clock func() time.Time

	register *ScreenRegister
	history  *HistoryStore
	channels *SampleChannels
	power    *PowerMonitor
	vitals   *VitalsStore
	progress *Channel[models.ProgressUpdate]
	commands *Channel[command]
	events   *Channel[models.DisplayEvent]

	renderer Renderer
	panel    Panel
	gestures GestureTable
	states   map[models.DisplayState]stateHandlers

	// owned by the tick goroutine
	state            models.DisplayState
	entered          bool
	stateSince       time.Time
	nav              models.NavContext
	pendingNav       *models.NavContext
	refresh          *refreshSchedule
	bootDone         bool
	sleepGen         uint64
	keepAwake        bool
	lowBattShown     bool
	progressTitle    string
	progressSubtitle string

	published    atomic.Int32
	keepAwakePub atomic.Bool
}

func New(cfg Config, deps Deps) *Controller {
	cfg = cfg.withDefaults()
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = NopRenderer{}
	}
	gestures := deps.Gestures
	if gestures == nil {
		gestures = DefaultGestureTable()
	}

	reg := NewScreenRegister(cfg.StartScreen)
	c := &Controller{
		cfg:      cfg,
		log:      log,
		clock:    clock,
		register: reg,
		history:  NewHistoryStore(reg, clock),
		channels: NewSampleChannels(cfg.PlotCapacity, cfg.BootCapacity),
		power:    NewPowerMonitor(cfg.SleepThreshold, deps.Battery, clock),
		vitals:   NewVitalsStore(cfg.Profile),
		progress: NewChannel[models.ProgressUpdate]("progress", defaultProgressCap),
		commands: NewChannel[command]("commands", defaultCommandCapacity),
		events:   NewChannel[models.DisplayEvent]("events", cfg.EventCapacity),
		renderer: renderer,
		panel:    deps.Panel,
		gestures: gestures,
		states:   newStateTable(),
		state:    models.StateInit,
		refresh:  newRefreshSchedule(),
	}
	c.published.Store(int32(models.StateInit))
	return c
}

func (c *Controller) History() *HistoryStore { return c.history }
func (c *Controller) Channels() *SampleChannels { return c.channels }
func (c *Controller) Vitals() *VitalsStore { return c.vitals }

// State returns the state published at the end of the last tick.
func (c *Controller) State() models.DisplayState {
	return models.DisplayState(c.published.Load())
}

// CurrentScreen is the navigation query used by renderers and settings screens.
func (c *Controller) CurrentScreen() models.ScreenID { return c.register.Get() }

// SetCurrentScreen writes the register directly without redrawing.
func (c *Controller) SetCurrentScreen(id models.ScreenID) error {
	if !id.Valid() {
		return ErrInvalidScreen
	}
	c.register.Set(id)
	return nil
}

// RegisterActivity restarts the inactivity timer and wakes a sleeping display.
func (c *Controller) RegisterActivity() { c.power.RegisterActivity() }

func (c *Controller) PushECG(r models.ECGBioZSample) error { return c.channels.PushECG(r) }
func (c *Controller) PushPPGWrist(r models.PPGWristSample) error { return c.channels.PushPPGWrist(r) }
func (c *Controller) PushPPGFinger(r models.PPGFingerSample) error { return c.channels.PushPPGFinger(r) }
func (c *Controller) PushBoot(r models.BootMessage) error { return c.channels.PushBoot(r) }
func (c *Controller) PushProgress(u models.ProgressUpdate) error { return c.progress.TryPush(u) }

// SubmitGesture counts as user activity immediately; dispatch happens on the next tick.
func (c *Controller) SubmitGesture(g models.Gesture) error {
	c.power.RegisterActivity()
	return c.commands.TryPush(command{kind: cmdGesture, gesture: g})
}

// Navigate asks the tick loop to load nav. While the display sleeps or shows
// a splash, boot or progress screen the request is held, and only the latest
// one is loaded once the display is back in the foreground.
func (c *Controller) Navigate(nav models.NavContext) error {
	if !nav.Screen.Valid() {
		return ErrInvalidScreen
	}
	if c.State() == models.StateOff {
		return ErrDisplayOff
	}
	return c.commands.TryPush(command{kind: cmdNavigate, nav: nav})
}

func (c *Controller) PowerOff() error {
	return c.commands.TryPush(command{kind: cmdPowerOff})
}

// Boot restarts the state machine after a power-off.
func (c *Controller) Boot() error {
	return c.commands.TryPush(command{kind: cmdBoot})
}

// SetKeepAwake holds the display in ON (no inactivity sleep) while enabled.
func (c *Controller) SetKeepAwake(enabled bool) error {
	return c.commands.TryPush(command{kind: cmdKeepAwake, enabled: enabled})
}

// BeginProgress switches to the progress screen; feed it with PushProgress.
func (c *Controller) BeginProgress(title, subtitle string) error {
	return c.commands.TryPush(command{kind: cmdBeginProgress, title: title, subtitle: subtitle})
}

// NextEvent pops one journal event emitted by the tick loop.
func (c *Controller) NextEvent() (models.DisplayEvent, error) {
	return c.events.TryPop()
}

func (c *Controller) Status() models.DisplayStatus {
	return models.DisplayStatus{
		State:         c.State(),
		Screen:        c.register.Get(),
		Snapshot:      c.history.Snapshot(),
		InactiveMs:    c.power.InactivityDuration().Milliseconds(),
		LowBattery:    c.power.IsLowBattery(),
		KeepAwake:     c.keepAwakePub.Load(),
		SleepEligible: c.power.ShouldEnterSleep(),
		Channels: append(c.channels.Stats(),
			statsOf(c.progress), statsOf(c.commands), statsOf(c.events)),
	}
}

// Run ticks until ctx is canceled.
func (c *Controller) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()

	c.Tick()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Tick()
		}
	}
}
