package service

import (
	"context"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/logger"
	"wearable_display/internal/models"
	"wearable_display/internal/repository"
)

// Authorization manages operator accounts and their bearer tokens.
type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Navigation reads and moves the current screen.
type Navigation interface {
	CurrentScreen() models.ScreenID
	SetScreen(id models.ScreenID) error
	Navigate(nav models.NavContext) error
	Gesture(g models.Gesture) error
	Activity()
}

// Sensors feeds sample records into the display channels.
type Sensors interface {
	PushECG(r models.ECGBioZSample) error
	PushPPGWrist(r models.PPGWristSample) error
	PushPPGFinger(r models.PPGFingerSample) error
	PushBoot(r models.BootMessage) error
	UpdateVitals(u models.VitalsUpdate) error
}

// Power covers panel power, keep-awake, the low battery line and progress sessions.
type Power interface {
	PowerOff() error
	Boot() error
	SetKeepAwake(enabled bool) error
	SetLowBattery(low bool) error
	BeginProgress(title, subtitle string) error
	UpdateProgress(u models.ProgressUpdate) error
}

// Monitoring exposes read-only state.
type Monitoring interface {
	Status() models.DisplayStatus
	Snapshot(ctx context.Context) (models.SavedSnapshot, error)
}

// EventLog exposes the journal with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.DisplayEvent, error)
}

// Journal persists controller events. Stop via context cancellation.
type Journal interface {
	Run(ctx context.Context, interval time.Duration)
}

// Simulator produces synthetic sensor traffic. Stop via context cancellation.
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// LogFilter narrows the journal by time range and type.
type LogFilter struct {
	From  time.Time // inclusive; zero means no lower bound
	To    time.Time // inclusive; zero means no upper bound
	Type  string    // "", "STATE_CHANGE", "NAVIGATE", "SCREEN_SAVE", ...
	Limit int       // newest N; zero means DefaultLogLimit
}

// Display is the part of *display.Controller the services drive.
type Display interface {
	CurrentScreen() models.ScreenID
	SetCurrentScreen(id models.ScreenID) error
	RegisterActivity()
	SubmitGesture(g models.Gesture) error
	Navigate(nav models.NavContext) error
	PowerOff() error
	Boot() error
	SetKeepAwake(enabled bool) error
	BeginProgress(title, subtitle string) error
	PushProgress(u models.ProgressUpdate) error
	PushECG(r models.ECGBioZSample) error
	PushPPGWrist(r models.PPGWristSample) error
	PushPPGFinger(r models.PPGFingerSample) error
	PushBoot(r models.BootMessage) error
	NextEvent() (models.DisplayEvent, error)
	Status() models.DisplayStatus
	Vitals() *display.VitalsStore
}

var _ Display = (*display.Controller)(nil)

// BatterySwitch drives a simulated low-battery line. Real GPIO inputs have none.
type BatterySwitch interface {
	SetLow(low bool)
}

type Service struct {
	Navigation
	Sensors
	Power
	Monitoring
	EventLog
	Journal
	Simulator
	Authorization
}

// Deps carries everything that is not a repository.
type Deps struct {
	Display   Display
	Battery   BatterySwitch
	Scenario  *Scenario
	Auth      AuthConfig
	Retention time.Duration
	Log       *logger.Logger
}

// NewService wires the repository layer and the display controller into concrete services.
func NewService(repos *repository.Repository, deps Deps) *Service {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		Navigation:    NewNavigationService(deps.Display),
		Sensors:       NewSensorService(deps.Display),
		Power:         NewPowerService(deps.Display, deps.Battery),
		Monitoring:    NewMonitoringService(deps.Display, repos.SnapshotRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Journal:       NewJournalService(deps.Display, repos.EventRepo, repos.SnapshotRepo, deps.Retention, log.Named("journal")),
		Simulator:     NewSimulatorService(deps.Display, deps.Battery, deps.Scenario, log.Named("simulator")),
		Authorization: NewAuthService(repos.Operators, deps.Auth),
	}
}
