package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"wearable_display/internal/models"
	"wearable_display/internal/render"
	"wearable_display/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockNavigation struct {
	screen   models.ScreenID
	err      error
	lastNav  models.NavContext
	lastG    models.Gesture
	activity int
}

func (m *mockNavigation) CurrentScreen() models.ScreenID { return m.screen }
func (m *mockNavigation) SetScreen(id models.ScreenID) error {
	if m.err != nil {
		return m.err
	}
	m.screen = id
	return nil
}
func (m *mockNavigation) Navigate(nav models.NavContext) error {
	m.lastNav = nav
	return m.err
}
func (m *mockNavigation) Gesture(g models.Gesture) error {
	m.lastG = g
	return m.err
}
func (m *mockNavigation) Activity() { m.activity++ }

type mockSensors struct {
	err    error
	ecg    []models.ECGBioZSample
	wrist  []models.PPGWristSample
	finger []models.PPGFingerSample
	boot   []models.BootMessage
	vitals []models.VitalsUpdate
}

func (m *mockSensors) PushECG(r models.ECGBioZSample) error {
	m.ecg = append(m.ecg, r)
	return m.err
}
func (m *mockSensors) PushPPGWrist(r models.PPGWristSample) error {
	m.wrist = append(m.wrist, r)
	return m.err
}
func (m *mockSensors) PushPPGFinger(r models.PPGFingerSample) error {
	m.finger = append(m.finger, r)
	return m.err
}
func (m *mockSensors) PushBoot(r models.BootMessage) error {
	m.boot = append(m.boot, r)
	return m.err
}
func (m *mockSensors) UpdateVitals(u models.VitalsUpdate) error {
	m.vitals = append(m.vitals, u)
	return m.err
}

type mockPower struct {
	err       error
	offs      int
	boots     int
	keepAwake []bool
	lowBatt   []bool
	titles    []string
	updates   []models.ProgressUpdate
}

func (m *mockPower) PowerOff() error { m.offs++; return m.err }
func (m *mockPower) Boot() error { m.boots++; return m.err }
func (m *mockPower) SetKeepAwake(enabled bool) error {
	m.keepAwake = append(m.keepAwake, enabled)
	return m.err
}
func (m *mockPower) SetLowBattery(low bool) error {
	m.lowBatt = append(m.lowBatt, low)
	return m.err
}
func (m *mockPower) BeginProgress(title, subtitle string) error {
	m.titles = append(m.titles, title)
	return m.err
}
func (m *mockPower) UpdateProgress(u models.ProgressUpdate) error {
	m.updates = append(m.updates, u)
	return m.err
}

type mockMonitoring struct {
	status  models.DisplayStatus
	snap    models.SavedSnapshot
	snapErr error
}

func (m *mockMonitoring) Status() models.DisplayStatus { return m.status }
func (m *mockMonitoring) Snapshot(ctx context.Context) (models.SavedSnapshot, error) {
	return m.snap, m.snapErr
}

type mockEventLog struct {
	resp      []models.DisplayEvent
	err       error
	lastFrom  time.Time
	lastTo    time.Time
	lastType  string
	lastLimit int
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.DisplayEvent, error) {
	m.lastFrom = f.From
	m.lastTo = f.To
	m.lastType = f.Type
	m.lastLimit = f.Limit
	return m.resp, m.err
}

// mockStream hands out one channel per subscriber and records cancellations.
type mockStream struct {
	mu       sync.Mutex
	subs     []chan render.Command
	canceled int
}

func (m *mockStream) Subscribe() (<-chan render.Command, func()) {
	ch := make(chan render.Command, 8)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch, func() {
		m.mu.Lock()
		m.canceled++
		m.mu.Unlock()
	}
}

func (m *mockStream) publish(cmd render.Command) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		ch <- cmd
	}
}

func (m *mockStream) subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subs)
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
