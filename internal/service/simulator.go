package service

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/logger"
	"wearable_display/internal/models"
)

// ----------- Simulation constants -----------
const (
	DefaultSimTick    = 40 * time.Millisecond
	RestingHR         = 72.0 // bpm
	RestingSpO2       = 98   // %
	SkinTempF         = 97.8 // °F
	BatteryDrainPerS  = 0.02 // % per second
	StepsPerSecond    = 1.6  // walking cadence
	BPTRampSeconds    = 20.0 // finger clip BPT progress 0 → 100
	ProgressPerSecond = 25.0 // % per second for scenario progress sessions
	vitalsEvery       = time.Second
)

var bootScript = []models.BootMessage{
	{Message: "Display", Status: true, ShowStatus: true},
	{Message: "ECG AFE", Status: true, ShowStatus: true},
	{Message: "Sensor hub", Status: true, ShowStatus: true},
	{Message: "Temp sensor", Status: true, ShowStatus: true},
	{Message: "Ready", Complete: true},
}

// SimulatorService feeds the display with synthetic ECG/PPG/boot/vitals traffic
// and replays an optional scenario of timed inputs.
type SimulatorService struct {
	display Display
	battery BatterySwitch
	player  *scenarioPlayer
	log     *logger.Logger
	rng     *rand.Rand

	elapsed     time.Duration
	sinceVitals time.Duration
	bootNext    int
	ecgPhase    float64 // beat phase in [0,1)
	respPhase   float64
	bptProgress float64
	steps       float64
	batteryPct  float64
	progressPct float64 // < 0 when no progress session is running
}

// NewSimulatorService returns a simulator at rest with a full battery.
func NewSimulatorService(d Display, battery BatterySwitch, sc *Scenario, log *logger.Logger) *SimulatorService {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatorService{
		display:     d,
		battery:     battery,
		player:      newScenarioPlayer(sc),
		log:         log,
		rng:         rand.New(rand.NewPCG(1, 2)),
		batteryPct:  100,
		progressPct: -1,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultSimTick
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Step(tick)
		}
	}
}

// Step advances the simulation by dt and pushes one batch per sensor.
func (s *SimulatorService) Step(dt time.Duration) {
	s.elapsed += dt

	if !s.bootDone() {
		s.pushBoot()
		return
	}

	s.push("ecg", s.display.PushECG(s.ecgRecord(dt)))
	s.push("ppg_wrist", s.display.PushPPGWrist(s.wristRecord(dt)))
	s.push("ppg_finger", s.display.PushPPGFinger(s.fingerRecord(dt)))

	s.sinceVitals += dt
	if s.sinceVitals >= vitalsEvery {
		s.updateVitals(s.sinceVitals)
		s.sinceVitals = 0
	}

	s.advanceProgress(dt)
	for _, st := range s.player.advance(dt) {
		s.apply(st)
	}
}

func (s *SimulatorService) bootDone() bool { return s.bootNext >= len(bootScript) }

// pushBoot sends the next self-test line; a full channel retries on the next step.
func (s *SimulatorService) pushBoot() {
	msg := bootScript[s.bootNext]
	if err := s.display.PushBoot(msg); err != nil {
		return
	}
	s.bootNext++
}

func (s *SimulatorService) push(channel string, err error) {
	if err != nil && !errors.Is(err, display.ErrFull) {
		s.log.Warnw("simulator_push_failed", "channel", channel, "err", err)
	}
}

func (s *SimulatorService) heartRate() float64 {
	return RestingHR + 3*math.Sin(s.elapsed.Seconds()/7)
}

// ecgRecord renders 32 samples of a PQRST beat plus noise, and 4 respiration bioZ samples.
func (s *SimulatorService) ecgRecord(dt time.Duration) models.ECGBioZSample {
	var rec models.ECGBioZSample
	sampleDt := dt.Seconds() / models.ECGSamplesPerRecord
	beatsPerSec := s.heartRate() / 60
	for i := range rec.ECG {
		rec.ECG[i] = clampInt16(ecgWave(s.ecgPhase) + s.rng.NormFloat64()*8)
		s.ecgPhase = math.Mod(s.ecgPhase+beatsPerSec*sampleDt, 1)
	}
	rec.ECGCount = models.ECGSamplesPerRecord

	bioDt := dt.Seconds() / models.BioZSamplesPerRecord
	for i := range rec.BioZ {
		rec.BioZ[i] = int32(500_000 + 2_000*math.Sin(2*math.Pi*s.respPhase))
		s.respPhase = math.Mod(s.respPhase+0.25*bioDt, 1) // 15 breaths/min
	}
	rec.BioZCount = models.BioZSamplesPerRecord
	return rec
}

// ecgWave is a sum of gaussians placed at the P, Q, R, S and T points of one beat.
func ecgWave(ph float64) float64 {
	g := func(center, width, amp float64) float64 {
		d := (ph - center) / width
		return amp * math.Exp(-d*d)
	}
	return g(0.20, 0.025, 150) + g(0.37, 0.010, -200) + g(0.40, 0.012, 1200) +
		g(0.43, 0.010, -300) + g(0.70, 0.050, 300)
}

// ppgSamples renders one optical batch starting at the given beat phase.
func (s *SimulatorService) ppgSamples(dt time.Duration, phase, base float64) [models.PPGSamplesPerRecord]int32 {
	var out [models.PPGSamplesPerRecord]int32
	sampleDt := dt.Seconds() / models.PPGSamplesPerRecord
	beatsPerSec := s.heartRate() / 60
	for i := range out {
		pulse := math.Max(0, math.Sin(2*math.Pi*phase))
		out[i] = int32(base + 3_000*pulse + s.rng.NormFloat64()*40)
		phase = math.Mod(phase+beatsPerSec*sampleDt, 1)
	}
	return out
}

func (s *SimulatorService) wristRecord(dt time.Duration) models.PPGWristSample {
	ppg := s.ppgSamples(dt, s.ecgPhase, 100_000)
	return models.PPGWristSample{
		HR:               uint16(math.Round(s.heartRate())),
		SpO2:             RestingSpO2,
		SpO2State:        1,
		SpO2ValidPercent: 95,
		PPG:              ppg,
		PPGCount:         models.PPGSamplesPerRecord,
	}
}

func (s *SimulatorService) fingerRecord(dt time.Duration) models.PPGFingerSample {
	s.bptProgress += 100 * dt.Seconds() / BPTRampSeconds
	if s.bptProgress > 100 {
		s.bptProgress = 0
	}
	ppg := s.ppgSamples(dt, s.ecgPhase, 80_000)
	return models.PPGFingerSample{
		BPTProgress:      uint8(s.bptProgress),
		SpO2ValidPercent: 90,
		SpO2State:        1,
		SpO2:             RestingSpO2 - 1,
		HR:               uint16(math.Round(s.heartRate())),
		PPG:              ppg,
		PPGCount:         models.PPGSamplesPerRecord,
	}
}

func (s *SimulatorService) updateVitals(dt time.Duration) {
	secs := dt.Seconds()
	s.steps += StepsPerSecond * secs
	s.batteryPct = math.Max(0, s.batteryPct-BatteryDrainPerS*secs)

	hr := uint16(math.Round(s.heartRate()))
	spo2 := uint8(RestingSpO2)
	temp := math.Round((SkinTempF+0.2*math.Sin(s.elapsed.Seconds()/60))*10) / 10
	level := uint8(math.Round(s.batteryPct))
	charging := false
	steps := uint32(s.steps)

	u := models.VitalsUpdate{HR: &hr, SpO2: &spo2, TempF: &temp, BatteryLevel: &level, Charging: &charging, Steps: &steps}
	s.display.Vitals().Update(time.Now(), u.Apply)
}

func (s *SimulatorService) advanceProgress(dt time.Duration) {
	if s.progressPct < 0 {
		return
	}
	s.progressPct = math.Min(100, s.progressPct+ProgressPerSecond*dt.Seconds())
	u := models.ProgressUpdate{Percent: uint8(s.progressPct), Done: s.progressPct >= 100}
	if err := s.display.PushProgress(u); err != nil {
		return
	}
	if u.Done {
		s.progressPct = -1
	}
}

func (s *SimulatorService) apply(st Step) {
	var err error
	switch {
	case st.Gesture != "":
		var g models.Gesture
		if g, err = models.ParseGesture(st.Gesture); err == nil {
			err = s.display.SubmitGesture(g)
		}
	case st.Navigate != "":
		var id models.ScreenID
		if id, err = models.ParseScreen(st.Navigate); err == nil {
			err = s.display.Navigate(models.NavContext{Screen: id})
		}
	case st.BatteryLow != nil:
		if s.battery == nil {
			err = ErrBatteryReadOnly
		} else {
			s.battery.SetLow(*st.BatteryLow)
		}
	case st.Progress != nil:
		if err = s.display.BeginProgress(st.Progress.Title, st.Progress.Subtitle); err == nil {
			s.progressPct = 0
		}
	}
	if err != nil {
		s.log.Warnw("simulator_step_failed", "step", st.describe(), "err", err)
		return
	}
	s.log.Infow("simulator_step", "step", st.describe())
}

func clampInt16(v float64) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
