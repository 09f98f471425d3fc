package display

import "wearable_display/internal/models"

const (
	DefaultPlotCapacity = 64
	DefaultBootCapacity = 4
)

// SampleChannels groups the per-sensor queues feeding the display.
// Each has exactly one producer context and the display tick as consumer.
type SampleChannels struct {
	ECG       *Channel[models.ECGBioZSample]
	PPGWrist  *Channel[models.PPGWristSample]
	PPGFinger *Channel[models.PPGFingerSample]
	Boot      *Channel[models.BootMessage]
}

func NewSampleChannels(plotCap, bootCap int) *SampleChannels {
	return &SampleChannels{
		ECG:       NewChannel[models.ECGBioZSample]("ecg_bioz", plotCap),
		PPGWrist:  NewChannel[models.PPGWristSample]("ppg_wrist", plotCap),
		PPGFinger: NewChannel[models.PPGFingerSample]("ppg_finger", plotCap),
		Boot:      NewChannel[models.BootMessage]("boot_status", bootCap),
	}
}

func (s *SampleChannels) PushECG(r models.ECGBioZSample) error { return s.ECG.TryPush(r) }
func (s *SampleChannels) PushPPGWrist(r models.PPGWristSample) error { return s.PPGWrist.TryPush(r) }
func (s *SampleChannels) PushPPGFinger(r models.PPGFingerSample) error { return s.PPGFinger.TryPush(r) }
func (s *SampleChannels) PushBoot(r models.BootMessage) error { return s.Boot.TryPush(r) }

// ResetAll discards stale samples, e.g. those buffered while the panel was off.
func (s *SampleChannels) ResetAll() {
	s.ECG.Reset()
	s.PPGWrist.Reset()
	s.PPGFinger.Reset()
	s.Boot.Reset()
}

func (s *SampleChannels) Stats() []models.ChannelStats {
	return []models.ChannelStats{
		statsOf(s.ECG),
		statsOf(s.PPGWrist),
		statsOf(s.PPGFinger),
		statsOf(s.Boot),
	}
}

type statser interface {
	Name() string
	Len() int
	Cap() int
	Dropped() uint64
}

func statsOf(c statser) models.ChannelStats {
	return models.ChannelStats{Name: c.Name(), Len: c.Len(), Cap: c.Cap(), Dropped: c.Dropped()}
}

// plotSource says which channel feeds a screen.
type plotSource int

const (
	plotNone plotSource = iota
	plotECG
	plotPPGWrist
	plotPPGFinger
)

var screenPlotSource = map[models.ScreenID]plotSource{
	models.ScreenSplECGScr2:        plotECG,
	models.ScreenSplPlotECG:        plotECG,
	models.ScreenSplRawPPG:         plotPPGWrist,
	models.ScreenSplHRScr2:         plotPPGWrist,
	models.ScreenSplSpO2Measure:    plotPPGWrist,
	models.ScreenSplSpO2Scr2:       plotPPGFinger,
	models.ScreenSplFiSensCheck:    plotPPGFinger,
	models.ScreenSplBPTMeasure:     plotPPGFinger,
	models.ScreenSplBPTCalProgress: plotPPGFinger,
}
