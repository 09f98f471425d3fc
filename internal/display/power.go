package display

import (
	"sync"
	"time"
)

// DefaultSleepThreshold is how long the panel stays lit without user activity.
const DefaultSleepThreshold = 10 * time.Second

// BatterySource answers the hardware low-battery query.
type BatterySource interface {
	IsLowBattery() bool
}

// PowerMonitor tracks user inactivity and the battery flag.
type PowerMonitor struct {
	threshold time.Duration
	battery   BatterySource
	clock     func() time.Time

	mu           sync.Mutex
	lastActivity time.Time
	generation   uint64
}

func NewPowerMonitor(threshold time.Duration, battery BatterySource, clock func() time.Time) *PowerMonitor {
	if clock == nil {
		clock = time.Now
	}
	if threshold <= 0 {
		threshold = DefaultSleepThreshold
	}
	return &PowerMonitor{
		threshold:    threshold,
		battery:      battery,
		clock:        clock,
		lastActivity: clock(),
	}
}

// RegisterActivity resets the inactivity duration to zero.
func (p *PowerMonitor) RegisterActivity() {
	p.mu.Lock()
	p.lastActivity = p.clock()
	p.generation++
	p.mu.Unlock()
}

func (p *PowerMonitor) InactivityDuration() time.Duration {
	p.mu.Lock()
	last := p.lastActivity
	p.mu.Unlock()
	d := p.clock().Sub(last)
	if d < 0 {
		return 0
	}
	return d
}

// IsLowBattery is false when no battery source is wired.
func (p *PowerMonitor) IsLowBattery() bool {
	if p.battery == nil {
		return false
	}
	return p.battery.IsLowBattery()
}

// ShouldEnterSleep is true past the inactivity threshold unless the battery is low.
func (p *PowerMonitor) ShouldEnterSleep() bool {
	return p.InactivityDuration() > p.threshold && !p.IsLowBattery()
}

func (p *PowerMonitor) Threshold() time.Duration { return p.threshold }

// activityGeneration changes on every RegisterActivity call.
func (p *PowerMonitor) activityGeneration() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}
