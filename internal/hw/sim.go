package hw

import (
	"sync"
	"sync/atomic"
)

// SimPanel records power switching for bench runs without a real panel.
type SimPanel struct {
	mu       sync.Mutex
	on       bool
	switches int
}

func (p *SimPanel) SetPower(enable bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.on != enable {
		p.switches++
	}
	p.on = enable
	return nil
}

func (p *SimPanel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// Switches counts on/off edges.
func (p *SimPanel) Switches() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.switches
}

// SimBattery is a low-battery flag settable over the API.
type SimBattery struct {
	low atomic.Bool
}

func (b *SimBattery) IsLowBattery() bool { return b.low.Load() }
func (b *SimBattery) SetLow(low bool) { b.low.Store(low) }
