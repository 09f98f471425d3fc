package hw

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var ErrPinNotFound = errors.New("gpio pin not found")

// InitHost loads the periph host drivers. Call once before opening pins.
func InitHost() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}
	return nil
}

func openPin(name string) (gpio.PinIO, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPinNotFound, name)
	}
	return p, nil
}

// GPIOPanel drives the display power rail (or backlight enable) from one output line.
type GPIOPanel struct {
	pin       gpio.PinOut
	activeLow bool
}

func NewGPIOPanel(pinName string, activeLow bool) (*GPIOPanel, error) {
	p, err := openPin(pinName)
	if err != nil {
		return nil, err
	}
	return &GPIOPanel{pin: p, activeLow: activeLow}, nil
}

func (g *GPIOPanel) SetPower(enable bool) error {
	level := gpio.Level(enable != g.activeLow)
	if err := g.pin.Out(level); err != nil {
		return fmt.Errorf("panel %s out %v: %w", g.pin.Name(), level, err)
	}
	return nil
}

// GPIOBattery reads the fuel gauge's low-battery alert line. The alert is active low.
type GPIOBattery struct {
	pin gpio.PinIn
}

func NewGPIOBattery(pinName string) (*GPIOBattery, error) {
	p, err := openPin(pinName)
	if err != nil {
		return nil, err
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("battery %s in: %w", pinName, err)
	}
	return &GPIOBattery{pin: p}, nil
}

func (b *GPIOBattery) IsLowBattery() bool {
	return b.pin.Read() == gpio.Low
}
