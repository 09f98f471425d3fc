package hw

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestGPIOPanel_SetPower(t *testing.T) {
	tests := []struct {
		name      string
		activeLow bool
		enable    bool
		want      gpio.Level
	}{
		{"active high on", false, true, gpio.High},
		{"active high off", false, false, gpio.Low},
		{"active low on", true, true, gpio.Low},
		{"active low off", true, false, gpio.High},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pin := &gpiotest.Pin{N: "LCD_EN"}
			p := &GPIOPanel{pin: pin, activeLow: tt.activeLow}
			if err := p.SetPower(tt.enable); err != nil {
				t.Fatalf("SetPower: %v", err)
			}
			if pin.L != tt.want {
				t.Fatalf("level = %v, want %v", pin.L, tt.want)
			}
		})
	}
}

func TestGPIOBattery_ActiveLow(t *testing.T) {
	pin := &gpiotest.Pin{N: "BAT_LOW", L: gpio.High}
	b := &GPIOBattery{pin: pin}
	if b.IsLowBattery() {
		t.Fatalf("high line should read as battery ok")
	}
	pin.L = gpio.Low
	if !b.IsLowBattery() {
		t.Fatalf("low line should read as battery low")
	}
}

func TestOpenPin_Unknown(t *testing.T) {
	if _, err := NewGPIOPanel("NO_SUCH_PIN_42", false); !errors.Is(err, ErrPinNotFound) {
		t.Fatalf("want ErrPinNotFound, got %v", err)
	}
}

func TestSimPanelAndBattery(t *testing.T) {
	var p SimPanel
	_ = p.SetPower(true)
	_ = p.SetPower(true)
	_ = p.SetPower(false)
	if p.On() || p.Switches() != 2 {
		t.Fatalf("on=%v switches=%d", p.On(), p.Switches())
	}

	var b SimBattery
	b.SetLow(true)
	if !b.IsLowBattery() {
		t.Fatalf("expected low battery")
	}
}
