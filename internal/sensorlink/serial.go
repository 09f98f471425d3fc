package sensorlink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.bug.st/serial"
)

const (
	DefaultBaud = 115200

	minRetry = 500 * time.Millisecond
	maxRetry = 10 * time.Second
)

var ErrNoPort = errors.New("serial port not configured")

// OpenSerial opens the sensor hub UART in 8N1 mode.
func OpenSerial(port string, baud int) (serial.Port, error) {
	if port == "" {
		return nil, ErrNoPort
	}
	if baud <= 0 {
		baud = DefaultBaud
	}
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s at %d baud: %w", port, baud, err)
	}
	return p, nil
}

func openReadCloser(port string, baud int) (io.ReadCloser, error) {
	return OpenSerial(port, baud)
}

// RunSerial pumps frames from port into the link until ctx is canceled.
// A failed open, read error or hangup reopens the port with exponential
// backoff, so a resetting hub does not cut the display off for good.
func (l *Link) RunSerial(ctx context.Context, port string, baud int) error {
	if port == "" {
		return ErrNoPort
	}
	wait := l.retry
	for {
		rc, err := l.open(port, baud)
		if err == nil {
			l.log.Infow("sensorlink_opened", "port", port, "baud", baud)
			wait = l.retry
			err = l.runCloser(ctx, rc)
		}
		if ctx.Err() != nil {
			return nil
		}
		l.log.Warnw("sensorlink_reconnecting", "port", port, "in", wait.String(), "err", err)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
		wait = min(wait*2, maxRetry)
	}
}

// runCloser closes rc on cancellation so a blocked Read returns.
func (l *Link) runCloser(ctx context.Context, rc io.ReadCloser) error {
	stop := context.AfterFunc(ctx, func() { _ = rc.Close() })
	defer func() {
		if stop() {
			_ = rc.Close()
		}
	}()

	err := l.Run(ctx, rc)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// ListPorts returns the serial devices the OS reports.
func ListPorts() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}
