// Package sensorlink reads sensor hub frames from a serial line and feeds them
// to the display. One frame is one line of JSON:
//
//	{"type":"ecg","data":{"ecg":[...],"ecg_count":32,...}}
//
// Types are ecg, ppg_wrist, ppg_finger, boot and vitals.
package sensorlink

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/logger"
	"wearable_display/internal/models"
)

const (
	FrameECG       = "ecg"
	FramePPGWrist  = "ppg_wrist"
	FramePPGFinger = "ppg_finger"
	FrameBoot      = "boot"
	FrameVitals    = "vitals"

	maxFrameSize = 16 << 10
)

var ErrUnknownFrame = errors.New("unknown frame type")

// Sink receives decoded records. display.ErrFull drops the frame; any other
// error rejects it as invalid.
type Sink interface {
	PushECG(r models.ECGBioZSample) error
	PushPPGWrist(r models.PPGWristSample) error
	PushPPGFinger(r models.PPGFingerSample) error
	PushBoot(r models.BootMessage) error
	UpdateVitals(u models.VitalsUpdate) error
}

type frame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Stats counts what the link has seen since start.
type Stats struct {
	Frames  uint64 `json:"frames"`
	Invalid uint64 `json:"invalid"`
	Dropped uint64 `json:"dropped"`
}

type Link struct {
	sink  Sink
	log   *logger.Logger
	open  func(port string, baud int) (io.ReadCloser, error)
	retry time.Duration

	frames  atomic.Uint64
	invalid atomic.Uint64
	dropped atomic.Uint64
}

func New(sink Sink, log *logger.Logger) *Link {
	if log == nil {
		log = logger.Nop()
	}
	return &Link{sink: sink, log: log, open: openReadCloser, retry: minRetry}
}

func (l *Link) Stats() Stats {
	return Stats{Frames: l.frames.Load(), Invalid: l.invalid.Load(), Dropped: l.dropped.Load()}
}

// Run reads frames from r until EOF, a read error or ctx cancellation.
// A line longer than maxFrameSize counts as one invalid frame and is skipped.
// Closing r is the caller's job; cancel ctx and close r to stop a blocked read.
func (l *Link) Run(ctx context.Context, r io.Reader) error {
	br := bufio.NewReaderSize(r, maxFrameSize)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			l.frames.Add(1)
			l.invalid.Add(1)
			l.log.Warnw("sensorlink_frame_too_long", "limit", maxFrameSize)
			if err = discardLine(br); err == nil {
				continue
			}
			line = nil
		}
		if line = bytes.TrimSpace(line); len(line) > 0 {
			l.frames.Add(1)
			if herr := l.handle(line); herr != nil {
				l.log.Debugw("sensorlink_frame_rejected", "err", herr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read sensor link: %w", err)
		}
	}
}

// discardLine drops input up to and including the next newline.
func discardLine(br *bufio.Reader) error {
	for {
		_, err := br.ReadSlice('\n')
		if !errors.Is(err, bufio.ErrBufferFull) {
			return err
		}
	}
}

func (l *Link) handle(line []byte) error {
	var f frame
	if err := json.Unmarshal(line, &f); err != nil {
		l.invalid.Add(1)
		return fmt.Errorf("decode frame: %w", err)
	}

	var err error
	switch f.Type {
	case FrameECG:
		var rec models.ECGBioZSample
		if err = l.decode(f.Data, &rec); err == nil {
			err = l.push(l.sink.PushECG(rec))
		}
	case FramePPGWrist:
		var rec models.PPGWristSample
		if err = l.decode(f.Data, &rec); err == nil {
			err = l.push(l.sink.PushPPGWrist(rec))
		}
	case FramePPGFinger:
		var rec models.PPGFingerSample
		if err = l.decode(f.Data, &rec); err == nil {
			err = l.push(l.sink.PushPPGFinger(rec))
		}
	case FrameBoot:
		var msg models.BootMessage
		if err = l.decode(f.Data, &msg); err == nil {
			err = l.push(l.sink.PushBoot(msg))
		}
	case FrameVitals:
		var u models.VitalsUpdate
		if err = l.decode(f.Data, &u); err == nil {
			err = l.push(l.sink.UpdateVitals(u))
		}
	default:
		l.invalid.Add(1)
		return fmt.Errorf("%w: %q", ErrUnknownFrame, f.Type)
	}
	if err != nil {
		return fmt.Errorf("%s frame: %w", f.Type, err)
	}
	return nil
}

func (l *Link) decode(data json.RawMessage, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		l.invalid.Add(1)
		return err
	}
	return nil
}

func (l *Link) push(err error) error {
	switch {
	case err == nil:
	case errors.Is(err, display.ErrFull):
		l.dropped.Add(1)
	default:
		l.invalid.Add(1)
	}
	return err
}
