package render

import (
	"sync"
	"sync/atomic"

	"wearable_display/internal/display"
	"wearable_display/internal/models"
)

// Render operations carried in Command.Op.
const (
	OpSplash         = "splash"
	OpBoot           = "boot"
	OpBootStatus     = "boot_status"
	OpShowProgress   = "show_progress"
	OpUpdateProgress = "update_progress"
	OpLoadScreen     = "load_screen"
	OpECG            = "ecg"
	OpPPGWrist       = "ppg_wrist"
	OpPPGFinger      = "ppg_finger"
	OpWidget         = "widget"
)

const defaultSubscriberBuffer = 256

// Command is one renderer call as seen by remote viewers.
type Command struct {
	Seq  uint64 `json:"seq"`
	Op   string `json:"op"`
	Data any    `json:"data,omitempty"`
}

type progressData struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Percent  uint8  `json:"percent,omitempty"`
	Message  string `json:"message,omitempty"`
}

type ecgData struct {
	Samples []int16 `json:"samples"`
	LeadOff bool    `json:"lead_off"`
}

type widgetData struct {
	Widget models.Widget `json:"widget"`
	Vitals models.Vitals `json:"vitals"`
}

// Hub is a display.Renderer that publishes every call to its subscribers.
// Publishing never blocks: a subscriber whose buffer is full misses the command.
type Hub struct {
	seq     atomic.Uint64
	dropped atomic.Uint64

	mu     sync.RWMutex
	subs   map[int]chan Command
	nextID int
	bufLen int
}

var _ display.Renderer = (*Hub)(nil)

func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &Hub{subs: make(map[int]chan Command), bufLen: buffer}
}

// Subscribe returns a command stream and a cancel func that closes it.
func (h *Hub) Subscribe() (<-chan Command, func()) {
	ch := make(chan Command, h.bufLen)
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped counts commands a slow subscriber missed.
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

func (h *Hub) publish(op string, data any) {
	cmd := Command{Seq: h.seq.Add(1), Op: op, Data: data}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, ch := range h.subs {
		select {
		case ch <- cmd:
		default:
			h.dropped.Add(1)
		}
	}
}

func (h *Hub) ShowSplash() { h.publish(OpSplash, nil) }
func (h *Hub) ShowBoot() { h.publish(OpBoot, nil) }
func (h *Hub) AddBootStatus(msg models.BootMessage) { h.publish(OpBootStatus, msg) }

func (h *Hub) ShowProgress(title, subtitle string) {
	h.publish(OpShowProgress, progressData{Title: title, Subtitle: subtitle})
}

func (h *Hub) UpdateProgress(percent uint8, message string) {
	h.publish(OpUpdateProgress, progressData{Percent: percent, Message: message})
}

func (h *Hub) LoadScreen(nav models.NavContext) { h.publish(OpLoadScreen, nav) }

// DrawECG copies samples; the caller reuses the slice after return.
func (h *Hub) DrawECG(samples []int16, leadOff bool) {
	h.publish(OpECG, ecgData{Samples: append([]int16(nil), samples...), LeadOff: leadOff})
}

func (h *Hub) DrawPPGWrist(rec models.PPGWristSample) { h.publish(OpPPGWrist, rec) }
func (h *Hub) DrawPPGFinger(rec models.PPGFingerSample) { h.publish(OpPPGFinger, rec) }

func (h *Hub) RefreshWidget(w models.Widget, v models.Vitals) {
	h.publish(OpWidget, widgetData{Widget: w, Vitals: v})
}
