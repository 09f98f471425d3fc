package display

import (
	"errors"
	"sync"
	"time"

	"wearable_display/internal/models"
)

// ErrNoSavedState is returned by Restore when nothing was saved. Not a failure.
var ErrNoSavedState = errors.New("no saved screen state")

// HistoryStore keeps one saved navigation context across a sleep cycle.
//
// Lock order: the history lock may be held while reading the register, but it is
// always released before the register setter is called.
type HistoryStore struct {
	reg   *ScreenRegister
	clock func() time.Time

	mu   sync.Mutex
	snap models.SavedSnapshot
}

func NewHistoryStore(reg *ScreenRegister, clock func() time.Time) *HistoryStore {
	if clock == nil {
		clock = time.Now
	}
	return &HistoryStore{reg: reg, clock: clock}
}

// Save captures the current screen. Direction and args are stored as zero.
func (h *HistoryStore) Save() models.SavedSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snap = models.SavedSnapshot{
		Context:   models.NavContext{Screen: h.reg.Get(), Direction: models.ScrollNone},
		Saved:     true,
		UpdatedAt: h.clock().UTC(),
	}
	return h.snap
}

// Restore re-selects the saved screen id. The saved flag is left as is.
func (h *HistoryStore) Restore() (models.ScreenID, error) {
	h.mu.Lock()
	if !h.snap.Saved {
		h.mu.Unlock()
		return 0, ErrNoSavedState
	}
	id := h.snap.Context.Screen
	h.mu.Unlock()

	h.reg.Set(id)
	return id, nil
}

// Clear invalidates the snapshot and resets it to HOME.
func (h *HistoryStore) Clear() models.SavedSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snap = models.SavedSnapshot{
		Context:   models.NavContext{Screen: models.ScreenHome, Direction: models.ScrollNone},
		UpdatedAt: h.clock().UTC(),
	}
	return h.snap
}

func (h *HistoryStore) Snapshot() models.SavedSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap
}

func (h *HistoryStore) Saved() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snap.Saved
}
