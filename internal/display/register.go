package display

import (
	"sync"

	"wearable_display/internal/models"
)

// ScreenRegister holds the id of the screen currently on the panel.
type ScreenRegister struct {
	mu      sync.Mutex
	current models.ScreenID
}

func NewScreenRegister(initial models.ScreenID) *ScreenRegister {
	return &ScreenRegister{current: initial}
}

// Set stores id. Range checking is the caller's job.
func (r *ScreenRegister) Set(id models.ScreenID) {
	r.mu.Lock()
	r.current = id
	r.mu.Unlock()
}

func (r *ScreenRegister) Get() models.ScreenID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}
