package display

import (
	"sync"
	"time"

	"wearable_display/internal/models"
)

// VitalsStore keeps the latest values for the periodic widgets.
type VitalsStore struct {
	profile models.UserProfile

	mu sync.Mutex
	v  models.Vitals
}

func NewVitalsStore(profile models.UserProfile) *VitalsStore {
	return &VitalsStore{profile: profile}
}

// Update applies fn to the stored vitals and recomputes the step-derived fields.
func (s *VitalsStore) Update(now time.Time, fn func(v *models.Vitals)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.v)
	s.v.Kcals = KcalsFromSteps(s.profile, s.v.Steps)
	s.v.ActiveMinutes = ActiveMinutes(s.profile, s.v.Steps)
	s.v.UpdatedAt = now.UTC()
}

func (s *VitalsStore) Snapshot() models.Vitals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v
}

func (s *VitalsStore) Profile() models.UserProfile { return s.profile }
