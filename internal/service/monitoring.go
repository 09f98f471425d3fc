package service

import (
	"context"
	"time"

	"wearable_display/internal/models"
	"wearable_display/internal/repository"
)

type MonitoringService struct {
	display      Display
	snapshotRepo repository.SnapshotRepo
}

func NewMonitoringService(d Display, snapshotRepo repository.SnapshotRepo) *MonitoringService {
	return &MonitoringService{display: d, snapshotRepo: snapshotRepo}
}

// Status returns the live controller view.
func (s *MonitoringService) Status() models.DisplayStatus {
	return s.display.Status()
}

// Snapshot returns the last persisted history slot.
// If nothing was persisted yet, returns an unsaved HOME baseline.
func (s *MonitoringService) Snapshot(ctx context.Context) (models.SavedSnapshot, error) {
	snap, err := s.snapshotRepo.Load(ctx)
	if err != nil {
		return models.SavedSnapshot{}, err
	}
	if snap.UpdatedAt.IsZero() {
		return baselineSnapshot(), nil
	}
	snap.UpdatedAt = toUTC(snap.UpdatedAt)
	return snap, nil
}

func baselineSnapshot() models.SavedSnapshot {
	return models.SavedSnapshot{
		Context:   models.NavContext{Screen: models.ScreenHome},
		Saved:     false,
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
