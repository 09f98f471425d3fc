package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wearable_display/internal/models"
)

// snapshotRepoStub satisfies repository.SnapshotRepo.
type snapshotRepoStub struct {
	loadResp models.SavedSnapshot
	loadErr  error
	saveErr  error
	saves    []models.SavedSnapshot
}

func (s *snapshotRepoStub) Load(ctx context.Context) (models.SavedSnapshot, error) {
	return s.loadResp, s.loadErr
}

func (s *snapshotRepoStub) Save(ctx context.Context, snap models.SavedSnapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves = append(s.saves, snap)
	return nil
}

func TestMonitoringService_Snapshot(t *testing.T) {
	t.Parallel()

	saved := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("UTC+1", 3600))

	cases := []struct {
		name       string
		repoResp   models.SavedSnapshot
		repoErr    error
		assertFunc func(t *testing.T, got models.SavedSnapshot, err error)
	}{
		{
			name:    "propagates repository error",
			repoErr: errors.New("db down"),
			assertFunc: func(t *testing.T, got models.SavedSnapshot, err error) {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
			},
		},
		{
			name: "returns baseline when nothing persisted",
			assertFunc: func(t *testing.T, got models.SavedSnapshot, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Saved || got.Context.Screen != models.ScreenHome {
					t.Errorf("baseline = %+v", got)
				}
				if got.UpdatedAt.IsZero() || got.UpdatedAt.Location() != time.UTC {
					t.Errorf("baseline UpdatedAt = %v", got.UpdatedAt)
				}
			},
		},
		{
			name: "normalizes persisted time to UTC",
			repoResp: models.SavedSnapshot{
				Context:   models.NavContext{Screen: models.ScreenSplPlotECG},
				Saved:     true,
				UpdatedAt: saved,
			},
			assertFunc: func(t *testing.T, got models.SavedSnapshot, err error) {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if !got.Saved || got.Context.Screen != models.ScreenSplPlotECG {
					t.Errorf("snapshot = %+v", got)
				}
				if got.UpdatedAt.Location() != time.UTC || !got.UpdatedAt.Equal(saved) {
					t.Errorf("UpdatedAt = %v", got.UpdatedAt)
				}
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc := NewMonitoringService(newFakeDisplay(), &snapshotRepoStub{loadResp: tc.repoResp, loadErr: tc.repoErr})
			got, err := svc.Snapshot(context.Background())
			tc.assertFunc(t, got, err)
		})
	}
}

func TestMonitoringService_StatusIsLive(t *testing.T) {
	d := newFakeDisplay()
	d.status = models.DisplayStatus{State: models.StateSleep, Screen: models.ScreenTemp}
	svc := NewMonitoringService(d, &snapshotRepoStub{})

	got := svc.Status()
	if got.State != models.StateSleep || got.Screen != models.ScreenTemp {
		t.Fatalf("status = %+v", got)
	}
}
