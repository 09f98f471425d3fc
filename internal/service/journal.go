package service

import (
	"context"
	"errors"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/logger"
	"wearable_display/internal/models"
	"wearable_display/internal/repository"
)

const (
	defaultJournalInterval = 500 * time.Millisecond
	pruneEvery             = time.Hour
	flushTimeout           = 5 * time.Second
)

// JournalService drains the controller's event outbox into the event table and
// keeps the snapshot row in step with the history slot.
type JournalService struct {
	display      Display
	eventRepo    repository.EventRepo
	snapshotRepo repository.SnapshotRepo
	retention    time.Duration
	log          *logger.Logger
	now          func() time.Time

	persisted models.SavedSnapshot
	stored    bool
	lastPrune time.Time
}

func NewJournalService(d Display, eventRepo repository.EventRepo, snapshotRepo repository.SnapshotRepo,
	retention time.Duration, log *logger.Logger) *JournalService {
	if log == nil {
		log = logger.Nop()
	}
	return &JournalService{
		display:      d,
		eventRepo:    eventRepo,
		snapshotRepo: snapshotRepo,
		retention:    retention,
		log:          log,
		now:          time.Now,
	}
}

// Run flushes every interval until ctx is canceled, then flushes once more
// so events emitted during shutdown are kept.
func (s *JournalService) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultJournalInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), flushTimeout)
			s.Flush(fctx)
			cancel()
			return
		case <-t.C:
			fctx, cancel := context.WithTimeout(ctx, flushTimeout)
			s.Flush(fctx)
			cancel()
		}
	}
}

// Flush writes every pending event, persists a changed snapshot and prunes
// old events at most once per hour. It returns the number of events written.
func (s *JournalService) Flush(ctx context.Context) int {
	written := 0
	for {
		ev, err := s.display.NextEvent()
		if errors.Is(err, display.ErrEmpty) {
			break
		}
		if err != nil {
			s.log.Warnw("journal_next_event_failed", "err", err)
			break
		}
		if err := s.eventRepo.Append(ctx, ev); err != nil {
			s.log.Errorw("journal_append_failed", "type", ev.Type, "err", err)
			continue
		}
		written++
	}

	s.persistSnapshot(ctx)
	s.prune(ctx)
	return written
}

func (s *JournalService) persistSnapshot(ctx context.Context) {
	snap := s.display.Status().Snapshot
	if s.stored && sameSlot(snap, s.persisted) {
		return
	}
	if err := s.snapshotRepo.Save(ctx, snap); err != nil {
		s.log.Errorw("journal_snapshot_save_failed", "screen", snap.Context.Screen, "err", err)
		return
	}
	s.persisted, s.stored = snap, true
}

func sameSlot(a, b models.SavedSnapshot) bool {
	return a.Context == b.Context && a.Saved == b.Saved && a.UpdatedAt.Equal(b.UpdatedAt)
}

func (s *JournalService) prune(ctx context.Context) {
	if s.retention <= 0 {
		return
	}
	now := s.now()
	if !s.lastPrune.IsZero() && now.Sub(s.lastPrune) < pruneEvery {
		return
	}
	s.lastPrune = now
	n, err := s.eventRepo.Prune(ctx, now.Add(-s.retention))
	if err != nil {
		s.log.Errorw("journal_prune_failed", "err", err)
		return
	}
	if n > 0 {
		s.log.Infow("journal_pruned", "deleted", n, "retention", s.retention.String())
	}
}
