package service

import (
	"context"
	"fmt"
	"strings"

	"wearable_display/internal/models"
	"wearable_display/internal/repository"
)

const (
	DefaultLogLimit = 500
	MaxLogLimit     = 5000
)

type EventLogService struct {
	eventRepo repository.EventRepo
}

func NewEventLogService(eventRepo repository.EventRepo) *EventLogService {
	return &EventLogService{eventRepo: eventRepo}
}

var errInvalidTimeRange = fmt.Errorf("%w: from must be <= to", ErrInvalidInput)

// normalizeEventType trims spaces and uppercases the event type filter.
func normalizeEventType(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// buildQuery validates f and turns it into a repository query. A zero limit
// means DefaultLogLimit; larger limits are capped at MaxLogLimit.
func buildQuery(f LogFilter) (repository.EventQuery, error) {
	q := repository.EventQuery{
		From:  toUTC(f.From),
		To:    toUTC(f.To),
		Type:  normalizeEventType(f.Type),
		Limit: f.Limit,
	}
	if !q.From.IsZero() && !q.To.IsZero() && q.From.After(q.To) {
		return repository.EventQuery{}, errInvalidTimeRange
	}
	if q.Type != "" && !models.IsEventType(q.Type) {
		return repository.EventQuery{}, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, q.Type)
	}
	switch {
	case q.Limit < 0:
		return repository.EventQuery{}, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	case q.Limit == 0:
		q.Limit = DefaultLogLimit
	case q.Limit > MaxLogLimit:
		q.Limit = MaxLogLimit
	}
	return q, nil
}

// List returns the newest matching journal entries, oldest first.
func (s *EventLogService) List(ctx context.Context, f LogFilter) ([]models.DisplayEvent, error) {
	q, err := buildQuery(f)
	if err != nil {
		return nil, err
	}
	return s.eventRepo.List(ctx, q)
}
