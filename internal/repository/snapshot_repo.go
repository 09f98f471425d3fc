package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wearable_display/internal/models"
)

type SnapshotSQLite struct {
	db *sql.DB
}

func NewSnapshotSQLite(db *sql.DB) *SnapshotSQLite {
	return &SnapshotSQLite{db: db}
}

const (
	snapshotRowID = 1

	upsertSnapshotSQL = `
		INSERT INTO screen_snapshot (id, screen, direction, args, saved, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			screen=excluded.screen,
			direction=excluded.direction,
			args=excluded.args,
			saved=excluded.saved,
			updated_at=excluded.updated_at
	`

	selectSnapshotSQL = `
		SELECT screen, direction, args, saved, updated_at
		FROM screen_snapshot WHERE id=?
	`
)

func marshalArgs(args [4]uint32) (string, error) {
	b, err := json.Marshal(args)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalArgs(s string) ([4]uint32, error) {
	var args [4]uint32
	if s == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(s), &args); err != nil {
		return args, err
	}
	return args, nil
}

// Save upserts the snapshot row (id always 1). Screen and direction are stored by name.
func (r *SnapshotSQLite) Save(ctx context.Context, s models.SavedSnapshot) error {
	if !s.Context.Screen.Valid() {
		return fmt.Errorf("save snapshot: screen %d out of range", int(s.Context.Screen))
	}
	args, err := marshalArgs(s.Context.Args)
	if err != nil {
		return fmt.Errorf("marshal snapshot args: %w", err)
	}

	ts := s.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err = r.db.ExecContext(ctx, upsertSnapshotSQL,
		snapshotRowID,
		s.Context.Screen.String(),
		s.Context.Direction.String(),
		args,
		s.Saved,
		ts,
	)
	return err
}

// Load returns the persisted snapshot, or the zero value when none was written yet.
func (r *SnapshotSQLite) Load(ctx context.Context) (models.SavedSnapshot, error) {
	row := r.db.QueryRowContext(ctx, selectSnapshotSQL, snapshotRowID)

	var (
		s                 models.SavedSnapshot
		screen, direction string
		args              string
	)
	if err := row.Scan(&screen, &direction, &args, &s.Saved, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SavedSnapshot{}, nil
		}
		return models.SavedSnapshot{}, err
	}

	if err := s.Context.Screen.UnmarshalText([]byte(screen)); err != nil {
		return models.SavedSnapshot{}, err
	}
	if err := s.Context.Direction.UnmarshalText([]byte(direction)); err != nil {
		return models.SavedSnapshot{}, err
	}
	a, err := unmarshalArgs(args)
	if err != nil {
		return models.SavedSnapshot{}, fmt.Errorf("decode snapshot args: %w", err)
	}
	s.Context.Args = a
	s.UpdatedAt = s.UpdatedAt.UTC()
	return s, nil
}
