package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"wearable_display/internal/models"

	"github.com/google/uuid"
)

// eventTimeLayout sorts lexically, so range filters work on the text column.
const eventTimeLayout = "2006-01-02 15:04:05.000"

const selectEventsSQL = `SELECT id, occurred_at, type, message, meta FROM display_events`

const insertEventSQL = `
		INSERT INTO display_events (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

// Append inserts a journal entry. Empty EventID and zero OccurredAt are filled in.
func (r *EventSQLite) Append(ctx context.Context, e models.DisplayEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var meta *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			meta = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertEventSQL,
		e.EventID,
		e.OccurredAt.Format(eventTimeLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		meta,
	)
	return err
}

// List returns the events matching q, oldest first. With a Limit only the
// newest Limit matches are returned.
func (r *EventSQLite) List(ctx context.Context, q EventQuery) ([]models.DisplayEvent, error) {
	var (
		conds []string
		args  []any
	)
	if !q.From.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, q.From.UTC().Format(eventTimeLayout))
	}
	if !q.To.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, q.To.UTC().Format(eventTimeLayout))
	}
	if typ := strings.ToUpper(strings.TrimSpace(q.Type)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	query := selectEventsSQL
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if q.Limit > 0 {
		query = "SELECT * FROM (" + query + " ORDER BY occurred_at DESC LIMIT ?)"
		args = append(args, q.Limit)
	}
	query += " ORDER BY occurred_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.DisplayEvent, 0, 64)
	for rows.Next() {
		var (
			ev   models.DisplayEvent
			ts   string
			meta sql.NullString
		)
		if err := rows.Scan(&ev.EventID, &ts, &ev.Type, &ev.Description, &meta); err != nil {
			return nil, err
		}
		if t, err := time.Parse(eventTimeLayout, ts); err == nil {
			ev.OccurredAt = t.UTC()
		}
		if meta.Valid && meta.String != "" {
			var v any
			if err := json.Unmarshal([]byte(meta.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = meta.String
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Prune deletes events older than before and reports how many went.
func (r *EventSQLite) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM display_events WHERE occurred_at < ?`,
		before.UTC().Format(eventTimeLayout))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
