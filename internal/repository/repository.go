package repository

import (
	"context"
	"database/sql"
	"time"

	"wearable_display/internal/models"
)

// Operators stores the accounts allowed to use the control API.
type Operators interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.Operator, error)
}

// SnapshotRepo persists the single-slot navigation history so it can be
// inspected after the controller has consumed it.
type SnapshotRepo interface {
	Save(ctx context.Context, s models.SavedSnapshot) error
	Load(ctx context.Context) (models.SavedSnapshot, error)
}

// EventQuery selects journal entries. Zero bounds, an empty Type and a zero
// Limit each mean "no restriction".
type EventQuery struct {
	From  time.Time
	To    time.Time
	Type  string
	Limit int
}

type EventRepo interface {
	Append(ctx context.Context, e models.DisplayEvent) error
	List(ctx context.Context, q EventQuery) ([]models.DisplayEvent, error)
	Prune(ctx context.Context, before time.Time) (int64, error)
}

type Repository struct {
	SnapshotRepo SnapshotRepo
	EventRepo    EventRepo
	Operators    Operators
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SnapshotRepo: NewSnapshotSQLite(db),
		EventRepo:    NewEventSQLite(db),
		Operators:    NewOperatorSQLite(db),
	}
}
