package store

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"press-maintenance-backend/internal/model"
)

// MachineRegistry manages the press_machines table.
type MachineRegistry interface {
	ListMachines(ctx context.Context, filter string) ([]model.Machine, error)
	GetMachine(ctx context.Context, id int64) (model.Machine, error)
	CreateMachine(ctx context.Context, f MachineFields) (int64, error)
	UpdateMachine(ctx context.Context, id int64, f MachineFields) error
	DeleteMachine(ctx context.Context, id int64) error
}

// MaintenanceLedger manages the maintenance_records table.
type MaintenanceLedger interface {
	ListMaintenance(ctx context.Context) ([]MaintenanceEntry, error)
	GetMaintenance(ctx context.Context, id int64) (model.MaintenanceRecord, error)
	CreateMaintenance(ctx context.Context, f MaintenanceFields) (int64, error)
	UpdateMaintenance(ctx context.Context, id int64, f MaintenanceFields) error
	DeleteMaintenance(ctx context.Context, id int64) error
}

// Reporter derives aggregates from both tables.
type Reporter interface {
	Statistics(ctx context.Context) (Statistics, error)
}

// Store defines the interface for all database operations. The local SQLite
// file and the remote Postgres copy are both served through it.
type Store interface {
	MachineRegistry
	MaintenanceLedger
	Reporter
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db  *gorm.DB
	now func() time.Time

	// one operation at a time, in the order issued
	mu sync.Mutex
}

// Option customizes a gormStore.
type Option func(*gormStore)

// WithClock replaces time.Now for created_at/updated_at stamping.
func WithClock(now func() time.Time) Option {
	return func(s *gormStore) { s.now = now }
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB, opts ...Option) Store {
	s := &gormStore{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.db = db.Session(&gorm.Session{NowFunc: s.stamp})
	return s
}

// stamp returns the timestamp written to created_at/updated_at.
func (s *gormStore) stamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
