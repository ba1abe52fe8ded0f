package badger

import (
	"time"

	"recurring-task-engine/internal/task/repository"
	pkgBadger "recurring-task-engine/pkg/badger"
	pkgLog "recurring-task-engine/pkg/log"
)

type implRepository struct {
	db  *pkgBadger.DB
	l   pkgLog.Logger
	loc *time.Location // due dates are stored as plain dates and restored here
	now func() time.Time
}

// New creates a BadgerDB-backed task repository.
func New(db *pkgBadger.DB, l pkgLog.Logger, loc *time.Location) repository.Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{
		db:  db,
		l:   l,
		loc: loc,
		now: time.Now,
	}
}
