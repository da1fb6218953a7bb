package http

import (
	"time"

	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/snapshot"
)

// SnapshotReader is the read side of the bookmark snapshot.
type SnapshotReader interface {
	Records() []entities.Record
	Status() snapshot.Status
}

// RefreshScheduler is the scheduler as seen by the API.
type RefreshScheduler interface {
	GetNextRunTime() *time.Time
	IsRunning() bool
	RunNow()
}

// RouterConfig contains all dependencies needed to create the HTTP router.
type RouterConfig struct {
	Snapshot SnapshotReader

	// Optional; when nil /health omits the next refresh time and manual
	// refreshes are refused.
	Scheduler RefreshScheduler

	// Application info
	Version string
}
