package snapshot

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/entities"
	"github.com/mrlokans/bookmarks/internal/extractors"
)

// Runner extracts every record of paths into sink.
type Runner interface {
	Run(paths []string, sink entities.EmitFunc) (extractors.RunResult, error)
}

// Status describes the last refresh.
type Status struct {
	Records     int
	RefreshedAt time.Time
	LastError   error
}

// Store holds the records of the last successful refresh. Readers never
// see a partially refreshed set: a refresh builds a new slice and swaps it
// in only when the whole run succeeds.
type Store struct {
	runner Runner
	paths  []string
	logger zerolog.Logger
	now    func() time.Time

	refreshMu sync.Mutex

	mu          sync.RWMutex
	records     []entities.Record
	refreshedAt time.Time
	lastErr     error
}

func NewStore(runner Runner, paths []string, logger zerolog.Logger) *Store {
	return &Store{
		runner:  runner,
		paths:   append([]string(nil), paths...),
		logger:  logger,
		now:     time.Now,
		records: []entities.Record{},
	}
}

// Refresh re-extracts every path. On failure the previous records stay in
// place and the error is kept for Status.
func (s *Store) Refresh() error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	startTime := s.now()
	records := []entities.Record{}
	result, err := s.runner.Run(s.paths, func(r entities.Record) error {
		records = append(records, r)
		return nil
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.lastErr = err
		s.logger.Error().Err(err).Msg("Snapshot refresh failed, keeping previous records")
		return err
	}

	s.records = records
	s.refreshedAt = s.now()
	s.lastErr = nil

	s.logger.Info().
		Int("files", result.FilesProcessed).
		Int("records", result.RecordsExtracted).
		Dur("duration", s.refreshedAt.Sub(startTime)).
		Msg("Snapshot refreshed")
	return nil
}

// Records returns the current records. The slice must not be modified.
func (s *Store) Records() []entities.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		Records:     len(s.records),
		RefreshedAt: s.refreshedAt,
		LastError:   s.lastErr,
	}
}
