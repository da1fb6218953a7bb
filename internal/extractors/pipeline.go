package extractors

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// RunResult summarises a completed run.
type RunResult struct {
	FilesProcessed   int
	RecordsExtracted int
}

// Pipeline runs the dispatcher over a list of paths in order. The first
// error aborts the run; records emitted before it have already reached the
// sink.
type Pipeline struct {
	dispatcher *Dispatcher
	logger     zerolog.Logger
}

func NewPipeline(dispatcher *Dispatcher, logger zerolog.Logger) *Pipeline {
	return &Pipeline{dispatcher: dispatcher, logger: logger}
}

func (p *Pipeline) Run(paths []string, sink entities.EmitFunc) (RunResult, error) {
	return p.RunContext(context.Background(), paths, sink)
}

// RunContext is Run with a context checked before each path. A source that
// is already being extracted runs to completion.
func (p *Pipeline) RunContext(ctx context.Context, paths []string, sink entities.EmitFunc) (RunResult, error) {
	var result RunResult

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		count := 0
		src, err := p.dispatcher.Dispatch(path, func(r entities.Record) error {
			if err := sink(r); err != nil {
				return err
			}
			count++
			return nil
		})
		result.RecordsExtracted += count
		if err != nil {
			return result, err
		}

		result.FilesProcessed++
		p.logger.Debug().
			Str("path", path).
			Str("kind", string(src.Kind)).
			Int("records", count).
			Msg("Extraction finished")
	}

	return result, nil
}
