package extractors

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mrlokans/bookmarks/internal/entities"
)

// Dispatcher classifies a path and hands it to the matching extractor once
// the extractor's capabilities are confirmed.
type Dispatcher struct {
	registry   *Registry
	extractors map[entities.Kind]Extractor
	logger     zerolog.Logger
}

func NewDispatcher(registry *Registry, extractors map[entities.Kind]Extractor, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		registry:   registry,
		extractors: extractors,
		logger:     logger,
	}
}

// Dispatch extracts every record of path into emit and returns the source
// it classified.
func (d *Dispatcher) Dispatch(path string, emit entities.EmitFunc) (entities.Source, error) {
	src, err := Classify(path)
	if err != nil {
		return src, err
	}

	extractor, ok := d.extractors[src.Kind]
	if !ok {
		return src, fmt.Errorf("no extractor registered for %s `%s`", src.Kind.DisplayName(), path)
	}

	if capability, err := d.registry.FirstMissing(extractor.Requires()); err != nil {
		return src, &entities.MissingCapabilityError{Capability: capability, Path: path, Err: err}
	}

	d.logger.Debug().
		Str("path", path).
		Str("kind", string(src.Kind)).
		Msgf("Extracting %s", src.Kind.DisplayName())

	return src, extractor.Extract(src, emit)
}
