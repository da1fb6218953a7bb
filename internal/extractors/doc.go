// Package extractors routes bookmark sources to the reader that understands
// their format and streams the resulting records to a sink.
//
// # Architecture
//
// Every path goes through the same flow:
//
//	path → Classify → entities.Source → Dispatcher → Extractor → entities.Record → Sink
//
// Classify looks only at the base name and whether the path is a regular file
// or a directory. The first matching rule wins:
//
//	*.plist      file       Safari property list
//	*.sqlite     file       Firefox places database
//	*Bookmarks   file       Chrome/Edge JSON bookmarks
//	*Favorites   directory  Internet Explorer favorites
//	*.txt        file       plain text
//	*.md         file       markdown
//
// Anything else is an entities.ClassificationError.
//
// # Capabilities
//
// Each Extractor declares the collaborators it needs through Requires. The
// Dispatcher asks its Registry about every one of them before the extractor
// touches the file and fails with entities.MissingCapabilityError naming the
// first one that is unavailable (for example sqlite3 in a build without cgo).
//
// # Adding a New Format
//
//  1. Create a package with a reader type:
//
//     type Reader struct{}
//
//     func (r *Reader) Requires() []entities.Capability { ... }
//     func (r *Reader) Extract(src entities.Source, emit entities.EmitFunc) error { ... }
//
//  2. Add a compile-time check to extractor.go:
//
//     var _ Extractor = (*opera.Reader)(nil)
//
//  3. Add a Kind to entities, a rule to classify.go and an entry to
//     DefaultExtractors.
//
// # Example Usage
//
//	dispatcher := extractors.NewDispatcher(
//		extractors.NewRegistry(extractors.DefaultProbes()),
//		extractors.DefaultExtractors(schemeless, logger),
//		logger,
//	)
//	pipeline := extractors.NewPipeline(dispatcher, logger)
//	result, err := pipeline.Run(paths, printer.Print)
package extractors
