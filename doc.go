// Package fontpreview loads font files and previews them side by side.
//
// # Overview
//
// A Session ingests a batch of .ttf and .otf files, parses their naming
// metadata, infers weight and style from the subfamily label, and registers
// every font with a rendering environment under a process-unique family
// name. One font is the primary preview; comparison mode adds a second.
//
// # Quick Start
//
//	import "github.com/gogpu/fontpreview"
//
//	s := fontpreview.New(nil)
//	defer s.Teardown()
//
//	files, err := ingest.Paths("fonts/")
//	if err != nil {
//		return err
//	}
//	batch, err := s.Ingest(ctx, files)
//	if err != nil {
//		msg, _ := ingest.UserMessage(err)
//		return errors.New(msg)
//	}
//	if msg, severity := ingest.UserMessage(batch.Outcome()); severity != ingest.SeverityNone {
//		log.Print(msg)
//	}
//
//	s.EnableCompare()
//	img, err := s.Render(0)
//
// # Architecture
//
// The library is organized into:
//   - parse: pluggable font parsers (x/image sfnt, go-text)
//   - style: weight and slant inference from subfamily labels
//   - identity: record IDs and render family names
//   - resource: resource handles and the registration block
//   - ingest: concurrent batch loading with supersede tickets
//   - selection: the primary/comparison state machine
//   - preview: a software rendering environment
//
// # Logging
//
// fontpreview is silent by default. See SetLogger.
package fontpreview
