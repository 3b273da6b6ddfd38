package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSuperseded is returned when a newer batch started before this one
// finished. The superseded batch's handles have been released and nothing
// was registered.
var ErrSuperseded = errors.New("ingest: batch superseded by a newer load")

// NoValidFilesError reports that none of the input files has a recognised
// font extension. The parser is never invoked in that case.
type NoValidFilesError struct {
	// Total is the number of input files.
	Total int

	// Extensions are the recognised extensions.
	Extensions []string
}

func (e *NoValidFilesError) Error() string {
	return fmt.Sprintf("ingest: no %s files among %d inputs", strings.Join(e.Extensions, "/"), e.Total)
}

// AllFilesFailedError reports that every recognised file failed to load.
type AllFilesFailedError struct {
	Failures []string
}

func (e *AllFilesFailedError) Error() string {
	return fmt.Sprintf("ingest: all %d font files failed to parse: %s", len(e.Failures), strings.Join(e.Failures, ", "))
}

// PartialFailureWarning reports that some files loaded and some did not.
// The batch is usable.
type PartialFailureWarning struct {
	Loaded   int
	Failures []string
}

func (e *PartialFailureWarning) Error() string {
	return fmt.Sprintf("ingest: loaded %d fonts, %d failed to parse: %s", e.Loaded, len(e.Failures), strings.Join(e.Failures, ", "))
}

// Severity classifies an outcome message.
type Severity int

const (
	// SeverityNone means there is nothing to report.
	SeverityNone Severity = iota
	// SeverityWarning means the batch is usable.
	SeverityWarning
	// SeverityError means nothing was loaded.
	SeverityError
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// UserMessage turns an ingestion outcome (the error from Ingest, or a
// Batch's Outcome) into a message for the user and its severity.
func UserMessage(err error) (string, Severity) {
	if err == nil {
		return "", SeverityNone
	}

	var (
		none    *NoValidFilesError
		all     *AllFilesFailedError
		partial *PartialFailureWarning
	)
	switch {
	case errors.As(err, &none):
		return fmt.Sprintf("No valid %s font files found in the selected directory.", joinOr(none.Extensions)), SeverityError
	case errors.As(err, &all):
		return "Could not parse any fonts. The following files may be corrupted: " + strings.Join(all.Failures, ", "), SeverityError
	case errors.As(err, &partial):
		return fmt.Sprintf("Loaded %d fonts. Failed to parse: %s. They may be corrupted.", partial.Loaded, strings.Join(partial.Failures, ", ")), SeverityWarning
	case errors.Is(err, ErrSuperseded):
		return "", SeverityNone
	default:
		return err.Error(), SeverityError
	}
}

// joinOr renders [".ttf", ".otf"] as ".ttf or .otf".
func joinOr(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}
