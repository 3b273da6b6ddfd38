// Package parse extracts font metadata from raw font bytes.
//
// Parsing is delegated to a pluggable FontParser backend. Two backends are
// registered: "ximage" (golang.org/x/image/font/sfnt, the default) and
// "gotext" (github.com/go-text/typesetting). Custom backends can be added
// with RegisterParser.
//
// Extract is pure: it has no side effects, and every failure, including a
// backend panic on malformed input, is normalized to *ParseError.
//
//	parsed, err := parse.Extract(data, "")
//	if err != nil {
//	    var pe *parse.ParseError
//	    errors.As(err, &pe) // always true
//	}
//	family, ok := parsed.FamilyName()
package parse
