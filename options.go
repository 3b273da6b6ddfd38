package fontpreview

import (
	"github.com/gogpu/fontpreview/ingest"
	"github.com/gogpu/fontpreview/preview"
	"github.com/gogpu/fontpreview/selection"
)

// Option configures a Session during creation.
//
// Example:
//
//	s := fontpreview.New(nil,
//	    fontpreview.WithIngestOptions(ingest.WithParser(parse.ParserGoText)),
//	    fontpreview.WithPreviewText("Sphinx of black quartz, judge my vow", 64),
//	)
type Option func(*options)

type options struct {
	ingest  []ingest.Option
	preview []preview.Option
	text    string
	size    int
	gap     int
}

func defaultOptions() options {
	return options{
		text: selection.DefaultText,
		size: selection.DefaultSize,
		gap:  24,
	}
}

// WithIngestOptions passes options to the session's ingestion pipeline.
func WithIngestOptions(opts ...ingest.Option) Option {
	return func(o *options) {
		o.ingest = append(o.ingest, opts...)
	}
}

// WithPreviewOptions passes options to the session's rendering environment.
func WithPreviewOptions(opts ...preview.Option) Option {
	return func(o *options) {
		o.preview = append(o.preview, opts...)
	}
}

// WithPreviewText sets the initial text and pixel size of the primary
// panel. The size is clamped to the panel limits.
func WithPreviewText(text string, size int) Option {
	return func(o *options) {
		o.text = text
		o.size = size
	}
}

// WithGap sets the spacing between side-by-side panels, in pixels.
func WithGap(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.gap = px
		}
	}
}
