package fontpreview

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/fontpreview/ingest"
	"github.com/gogpu/fontpreview/preview"
	"github.com/gogpu/fontpreview/record"
	"github.com/gogpu/fontpreview/resource"
	"github.com/gogpu/fontpreview/selection"
)

var (
	// ErrClosed is returned by Session methods after Teardown.
	ErrClosed = errors.New("fontpreview: session closed")

	// ErrNoSelection is returned when rendering a panel that shows no font.
	ErrNoSelection = errors.New("fontpreview: no font selected for panel")
)

// Session ties the pieces of a font preview together: it loads batches of
// font files, keeps them registered with the rendering environment, and
// tracks which fonts are previewed.
//
// Loading a batch resets the selection. When loads overlap, only the most
// recent one is applied; earlier ones return ingest.ErrSuperseded.
//
// A Session must be torn down with Teardown, which releases every font
// resource. Session is safe for concurrent use.
type Session struct {
	env      *preview.Environment
	manager  *resource.Manager
	pipeline *ingest.Pipeline
	gap      int

	mu     sync.Mutex
	sel    *selection.State
	batch  *ingest.Batch
	closed bool
}

// New creates a Session. Registration blocks go to the session's software
// rendering environment and, if surface is not nil, to surface as well.
func New(surface resource.Surface, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	env := preview.NewEnvironment(nil, o.preview...)
	manager := resource.NewManager(resource.Multi(env, surface))
	env.SetResolver(manager)

	sel := selection.New()
	sel.SetPanelText(selection.PrimaryPanel, o.text)
	sel.SetPanelSize(selection.PrimaryPanel, o.size)

	return &Session{
		env:      env,
		manager:  manager,
		pipeline: ingest.New(manager, o.ingest...),
		gap:      o.gap,
		sel:      sel,
	}
}

// Ingest loads files as a new batch and, if no newer batch started in the
// meantime, makes it the session's batch with its first font selected.
//
// The returned error is *ingest.NoValidFilesError when no file has a
// recognised extension, ingest.ErrSuperseded when a newer Ingest won, or
// ErrClosed after Teardown. Per-file failures are reported by the batch's
// Outcome.
func (s *Session) Ingest(ctx context.Context, files []ingest.File) (*ingest.Batch, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	s.sel.Reset()
	s.batch = nil
	ticket := s.pipeline.Begin()
	s.mu.Unlock()

	batch, err := s.pipeline.Run(ctx, ticket, files)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.closed:
		return nil, ErrClosed
	case err != nil:
		if errors.Is(err, resource.ErrTornDown) {
			return nil, ErrClosed
		}
		return nil, err
	case !s.pipeline.IsCurrent(ticket):
		// Registered, but a newer load has started and will replace it.
		return nil, ingest.ErrSuperseded
	}

	s.batch = batch
	s.sel.Load(batch.Records)
	Logger().Debug("fontpreview: batch applied",
		slog.Uint64("ticket", uint64(ticket)),
		slog.String("mode", s.sel.Mode().String()))
	return batch, nil
}

// Records returns the fonts of the current batch in input order.
func (s *Session) Records() []*record.FontRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sel.Records())
}

// Record returns the font with the given ID from the current batch.
func (s *Session) Record(id string) (*record.FontRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batch.Record(id)
}

// Search returns the fonts whose display name contains query, ignoring
// case.
func (s *Session) Search(query string) []*record.FontRecord {
	return record.Filter(s.Records(), query)
}

// Selection returns a snapshot of the selection state.
func (s *Session) Selection() selection.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Snapshot()
}

// SelectPrimary makes the font with the given ID the primary font.
func (s *Session) SelectPrimary(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.SelectPrimary(id)
}

// EnableCompare turns comparison mode on.
func (s *Session) EnableCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.EnableCompare()
}

// DisableCompare turns comparison mode off.
func (s *Session) DisableCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.DisableCompare()
}

// ToggleCompare flips comparison mode and reports whether it is on.
func (s *Session) ToggleCompare() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.ToggleCompare()
}

// SelectComparison makes the font with the given ID the comparison font.
// It reports whether the selection changed.
func (s *Session) SelectComparison(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.SelectComparison(id)
}

// SetPanelText sets the preview text of a panel.
func (s *Session) SetPanelText(panel selection.PanelID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.SetPanelText(panel, text)
}

// SetPanelSize sets the pixel size of a panel and returns the size applied
// after clamping.
func (s *Session) SetPanelSize(panel selection.PanelID, size int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.SetPanelSize(panel, size)
}

// RenderPanel draws a panel's text with the panel's font. maxWidth wraps
// the text to that many pixels; 0 disables wrapping.
func (s *Session) RenderPanel(panel selection.PanelID, maxWidth int) (*image.RGBA, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.renderPanel(snap, panel, maxWidth)
}

// Render draws the primary panel, and the comparison panel beside it when
// comparison mode is on. Both panels come from one selection snapshot.
func (s *Session) Render(maxWidth int) (*image.RGBA, error) {
	snap, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.render(snap, maxWidth)
}

func (s *Session) render(snap selection.Snapshot, maxWidth int) (*image.RGBA, error) {
	primary, err := s.renderPanel(snap, selection.PrimaryPanel, maxWidth)
	if err != nil {
		return nil, err
	}
	if snap.Mode != selection.CompareEnabled || snap.Comparison == nil {
		return primary, nil
	}
	comparison, err := s.renderPanel(snap, selection.ComparisonPanel, maxWidth)
	if err != nil {
		return nil, err
	}
	return preview.SideBySide(s.gap, nil, primary, comparison), nil
}

func (s *Session) snapshot() (selection.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return selection.Snapshot{}, ErrClosed
	}
	return s.sel.Snapshot(), nil
}

func (s *Session) renderPanel(snap selection.Snapshot, panel selection.PanelID, maxWidth int) (*image.RGBA, error) {
	font := snap.Primary
	if panel == selection.ComparisonPanel {
		font = snap.Comparison
	}
	if font == nil {
		return nil, ErrNoSelection
	}
	settings := snap.Panels[panel]
	return s.env.Render(preview.Request{
		Family:   font.RenderFamily(),
		Weight:   font.Weight(),
		Style:    font.Style(),
		Size:     settings.Size,
		Text:     settings.RenderText(),
		MaxWidth: maxWidth,
	})
}

// Export returns a copy of the font file bytes of the record with the given
// ID.
func (s *Session) Export(id string) ([]byte, error) {
	r, ok := s.Record(id)
	if !ok {
		return nil, selection.ErrUnknownRecord
	}
	data, ok := s.manager.Open(r.Handle().Locator())
	if !ok {
		return nil, preview.ErrReleased
	}
	return slices.Clone(data), nil
}

// CSS returns the registered @font-face block.
func (s *Session) CSS() string {
	return s.manager.Block().CSS()
}

// Teardown ends the session: it removes the registration block and
// releases every font resource. Teardown is idempotent.
func (s *Session) Teardown() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.sel.Reset()
	s.batch = nil
	s.mu.Unlock()

	s.manager.Teardown()
}
