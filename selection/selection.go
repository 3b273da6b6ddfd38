// Package selection tracks which loaded font is previewed as the primary
// font and which, if any, is shown beside it for comparison.
package selection

import (
	"errors"
	"strings"

	"github.com/gogpu/fontpreview/record"
)

// Preview panel limits and defaults.
const (
	MinSize     = 12
	MaxSize     = 128
	DefaultSize = 48

	DefaultText = "Type your own text here to preview the font."

	// Placeholder is rendered in place of empty panel text.
	Placeholder = "Start typing..."
)

// ErrUnknownRecord is returned by SelectPrimary for an ID not in the batch.
var ErrUnknownRecord = errors.New("selection: unknown record")

// Mode is the state of the selection machine.
type Mode int

const (
	// Empty means no batch is loaded, or the batch has no records.
	Empty Mode = iota

	// SingleSelected means a primary font is selected and comparison is off.
	SingleSelected

	// CompareEnabled means a primary and a comparison font are selected.
	CompareEnabled
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case SingleSelected:
		return "single"
	case CompareEnabled:
		return "compare"
	default:
		return "empty"
	}
}

// PanelID names a preview panel.
type PanelID int

const (
	PrimaryPanel PanelID = iota
	ComparisonPanel
)

// Panel holds the preview settings of one panel.
type Panel struct {
	Text string
	Size int
}

// DefaultPanel returns a panel with the default text and size.
func DefaultPanel() Panel {
	return Panel{Text: DefaultText, Size: DefaultSize}
}

// RenderText returns the text to draw: the panel text, or Placeholder when
// the text is empty.
func (p Panel) RenderText() string {
	if strings.TrimSpace(p.Text) == "" {
		return Placeholder
	}
	return p.Text
}

// ClampSize limits size to [MinSize, MaxSize].
func ClampSize(size int) int {
	return max(MinSize, min(size, MaxSize))
}

// State is the selection state machine.
//
// Invariants: in Empty neither font is set; in SingleSelected only the
// primary is set; in CompareEnabled both are set, and they differ unless
// the batch holds a single record.
//
// State is not safe for concurrent use; the session serialises access.
type State struct {
	mode       Mode
	records    []*record.FontRecord
	primary    *record.FontRecord
	comparison *record.FontRecord
	panels     [2]Panel
}

// New returns an Empty state with default panels.
func New() *State {
	return &State{panels: [2]Panel{DefaultPanel(), DefaultPanel()}}
}

// Mode returns the current state.
func (s *State) Mode() Mode { return s.mode }

// Records returns the records of the current batch.
func (s *State) Records() []*record.FontRecord { return s.records }

// Primary returns the primary font, or nil in Empty.
func (s *State) Primary() *record.FontRecord { return s.primary }

// Comparison returns the comparison font, or nil unless CompareEnabled.
func (s *State) Comparison() *record.FontRecord { return s.comparison }

// Panel returns the settings of panel id.
func (s *State) Panel(id PanelID) Panel { return s.panels[id] }

// Reset returns to Empty and forgets the batch. Panel settings are kept.
func (s *State) Reset() {
	s.mode = Empty
	s.records = nil
	s.primary = nil
	s.comparison = nil
}

// Load resets the state and adopts records as the current batch. The first
// record becomes the primary font; an empty batch stays Empty.
func (s *State) Load(records []*record.FontRecord) {
	s.Reset()
	if len(records) == 0 {
		return
	}
	s.records = records
	s.primary = records[0]
	s.mode = SingleSelected
}

// SelectPrimary makes the record with the given ID the primary font.
// If that record was the comparison font, a new comparison is picked.
func (s *State) SelectPrimary(id string) error {
	r := s.find(id)
	if r == nil {
		return ErrUnknownRecord
	}
	s.primary = r
	if s.mode == CompareEnabled && s.comparison.ID() == r.ID() {
		s.comparison = s.fallbackComparison()
	}
	return nil
}

// EnableCompare turns comparison on. The comparison font is the first
// record whose ID differs from the primary's; with a single record it is
// the primary itself. The comparison panel takes the primary panel's text
// and size. EnableCompare is a no-op unless SingleSelected.
func (s *State) EnableCompare() {
	if s.mode != SingleSelected {
		return
	}
	s.comparison = s.fallbackComparison()
	s.panels[ComparisonPanel] = s.panels[PrimaryPanel]
	s.mode = CompareEnabled
}

// DisableCompare turns comparison off and forgets the comparison font.
func (s *State) DisableCompare() {
	if s.mode != CompareEnabled {
		return
	}
	s.comparison = nil
	s.mode = SingleSelected
}

// ToggleCompare switches comparison on or off and reports whether it is on.
func (s *State) ToggleCompare() bool {
	if s.mode == CompareEnabled {
		s.DisableCompare()
	} else {
		s.EnableCompare()
	}
	return s.mode == CompareEnabled
}

// SelectComparison makes the record with the given ID the comparison font.
// It reports whether the selection changed. It is a no-op outside
// CompareEnabled, for an unknown ID, and for the primary's ID while the
// batch has other records to compare against.
func (s *State) SelectComparison(id string) bool {
	if s.mode != CompareEnabled {
		return false
	}
	r := s.find(id)
	if r == nil {
		return false
	}
	if r.ID() == s.primary.ID() && len(s.records) > 1 {
		return false
	}
	s.comparison = r
	return true
}

// SetPanelText sets the preview text of a panel.
func (s *State) SetPanelText(id PanelID, text string) {
	s.panels[id].Text = text
}

// SetPanelSize sets the pixel size of a panel, clamped to
// [MinSize, MaxSize]. It returns the size applied.
func (s *State) SetPanelSize(id PanelID, size int) int {
	size = ClampSize(size)
	s.panels[id].Size = size
	return size
}

func (s *State) find(id string) *record.FontRecord {
	for _, r := range s.records {
		if r.ID() == id {
			return r
		}
	}
	return nil
}

func (s *State) fallbackComparison() *record.FontRecord {
	for _, r := range s.records {
		if r.ID() != s.primary.ID() {
			return r
		}
	}
	return s.primary
}

// Snapshot is a read-only copy of a State.
type Snapshot struct {
	Mode       Mode
	Primary    *record.FontRecord
	Comparison *record.FontRecord
	Panels     [2]Panel
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Mode:       s.mode,
		Primary:    s.primary,
		Comparison: s.comparison,
		Panels:     s.panels,
	}
}
