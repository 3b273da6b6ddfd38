package selection

import (
	"strconv"
	"testing"

	"github.com/gogpu/fontpreview/record"
)

func testRecords(n int) []*record.FontRecord {
	out := make([]*record.FontRecord, n)
	for i := range out {
		out[i] = record.New(record.Fields{
			ID:        "Font-Regular-" + strconv.Itoa(i),
			Family:    "Font",
			Subfamily: "Regular",
			Index:     i,
		})
	}
	return out
}

func TestState_Load(t *testing.T) {
	s := New()
	if s.Mode() != Empty {
		t.Fatalf("Mode() = %v, want empty", s.Mode())
	}

	records := testRecords(3)
	s.Load(records)

	if s.Mode() != SingleSelected {
		t.Errorf("Mode() = %v, want single", s.Mode())
	}
	if s.Primary() != records[0] {
		t.Errorf("Primary() = %v, want first record", s.Primary().ID())
	}
	if s.Comparison() != nil {
		t.Error("Comparison() set in SingleSelected")
	}

	s.Load(nil)
	if s.Mode() != Empty || s.Primary() != nil {
		t.Errorf("after Load(nil): Mode() = %v, Primary() = %v", s.Mode(), s.Primary())
	}
}

func TestState_EnableCompare(t *testing.T) {
	records := testRecords(3)
	s := New()
	s.Load(records)
	if err := s.SelectPrimary(records[1].ID()); err != nil {
		t.Fatalf("SelectPrimary() error = %v", err)
	}

	s.EnableCompare()

	if s.Mode() != CompareEnabled {
		t.Fatalf("Mode() = %v, want compare", s.Mode())
	}
	if s.Comparison() != records[0] {
		t.Errorf("Comparison() = %q, want first record that is not the primary", s.Comparison().ID())
	}
}

func TestState_EnableCompare_SingleRecord(t *testing.T) {
	records := testRecords(1)
	s := New()
	s.Load(records)

	s.EnableCompare()

	if s.Mode() != CompareEnabled {
		t.Fatalf("Mode() = %v, want compare", s.Mode())
	}
	if s.Comparison() != records[0] || s.Primary() != records[0] {
		t.Error("single-record batch should compare the record with itself")
	}
}

func TestState_EnableCompare_FromEmpty(t *testing.T) {
	s := New()
	s.EnableCompare()
	if s.Mode() != Empty {
		t.Errorf("Mode() = %v, want empty", s.Mode())
	}
}

func TestState_DisableCompareForgetsComparison(t *testing.T) {
	records := testRecords(3)
	s := New()
	s.Load(records)
	s.EnableCompare()
	if !s.SelectComparison(records[2].ID()) {
		t.Fatal("SelectComparison() = false")
	}

	s.DisableCompare()
	if s.Mode() != SingleSelected || s.Comparison() != nil {
		t.Fatalf("after DisableCompare: Mode() = %v, Comparison() = %v", s.Mode(), s.Comparison())
	}

	s.EnableCompare()
	if s.Comparison() != records[1] {
		t.Errorf("re-enabled Comparison() = %q, want fallback %q", s.Comparison().ID(), records[1].ID())
	}
}

func TestState_ToggleCompare(t *testing.T) {
	s := New()
	s.Load(testRecords(2))

	if !s.ToggleCompare() {
		t.Error("first ToggleCompare() = false")
	}
	if s.ToggleCompare() {
		t.Error("second ToggleCompare() = true")
	}
}

func TestState_SelectComparison(t *testing.T) {
	records := testRecords(3)
	s := New()
	s.Load(records)

	if s.SelectComparison(records[2].ID()) {
		t.Error("SelectComparison() outside compare mode changed the selection")
	}

	s.EnableCompare()
	before := s.Comparison()

	if s.SelectComparison("missing") {
		t.Error("SelectComparison(unknown) = true")
	}
	if s.SelectComparison(records[0].ID()) {
		t.Error("SelectComparison(primary) = true with other records available")
	}
	if s.Comparison() != before {
		t.Error("no-op SelectComparison changed the comparison")
	}

	if !s.SelectComparison(records[2].ID()) || s.Comparison() != records[2] {
		t.Error("SelectComparison(valid) did not select the record")
	}
}

func TestState_SelectPrimary(t *testing.T) {
	records := testRecords(3)
	s := New()
	s.Load(records)

	if err := s.SelectPrimary("missing"); err != ErrUnknownRecord {
		t.Errorf("SelectPrimary(unknown) error = %v, want ErrUnknownRecord", err)
	}

	s.EnableCompare()
	// Selecting the comparison font as primary re-picks the comparison.
	if err := s.SelectPrimary(records[1].ID()); err != nil {
		t.Fatalf("SelectPrimary() error = %v", err)
	}
	if s.Comparison() == s.Primary() {
		t.Error("comparison equals primary in a multi-record batch")
	}
	if s.Comparison() != records[0] {
		t.Errorf("Comparison() = %q, want %q", s.Comparison().ID(), records[0].ID())
	}
}

func TestState_LoadResetsFromCompare(t *testing.T) {
	s := New()
	s.Load(testRecords(2))
	s.EnableCompare()

	next := testRecords(1)
	s.Load(next)

	if s.Mode() != SingleSelected || s.Primary() != next[0] || s.Comparison() != nil {
		t.Errorf("Load did not reset: mode %v", s.Mode())
	}
}

func TestState_Panels(t *testing.T) {
	s := New()
	s.Load(testRecords(2))

	if p := s.Panel(PrimaryPanel); p.Text != DefaultText || p.Size != DefaultSize {
		t.Errorf("default panel = %+v", p)
	}

	s.SetPanelText(PrimaryPanel, "Hamburgefonstiv")
	if got := s.SetPanelSize(PrimaryPanel, 200); got != MaxSize {
		t.Errorf("SetPanelSize(200) = %d, want %d", got, MaxSize)
	}
	if got := s.SetPanelSize(PrimaryPanel, 1); got != MinSize {
		t.Errorf("SetPanelSize(1) = %d, want %d", got, MinSize)
	}

	s.EnableCompare()
	if cmp := s.Panel(ComparisonPanel); cmp.Text != "Hamburgefonstiv" || cmp.Size != MinSize {
		t.Errorf("comparison panel = %+v, want a copy of the primary panel", cmp)
	}

	s.SetPanelText(ComparisonPanel, "")
	if got := s.Panel(ComparisonPanel).RenderText(); got != Placeholder {
		t.Errorf("RenderText() = %q, want %q", got, Placeholder)
	}
	if got := s.Panel(PrimaryPanel).Text; got != "Hamburgefonstiv" {
		t.Errorf("primary text changed to %q", got)
	}
}

func TestState_Snapshot(t *testing.T) {
	records := testRecords(2)
	s := New()
	s.Load(records)
	s.EnableCompare()

	snap := s.Snapshot()
	s.DisableCompare()

	if snap.Mode != CompareEnabled || snap.Comparison != records[1] {
		t.Errorf("snapshot changed with the state: %+v", snap)
	}
}
