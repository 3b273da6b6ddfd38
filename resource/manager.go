package resource

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/gogpu/fontpreview/internal/logger"
	"github.com/gogpu/fontpreview/style"
)

// ErrTornDown is returned by RegisterBatch after Teardown.
var ErrTornDown = errors.New("resource: manager torn down")

// Registrant is what RegisterBatch needs from a font record.
type Registrant interface {
	ID() string
	RenderFamily() string
	Handle() *Handle
	Weight() style.Weight
	Style() style.Style
}

// Manager owns the resource handles of the loaded fonts and the single
// style-registration block of a rendering environment.
//
// The block is created on the first RegisterBatch and removed by Teardown.
// Manager is safe for concurrent use.
type Manager struct {
	surface Surface

	mu      sync.Mutex
	live    map[string]*Handle // locator -> bound, unreleased handle
	data    map[string][]byte  // locator -> bound bytes
	owners  map[string]*Handle // record ID -> handle of the registered batch
	created bool               // block exists on the surface
	closed  bool
	block   atomic.Pointer[Block]
}

// NewManager creates a Manager registering into surface.
// A nil surface is replaced with Discard.
func NewManager(surface Surface) *Manager {
	if surface == nil {
		surface = Discard
	}
	return &Manager{
		surface: surface,
		live:    make(map[string]*Handle),
		data:    make(map[string][]byte),
		owners:  make(map[string]*Handle),
	}
}

// Bind creates an addressable locator for data. The bytes are copied, so
// the caller may reuse data afterwards. Bind always succeeds.
func (m *Manager) Bind(data []byte) *Handle {
	buf := make([]byte, len(data))
	copy(buf, data)

	h := &Handle{
		locator: LocatorScheme + uuid.NewString(),
		size:    len(buf),
		unbind:  m.unbind,
	}
	h.addr = h

	m.mu.Lock()
	m.live[h.locator] = h
	m.data[h.locator] = buf
	m.mu.Unlock()
	return h
}

// Release revokes h. It is idempotent and equivalent to h.Release().
func (m *Manager) Release(h *Handle) {
	h.Release()
}

func (m *Manager) unbind(h *Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.live, h.locator)
	delete(m.data, h.locator)
}

// Open returns the bytes bound to locator, or false if the locator was never
// bound or has been released. The returned slice must not be modified.
func (m *Manager) Open(locator string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.data[locator]
	return data, ok
}

// LiveHandles returns the number of bound handles not yet released.
func (m *Manager) LiveHandles() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.live)
}

// Block returns the block currently registered, or nil before the first
// RegisterBatch and after Teardown.
func (m *Manager) Block() *Block {
	return m.block.Load()
}

// RegisterBatch replaces the whole registration block with one rule per
// record, keyed by the record's render family.
//
// The swap is a single step: the new block is published and applied to the
// surface before any handle of the previous batch is released, so there is
// no moment where neither batch is registered and no moment where a renderer
// sees part of one batch and part of another.
func (m *Manager) RegisterBatch(records []Registrant) error {
	rules := make([]Rule, 0, len(records))
	owners := make(map[string]*Handle, len(records))
	for _, rec := range records {
		h := rec.Handle()
		rules = append(rules, Rule{
			Family:  rec.RenderFamily(),
			Locator: h.Locator(),
			Weight:  rec.Weight(),
			Style:   rec.Style(),
		})
		owners[rec.ID()] = h
	}
	block := newBlock(rules)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrTornDown
	}
	stale := m.staleOwnersLocked(owners)
	m.owners = owners
	m.block.Store(block)
	m.created = true
	m.surface.Apply(block)
	m.mu.Unlock()

	for _, h := range stale {
		h.Release()
	}

	logger.Get().Debug("resource: registered batch",
		slog.Int("rules", len(rules)),
		slog.Int("released", len(stale)))
	return nil
}

// Clear empties the registration block and releases the handles of the
// registered batch. Used when a new load produced no fonts.
func (m *Manager) Clear() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	stale := m.staleOwnersLocked(nil)
	m.owners = make(map[string]*Handle)
	if m.created {
		empty := newBlock(nil)
		m.block.Store(empty)
		m.surface.Apply(empty)
	}
	m.mu.Unlock()

	for _, h := range stale {
		h.Release()
	}
}

// staleOwnersLocked returns the registered handles that next does not keep.
// Caller must hold m.mu.
func (m *Manager) staleOwnersLocked(next map[string]*Handle) []*Handle {
	keep := make(map[*Handle]bool, len(next))
	for _, h := range next {
		keep[h] = true
	}
	var stale []*Handle
	for _, h := range m.owners {
		if !keep[h] {
			stale = append(stale, h)
		}
	}
	return stale
}

// Teardown removes the registration block from the surface and releases
// every live handle. It is idempotent. Handles that were bound but never
// registered or released are reported as leaks.
func (m *Manager) Teardown() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true

	registered := make(map[*Handle]bool, len(m.owners))
	for _, h := range m.owners {
		registered[h] = true
	}
	handles := make([]*Handle, 0, len(m.live))
	leaked := 0
	for _, h := range m.live {
		if !registered[h] {
			leaked++
		}
		handles = append(handles, h)
	}
	m.owners = make(map[string]*Handle)
	if m.created {
		m.surface.Remove()
		m.created = false
	}
	m.block.Store(nil)
	m.mu.Unlock()

	for _, h := range handles {
		h.Release()
	}

	log := logger.Get()
	if leaked > 0 {
		log.Warn("resource: released unowned handles at teardown", slog.Int("count", leaked))
	}
	log.Info("resource: teardown", slog.Int("released", len(handles)))
}
