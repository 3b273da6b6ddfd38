package resource

import "sync/atomic"

// LocatorScheme prefixes every resource locator, mirroring a browser object
// URL ("blob:<origin>/<uuid>").
const LocatorScheme = "blob:fontpreview/"

// Handle is an owned binding from a byte buffer to an addressable locator.
//
// A Handle has exactly one owner (the font record built from its bytes) and
// is passed by pointer; copying a Handle by value panics on next use.
// Release revokes the locator and is idempotent.
type Handle struct {
	// addr points at the Handle itself and detects copies.
	addr *Handle

	locator  string
	size     int
	released atomic.Bool

	// unbind removes the handle from its manager. Called once.
	unbind func(*Handle)
}

// Locator returns the address under which the bytes can be opened while the
// handle is live.
func (h *Handle) Locator() string {
	h.copyCheck()
	return h.locator
}

// Size returns the number of bound bytes.
func (h *Handle) Size() int {
	h.copyCheck()
	return h.size
}

// Released reports whether Release has been called.
func (h *Handle) Released() bool {
	h.copyCheck()
	return h.released.Load()
}

// Release revokes the locator. Calling Release more than once has the same
// effect as calling it once. Release on a nil Handle is a no-op.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.copyCheck()
	if !h.released.CompareAndSwap(false, true) {
		return
	}
	if h.unbind != nil {
		h.unbind(h)
	}
}

func (h *Handle) copyCheck() {
	if h.addr != h {
		panic("resource: Handle must not be copied by value")
	}
}
