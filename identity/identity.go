// Package identity assigns record IDs and rendering-environment family names
// to loaded fonts.
//
// A record ID is unique within one batch. A render family is unique for the
// lifetime of the process, so a rule left over from a released batch can never
// shadow a live one.
package identity

import (
	"strconv"
	"sync"
	"time"
)

// RenderFamilyPrefix prefixes every synthetic render family name.
const RenderFamilyPrefix = "custom-font-"

// Epoch distinguishes batch loads. Two calls to NextEpoch on the same
// Assigner never return the same value.
type Epoch int64

// String implements fmt.Stringer.
func (e Epoch) String() string {
	return strconv.FormatInt(int64(e), 10)
}

// Identity is the pair of names assigned to one loaded font.
type Identity struct {
	// ID addresses the record within its batch.
	ID string

	// RenderFamily is the font-family key registered with the rendering
	// environment.
	RenderFamily string
}

// Assigner hands out load epochs.
//
// Epochs are wall-clock milliseconds, like a browser's Date.now(). When two
// loads fall in the same tick, or the clock steps backwards, the epoch is the
// previous one plus one, so epochs are strictly increasing.
//
// Assigner is safe for concurrent use.
type Assigner struct {
	mu    sync.Mutex
	last  Epoch
	clock func() time.Time
}

// NewAssigner returns an Assigner reading time from clock.
// A nil clock uses time.Now.
func NewAssigner(clock func() time.Time) *Assigner {
	if clock == nil {
		clock = time.Now
	}
	return &Assigner{clock: clock}
}

// NextEpoch returns an epoch greater than every epoch returned before.
func (a *Assigner) NextEpoch() Epoch {
	a.mu.Lock()
	defer a.mu.Unlock()

	e := Epoch(a.clock().UnixMilli())
	if e <= a.last {
		e = a.last + 1
	}
	a.last = e
	return e
}

// Assign returns the identity of the font at batchIndex in the batch loaded
// at epoch.
func Assign(family, subfamily string, batchIndex int, epoch Epoch) Identity {
	idx := strconv.Itoa(batchIndex)
	return Identity{
		ID:           family + "-" + subfamily + "-" + idx,
		RenderFamily: RenderFamilyPrefix + epoch.String() + "-" + idx,
	}
}

var processAssigner = NewAssigner(nil)

// NextEpoch returns the next epoch from the process-wide Assigner.
// Every session in the process draws from it, which keeps render families
// unique across sessions as well as across batches.
func NextEpoch() Epoch {
	return processAssigner.NextEpoch()
}
