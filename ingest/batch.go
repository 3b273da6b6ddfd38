package ingest

import (
	"github.com/gogpu/fontpreview/identity"
	"github.com/gogpu/fontpreview/record"
)

// Batch is the result of one load.
//
// Records and Failures partition the recognised input files: every file
// with a recognised extension appears in exactly one of them, in input
// order.
type Batch struct {
	Ticket Ticket
	Epoch  identity.Epoch

	// Records are the loaded fonts in input order.
	Records []*record.FontRecord

	// Failures are the names of recognised files that could not be read or
	// parsed, in input order.
	Failures []string

	// Recognized is the number of input files with a recognised extension.
	Recognized int

	// Inputs is the number of input files.
	Inputs int
}

// Record returns the record with the given ID.
func (b *Batch) Record(id string) (*record.FontRecord, bool) {
	if b == nil {
		return nil, false
	}
	for _, r := range b.Records {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// Outcome summarises the batch: nil when every file loaded,
// *PartialFailureWarning when some failed, *AllFilesFailedError when all did.
func (b *Batch) Outcome() error {
	switch {
	case len(b.Failures) == 0:
		return nil
	case len(b.Records) == 0:
		return &AllFilesFailedError{Failures: b.Failures}
	default:
		return &PartialFailureWarning{Loaded: len(b.Records), Failures: b.Failures}
	}
}

// Release releases the resource handle of every record in the batch.
func (b *Batch) Release() {
	if b == nil {
		return
	}
	for _, r := range b.Records {
		r.Handle().Release()
	}
}
