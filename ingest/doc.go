// Package ingest loads batches of font files into font records.
//
// A batch is loaded concurrently, one task per file with a recognised
// extension (.ttf or .otf, ignoring case). Each task reads the file, parses
// it, infers weight and style from the subfamily label, assigns identities
// and binds the bytes to a resource handle. Failures stay per file: a file
// that cannot be read or parsed is listed in Batch.Failures and the rest of
// the batch loads normally.
//
// Results keep input order. The whole batch is registered with the
// resource.Manager in a single call, which replaces the previous batch and
// releases its handles.
//
// Every load carries a Ticket. Starting a load supersedes all earlier
// ones, and a superseded load discards its results:
//
//	p := ingest.New(manager)
//	batch, err := p.Ingest(ctx, files)
//	if errors.Is(err, ingest.ErrSuperseded) {
//		return // a newer load is in charge
//	}
//	msg, severity := ingest.UserMessage(batch.Outcome())
package ingest
