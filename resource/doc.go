// Package resource owns the lifetime of font byte buffers and the
// style-registration block that makes them visible to a rendering
// environment.
//
// Bind turns bytes into a Handle with an addressable locator
// ("blob:fontpreview/<uuid>"). Each Handle is owned by one font record and
// released exactly once when the record is dropped; Release is idempotent.
//
// RegisterBatch replaces the whole block in one step with one rule per
// record. Teardown removes the block and releases everything still bound.
package resource
