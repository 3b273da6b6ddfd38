package preview

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRegistered is returned when a render family has no rule in the
	// registered block.
	ErrNotRegistered = errors.New("preview: render family not registered")

	// ErrReleased is returned when a rule's resource locator no longer
	// resolves, because its handle was released.
	ErrReleased = errors.New("preview: font resource released")
)

// FontError reports a registered font that could not be loaded for drawing.
type FontError struct {
	Family string
	Err    error
}

func (e *FontError) Error() string {
	return fmt.Sprintf("preview: font %q: %v", e.Family, e.Err)
}

func (e *FontError) Unwrap() error {
	return e.Err
}
