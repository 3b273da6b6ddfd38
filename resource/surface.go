package resource

// Surface is the registration side of a rendering environment: the single
// place font-face rules become visible to the renderer.
//
// The manager only ever hands a Surface complete blocks; implementations
// should swap their rule set in one step so renderers never observe a mix
// of two blocks.
type Surface interface {
	// Apply replaces the registered rule set with block.
	Apply(block *Block)

	// Remove deletes the registration block from the environment.
	Remove()
}

// Discard is a Surface that registers nothing.
var Discard Surface = discardSurface{}

type discardSurface struct{}

func (discardSurface) Apply(*Block) {}
func (discardSurface) Remove()      {}

// Multi returns a Surface that forwards every call to each of surfaces in
// order. Nil surfaces are skipped.
func Multi(surfaces ...Surface) Surface {
	var out multiSurface
	for _, s := range surfaces {
		if s != nil {
			out = append(out, s)
		}
	}
	switch len(out) {
	case 0:
		return Discard
	case 1:
		return out[0]
	}
	return out
}

type multiSurface []Surface

func (m multiSurface) Apply(b *Block) {
	for _, s := range m {
		s.Apply(b)
	}
}

func (m multiSurface) Remove() {
	for _, s := range m {
		s.Remove()
	}
}
