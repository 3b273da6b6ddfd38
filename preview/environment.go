package preview

import (
	"image/color"
	"log/slog"
	"sync/atomic"

	"golang.org/x/image/font/opentype"

	"github.com/gogpu/fontpreview/internal/logger"
	"github.com/gogpu/fontpreview/resource"
)

// Resolver turns a resource locator into font bytes.
// *resource.Manager implements it.
type Resolver interface {
	Open(locator string) ([]byte, bool)
}

// Environment is a software rendering environment. It implements
// resource.Surface: the manager registers blocks with it, and Render draws
// text with the fonts those blocks name.
//
// Environment is safe for concurrent use.
type Environment struct {
	resolver atomic.Pointer[resolverRef]
	cfg      config

	block atomic.Pointer[resource.Block]
	fonts *cache[string, *opentype.Font] // locator -> parsed font
}

type resolverRef struct{ Resolver }

var _ resource.Surface = (*Environment)(nil)

// NewEnvironment creates an Environment loading font bytes from resolver.
// resolver may be nil and set later with SetResolver, since the manager
// that resolves locators usually needs the Environment first.
func NewEnvironment(resolver Resolver, opts ...Option) *Environment {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Environment{
		cfg:   cfg,
		fonts: newCache[string, *opentype.Font](cfg.cacheSize),
	}
	e.SetResolver(resolver)
	return e
}

// SetResolver sets where locators are resolved.
func (e *Environment) SetResolver(r Resolver) {
	e.resolver.Store(&resolverRef{r})
}

// Apply implements resource.Surface. The new block replaces the old one in a
// single store; fonts no longer referenced are dropped from the cache.
func (e *Environment) Apply(block *resource.Block) {
	e.block.Store(block)

	live := make(map[string]bool, block.Len())
	for _, r := range block.Rules() {
		live[r.Locator] = true
	}
	e.fonts.retain(func(locator string) bool { return live[locator] })

	logger.Get().Debug("preview: applied registration block", slog.Int("rules", block.Len()))
}

// Remove implements resource.Surface.
func (e *Environment) Remove() {
	e.block.Store(nil)
	e.fonts.clear()
}

// Block returns the registered block, or nil.
func (e *Environment) Block() *resource.Block {
	return e.block.Load()
}

// font resolves family through the registered block.
func (e *Environment) font(family string) (*opentype.Font, resource.Rule, error) {
	rule, ok := e.block.Load().Lookup(family)
	if !ok {
		return nil, rule, &FontError{Family: family, Err: ErrNotRegistered}
	}
	f, err := e.fonts.getOrCreate(rule.Locator, func() (*opentype.Font, error) {
		r := e.resolver.Load().Resolver
		if r == nil {
			return nil, ErrReleased
		}
		data, ok := r.Open(rule.Locator)
		if !ok {
			return nil, ErrReleased
		}
		return opentype.Parse(data)
	})
	if err != nil {
		return nil, rule, &FontError{Family: family, Err: err}
	}
	return f, rule, nil
}

// Option configures an Environment.
type Option func(*config)

type config struct {
	dpi        float64
	padding    int
	foreground color.Color
	background color.Color
	cacheSize  int
}

func defaultConfig() config {
	return config{
		dpi:        72,
		padding:    16,
		foreground: color.Black,
		background: color.White,
		cacheSize:  64,
	}
}

// WithDPI sets the resolution. At 72 DPI one point is one pixel.
func WithDPI(dpi float64) Option {
	return func(c *config) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithPadding sets the margin around rendered text, in pixels.
func WithPadding(px int) Option {
	return func(c *config) {
		if px >= 0 {
			c.padding = px
		}
	}
}

// WithColors sets the text and background colors.
func WithColors(fg, bg color.Color) Option {
	return func(c *config) {
		if fg != nil {
			c.foreground = fg
		}
		if bg != nil {
			c.background = bg
		}
	}
}
