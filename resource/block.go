package resource

import (
	"fmt"
	"strings"

	"github.com/gogpu/fontpreview/style"
)

// Rule is one font-face registration: the render family a renderer asks for,
// and where its bytes live.
type Rule struct {
	Family  string
	Locator string
	Weight  style.Weight
	Style   style.Style
}

// CSS renders the rule as an @font-face declaration.
func (r Rule) CSS() string {
	return fmt.Sprintf("@font-face {\n  font-family: '%s';\n  src: url('%s');\n  font-weight: %s;\n  font-style: %s;\n}\n",
		r.Family, r.Locator, r.Weight.CSS(), r.Style)
}

// Block is the complete content of the style-registration surface.
// A Block is immutable once published; the manager replaces it whole.
type Block struct {
	rules  []Rule
	byName map[string]int
}

func newBlock(rules []Rule) *Block {
	b := &Block{
		rules:  rules,
		byName: make(map[string]int, len(rules)),
	}
	for i, r := range rules {
		b.byName[r.Family] = i
	}
	return b
}

// Rules returns a copy of the block's rules in registration order.
func (b *Block) Rules() []Rule {
	if b == nil {
		return nil
	}
	out := make([]Rule, len(b.rules))
	copy(out, b.rules)
	return out
}

// Len returns the number of rules.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rules)
}

// Lookup returns the rule registered for a render family.
func (b *Block) Lookup(family string) (Rule, bool) {
	if b == nil {
		return Rule{}, false
	}
	i, ok := b.byName[family]
	if !ok {
		return Rule{}, false
	}
	return b.rules[i], true
}

// CSS renders the whole block as a style sheet.
func (b *Block) CSS() string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	for i, r := range b.rules {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.CSS())
	}
	return sb.String()
}
