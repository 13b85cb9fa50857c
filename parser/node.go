package parser

import (
	"fmt"
	"strings"
)

// NodeType defines the two node shapes the keymap grammar produces.
type NodeType int

const (
	NodeWord NodeType = iota // bare token such as KC_A
	NodeCall                 // nested call such as LT(1, KC_A)
)

// Node is one argument of a KEYMAP invocation. Pos and End are absolute
// byte offsets into the original source; End is one past the last
// consumed character, including any trailing delimiter the node absorbed.
type Node interface {
	Type() NodeType
	String() string // debugging or printing purpose
	Pos() int       // where the node starts in the input
	End() int       // one past the last consumed character
}

var (
	_ Node = (*Word)(nil)
	_ Node = (*Call)(nil)
)

// Word is a leaf argument token with no nested structure.
// Content carries the trimmed token text and never contains whitespace.
type Word struct {
	Content  string
	pos, end int
}

func (w *Word) Type() NodeType { return NodeWord }
func (w *Word) String() string { return fmt.Sprintf("Word(%s)", w.Content) }
func (w *Word) Pos() int       { return w.pos }
func (w *Word) End() int       { return w.end }

// Call is an argument that is itself a named function-style invocation
// with its own argument list. Content is the exact source substring from
// the first character of the name through the closing parenthesis, so
// Content == text[Pos():End()] always holds.
type Call struct {
	Name     string
	Params   []Node
	Content  string
	pos, end int
}

func (c *Call) Type() NodeType { return NodeCall }
func (c *Call) String() string {
	parts := make([]string, len(c.Params))
	for i, p := range c.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("Call(%s: %s)", c.Name, strings.Join(parts, ", "))
}
func (c *Call) Pos() int { return c.pos }
func (c *Call) End() int { return c.end }

// Layer is the ordered argument list of one invocation, one key per
// argument. Node offsets within a layer are strictly increasing.
type Layer []Node

// Result holds every invocation found in the source, in source order.
type Result struct {
	Layers []Layer

	// End is the absolute offset just past the closing parenthesis of the
	// last invocation. It is metadata for the append-layer edit path and
	// is not part of the tree itself.
	End int
}

// KeyCount returns the number of keys per layer, or 0 for an empty result.
func (r *Result) KeyCount() int {
	if len(r.Layers) == 0 {
		return 0
	}
	return len(r.Layers[0])
}
