// Package keymap parses and surgically edits source files containing
// KEYMAP macro invocations. The convenience functions here cover the
// default dialect; use the parser, eval, and editor packages directly
// when a custom macro name, placeholder, or annotation is needed.
package keymap

import (
	"github.com/layerkit/keymap/editor"
	"github.com/layerkit/keymap/eval"
	"github.com/layerkit/keymap/parser"
)

// Parse parses every KEYMAP invocation in text into offset-annotated
// layers.
func Parse(text string) (*parser.Result, error) {
	return parser.Parse(text)
}

// ParseExpecting is Parse with an expected key count checked against the
// first layer.
func ParseExpecting(text string, keyCount int) (*parser.Result, error) {
	return parser.ParseExpecting(text, keyCount)
}

// Evaluate resolves a parsed node against a caller-supplied symbol
// table. The boolean reports whether the node resolved to a value.
func Evaluate(n parser.Node, table eval.SymbolTable) (string, bool) {
	return eval.Evaluate(n, table)
}

// SetKey replaces the key at (layer, key) with value and returns the
// edited text, leaving every other byte untouched. Out-of-range indices
// return the input unchanged.
func SetKey(text string, layer, key int, value string) (string, error) {
	return editor.New(editor.Config{}).SetKey(text, layer, key, value)
}

// AppendLayer inserts one placeholder-filled invocation after the last
// one. Text that does not parse is returned unchanged.
func AppendLayer(text string) string {
	return editor.New(editor.Config{}).AppendLayer(text)
}
