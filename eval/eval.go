// Package eval resolves parsed keymap nodes against a caller-supplied
// symbol table. It is deliberately lenient: an incomplete table is an
// expected caller configuration, so unresolved calls degrade to an
// absent value instead of failing the whole tree.
package eval

import "github.com/layerkit/keymap/parser"

// Func computes the value of one named call from its already-evaluated
// arguments. Returning "" means the call could not be resolved.
type Func func(args []string) string

// SymbolTable maps call names to their evaluation functions. Its
// contents are owned entirely by the calling application; this package
// only defines the shape and the resolution rule.
type SymbolTable map[string]Func

// Evaluate resolves a node against table. A Word resolves to its literal
// content. A Call evaluates its parameters left to right, then invokes
// the table entry matching its name; a missing entry or an empty
// function result yields an absent value. The boolean reports whether
// the node resolved. Evaluate never fails.
func Evaluate(n parser.Node, table SymbolTable) (string, bool) {
	switch node := n.(type) {
	case *parser.Word:
		return node.Content, true

	case *parser.Call:
		args := make([]string, len(node.Params))
		for i, p := range node.Params {
			args[i], _ = Evaluate(p, table)
		}
		fn, ok := table[node.Name]
		if !ok {
			return "", false
		}
		if v := fn(args); v != "" {
			return v, true
		}
		return "", false

	default:
		return "", false
	}
}
