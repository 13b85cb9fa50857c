// Package editor performs surgical edits on keymap source text. It never
// rewrites a tree: it locates the target span through the parser, splices
// bytes, and re-derives the tree by re-parsing the spliced text.
package editor

import (
	"fmt"
	"strings"

	"github.com/layerkit/keymap/parser"
)

const (
	// DefaultPlaceholder is the "no mapping" token used for every key of
	// a freshly appended layer.
	DefaultPlaceholder = "KC_TRNS"

	// DefaultAnnotation is the printf format for the layer-index
	// annotation emitted above an appended invocation.
	DefaultAnnotation = "/* %d */"
)

// Config controls the synthesized text the editor emits. The zero value
// selects the KEYMAP macro, the KC_TRNS placeholder, and a block-comment
// layer annotation.
type Config struct {
	Macro       string
	Placeholder string
	Annotation  string // printf-style format receiving the new layer index

	// ValidateAppend re-parses the output of AppendLayer and falls back
	// to the unmodified input when the synthesized text does not parse.
	// Off by default: the append path is used opportunistically and
	// historically never rejected its own output.
	ValidateAppend bool
}

// Editor applies single-key replacements and layer appends to keymap
// source text, leaving every byte it did not target untouched.
type Editor struct {
	parser      *parser.Parser
	placeholder string
	annotation  string
	validate    bool
}

// New returns an editor for the given configuration.
func New(cfg Config) *Editor {
	if cfg.Macro == "" {
		cfg.Macro = parser.DefaultMacro
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = DefaultPlaceholder
	}
	if cfg.Annotation == "" {
		cfg.Annotation = DefaultAnnotation
	}
	return &Editor{
		parser:      parser.NewWithMacro(cfg.Macro),
		placeholder: cfg.Placeholder,
		annotation:  cfg.Annotation,
		validate:    cfg.ValidateAppend,
	}
}

// SetKey replaces the key at (layer, key) with value and returns the
// edited text. Out-of-range indices are a no-op: the input is returned
// unchanged and validation is pushed upstream to the caller. Parse
// failures, both on the input and on the re-validation of the edited
// text, are propagated.
func (e *Editor) SetKey(text string, layer, key int, value string) (string, error) {
	return e.setKey(text, layer, key, value, -1)
}

// SetKeyExpecting is SetKey with an expected key count applied to both
// the initial parse and the post-edit re-validation.
func (e *Editor) SetKeyExpecting(text string, layer, key int, value string, keyCount int) (string, error) {
	return e.setKey(text, layer, key, value, keyCount)
}

func (e *Editor) setKey(text string, layer, key int, value string, keyCount int) (string, error) {
	res, err := e.parseWith(text, keyCount)
	if err != nil {
		return "", err
	}

	if layer < 0 || layer >= len(res.Layers) {
		return text, nil
	}
	if key < 0 || key >= len(res.Layers[layer]) {
		return text, nil
	}

	node := res.Layers[layer][key]
	edited := text[:node.Pos()] + value + text[node.End():]

	// The editor never returns syntactically broken text.
	if _, err := e.parseWith(edited, keyCount); err != nil {
		return "", fmt.Errorf("edited text does not parse: %w", err)
	}
	return edited, nil
}

// AppendLayer inserts one new invocation after the last one, filled with
// the placeholder token for every key and annotated with the new layer
// index. Unlike SetKey this operation is lenient: if the input does not
// parse for any reason it is returned unchanged.
func (e *Editor) AppendLayer(text string) string {
	res, err := e.parser.Parse(text)
	if err != nil {
		return text
	}

	keys := make([]string, res.KeyCount())
	for i := range keys {
		keys[i] = e.placeholder
	}

	var b strings.Builder
	b.WriteString(text[:res.End])
	b.WriteString(",\n\n")
	if strings.Contains(e.annotation, "%") {
		fmt.Fprintf(&b, e.annotation, len(res.Layers))
	} else {
		// A fixed annotation carries no verb for the layer index.
		b.WriteString(e.annotation)
	}
	b.WriteString("\n")
	b.WriteString(e.parser.Macro())
	b.WriteString("(")
	b.WriteString(strings.Join(keys, ", "))
	b.WriteString(")")
	b.WriteString(text[res.End:])
	out := b.String()

	if e.validate {
		if _, err := e.parser.Parse(out); err != nil {
			return text
		}
	}
	return out
}

func (e *Editor) parseWith(text string, keyCount int) (*parser.Result, error) {
	if keyCount >= 0 {
		return e.parser.ParseExpecting(text, keyCount)
	}
	return e.parser.Parse(text)
}
