// Package parser implements a recursive-descent parser for keymap macro
// invocations such as KEYMAP(KC_A, LT(1, KC_B), ...). Every node it
// produces is annotated with absolute byte offsets into the original
// source, which is what makes exact text splicing possible downstream.
package parser

import (
	"strings"
	"unicode"
)

// DefaultMacro is the invocation marker recognized when no explicit
// macro name is configured.
const DefaultMacro = "KEYMAP"

// Parser scans source text for invocations of a single macro name.
// The zero value is not usable; construct one with New or NewWithMacro.
type Parser struct {
	macro string
}

// New returns a parser recognizing the default KEYMAP macro.
func New() *Parser {
	return NewWithMacro(DefaultMacro)
}

// NewWithMacro returns a parser recognizing the given macro name. Some
// keymap dialects use LAYOUT or board-specific names instead of KEYMAP.
func NewWithMacro(name string) *Parser {
	return &Parser{macro: name}
}

// Macro returns the invocation marker this parser recognizes.
func (p *Parser) Macro() string { return p.macro }

// Parse parses every macro invocation in text using the default macro name.
func Parse(text string) (*Result, error) {
	return New().Parse(text)
}

// ParseExpecting is Parse with an additional expected key count checked
// against the first layer.
func ParseExpecting(text string, keyCount int) (*Result, error) {
	return New().ParseExpecting(text, keyCount)
}

// Parse scans text for invocations and returns one Layer per invocation,
// in source order. It fails atomically: on any grammar violation the
// returned Result is nil and the error is a *Error carrying the
// offending offset.
func (p *Parser) Parse(text string) (*Result, error) {
	return p.parse(text, -1)
}

// ParseExpecting parses text and additionally requires the first layer
// to contain exactly keyCount keys.
func (p *Parser) ParseExpecting(text string, keyCount int) (*Result, error) {
	return p.parse(text, keyCount)
}

func (p *Parser) parse(text string, want int) (*Result, error) {
	marker := p.macro + "("
	res := &Result{}

	search := 0
	for {
		idx := strings.Index(text[search:], marker)
		if idx < 0 {
			break
		}
		open := search + idx + len(marker) - 1 // offset of the '('

		st := &state{input: text}
		st.depth++
		layer, next, err := st.parseList(open + 1)
		if err != nil {
			return nil, err
		}
		if st.depth != 0 {
			return nil, newError(ErrUnbalancedParentheses, next,
				"depth %d after invocation at offset %d", st.depth, open)
		}

		res.Layers = append(res.Layers, layer)
		res.End = next
		search = next
	}

	if len(res.Layers) == 0 {
		return nil, newError(ErrNoInvocations, 0, "no %s( invocation in source", p.macro)
	}

	keys := len(res.Layers[0])
	for _, layer := range res.Layers[1:] {
		if len(layer) != keys {
			return nil, newError(ErrInconsistentLayerSize, layer[0].Pos(),
				"layer has %d keys, first layer has %d", len(layer), keys)
		}
	}
	if want >= 0 && keys != want {
		return nil, newError(ErrUnexpectedKeyCount, res.Layers[0][0].Pos(),
			"found %d keys, expected %d", keys, want)
	}

	return res, nil
}

// state carries the cursor-independent parse state for one invocation.
// depth is the parenthesis nesting counter; it must return to zero once
// the whole invocation has been consumed.
type state struct {
	input string
	depth int
}

// parseList consumes one parenthesized argument list starting just past
// its opening parenthesis. It returns the accumulated arguments and the
// offset one past the closing parenthesis that terminated the list.
func (s *state) parseList(start int) ([]Node, int, error) {
	var nodes []Node
	spanStart := start
	lastCount := 0 // how many nodes existed at the previous comma

	i := start
	for i < len(s.input) {
		// Two-character lookahead: continuation elision and comments
		// dispatch before any single-character case.
		if i+1 < len(s.input) {
			switch s.input[i : i+2] {
			case "\\\n":
				// Line continuation: as if the two characters were
				// never in the source. The word flush strips them.
				i += 2
				continue
			case "/*":
				w, err := s.flushWord(spanStart, i)
				if err != nil {
					return nil, 0, err
				}
				if w != nil {
					nodes = append(nodes, w)
				}
				term := strings.Index(s.input[i+2:], "*/")
				if term < 0 {
					i = len(s.input)
				} else {
					i += 2 + term + 2
				}
				spanStart = i
				continue
			case "//":
				w, err := s.flushWord(spanStart, i)
				if err != nil {
					return nil, 0, err
				}
				if w != nil {
					nodes = append(nodes, w)
				}
				nl := strings.IndexByte(s.input[i:], '\n')
				if nl < 0 {
					i = len(s.input)
				} else {
					i += nl + 1
				}
				spanStart = i
				continue
			}
		}

		switch s.input[i] {
		case ' ':
			// Skipped without flushing; trimmed away when the span is
			// flushed. A space inside a token surfaces as an
			// ErrUnexpectedWhitespace there.
			i++

		case ',':
			w, err := s.flushWord(spanStart, i)
			if err != nil {
				return nil, 0, err
			}
			if w != nil {
				nodes = append(nodes, w)
			}
			if len(nodes) == lastCount {
				return nil, 0, newError(ErrMissingToken, i, "empty argument before ','")
			}
			lastCount = len(nodes)
			i++
			spanStart = i

		case '(':
			call, next, err := s.parseCall(spanStart, i)
			if err != nil {
				return nil, 0, err
			}
			nodes = append(nodes, call)
			i = next
			spanStart = next

		case ')':
			w, err := s.flushWord(spanStart, i)
			if err != nil {
				return nil, 0, err
			}
			if w != nil {
				nodes = append(nodes, w)
			}
			if len(nodes) == lastCount {
				return nil, 0, newError(ErrMissingToken, i, "empty argument before ')'")
			}
			s.depth--
			return nodes, i + 1, nil

		default:
			i++
		}
	}

	return nil, 0, newError(ErrUnbalancedParentheses, len(s.input),
		"input ended inside an argument list")
}

// parseCall turns the pending span into a call name and recursively
// parses its parameter list. open is the offset of the opening
// parenthesis; the returned offset is one past the matching close.
func (s *state) parseCall(nameStart, open int) (*Call, int, error) {
	name := trimSpan(s.input[nameStart:open])
	if name == "" {
		return nil, 0, newError(ErrMissingFunctionName, open, "call has no name")
	}
	if containsSpace(name) {
		return nil, 0, newError(ErrInvalidFunctionName, s.sigStart(nameStart, open),
			"call name %q contains whitespace", name)
	}

	s.depth++
	params, next, err := s.parseList(open + 1)
	if err != nil {
		return nil, 0, err
	}

	pos := s.sigStart(nameStart, open)
	return &Call{
		Name:    name,
		Params:  params,
		Content: s.input[pos:next],
		pos:     pos,
		end:     next,
	}, next, nil
}

// flushWord turns the pending span into a Word, or nil when the span
// holds nothing significant. Continuation sequences are stripped and the
// remainder trimmed; residual whitespace inside the token is an error.
func (s *state) flushWord(spanStart, spanEnd int) (*Word, error) {
	content := trimSpan(s.input[spanStart:spanEnd])
	if content == "" {
		return nil, nil
	}
	pos := s.sigStart(spanStart, spanEnd)
	if containsSpace(content) {
		return nil, newError(ErrUnexpectedWhitespace, pos,
			"token %q contains whitespace", content)
	}
	return &Word{Content: content, pos: pos, end: s.sigEnd(pos, spanEnd)}, nil
}

// sigStart returns the offset of the first significant character in
// [from, to), stepping over whitespace and backslash-newline pairs.
func (s *state) sigStart(from, to int) int {
	i := from
	for i < to {
		if s.input[i] == '\\' && i+1 < to && s.input[i+1] == '\n' {
			i += 2
			continue
		}
		if isSpace(s.input[i]) {
			i++
			continue
		}
		break
	}
	return i
}

// sigEnd returns one past the last significant character in [from, to).
func (s *state) sigEnd(from, to int) int {
	i := to
	for i > from {
		if i >= from+2 && s.input[i-2] == '\\' && s.input[i-1] == '\n' {
			i -= 2
			continue
		}
		if isSpace(s.input[i-1]) {
			i--
			continue
		}
		break
	}
	return i
}

func trimSpan(raw string) string {
	return strings.TrimSpace(strings.ReplaceAll(raw, "\\\n", ""))
}

func containsSpace(tok string) bool {
	return strings.IndexFunc(tok, unicode.IsSpace) >= 0
}

func isSpace(c byte) bool {
	return unicode.IsSpace(rune(c))
}
