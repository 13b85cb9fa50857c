// Package check validates keymap source files against a configured
// dialect and reports structural failures with their exact location.
package check

import (
	"fmt"
	"os"

	"github.com/layerkit/keymap/parser"
)

// Checker validates keymap sources against one Config.
type Checker struct {
	parser *parser.Parser
	keys   int
}

// NewChecker returns a checker for the given configuration.
func NewChecker(cfg Config) *Checker {
	macro := cfg.Macro
	if macro == "" {
		macro = parser.DefaultMacro
	}
	return &Checker{
		parser: parser.NewWithMacro(macro),
		keys:   cfg.Keys,
	}
}

// RunSource parses source and returns the parse result. A configured
// key count is enforced against the first layer.
func (c *Checker) RunSource(source []byte) (*parser.Result, error) {
	if c.keys > 0 {
		return c.parser.ParseExpecting(string(source), c.keys)
	}
	return c.parser.Parse(string(source))
}

// Run validates the file at path. The returned source is the raw file
// content, available to error formatting even when parsing failed.
func (c *Checker) Run(path string) (source string, res *parser.Result, err error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}
	res, err = c.RunSource(content)
	return string(content), res, err
}
