package check

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/layerkit/keymap/editor"
	"github.com/layerkit/keymap/parser"
	"github.com/layerkit/keymap/scanner"
)

// DefaultConfigPath is where the configuration file is looked up when no
// explicit path is given.
const DefaultConfigPath = ".kmedit.yaml"

// Config describes one keymap source dialect: which macro marks an
// invocation, what token a fresh key holds, how appended layers are
// annotated, and how many keys an invocation must carry (0 disables the
// key-count check).
type Config struct {
	Macro       string   `yaml:"macro"`
	Placeholder string   `yaml:"placeholder"`
	Annotation  string   `yaml:"annotation"`
	Keys        int      `yaml:"keys"`
	Extensions  []string `yaml:"extensions"`
}

// DefaultConfig returns the QMK-flavored defaults.
func DefaultConfig() Config {
	return Config{
		Macro:       parser.DefaultMacro,
		Placeholder: editor.DefaultPlaceholder,
		Annotation:  editor.DefaultAnnotation,
		Extensions:  scanner.DefaultExtensions,
	}
}

// LoadConfig reads a yaml configuration file, filling unset fields with
// the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	if config.Macro == "" {
		config.Macro = parser.DefaultMacro
	}
	if config.Placeholder == "" {
		config.Placeholder = editor.DefaultPlaceholder
	}
	if config.Annotation == "" {
		config.Annotation = editor.DefaultAnnotation
	}
	if len(config.Extensions) == 0 {
		config.Extensions = scanner.DefaultExtensions
	}
	return config, nil
}

// EditorConfig translates the file configuration into editor settings.
func (c Config) EditorConfig() editor.Config {
	return editor.Config{
		Macro:       c.Macro,
		Placeholder: c.Placeholder,
		Annotation:  c.Annotation,
	}
}
