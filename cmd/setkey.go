package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/editor"
	"github.com/layerkit/keymap/formatter"
)

var (
	setLayer  int
	setKey    int
	setValue  string
	setDryRun bool
)

var setKeyCmd = &cobra.Command{
	Use:   "set-key [file]",
	Short: "Replace a single key in a keymap file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Fatal("Failed to read file", zap.String("file", path), zap.Error(err))
		}
		source := string(content)

		ed := editor.New(config.EditorConfig())
		var edited string
		if config.Keys > 0 {
			edited, err = ed.SetKeyExpecting(source, setLayer, setKey, setValue, config.Keys)
		} else {
			edited, err = ed.SetKey(source, setLayer, setKey, setValue)
		}
		if err != nil {
			fmt.Print(formatter.Format(path, source, err))
			os.Exit(1)
		}

		if edited == source {
			logger.Warn("no such key, file left unchanged",
				zap.Int("layer", setLayer), zap.Int("key", setKey))
			return
		}

		if setDryRun {
			fmt.Printf("Would set layer %d key %d to %s in %s\n", setLayer, setKey, setValue, path)
			fmt.Println(edited)
			return
		}

		if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
			logger.Fatal("Failed to write file", zap.String("file", path), zap.Error(err))
		}
		fmt.Printf("Set layer %d key %d to %s in %s\n", setLayer, setKey, setValue, path)
	},
}

func init() {
	setKeyCmd.Flags().IntVar(&setLayer, "layer", 0, "Layer index of the key to replace")
	setKeyCmd.Flags().IntVar(&setKey, "key", 0, "Key index within the layer")
	setKeyCmd.Flags().StringVar(&setValue, "value", "", "Replacement keycode")
	setKeyCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "Show the edit without applying it")
	setKeyCmd.MarkFlagRequired("value")
}
