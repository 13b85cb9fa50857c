package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/editor"
)

var addLayerDryRun bool

var addLayerCmd = &cobra.Command{
	Use:   "add-layer [file]",
	Short: "Append a placeholder-filled layer to a keymap file",
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

		edited := editor.New(config.EditorConfig()).AppendLayer(source)
		if edited == source {
			logger.Warn("file does not parse, left unchanged", zap.String("file", path))
			return
		}

		if addLayerDryRun {
			fmt.Printf("Would append a layer to %s\n", path)
			fmt.Println(edited)
			return
		}

		if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
			logger.Fatal("Failed to write file", zap.String("file", path), zap.Error(err))
		}
		fmt.Printf("Appended a layer to %s\n", path)
	},
}

func init() {
	addLayerCmd.Flags().BoolVar(&addLayerDryRun, "dry-run", false, "Show the edit without applying it")
}
