package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/check"
	"github.com/layerkit/keymap/eval"
	"github.com/layerkit/keymap/formatter"
	"github.com/layerkit/keymap/parser"
)

var layerHeaderStyle = color.New(color.FgCyan, color.Bold)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print the parsed layers of a keymap file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		source, res, err := check.NewChecker(config).Run(path)
		if err != nil {
			fmt.Print(formatter.Format(path, source, err))
			os.Exit(1)
		}

		printLayers(res)
	},
}

func printLayers(res *parser.Result) {
	// Empty table: bare keycodes resolve to themselves, nested calls
	// print as their source text.
	table := eval.SymbolTable{}

	for i, layer := range res.Layers {
		layerHeaderStyle.Printf("layer %d (%d keys)\n", i, len(layer))
		for j, node := range layer {
			value, ok := eval.Evaluate(node, table)
			if !ok {
				if call, isCall := node.(*parser.Call); isCall {
					value = call.Content
				}
			}
			fmt.Printf("  %3d  %s\n", j, value)
		}
	}
}
