package cmd

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/check"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "kmedit",
	Short:            "kmedit - parse, validate and surgically edit keymap source files",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'kmedit' is entered
			_ = cmd.Help()
			return
		}
		// Format: kmedit [path1 path2 ...] => behaves like the check subcommand
		checkCmd.Run(checkCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", check.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for batch operations")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(setKeyCmd)
	rootCmd.AddCommand(addLayerCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig reads the configured dialect. A missing file at the default
// location falls back to the QMK defaults; an explicitly given file must
// exist.
func loadConfig() (check.Config, error) {
	config, err := check.LoadConfig(cfgFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && cfgFile == check.DefaultConfigPath {
			return check.DefaultConfig(), nil
		}
		return config, err
	}
	return config, nil
}
