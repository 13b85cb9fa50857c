package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/check"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-validate keymap files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			args = []string{"."}
		}

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		watcher, err := check.NewWatcher(check.NewChecker(config), logger, config.Extensions)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(args); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		logger.Info("watching for changes", zap.Strings("dirs", args))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt)
		<-sig

		if err := watcher.Stop(); err != nil {
			logger.Error("Failed to stop watcher", zap.Error(err))
		}
	},
}
