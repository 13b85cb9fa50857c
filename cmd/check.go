package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/check"
	"github.com/layerkit/keymap/formatter"
)

var (
	checkJSONOutput bool
	checkOutPath    string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Validate keymap files and report parse errors",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		config, err := loadConfig()
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		checker := check.NewChecker(config)

		results, err := check.ProcessPaths(ctx, logger, checker, config, args)
		if err != nil {
			logger.Error("Error processing paths", zap.Error(err))
			os.Exit(1)
		}

		failed := printResults(results, checkJSONOutput, checkOutPath)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkJSONOutput, "json", false, "Output results in JSON format")
	checkCmd.Flags().StringVarP(&checkOutPath, "output", "o", "", "Output path (when using JSON)")
}

type checkReport struct {
	Layers int    `json:"layers"`
	Keys   int    `json:"keys"`
	Error  string `json:"error,omitempty"`
}

func printResults(results []check.FileResult, isJSON bool, jsonOutput string) int {
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	failed := 0
	if !isJSON {
		// text output
		for _, result := range results {
			if result.Err != nil {
				failed++
				fmt.Println(formatter.Format(result.Path, result.Source, result.Err))
				continue
			}
			fmt.Printf("%s: %d layers, %d keys\n", result.Path, result.Layers, result.Keys)
		}
		return failed
	}

	// JSON output
	reportsByFile := make(map[string]checkReport, len(results))
	for _, result := range results {
		report := checkReport{Layers: result.Layers, Keys: result.Keys}
		if result.Err != nil {
			failed++
			report.Error = result.Err.Error()
		}
		reportsByFile[result.Path] = report
	}

	d, err := json.Marshal(reportsByFile)
	if err != nil {
		logger.Error("Error marshalling results to JSON", zap.Error(err))
		return failed
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return failed
	}

	f, err := os.Create(jsonOutput)
	if err != nil {
		logger.Error("Error creating JSON output file", zap.Error(err))
		return failed
	}
	defer f.Close()
	if _, err := f.Write(d); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
	return failed
}
