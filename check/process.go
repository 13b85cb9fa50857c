package check

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/scanner"
)

// FileResult is the outcome of validating one file. Source carries the
// raw file content so callers can render Err against it.
type FileResult struct {
	Path   string
	Source string
	Layers int
	Keys   int
	Err    error
}

// ProcessPaths validates every path in order and concatenates the results.
func ProcessPaths(ctx context.Context, logger *zap.Logger, checker *Checker, cfg Config, paths []string) ([]FileResult, error) {
	var all []FileResult
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, checker, cfg, path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		all = append(all, results...)
	}
	return all, nil
}

// ProcessPath validates a single file, or every keymap source under a
// directory. Directory runs fan out to a bounded worker pool and render
// a progress bar; per-file parse failures land in the FileResult rather
// than aborting the run.
func ProcessPath(ctx context.Context, logger *zap.Logger, checker *Checker, cfg Config, path string) ([]FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		return []FileResult{runFile(checker, path)}, nil
	}

	files, err := scanner.New(path, cfg.Extensions...).Scan()
	if err != nil {
		return nil, fmt.Errorf("error scanning %s: %w", path, err)
	}

	resultChan := make(chan FileResult, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for _, file := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			sem <- struct{}{}
			go func(fp string) {
				defer func() { <-sem }()

				result := runFile(checker, fp)
				if result.Err != nil && logger != nil {
					logger.Debug("file failed validation",
						zap.String("file", fp), zap.Error(result.Err))
				}
				resultChan <- result
				bar.Add(1)
			}(file.Path)
		}
	}

	results := make([]FileResult, 0, len(files))
	for range files {
		results = append(results, <-resultChan)
	}

	fmt.Println()
	return results, nil
}

func runFile(checker *Checker, path string) FileResult {
	source, res, err := checker.Run(path)
	result := FileResult{Path: path, Source: source, Err: err}
	if err == nil {
		result.Layers = len(res.Layers)
		result.Keys = res.KeyCount()
	}
	return result
}
