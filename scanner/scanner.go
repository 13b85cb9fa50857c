// Package scanner collects keymap source files from a directory tree.
package scanner

import (
	"os"
	"path/filepath"
)

// DefaultExtensions covers the file types keymap sources usually live in.
var DefaultExtensions = []string{".c", ".h", ".keymap"}

// FileInfo describes one candidate keymap source file.
type FileInfo struct {
	Path string
	Size int64
}

// Scanner walks a root directory and reports files whose extension marks
// them as keymap sources.
type Scanner struct {
	rootDir    string
	extensions []string
}

// New returns a scanner rooted at rootDir. With no extensions given,
// DefaultExtensions applies.
func New(rootDir string, extensions ...string) *Scanner {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// Scan walks the tree and returns every matching file, in walk order.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo

	err := filepath.Walk(s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if s.isTargetFile(path) {
			files = append(files, FileInfo{Path: path, Size: info.Size()})
		}
		return nil
	})

	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
