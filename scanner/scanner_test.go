package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "keyboards", "planck"), 0o755))

	files := map[string]string{
		"keymap.c":                   "KEYMAP(KC_A)",
		"README.md":                  "docs",
		"keyboards/planck/keymap.c":  "KEYMAP(KC_B)",
		"keyboards/planck/config.h":  "#pragma once",
		"keyboards/planck/rules.mk":  "MCU = STM32",
		"keyboards/planck/km.keymap": "KEYMAP(KC_C)",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	found, err := New(dir).Scan()
	require.NoError(t, err)

	paths := make([]string, len(found))
	for i, f := range found {
		rel, err := filepath.Rel(dir, f.Path)
		require.NoError(t, err)
		paths[i] = filepath.ToSlash(rel)
	}
	assert.ElementsMatch(t, []string{
		"keymap.c",
		"keyboards/planck/keymap.c",
		"keyboards/planck/config.h",
		"keyboards/planck/km.keymap",
	}, paths)
}

func TestScan_CustomExtensions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.km"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.c"), []byte("x"), 0o644))

	found, err := New(dir, ".km").Scan()
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a.km", filepath.Base(found[0].Path))
}
