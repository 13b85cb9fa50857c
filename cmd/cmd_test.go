package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/layerkit/keymap/check"
	"github.com/layerkit/keymap/parser"
)

const testKeymap = `/* base */
KEYMAP(KC_A, LT(1, KC_B), KC_C)`

// setupCmdTest writes a keymap file into a temp dir and resets the
// package state the run functions depend on.
func setupCmdTest(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	cfgFile = check.DefaultConfigPath

	path := filepath.Join(t.TempDir(), "keymap.c")
	require.NoError(t, os.WriteFile(path, []byte(testKeymap), 0o644))
	return path
}

func captureOutput(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, err = buf.ReadFrom(r)
	require.NoError(t, err)
	return buf.String()
}

func TestSetKeyCmd_RoundTrip(t *testing.T) {
	path := setupCmdTest(t)
	setLayer, setKey, setValue, setDryRun = 0, 1, "KC_Q", false

	out := captureOutput(t, func() {
		setKeyCmd.Run(setKeyCmd, []string{path})
	})
	assert.Contains(t, out, "Set layer 0 key 1 to KC_Q")

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	res, err := parser.Parse(string(content))
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)
	require.Len(t, res.Layers[0], 3)
	assert.Equal(t, "KC_Q", res.Layers[0][1].(*parser.Word).Content)

	// The untargeted keys survive.
	assert.Equal(t, "KC_A", res.Layers[0][0].(*parser.Word).Content)
	assert.Equal(t, "KC_C", res.Layers[0][2].(*parser.Word).Content)
}

func TestSetKeyCmd_DryRun(t *testing.T) {
	path := setupCmdTest(t)
	setLayer, setKey, setValue, setDryRun = 0, 0, "KC_Z", true
	defer func() { setDryRun = false }()

	out := captureOutput(t, func() {
		setKeyCmd.Run(setKeyCmd, []string{path})
	})
	assert.Contains(t, out, "Would set layer 0 key 0 to KC_Z")
	assert.Contains(t, out, "KC_Z")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testKeymap, string(content))
}

func TestAddLayerCmd_RoundTrip(t *testing.T) {
	path := setupCmdTest(t)
	addLayerDryRun = false

	out := captureOutput(t, func() {
		addLayerCmd.Run(addLayerCmd, []string{path})
	})
	assert.Contains(t, out, "Appended a layer to")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), testKeymap))

	res, err := parser.Parse(string(content))
	require.NoError(t, err)
	require.Len(t, res.Layers, 2)
	require.Len(t, res.Layers[1], 3)
	for _, node := range res.Layers[1] {
		assert.Equal(t, "KC_TRNS", node.(*parser.Word).Content)
	}
}

func TestAddLayerCmd_DryRun(t *testing.T) {
	path := setupCmdTest(t)
	addLayerDryRun = true
	defer func() { addLayerDryRun = false }()

	out := captureOutput(t, func() {
		addLayerCmd.Run(addLayerCmd, []string{path})
	})
	assert.Contains(t, out, "Would append a layer to")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testKeymap, string(content))
}
