package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerkit/keymap/eval"
	"github.com/layerkit/keymap/parser"
)

const src = "KEYMAP(KC_A, LT(1, KC_B))"

func TestParse(t *testing.T) {
	res, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, 2, res.KeyCount())

	_, err = ParseExpecting(src, 2)
	assert.NoError(t, err)
}

func TestEvaluate(t *testing.T) {
	res, err := Parse(src)
	require.NoError(t, err)

	value, ok := Evaluate(res.Layers[0][0], eval.SymbolTable{})
	assert.True(t, ok)
	assert.Equal(t, "KC_A", value)
}

func TestSetKey(t *testing.T) {
	edited, err := SetKey(src, 0, 0, "KC_Z")
	require.NoError(t, err)
	assert.Equal(t, "KEYMAP(KC_Z, LT(1, KC_B))", edited)
}

func TestAppendLayer(t *testing.T) {
	out := AppendLayer(src)
	res, err := Parse(out)
	require.NoError(t, err)
	require.Len(t, res.Layers, 2)
	for _, node := range res.Layers[1] {
		assert.Equal(t, "KC_TRNS", node.(*parser.Word).Content)
	}
}
