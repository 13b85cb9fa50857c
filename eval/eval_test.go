package eval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/layerkit/keymap/parser"
)

func parseOne(t *testing.T, src string) parser.Layer {
	t.Helper()
	res, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)
	return res.Layers[0]
}

func TestEvaluate_Word(t *testing.T) {
	layer := parseOne(t, "KEYMAP(KC_A, KC_B)")

	value, ok := Evaluate(layer[0], SymbolTable{})
	assert.True(t, ok)
	assert.Equal(t, "KC_A", value)
}

func TestEvaluate_ResolvedCall(t *testing.T) {
	layer := parseOne(t, "KEYMAP(LT(1, KC_A), KC_B)")

	table := SymbolTable{
		"LT": func(args []string) string {
			return fmt.Sprintf("layer-tap(%s, %s)", args[0], args[1])
		},
	}

	value, ok := Evaluate(layer[0], table)
	assert.True(t, ok)
	assert.Equal(t, "layer-tap(1, KC_A)", value)
}

func TestEvaluate_UnknownCallIsAbsent(t *testing.T) {
	layer := parseOne(t, "KEYMAP(MO(2), KC_B)")

	value, ok := Evaluate(layer[0], SymbolTable{})
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestEvaluate_EmptyResultIsAbsent(t *testing.T) {
	layer := parseOne(t, "KEYMAP(MO(2), KC_B)")

	table := SymbolTable{
		"MO": func(args []string) string { return "" },
	}

	_, ok := Evaluate(layer[0], table)
	assert.False(t, ok)
}

func TestEvaluate_NestedCalls(t *testing.T) {
	layer := parseOne(t, "KEYMAP(OUTER(INNER(KC_X), KC_Y))")

	table := SymbolTable{
		"INNER": func(args []string) string { return "i:" + args[0] },
		"OUTER": func(args []string) string { return args[0] + "+" + args[1] },
	}

	value, ok := Evaluate(layer[0], table)
	assert.True(t, ok)
	assert.Equal(t, "i:KC_X+KC_Y", value)
}

func TestEvaluate_ParamsLeftToRight(t *testing.T) {
	layer := parseOne(t, "KEYMAP(F(A(1), B(2)))")

	var order []string
	record := func(name string) Func {
		return func(args []string) string {
			order = append(order, name)
			return name
		}
	}

	table := SymbolTable{
		"A": record("A"),
		"B": record("B"),
		"F": func(args []string) string { return args[0] + args[1] },
	}

	value, ok := Evaluate(layer[0], table)
	require.True(t, ok)
	assert.Equal(t, "AB", value)
	assert.Equal(t, []string{"A", "B"}, order)
}

func TestEvaluate_UnresolvedParamPassedEmpty(t *testing.T) {
	layer := parseOne(t, "KEYMAP(F(UNKNOWN(1)))")

	table := SymbolTable{
		"F": func(args []string) string { return "got:" + args[0] },
	}

	value, ok := Evaluate(layer[0], table)
	assert.True(t, ok)
	assert.Equal(t, "got:", value)
}
