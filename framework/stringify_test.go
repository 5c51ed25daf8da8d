package framework

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type namedStringer struct{ name string }

func (s namedStringer) String() string { return "stringer:" + s.name }

type opaqueThing struct {
	a, b int
}

type fahrenheit float64

func TestStringifySpecialCases(t *testing.T) {
	assert.Equal(t, "plain text", Stringify("plain text"))
	assert.Equal(t, "true", Stringify(true))
	assert.Equal(t, "false", Stringify(false))
	assert.Equal(t, "<nil>", Stringify(nil))
}

func TestStringifyNumericTier(t *testing.T) {
	assert.Equal(t, "5", Stringify(5))
	assert.Equal(t, "-12", Stringify(int16(-12)))
	assert.Equal(t, "7", Stringify(uint8(7)))
	assert.Equal(t, "3.5", Stringify(3.5))
	assert.Equal(t, "0.25", Stringify(float32(0.25)))

	// characters are an alias of int32, so they take the numeric tier
	assert.Equal(t, "65", Stringify('A'))

	// a named numeric type stays numeric even if it could stringify otherwise
	assert.Equal(t, "98.6", Stringify(fahrenheit(98.6)))
}

func TestStringifyFormattedOutputTier(t *testing.T) {
	assert.Equal(t, "stringer:left", Stringify(namedStringer{name: "left"}))
	assert.Equal(t, "file not found", Stringify(errors.New("file not found")))
}

func TestStringifyJSONValues(t *testing.T) {
	assert.Equal(t, "42", Stringify(ldvalue.Int(42)))
	assert.Equal(t, "[1,2]", Stringify(ldvalue.ArrayOf(ldvalue.Int(1), ldvalue.Int(2))))
}

func TestStringifyOpaqueFallback(t *testing.T) {
	s := Stringify(opaqueThing{a: 1, b: 2})
	assert.True(t, strings.HasPrefix(s, "[framework.opaqueThing at 0x"), "got %q", s)
	assert.True(t, strings.HasSuffix(s, "]"), "got %q", s)

	m := Stringify(map[string]int{"x": 1})
	assert.True(t, strings.HasPrefix(m, "[map[string]int at 0x"), "got %q", m)
}

func TestStringifyNamedStringKind(t *testing.T) {
	type label string
	assert.Equal(t, "release", Stringify(label("release")))
}

func TestCoerceToText(t *testing.T) {
	assert.Equal(t, "verbatim", coerceToText("verbatim"))
	assert.Equal(t, "bytes", coerceToText([]byte("bytes")))
	assert.Equal(t, "99", coerceToText(99))
	assert.Equal(t, "stringer:x", coerceToText(namedStringer{name: "x"}))
	assert.Equal(t, "broken", coerceToText(errors.New("broken")))
}

func TestCoerceToTextTransliteratesWideInput(t *testing.T) {
	assert.Equal(t, "h?llo", coerceToText([]rune("héllo")))
	assert.Equal(t, "???", coerceToText([]rune("日本語")))
	assert.Equal(t, "ascii", coerceToText([]rune("ascii")))
}
