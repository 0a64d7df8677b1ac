package config

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropsReaders(t *testing.T) {
	props := Props{
		"label":   "Save",
		"count":   3,
		"ratio":   0.5,
		"on":      true,
		"flag":    "false",
		"numeric": "12",
		"tags":    []any{"a", 2, true},
		"single":  "only",
		"tabs":    []any{map[string]any{"label": "One"}, "Two"},
	}

	assert.Equal(t, "Save", props.String("label", ""))
	assert.Equal(t, "3", props.String("count", ""))
	assert.Equal(t, "x", props.String("missing", "x"))
	assert.Equal(t, 3, props.Int("count", 0))
	assert.Equal(t, 12, props.Int("numeric", 0))
	assert.Equal(t, 7, props.Int("label", 7))
	assert.Equal(t, 0.5, props.Float("ratio", 0))
	assert.Equal(t, 3.0, props.Float("count", 0))
	assert.True(t, props.Bool("on", false))
	assert.False(t, props.Bool("flag", true))
	assert.True(t, props.Bool("label", true))
	assert.Equal(t, []string{"a", "2", "true"}, props.Strings("tags"))
	assert.Equal(t, []string{"only"}, props.Strings("single"))
	assert.Nil(t, props.Strings("count"))

	tabs := props.Items("tabs")
	assert.Len(t, tabs, 2)
	assert.Equal(t, "Two", tabs[1].String("label", ""))
	assert.Nil(t, props.Items("label"))
}

func TestComponentKindsSorted(t *testing.T) {
	kinds := ComponentKinds()
	assert.True(t, slices.IsSorted(kinds))
	assert.True(t, IsComponentKind("modal"))
	assert.False(t, IsComponentKind("Modal"))

	kinds[0] = "zzz"
	assert.True(t, IsComponentKind("accordion"), "callers get a copy")
}
