package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

// run validates doc against schema and returns the collected failures.
func run(t *testing.T, schema, doc map[string]any) []gojsonschema.ResultError {
	t.Helper()
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(doc))
	require.NoError(t, err)
	require.False(t, result.Valid(), "expected a validation failure")
	return result.Errors()
}

func TestMessage_CustomTemplate(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"d": map[string]any{"$ref": "#/defs/duration"},
		},
		"defs": map[string]any{
			"duration": map[string]any{
				"type":              "string",
				"pattern":           "^P",
				"x-invalid-message": "'%s' is no good.",
			},
		},
	}
	errs := run(t, schema, map[string]any{"d": "X"})

	msg := Message(First(errs), schema)
	assert.Equal(t, "At /d: 'X' is no good.", msg)
}

func TestMessage_DefaultWordingAtRoot(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"name"},
	}
	errs := run(t, schema, map[string]any{})

	msg := Message(First(errs), schema)
	assert.Equal(t, "name is required", msg)
}

func TestMessage_ArrayIndexPath(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"list": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":              "string",
					"pattern":           "^ok$",
					"x-invalid-message": "'%s' is not ok.",
				},
			},
		},
	}
	errs := run(t, schema, map[string]any{"list": []any{"ok", "ok", "nope"}})

	msg := Message(First(errs), schema)
	assert.Equal(t, "At /list/2: 'nope' is not ok.", msg)
}

func TestMessage_NonStringValueText(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"n": map[string]any{
				"type":              "string",
				"x-invalid-message": "'%s' must be quoted.",
			},
		},
	}
	errs := run(t, schema, map[string]any{"n": 7})

	msg := Message(First(errs), schema)
	assert.Equal(t, "At /n: '7' must be quoted.", msg)
}

func TestFirst_PrefersAggregateOverBranches(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"u": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "integer"},
				},
			},
		},
	}
	errs := run(t, schema, map[string]any{"u": true})

	first := First(errs)
	assert.Equal(t, "number_one_of", first.Type())
}

func TestFirst_PrefersShallowestPath(t *testing.T) {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"present"},
		"properties": map[string]any{
			"nested": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"deep": map[string]any{"type": "string"},
				},
			},
		},
	}
	// Both a root-level and a nested failure; the root one wins.
	errs := run(t, schema, map[string]any{
		"nested": map[string]any{"deep": 1},
	})

	first := First(errs)
	assert.Equal(t, "(root)", first.Field())
}

func TestFirst_SameDepthTieIsStable(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "string"},
			"b": map[string]any{"type": "string"},
		},
	}

	// The engine reports the two failures in map iteration order, which
	// varies per call; selection must not.
	for i := 0; i < 100; i++ {
		errs := run(t, schema, map[string]any{"a": 1, "b": 2})
		require.Equal(t, "a", First(errs).Field())
	}
}

func TestMessage_DottedPropertyName(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a.b": map[string]any{
				"type":              "string",
				"pattern":           "^P",
				"x-invalid-message": "'%s' is no good.",
			},
		},
	}
	errs := run(t, schema, map[string]any{"a.b": "bogus"})

	msg := Message(First(errs), schema)
	assert.Equal(t, "At /a.b: 'bogus' is no good.", msg)
}

func TestPathLess(t *testing.T) {
	assert.True(t, pathLess([]string{"a"}, []string{"a", "b"}))
	assert.True(t, pathLess([]string{"a"}, []string{"b"}))
	assert.True(t, pathLess([]string{"list", "2"}, []string{"list", "10"}))
	assert.False(t, pathLess([]string{"list", "10"}, []string{"list", "2"}))
	assert.False(t, pathLess([]string{"a"}, []string{"a"}))
}

func TestResolveRef(t *testing.T) {
	inner := map[string]any{"type": "string"}
	root := map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": inner},
		},
	}

	assert.Equal(t, inner, resolveRef(root, "#/a/b/c"))
	assert.Nil(t, resolveRef(root, "#/a/missing"))
	assert.Nil(t, resolveRef(root, "http://elsewhere/schema#/a"))
}

func TestSegments(t *testing.T) {
	root := gojsonschema.NewJsonContext("(root)", nil)
	assert.Nil(t, segments(nil))
	assert.Nil(t, segments(root))

	nested := gojsonschema.NewJsonContext("2",
		gojsonschema.NewJsonContext("b",
			gojsonschema.NewJsonContext("a", root)))
	assert.Equal(t, []string{"a", "b", "2"}, segments(nested))

	dotted := gojsonschema.NewJsonContext("a.b", root)
	assert.Equal(t, []string{"a.b"}, segments(dotted))
}
