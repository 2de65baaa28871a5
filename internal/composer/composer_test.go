package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frnkwang/pscheduler/pkg/dictionary"
)

func TestBuild_Envelope(t *testing.T) {
	schema, err := Build(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, "http://json-schema.org/draft-04/schema#", schema["$schema"])
	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, dictionary.Fragments(), schema[dictionary.Namespace])
	assert.NotContains(t, schema, "properties")
	assert.NotContains(t, schema, dictionary.LocalNamespace)
}

func TestBuild_SkeletonOverwritesSlots(t *testing.T) {
	props := map[string]any{
		"howlong": map[string]any{"$ref": "#/pScheduler/Duration"},
	}
	local := map[string]any{
		"flavor": map[string]any{"type": "string"},
	}
	schema, err := Build(map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": true,
		"required":             []string{"howlong"},
		"local":                local,
	})
	require.NoError(t, err)

	assert.Equal(t, props, schema["properties"])
	assert.Equal(t, true, schema["additionalProperties"])
	assert.Equal(t, []string{"howlong"}, schema["required"])
	assert.Equal(t, local, schema[dictionary.LocalNamespace])
	// The dictionary rides along regardless of what the skeleton says.
	assert.Equal(t, dictionary.Fragments(), schema[dictionary.Namespace])
}

func TestBuild_PassesFragmentsThroughUntouched(t *testing.T) {
	ref := map[string]any{"$ref": "#/pScheduler/Duration"}
	schema, err := Build(map[string]any{
		"properties": map[string]any{"howlong": ref},
	})
	require.NoError(t, err)

	got := schema["properties"].(map[string]any)["howlong"]
	assert.Equal(t, ref, got)
}

func TestBuild_RejectsUnrecognizedKeys(t *testing.T) {
	_, err := Build(map[string]any{
		"type":       "object",
		"propertiez": map[string]any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "propertiez")
}

func TestBuild_KeysAreCaseSensitive(t *testing.T) {
	_, err := Build(map[string]any{
		"Type": "object",
	})
	require.Error(t, err)
}

func TestBuild_RejectsMalformedValues(t *testing.T) {
	_, err := Build(map[string]any{
		"required": []any{"ok", 7},
	})
	require.Error(t, err)

	_, err = Build(map[string]any{
		"properties": "not an object",
	})
	require.Error(t, err)
}
