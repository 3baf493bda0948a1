package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromAnyPrimitives(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{"string", map[string]any{"type": "string"}, KindString},
		{"number", map[string]any{"type": "number"}, KindNumber},
		{"integer", map[string]any{"type": "integer"}, KindInteger},
		{"boolean", map[string]any{"type": "boolean"}, KindBoolean},
		{"missing type", map[string]any{"description": "anything"}, KindUnknown},
		{"unrecognized type", map[string]any{"type": "null"}, KindUnknown},
		{"not a map", "oops", KindUnknown},
		{"nil", nil, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromAny(tt.in).Kind)
		})
	}
}

func TestFromAnyEnum(t *testing.T) {
	node := FromAny(map[string]any{
		"type": "string",
		"enum": []any{"celsius", "fahrenheit", "celsius"},
	})

	assert.Equal(t, KindString, node.Kind)
	assert.Equal(t, []string{"celsius", "fahrenheit", "celsius"}, node.Enum)
}

func TestFromAnyObject(t *testing.T) {
	node := FromAny(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{"type": "string", "description": "City name"},
			"days": map[string]any{"type": "integer"},
		},
		"required": []any{"city"},
	})

	require.Equal(t, KindObject, node.Kind)
	require.Len(t, node.Properties, 2)
	assert.Equal(t, KindString, node.Properties["city"].Kind)
	assert.Equal(t, "City name", node.Properties["city"].Description)
	assert.Equal(t, KindInteger, node.Properties["days"].Kind)
	assert.True(t, node.Required["city"])
	assert.False(t, node.Required["days"])
}

func TestFromAnyNestedArray(t *testing.T) {
	node := FromAny(map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{"type": "number"},
		},
	})

	require.Equal(t, KindArray, node.Kind)
	require.NotNil(t, node.Items)
	require.Equal(t, KindArray, node.Items.Kind)
	require.NotNil(t, node.Items.Items)
	assert.Equal(t, KindNumber, node.Items.Items.Kind)
}

func TestFromAnyArrayWithoutItems(t *testing.T) {
	node := FromAny(map[string]any{"type": "array"})

	assert.Equal(t, KindArray, node.Kind)
	assert.Nil(t, node.Items)
}
