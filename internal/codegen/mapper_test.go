package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cameronsjo/mcp-bindgen/internal/schema"
)

func TestTypeExprPrimitives(t *testing.T) {
	tests := []struct {
		kind schema.Kind
		want string
	}{
		{schema.KindString, "string"},
		{schema.KindNumber, "number"},
		{schema.KindInteger, "number"},
		{schema.KindBoolean, "boolean"},
		{schema.KindUnknown, "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeExpr(&schema.Node{Kind: tt.kind}))
	}

	assert.Equal(t, "unknown", TypeExpr(nil))
}

func TestTypeExprEnumPreservesOrderAndDuplicates(t *testing.T) {
	node := &schema.Node{
		Kind: schema.KindString,
		Enum: []string{"celsius", "fahrenheit", "celsius"},
	}

	assert.Equal(t, `"celsius" | "fahrenheit" | "celsius"`, TypeExpr(node))
}

func TestTypeExprArray(t *testing.T) {
	assert.Equal(t, "string[]",
		TypeExpr(&schema.Node{Kind: schema.KindArray, Items: &schema.Node{Kind: schema.KindString}}))

	assert.Equal(t, "unknown[]",
		TypeExpr(&schema.Node{Kind: schema.KindArray}))

	// Nested arrays keep the element type, independent of depth.
	assert.Equal(t, "number[][]",
		TypeExpr(&schema.Node{
			Kind: schema.KindArray,
			Items: &schema.Node{
				Kind:  schema.KindArray,
				Items: &schema.Node{Kind: schema.KindNumber},
			},
		}))

	// Union elements need grouping.
	assert.Equal(t, `("on" | "off")[]`,
		TypeExpr(&schema.Node{
			Kind:  schema.KindArray,
			Items: &schema.Node{Kind: schema.KindString, Enum: []string{"on", "off"}},
		}))
}

func TestTypeExprObject(t *testing.T) {
	node := &schema.Node{
		Kind: schema.KindObject,
		Properties: map[string]*schema.Node{
			"city": {Kind: schema.KindString, Description: "City name"},
			"days": {Kind: schema.KindInteger},
		},
		Required: map[string]bool{"city": true},
	}

	want := "{\n" +
		"  /** City name */\n" +
		"  city: string;\n" +
		"  days?: number;\n" +
		"}"
	assert.Equal(t, want, TypeExpr(node))
}

func TestTypeExprOpenObject(t *testing.T) {
	assert.Equal(t, "Record<string, unknown>", TypeExpr(&schema.Node{Kind: schema.KindObject}))
}

func TestTypeExprNestedObjectIndent(t *testing.T) {
	node := &schema.Node{
		Kind: schema.KindObject,
		Properties: map[string]*schema.Node{
			"filter": {
				Kind: schema.KindObject,
				Properties: map[string]*schema.Node{
					"limit": {Kind: schema.KindNumber},
				},
			},
		},
	}

	want := "{\n" +
		"  filter?: {\n" +
		"    limit?: number;\n" +
		"  };\n" +
		"}"
	assert.Equal(t, want, TypeExpr(node))
}

func TestSanitizeComment(t *testing.T) {
	assert.Equal(t, `end *\/ of comment`, sanitizeComment("end */ of comment"))
	assert.Equal(t, "two lines", sanitizeComment("two\nlines"))
}
