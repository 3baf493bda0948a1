package codegen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cameronsjo/mcp-bindgen/internal/schema"
)

// TypeExpr renders a schema node as a TypeScript type expression. It is total:
// any node, including nil and unrecognized kinds, maps to a valid expression.
func TypeExpr(node *schema.Node) string {
	return typeExpr(node, 0)
}

func typeExpr(node *schema.Node, depth int) string {
	if node == nil {
		return "unknown"
	}

	switch node.Kind {
	case schema.KindString:
		if len(node.Enum) > 0 {
			parts := make([]string, len(node.Enum))
			for i, v := range node.Enum {
				parts[i] = fmt.Sprintf("%q", v)
			}
			return strings.Join(parts, " | ")
		}
		return "string"

	case schema.KindNumber, schema.KindInteger:
		return "number"

	case schema.KindBoolean:
		return "boolean"

	case schema.KindArray:
		elem := typeExpr(node.Items, depth)
		if strings.Contains(elem, " | ") {
			elem = "(" + elem + ")"
		}
		return elem + "[]"

	case schema.KindObject:
		if len(node.Properties) == 0 {
			return "Record<string, unknown>"
		}
		return objectExpr(node, depth)

	default:
		return "unknown"
	}
}

// objectExpr renders an inline structural type, one property per line.
// Property order is sorted by name; the wire format does not preserve
// authoring order through Go maps.
func objectExpr(node *schema.Node, depth int) string {
	names := make([]string, 0, len(node.Properties))
	for name := range node.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	outer := strings.Repeat("  ", depth)
	inner := outer + "  "

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, name := range names {
		prop := node.Properties[name]
		if prop.Description != "" {
			sb.WriteString(fmt.Sprintf("%s/** %s */\n", inner, sanitizeComment(prop.Description)))
		}
		optional := "?"
		if node.Required[name] {
			optional = ""
		}
		sb.WriteString(fmt.Sprintf("%s%s%s: %s;\n", inner, name, optional, typeExpr(prop, depth+1)))
	}
	sb.WriteString(outer + "}")
	return sb.String()
}

// sanitizeComment escapes comment delimiters so tool descriptions cannot
// break out of the emitted JSDoc blocks.
func sanitizeComment(comment string) string {
	comment = strings.ReplaceAll(comment, "*/", `*\/`)
	comment = strings.ReplaceAll(comment, "/*", `/\*`)
	return strings.ReplaceAll(comment, "\n", " ")
}
