// Package strutil converts raw tool names (kebab-case, snake_case) into the
// casing conventions used by generated code.
package strutil

import "strings"

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
}

// ToPascalCase converts a tool name to PascalCase, used for generated type
// names. Re-applying it to its own output is a no-op.
func ToPascalCase(s string) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, "")
}

// ToCamelCase converts a tool name to camelCase, used for generated function
// names. It is ToPascalCase with the first letter lower-cased.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}
