package codegen

import (
	"fmt"
	"strings"

	"github.com/cameronsjo/mcp-bindgen/internal/schema"
	"github.com/cameronsjo/mcp-bindgen/internal/strutil"
)

// tsReserved guards generated function names against TypeScript reserved
// words; a colliding name gets a "Tool" suffix rather than dropping the tool.
var tsReserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "null": true, "return": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

// GenerateModule produces the binding module for one tool: an input type, the
// uniform result type, and an async function delegating to the runtime's
// callTool. It is pure and cannot fail; unsupported schemas degrade to
// unknown-typed fields.
func GenerateModule(serverName string, tool ToolDescriptor) Module {
	pascal := strutil.ToPascalCase(tool.Name)
	funcName := strutil.ToCamelCase(tool.Name)
	if tsReserved[funcName] {
		funcName += "Tool"
	}

	mod := Module{
		ToolName:       tool.Name,
		InputTypeName:  pascal + "Input",
		OutputTypeName: pascal + "Result",
		FunctionName:   funcName,
		FileName:       tool.Name + ".ts",
		Description:    tool.Description,
	}
	if mod.Description == "" {
		mod.Description = fmt.Sprintf("Calls the %s tool", tool.Name)
	}

	mod.Source = renderModule(serverName, tool, mod)
	return mod
}

func renderModule(serverName string, tool ToolDescriptor, mod Module) string {
	var sb strings.Builder

	sb.WriteString("/**\n")
	sb.WriteString(fmt.Sprintf(" * Generated binding for tool %q on server %q.\n", tool.Name, serverName))
	sb.WriteString(fmt.Sprintf(" * %s\n", sanitizeComment(mod.Description)))
	sb.WriteString(" * This file is auto-generated. Do not edit manually.\n")
	sb.WriteString(" */\n\n")

	// Input type. Non-object schemas fall back to an open key-value type
	// because a tool invocation always carries a named-argument mapping.
	inputExpr := "Record<string, unknown>"
	if tool.InputSchema != nil && tool.InputSchema.Kind == schema.KindObject {
		inputExpr = TypeExpr(tool.InputSchema)
	}
	sb.WriteString(fmt.Sprintf("export type %s = %s;\n\n", mod.InputTypeName, inputExpr))

	// Output type. Uniform across tools: the protocol carries no per-tool
	// output schema.
	sb.WriteString(fmt.Sprintf("export type %s = {\n", mod.OutputTypeName))
	sb.WriteString("  /** Raw content returned by the tool. */\n")
	sb.WriteString("  content: unknown;\n")
	sb.WriteString("  success: boolean;\n")
	sb.WriteString("};\n\n")

	sb.WriteString("/**\n")
	sb.WriteString(fmt.Sprintf(" * %s\n", sanitizeComment(mod.Description)))
	sb.WriteString(" */\n")
	sb.WriteString(fmt.Sprintf("export async function %s(input: %s): Promise<%s> {\n",
		mod.FunctionName, mod.InputTypeName, mod.OutputTypeName))
	sb.WriteString(fmt.Sprintf("  const content = await callTool(%q, %q, input);\n", serverName, tool.Name))
	sb.WriteString("  return { content, success: true };\n")
	sb.WriteString("}\n")

	return sb.String()
}
