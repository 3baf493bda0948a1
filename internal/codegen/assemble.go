package codegen

import (
	"fmt"
	"strings"
)

// Assemble produces the per-server aggregate files: an index re-export, the
// shared result/error types, and a README. It needs no server connection and
// accepts an empty module list.
func Assemble(serverName string, modules []Module) Artifacts {
	return Artifacts{
		Index:  renderIndex(serverName, modules),
		Types:  renderTypes(serverName),
		Readme: renderReadme(serverName, modules),
	}
}

func renderIndex(serverName string, modules []Module) string {
	var sb strings.Builder

	sb.WriteString("/**\n")
	sb.WriteString(fmt.Sprintf(" * Generated tool index for server %q.\n", serverName))
	sb.WriteString(" * This file is auto-generated. Do not edit manually.\n")
	sb.WriteString(" */\n\n")

	sb.WriteString("export * from \"./types\";\n")

	if len(modules) == 0 {
		sb.WriteString("\n// No tools are available on this server.\n")
		return sb.String()
	}

	sb.WriteString("\n")
	// One export line per module, in discovery order.
	for _, mod := range modules {
		base := strings.TrimSuffix(mod.FileName, ".ts")
		sb.WriteString(fmt.Sprintf("export { %s } from \"./%s\";\n", mod.FunctionName, base))
	}

	return sb.String()
}

func renderTypes(serverName string) string {
	var sb strings.Builder

	sb.WriteString("/**\n")
	sb.WriteString(fmt.Sprintf(" * Shared result and error types for server %q.\n", serverName))
	sb.WriteString(" * This file is auto-generated. Do not edit manually.\n")
	sb.WriteString(" */\n\n")

	sb.WriteString("export type ToolError = {\n")
	sb.WriteString("  code: string;\n")
	sb.WriteString("  message: string;\n")
	sb.WriteString("  details?: unknown;\n")
	sb.WriteString("};\n\n")

	sb.WriteString("export type ToolResult<T = unknown> = {\n")
	sb.WriteString("  success: boolean;\n")
	sb.WriteString("  data?: T;\n")
	sb.WriteString("  error?: ToolError;\n")
	sb.WriteString("};\n")

	return sb.String()
}

func renderReadme(serverName string, modules []Module) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s tools\n\n", serverName))
	sb.WriteString(fmt.Sprintf("Generated bindings for the %q MCP server.\n\n", serverName))

	if len(modules) == 0 {
		sb.WriteString("No tools are available on this server.\n")
		return sb.String()
	}

	sb.WriteString("## Tools\n\n")
	for _, mod := range modules {
		sb.WriteString(fmt.Sprintf("- `%s` — %s\n", mod.FunctionName, mod.Description))
	}

	sb.WriteString("\n## Usage\n\n")
	names := make([]string, 0, 3)
	for _, mod := range modules {
		names = append(names, mod.FunctionName)
		if len(names) == 3 {
			break
		}
	}
	sb.WriteString("```ts\n")
	sb.WriteString(fmt.Sprintf("import { %s } from \"./index\";\n\n", strings.Join(names, ", ")))
	sb.WriteString(fmt.Sprintf("const result = await %s({});\n", names[0]))
	sb.WriteString("console.log(result.content);\n")
	sb.WriteString("```\n\n")
	sb.WriteString("The generated functions call the ambient `callTool(server, tool, input)`\n")
	sb.WriteString("provided by the host runtime.\n")

	return sb.String()
}
