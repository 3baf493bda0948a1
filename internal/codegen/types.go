package codegen

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cameronsjo/mcp-bindgen/internal/schema"
)

// ToolDescriptor is one tool as reported by a server's listing operation.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema *schema.Node
}

// DescriptorFromTool normalizes an SDK tool into a ToolDescriptor. A tool
// without an input schema is treated as taking an empty object.
func DescriptorFromTool(tool *mcp.Tool) ToolDescriptor {
	desc := ToolDescriptor{
		Name:        tool.Name,
		Description: tool.Description,
	}
	if tool.InputSchema != nil {
		desc.InputSchema = schema.FromAny(tool.InputSchema)
	} else {
		desc.InputSchema = schema.EmptyObject()
	}
	return desc
}

// Module is the generated binding for a single tool.
type Module struct {
	ToolName       string
	InputTypeName  string
	OutputTypeName string
	FunctionName   string
	FileName       string
	Source         string

	// Description after placeholder substitution, reused by the assembler.
	Description string
}

// Artifacts are the per-server files emitted alongside the tool modules.
type Artifacts struct {
	Index  string
	Types  string
	Readme string
}
