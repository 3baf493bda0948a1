package codegen

import (
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cameronsjo/mcp-bindgen/internal/schema"
)

func weatherDescriptor() ToolDescriptor {
	return ToolDescriptor{
		Name:        "get-weather",
		Description: "Fetches the current weather",
		InputSchema: &schema.Node{
			Kind: schema.KindObject,
			Properties: map[string]*schema.Node{
				"city": {Kind: schema.KindString},
			},
			Required: map[string]bool{"city": true},
		},
	}
}

func TestGenerateModuleRoundTrip(t *testing.T) {
	mod := GenerateModule("weather", weatherDescriptor())

	assert.Equal(t, "get-weather", mod.ToolName)
	assert.Equal(t, "GetWeatherInput", mod.InputTypeName)
	assert.Equal(t, "GetWeatherResult", mod.OutputTypeName)
	assert.Equal(t, "getWeather", mod.FunctionName)
	assert.Equal(t, "get-weather.ts", mod.FileName)

	require.Contains(t, mod.Source, "export type GetWeatherInput = {")
	assert.Contains(t, mod.Source, "  city: string;")
	assert.NotContains(t, mod.Source, "city?:")

	assert.Contains(t, mod.Source, "export async function getWeather(input: GetWeatherInput): Promise<GetWeatherResult> {")
	assert.Contains(t, mod.Source, `await callTool("weather", "get-weather", input);`)
	assert.Contains(t, mod.Source, "return { content, success: true };")
}

func TestGenerateModuleOutputShapeIsUniform(t *testing.T) {
	mod := GenerateModule("weather", weatherDescriptor())

	assert.Contains(t, mod.Source, "export type GetWeatherResult = {")
	assert.Contains(t, mod.Source, "  content: unknown;")
	assert.Contains(t, mod.Source, "  success: boolean;")
}

func TestGenerateModuleNonObjectSchemaFallsBack(t *testing.T) {
	mod := GenerateModule("s", ToolDescriptor{
		Name:        "raw_tool",
		InputSchema: &schema.Node{Kind: schema.KindString},
	})

	assert.Contains(t, mod.Source, "export type RawToolInput = Record<string, unknown>;")
}

func TestGenerateModulePlaceholderDescription(t *testing.T) {
	mod := GenerateModule("s", ToolDescriptor{
		Name:        "ping",
		InputSchema: schema.EmptyObject(),
	})

	assert.Equal(t, "Calls the ping tool", mod.Description)
	assert.Contains(t, mod.Source, "Calls the ping tool")
}

func TestGenerateModuleDocumentsOrigin(t *testing.T) {
	mod := GenerateModule("weather", weatherDescriptor())

	header := strings.SplitN(mod.Source, "*/", 2)[0]
	assert.Contains(t, header, `"get-weather"`)
	assert.Contains(t, header, `"weather"`)
	assert.Contains(t, header, "Fetches the current weather")
}

func TestGenerateModuleReservedFunctionName(t *testing.T) {
	mod := GenerateModule("s", ToolDescriptor{
		Name:        "delete",
		InputSchema: schema.EmptyObject(),
	})

	assert.Equal(t, "deleteTool", mod.FunctionName)
}

func TestDescriptorFromToolMissingSchema(t *testing.T) {
	desc := DescriptorFromTool(&mcp.Tool{Name: "no-schema", Description: "d"})

	require.NotNil(t, desc.InputSchema)
	assert.Equal(t, schema.KindObject, desc.InputSchema.Kind)
}
