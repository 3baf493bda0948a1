package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Call invokes a tool on a registered server and decodes the response into T.
//
// Classification, in order: an unregistered server name fails immediately as
// UnknownServer; a remote response flagged as an error becomes a ToolError; a
// response carrying structured content or JSON-decodable text is decoded;
// plain text that is not JSON is returned as the raw string; anything else
// that goes wrong on the round trip is a CallFailed.
func Call[T any](ctx context.Context, r *Registry, server, tool string, input any) (T, error) {
	var zero T

	result, err := r.CallTool(ctx, server, tool, input)
	if err != nil {
		var ce *CallError
		if errors.As(err, &ce) {
			return zero, err
		}
		return zero, &CallError{
			Kind:    KindCallFailed,
			Server:  server,
			Tool:    tool,
			Message: err.Error(),
			Err:     err,
		}
	}

	if result.IsError {
		return zero, &CallError{
			Kind:    KindToolError,
			Server:  server,
			Tool:    tool,
			Message: errorText(result),
		}
	}

	value := decodeResult(result)
	typed, err := coerce[T](value)
	if err != nil {
		return zero, &CallError{
			Kind:    KindCallFailed,
			Server:  server,
			Tool:    tool,
			Message: err.Error(),
			Err:     err,
		}
	}
	return typed, nil
}

// decodeResult extracts the useful value from a tool result: structured
// content when present, otherwise the first text content parsed as JSON,
// otherwise the raw text. Non-JSON text is deliberately not an error; plenty
// of tools return plain prose.
func decodeResult(result *mcp.CallToolResult) any {
	if result.StructuredContent != nil {
		return result.StructuredContent
	}

	text, ok := firstText(result)
	if !ok {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err == nil {
		return decoded
	}
	return text
}

// coerce converts a decoded value into T, round-tripping through JSON when a
// direct assertion does not hold.
func coerce[T any](value any) (T, error) {
	var zero T

	if value == nil {
		return zero, nil
	}
	if typed, ok := value.(T); ok {
		return typed, nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("encode tool result: %w", err)
	}
	if err := json.Unmarshal(raw, &zero); err != nil {
		return zero, fmt.Errorf("decode tool result: %w", err)
	}
	return zero, nil
}

// errorText pulls the human-readable message out of an error-flagged result.
func errorText(result *mcp.CallToolResult) string {
	if text, ok := firstText(result); ok && text != "" {
		return text
	}
	return "tool reported an error"
}

func firstText(result *mcp.CallToolResult) (string, bool) {
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			return text.Text, true
		}
	}
	return "", false
}

// IsKind reports whether err is a CallError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Kind == kind
}
