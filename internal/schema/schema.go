// Package schema models the JSON-Schema subset MCP servers use to describe
// tool inputs. The open map the protocol delivers is normalized into a closed
// Node variant so downstream type mapping is exhaustive and total.
package schema

// Kind identifies the shape of a schema node.
type Kind string

const (
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindInteger Kind = "integer"
	KindBoolean Kind = "boolean"
	KindArray   Kind = "array"
	KindObject  Kind = "object"

	// KindUnknown is the catch-all for absent or unrecognized types.
	// Unsupported schemas degrade to it instead of failing a run.
	KindUnknown Kind = "unknown"
)

// Node is a recursive structural description of a tool input.
type Node struct {
	Kind        Kind
	Description string

	// Object fields.
	Properties map[string]*Node
	Required   map[string]bool

	// Array element schema, nil when the schema declares none.
	Items *Node

	// Enum literals for string schemas, in source order.
	Enum []string
}

// EmptyObject is the schema used for tools that declare no input.
func EmptyObject() *Node {
	return &Node{Kind: KindObject}
}

// FromAny normalizes a raw inputSchema value (as delivered by the MCP SDK)
// into a Node. It never fails: anything that is not a recognizable schema
// map becomes a KindUnknown node.
func FromAny(v any) *Node {
	m, ok := v.(map[string]any)
	if !ok {
		return &Node{Kind: KindUnknown}
	}
	return fromMap(m)
}

func fromMap(m map[string]any) *Node {
	node := &Node{Kind: KindUnknown}

	if desc, ok := m["description"].(string); ok {
		node.Description = desc
	}

	typ, _ := m["type"].(string)
	switch typ {
	case "string":
		node.Kind = KindString
		node.Enum = stringEnum(m["enum"])
	case "number":
		node.Kind = KindNumber
	case "integer":
		node.Kind = KindInteger
	case "boolean":
		node.Kind = KindBoolean
	case "array":
		node.Kind = KindArray
		if items, ok := m["items"].(map[string]any); ok {
			node.Items = fromMap(items)
		}
	case "object":
		node.Kind = KindObject
		if props, ok := m["properties"].(map[string]any); ok && len(props) > 0 {
			node.Properties = make(map[string]*Node, len(props))
			for name, raw := range props {
				node.Properties[name] = FromAny(raw)
			}
		}
		if req, ok := m["required"].([]any); ok {
			node.Required = make(map[string]bool, len(req))
			for _, r := range req {
				if name, ok := r.(string); ok {
					node.Required[name] = true
				}
			}
		}
	}

	return node
}

func stringEnum(v any) []string {
	raw, ok := v.([]any)
	if !ok || len(raw) == 0 {
		return nil
	}
	// Duplicates are kept as-is; a schema authoring error surfaces in the
	// emitted union rather than being masked here.
	values := make([]string, 0, len(raw))
	for _, e := range raw {
		if s, ok := e.(string); ok {
			values = append(values, s)
		}
	}
	if len(values) == 0 {
		return nil
	}
	return values
}
