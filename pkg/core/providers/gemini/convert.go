package gemini

import (
	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/schema"
)

// Schema is the Gemini dialect of a structured-output schema.
// Note: Gemini uses uppercase type tags and camelCase keys on the wire.
type Schema struct {
	Type        string             `json:"type"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Description string             `json:"description,omitempty"`
	Default     any                `json:"default,omitempty"`
}

// ConvertSchema translates a provider-agnostic schema tree into the Gemini
// dialect. It is a pure, total, depth-first function over the node grammar:
// converting the same tree twice yields structurally identical output, so
// callers convert once per tree and reuse the result.
func ConvertSchema(node *schema.Node) (*Schema, error) {
	if node == nil {
		return nil, core.NewUnsupportedSchemaError("<nil>")
	}

	out := &Schema{}
	switch node.Kind {
	case schema.String:
		out.Type = "STRING"
	case schema.Number:
		out.Type = "NUMBER"
	case schema.Integer:
		out.Type = "INTEGER"
	case schema.Boolean:
		out.Type = "BOOLEAN"
	case schema.Array:
		out.Type = "ARRAY"
	case schema.Object:
		out.Type = "OBJECT"
	default:
		return nil, core.NewUnsupportedSchemaError(string(node.Kind))
	}

	if node.Properties != nil {
		out.Properties = make(map[string]*Schema, len(node.Properties))
		for name, child := range node.Properties {
			converted, err := ConvertSchema(child)
			if err != nil {
				return nil, err
			}
			out.Properties[name] = converted
		}
	}

	if node.Items != nil {
		converted, err := ConvertSchema(node.Items)
		if err != nil {
			return nil, err
		}
		out.Items = converted
	}

	// Required, description and default carry over verbatim; absent keys are
	// omitted entirely rather than emitted as null placeholders.
	if len(node.Required) > 0 {
		out.Required = append([]string(nil), node.Required...)
	}
	out.Description = node.Description
	out.Default = node.Default

	return out, nil
}

// MustConvertSchema converts a static schema tree and panics on failure.
// Only for the process-wide trees built at init, where a conversion error is
// a programming bug.
func MustConvertSchema(node *schema.Node) *Schema {
	converted, err := ConvertSchema(node)
	if err != nil {
		panic(err)
	}
	return converted
}
