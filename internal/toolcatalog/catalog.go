// Package toolcatalog holds the static, immutable registry of tool schemas
// the model is told about and the validator checks parsed calls against.
package toolcatalog

import "encoding/json"

// PropertyType is the declared runtime type tag for one schema property.
type PropertyType string

const (
	TypeString      PropertyType = "string"
	TypeObject      PropertyType = "object"
	TypeNumber      PropertyType = "number"
	TypeInteger     PropertyType = "integer"
	TypeBoolean     PropertyType = "boolean"
	TypeUnspecified PropertyType = "unspecified"
)

// PropertySchema describes one argument: its declared type and, optionally,
// an enum restriction. Enums are declared for wire-schema fidelity but are
// not enforced by the validator — see DESIGN.md's Open Questions entry.
type PropertySchema struct {
	Type PropertyType
	Enum []string
}

// ToolSchema is the full, immutable contract for one tool: its parameter
// properties, which keys are required, and whether unknown keys are
// tolerated.
type ToolSchema struct {
	Name                         string
	Description                  string
	Properties                   map[string]PropertySchema
	Required                     []string
	AdditionalPropertiesAllowed  bool
}

// Catalog is a flat, read-only, name-indexed set of ToolSchema records built
// once at startup and shared across a Engine's lifetime.
type Catalog struct {
	byName map[string]ToolSchema
	order  []string
}

// New builds a Catalog from a list of schemas. Tool names must be unique;
// later entries with a duplicate name overwrite earlier ones, matching the
// catalog's map-backed construction.
func New(schemas ...ToolSchema) *Catalog {
	c := &Catalog{byName: make(map[string]ToolSchema, len(schemas))}
	for _, s := range schemas {
		if _, exists := c.byName[s.Name]; !exists {
			c.order = append(c.order, s.Name)
		}
		c.byName[s.Name] = s
	}
	return c
}

// Has reports whether a tool name is registered in the catalog.
func (c *Catalog) Has(toolName string) bool {
	_, ok := c.byName[toolName]
	return ok
}

// SchemaFor returns the schema for a tool name, if registered.
func (c *Catalog) SchemaFor(toolName string) (ToolSchema, bool) {
	s, ok := c.byName[toolName]
	return s, ok
}

// Names returns the tool names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// wireFunction is the function object of one OpenAI-compatible tool spec.
type wireFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  wireParameters `json:"parameters"`
}

type wireParameters struct {
	Type                 string                    `json:"type"`
	Properties           map[string]wireProperty    `json:"properties"`
	Required             []string                  `json:"required"`
	AdditionalProperties bool                       `json:"additionalProperties"`
}

type wireProperty struct {
	Type string   `json:"type"`
	Enum []string `json:"enum,omitempty"`
}

// WireTool is the `{type:"function", function:{...}}` shape the chat
// endpoint expects in its `tools` array.
type WireTool struct {
	Type     string       `json:"type"`
	Function wireFunction `json:"function"`
}

// Wire projects the catalog to the wire format expected by the chat
// endpoint, in registration order. The projection is pure and deterministic.
func (c *Catalog) Wire() []WireTool {
	out := make([]WireTool, 0, len(c.order))
	for _, name := range c.order {
		schema := c.byName[name]
		properties := make(map[string]wireProperty, len(schema.Properties))
		for propName, prop := range schema.Properties {
			wireType := string(prop.Type)
			if prop.Type == TypeUnspecified {
				wireType = ""
			}
			properties[propName] = wireProperty{Type: wireType, Enum: prop.Enum}
		}
		out = append(out, WireTool{
			Type: "function",
			Function: wireFunction{
				Name:        schema.Name,
				Description: schema.Description,
				Parameters: wireParameters{
					Type:                 "object",
					Properties:           properties,
					Required:             schema.Required,
					AdditionalProperties: schema.AdditionalPropertiesAllowed,
				},
			},
		})
	}
	return out
}

// MarshalWire is a convenience wrapper returning the wire projection already
// encoded as JSON, for callers that need raw bytes.
func (c *Catalog) MarshalWire() (json.RawMessage, error) {
	return json.Marshal(c.Wire())
}
