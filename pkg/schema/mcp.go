package schema

import (
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
	toolschema "github.com/mutablelogic/go-toolschema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// FromMCPTool returns a tool definition from a Model Context Protocol tool
// declaration. The declaration is read through its wire format, so any
// input schema representation accepted by the SDK can be used.
func FromMCPTool(t *mcp.Tool) (ToolDefinition, error) {
	if t == nil {
		return ToolDefinition{}, toolschema.ErrBadParameter.With("nil tool")
	}

	data, err := json.Marshal(t)
	if err != nil {
		return ToolDefinition{}, toolschema.ErrBadParameter.Withf("%s: %v", t.Name, err)
	}

	var wire struct {
		Name        string             `json:"name"`
		Description string             `json:"description"`
		InputSchema *jsonschema.Schema `json:"inputSchema"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return ToolDefinition{}, toolschema.ErrBadParameter.Withf("%s: %v", t.Name, err)
	}

	return FromJSONSchema(wire.Name, wire.Description, wire.InputSchema)
}
