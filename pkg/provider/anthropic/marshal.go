package anthropic

import (
	"slices"

	// Packages
	deepcopy "github.com/mohae/deepcopy"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// Convert returns the Anthropic tool for a tool definition. Unlike the
// function-calling providers, the tool is not wrapped in an envelope.
func Convert(tool schema.ToolDefinition) Tool {
	inputSchema := InputSchema{
		Type:       inputSchemaTypeObject,
		Properties: make(map[string]Property, len(tool.Parameters)),
		Required:   make([]string, 0, len(tool.Parameters)),
	}
	for _, param := range tool.Parameters {
		inputSchema.Properties[param.Name] = anthropicProperty(param.ToolParameter)
		if param.Required {
			inputSchema.Required = append(inputSchema.Required, param.Name)
		}
	}

	return Tool{
		Name:        tool.Name,
		Description: tool.Description,
		InputSchema: inputSchema,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func anthropicProperty(param schema.ToolParameter) Property {
	property := Property{
		Type:        string(param.Type),
		Description: param.Description,
		Enum:        slices.Clone(param.Enum),
		Default:     deepcopy.Copy(param.Default),
	}
	if param.Type == schema.KindArray && param.Items != "" {
		property.Items = &Items{Type: string(param.Items)}
	}
	return property
}
