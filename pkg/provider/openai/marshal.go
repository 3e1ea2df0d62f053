package openai

import (
	"slices"

	// Packages
	deepcopy "github.com/mohae/deepcopy"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// Convert returns the OpenAI function tool for a tool definition
func Convert(tool schema.ToolDefinition) Tool {
	properties := make(map[string]Property, len(tool.Parameters))
	required := make([]string, 0, len(tool.Parameters))
	for _, param := range tool.Parameters {
		properties[param.Name] = propertyFromParameter(param.ToolParameter)
		if param.Required {
			required = append(required, param.Name)
		}
	}

	return Tool{
		Type: toolTypeFunction,
		Function: Function{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters: Parameters{
				Type:       typeObject,
				Properties: properties,
				Required:   required,
			},
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func propertyFromParameter(param schema.ToolParameter) Property {
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
