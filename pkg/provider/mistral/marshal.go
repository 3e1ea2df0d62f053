package mistral

import (
	"slices"

	// Packages
	deepcopy "github.com/mohae/deepcopy"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// Convert returns the Mistral function tool for a tool definition.
// The payload has the same shape as the OpenAI function tool.
func Convert(tool schema.ToolDefinition) Tool {
	return Tool{
		Type: toolTypeFunction,
		Function: FunctionDef{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  mistralParameters(tool.Parameters),
		},
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// mistralParameters returns the object schema for the parameters, with
// required names in parameter order
func mistralParameters(params schema.Parameters) Parameters {
	result := Parameters{
		Type:       schemaTypeObject,
		Properties: make(map[string]Property, len(params)),
		Required:   []string{},
	}
	for _, param := range params {
		result.Properties[param.Name] = mistralProperty(param.ToolParameter)
		if param.Required {
			result.Required = append(result.Required, param.Name)
		}
	}
	return result
}

func mistralProperty(param schema.ToolParameter) Property {
	property := Property{
		Type:        string(param.Type),
		Description: param.Description,
		Default:     deepcopy.Copy(param.Default),
	}
	if param.Enum != nil {
		property.Enum = slices.Clone(param.Enum)
	}
	if param.Type == schema.KindArray && param.Items != "" {
		property.Items = &Items{
			Type: string(param.Items),
		}
	}
	return property
}
