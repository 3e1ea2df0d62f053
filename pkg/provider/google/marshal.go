package google

import (
	"slices"

	// Packages
	deepcopy "github.com/mohae/deepcopy"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	cases "golang.org/x/text/cases"
	language "golang.org/x/text/language"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL CONVERSION

// Convert returns the Gemini function declaration for a tool definition.
// Every type tag is upper-cased; enum values and descriptions are not.
func Convert(tool schema.ToolDefinition) FunctionDeclaration {
	// A Caser holds state, so one is made per conversion
	upper := cases.Upper(language.Und)

	parameters := Schema{
		Type:       geminiTypeObject,
		Properties: make(map[string]Property, len(tool.Parameters)),
		Required:   make([]string, 0, len(tool.Parameters)),
	}
	for _, param := range tool.Parameters {
		parameters.Properties[param.Name] = geminiProperty(upper, param.ToolParameter)
		if param.Required {
			parameters.Required = append(parameters.Required, param.Name)
		}
	}

	return FunctionDeclaration{
		Name:        tool.Name,
		Description: tool.Description,
		Parameters:  parameters,
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func geminiProperty(upper cases.Caser, param schema.ToolParameter) Property {
	property := Property{
		Type:        geminiType(upper, param.Type),
		Description: param.Description,
		Enum:        slices.Clone(param.Enum),
		Default:     deepcopy.Copy(param.Default),
	}
	if param.Type == schema.KindArray && param.Items != "" {
		property.Items = &Items{Type: geminiType(upper, param.Items)}
	}
	return property
}

func geminiType(upper cases.Caser, kind schema.Kind) string {
	return upper.String(string(kind))
}
