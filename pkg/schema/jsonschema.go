package schema

import (
	"encoding/json"
	"maps"
	"slices"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	toolschema "github.com/mutablelogic/go-toolschema"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Object properties are followed this many levels below the top-level
	// parameters
	maxNestedDepth = 1
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// For returns a tool definition with parameters inferred from the fields
// of the struct type T. Fields without omitempty are required.
func For[T any](name, description string) (ToolDefinition, error) {
	s, err := jsonschema.For[T](nil)
	if err != nil {
		return ToolDefinition{}, toolschema.ErrBadParameter.Withf("%s: %v", name, err)
	}
	return FromJSONSchema(name, description, s)
}

// FromJSONSchema returns a tool definition with parameters taken from the
// properties of an object schema. Properties are visited in name order.
// The "integer" type is mapped to KindNumber. If description is empty, the
// schema description is used.
func FromJSONSchema(name, description string, s *jsonschema.Schema) (ToolDefinition, error) {
	tool := ToolDefinition{
		Name:        name,
		Description: description,
	}
	if s == nil {
		return tool, nil
	}
	if tool.Description == "" {
		tool.Description = s.Description
	}

	// The input schema needs to be an object
	if kind, err := kindForSchema(s); err != nil {
		return tool, toolschema.ErrBadParameter.Withf("%s: %v", name, err)
	} else if kind != "" && kind != KindObject {
		return tool, toolschema.ErrBadParameter.Withf("%s: input schema is %q, expected %q", name, kind, KindObject)
	}

	// Set the parameters
	params, err := parametersForSchema(s, maxNestedDepth)
	if err != nil {
		return tool, toolschema.ErrBadParameter.Withf("%s: %v", name, err)
	}
	tool.Parameters = params

	// Return success
	return tool, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func parametersForSchema(s *jsonschema.Schema, depth int) (Parameters, error) {
	var result Parameters
	for _, name := range slices.Sorted(maps.Keys(s.Properties)) {
		param, err := parameterForSchema(s.Properties[name], depth)
		if err != nil {
			return nil, toolschema.ErrBadParameter.Withf("%q: %v", name, err)
		}
		param.Required = slices.Contains(s.Required, name)
		result = result.Set(name, param)
	}
	return result, nil
}

func parameterForSchema(s *jsonschema.Schema, depth int) (ToolParameter, error) {
	var param ToolParameter
	if s == nil {
		return param, nil
	}

	kind, err := kindForSchema(s)
	if err != nil {
		return param, err
	}
	param.Type = kind
	param.Description = s.Description

	// A null default is the same as no default
	if len(s.Default) > 0 {
		var v any
		if err := json.Unmarshal(s.Default, &v); err != nil {
			return param, err
		}
		param.Default = v
	}

	if s.Enum != nil {
		param.Enum = make([]string, 0, len(s.Enum))
		for _, v := range s.Enum {
			str, ok := v.(string)
			if !ok {
				return param, toolschema.ErrBadParameter.Withf("enum value %v is not a string", v)
			}
			param.Enum = append(param.Enum, str)
		}
	}

	switch kind {
	case KindArray:
		if s.Items != nil {
			if param.Items, err = kindForSchema(s.Items); err != nil {
				return param, err
			}
		}
	case KindObject:
		if depth > 0 && len(s.Properties) > 0 {
			if param.Properties, err = parametersForSchema(s, depth-1); err != nil {
				return param, err
			}
		}
	}

	return param, nil
}

// kindForSchema returns the first non-null type of a schema
func kindForSchema(s *jsonschema.Schema) (Kind, error) {
	t := s.Type
	if t == "" {
		for _, v := range s.Types {
			if v != "null" {
				t = v
				break
			}
		}
	}
	if t == "integer" {
		return KindNumber, nil
	}
	return ParseKind(t)
}
