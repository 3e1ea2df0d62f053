package schema

import (
	"bytes"
	"slices"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	toolschema "github.com/mutablelogic/go-toolschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolParameter describes one input argument of a tool
type ToolParameter struct {
	// The parameter type
	Type Kind `json:"type" yaml:"type"`

	// Human-readable description, passed through unchanged
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Whether the parameter must be supplied
	Required bool `json:"required,omitempty" yaml:"required,omitempty"`

	// Default value, echoed verbatim. A nil value means no default, so
	// zero values such as 0, false and "" are valid defaults.
	Default any `json:"default,omitempty" yaml:"default,omitempty"`

	// Enumerated values for string parameters, in order. A nil slice
	// means no enumeration.
	Enum []string `json:"enum,omitempty" yaml:"enum,omitempty"`

	// The type of array elements, when Type is KindArray
	Items Kind `json:"items,omitempty" yaml:"items,omitempty"`

	// Nested properties, when Type is KindObject. Not used by any
	// converter.
	Properties Parameters `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// Parameter is a named ToolParameter
type Parameter struct {
	Name string
	ToolParameter
}

// Parameters is an ordered set of uniquely-named parameters. The order
// of the slice is the order in which parameters are visited.
type Parameters []Parameter

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Get returns a parameter by name
func (p Parameters) Get(name string) (ToolParameter, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.ToolParameter, true
		}
	}
	return ToolParameter{}, false
}

// Set replaces the parameter with the same name in place, or appends it,
// and returns the updated set
func (p Parameters) Set(name string, param ToolParameter) Parameters {
	if i := slices.IndexFunc(p, func(v Parameter) bool { return v.Name == name }); i >= 0 {
		p[i].ToolParameter = param
		return p
	}
	return append(p, Parameter{Name: name, ToolParameter: param})
}

// Names returns the parameter names in order
func (p Parameters) Names() []string {
	result := make([]string, 0, len(p))
	for _, param := range p {
		result = append(result, param.Name)
	}
	return result
}

// Required returns the names of required parameters in order
func (p Parameters) Required() []string {
	result := make([]string, 0, len(p))
	for _, param := range p {
		if param.Required {
			result = append(result, param.Name)
		}
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// JSON

// MarshalJSON encodes the parameters as an object, keeping their order
func (p Parameters) MarshalJSON() ([]byte, error) {
	return p.orderedMap().MarshalJSON()
}

// UnmarshalJSON decodes an object of parameters, keeping the order of
// the keys. A repeated key replaces the earlier value.
func (p *Parameters) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*p = nil
		return nil
	}
	om := orderedmap.New[string, ToolParameter]()
	if err := om.UnmarshalJSON(data); err != nil {
		return toolschema.ErrBadParameter.Withf("parameters: %v", err)
	}
	*p = parametersFromMap(om)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// YAML

// MarshalYAML encodes the parameters as a mapping, keeping their order
func (p Parameters) MarshalYAML() (any, error) {
	return p.orderedMap().MarshalYAML()
}

// UnmarshalYAML decodes a mapping of parameters, keeping the order of
// the keys
func (p *Parameters) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		*p = nil
		return nil
	} else if node.Kind != yaml.MappingNode {
		return toolschema.ErrBadParameter.Withf("line %d: parameters: expected a mapping", node.Line)
	}
	om := orderedmap.New[string, ToolParameter]()
	if err := om.UnmarshalYAML(node); err != nil {
		return err
	}
	*p = parametersFromMap(om)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// orderedMap returns the parameters as an ordered map. A repeated name
// keeps its first position and its last value.
func (p Parameters) orderedMap() *orderedmap.OrderedMap[string, ToolParameter] {
	om := orderedmap.New[string, ToolParameter](len(p))
	for _, param := range p {
		om.Set(param.Name, param.ToolParameter)
	}
	return om
}

func parametersFromMap(om *orderedmap.OrderedMap[string, ToolParameter]) Parameters {
	result := make(Parameters, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, Parameter{Name: pair.Key, ToolParameter: pair.Value})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p ToolParameter) String() string {
	return types.Stringify(p)
}

func (p Parameters) String() string {
	return types.Stringify(p)
}
