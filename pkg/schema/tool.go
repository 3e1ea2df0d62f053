package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ToolDefinition represents a provider-agnostic tool definition.
// Providers reshape this into their required payloads.
type ToolDefinition struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Parameters  Parameters `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t ToolDefinition) String() string {
	return types.Stringify(t)
}
