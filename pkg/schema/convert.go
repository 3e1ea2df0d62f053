package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ListProvidersResponse lists the provider identifiers which can be
// used for conversion
type ListProvidersResponse struct {
	Count uint     `json:"count"`
	Body  []string `json:"body"`
}

// ConvertRequest converts tool definitions for a single provider
type ConvertRequest struct {
	Provider string           `json:"provider,omitempty"`
	Tools    []ToolDefinition `json:"tools"`
}

// ConvertResponse holds the provider payloads, in the same order as the
// tool definitions in the request
type ConvertResponse struct {
	Provider string `json:"provider"`
	Tools    []any  `json:"tools"`
}

// ConvertManyRequest converts tool definitions for several providers.
// When no providers are set, all providers are used.
type ConvertManyRequest struct {
	Providers []string         `json:"providers,omitempty"`
	Tools     []ToolDefinition `json:"tools"`
}

// ConvertManyResponse holds one response per provider, in the order of
// the providers in the request
type ConvertManyResponse struct {
	Body []ConvertResponse `json:"body"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ListProvidersResponse) String() string {
	return types.Stringify(r)
}

func (r ConvertRequest) String() string {
	return types.Stringify(r)
}

func (r ConvertResponse) String() string {
	return types.Stringify(r)
}

func (r ConvertManyRequest) String() string {
	return types.Stringify(r)
}

func (r ConvertManyResponse) String() string {
	return types.Stringify(r)
}
