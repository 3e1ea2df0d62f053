package provider

import (
	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	anthropic "github.com/mutablelogic/go-toolschema/pkg/provider/anthropic"
	google "github.com/mutablelogic/go-toolschema/pkg/provider/google"
	mistral "github.com/mutablelogic/go-toolschema/pkg/provider/mistral"
	openai "github.com/mutablelogic/go-toolschema/pkg/provider/openai"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Converter returns the provider payload for a tool definition. The
// returned value marshals to the provider's JSON tool shape.
type Converter func(schema.ToolDefinition) any

type entry struct {
	name     string
	envelope string
	convert  Converter
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// registry is the static table of converters, in canonical order. Adding a
// provider means adding a row here.
var registry = []entry{
	{openai.Name, "{type, function: {name, description, parameters}}", converter(openai.Convert)},
	{anthropic.Name, "{name, description, input_schema}", converter(anthropic.Convert)},
	{google.Name, "{name, description, parameters} with upper-case types", converter(google.Convert)},
	{mistral.Name, "{type, function: {name, description, parameters}}", converter(mistral.Convert)},
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Providers returns the registered provider identifiers in canonical order
func Providers() []string {
	result := make([]string, 0, len(registry))
	for _, e := range registry {
		result = append(result, e.name)
	}
	return result
}

// Meta returns the name and payload shape of each registered provider, in
// canonical order
func Meta() []schema.ProviderMeta {
	result := make([]schema.ProviderMeta, 0, len(registry))
	for _, e := range registry {
		result = append(result, schema.ProviderMeta{Name: e.name, Envelope: e.envelope})
	}
	return result
}

// Lookup returns the converter for a provider identifier. The match is
// exact and case-sensitive. An unknown identifier returns a
// *toolschema.UnknownProviderError.
func Lookup(provider string) (Converter, error) {
	for _, e := range registry {
		if e.name == provider {
			return e.convert, nil
		}
	}
	return nil, toolschema.NewUnknownProviderError(provider, Providers())
}

// Convert returns the payload for a tool definition for one provider
func Convert(tool schema.ToolDefinition, provider string) (any, error) {
	convert, err := Lookup(provider)
	if err != nil {
		return nil, err
	}
	return convert(tool), nil
}

// ConvertAll returns the payloads for a sequence of tool definitions for one
// provider, in input order. The provider is resolved once, so an unknown
// provider fails before any tool is converted.
func ConvertAll(tools []schema.ToolDefinition, provider string) ([]any, error) {
	convert, err := Lookup(provider)
	if err != nil {
		return nil, err
	}
	result := make([]any, 0, len(tools))
	for _, tool := range tools {
		result = append(result, convert(tool))
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func converter[T any](fn func(schema.ToolDefinition) T) Converter {
	return func(tool schema.ToolDefinition) any {
		return fn(tool)
	}
}
