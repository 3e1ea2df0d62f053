package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	toolschema "github.com/mutablelogic/go-toolschema"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Convert returns the payloads of the tool definitions for one provider
func (c *Client) Convert(ctx context.Context, provider string, tools []schema.ToolDefinition) (*schema.ConvertResponse, error) {
	if provider == "" {
		return nil, toolschema.ErrBadParameter.With("provider cannot be empty")
	}

	// Create request
	req, err := client.NewJSONRequest(schema.ConvertRequest{Tools: nonNil(tools)})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ConvertResponse
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("convert", provider)); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

// ConvertMany returns the payloads of the tool definitions for several
// providers, or all providers served when none are named
func (c *Client) ConvertMany(ctx context.Context, providers []string, tools []schema.ToolDefinition) (*schema.ConvertManyResponse, error) {
	// Create request
	req, err := client.NewJSONRequest(schema.ConvertManyRequest{
		Providers: providers,
		Tools:     nonNil(tools),
	})
	if err != nil {
		return nil, err
	}

	// Perform request
	var response schema.ConvertManyResponse
	if err := c.DoWithContext(ctx, req, &response, client.OptPath("convert")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// nonNil returns an empty list rather than nil, so the request body has
// an array of tools
func nonNil(tools []schema.ToolDefinition) []schema.ToolDefinition {
	if tools == nil {
		return []schema.ToolDefinition{}
	}
	return tools
}
