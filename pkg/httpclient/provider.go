package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListProviders returns the providers served by the server
func (c *Client) ListProviders(ctx context.Context) (*schema.ListProvidersResponse, error) {
	var response schema.ListProvidersResponse
	if err := c.DoWithContext(ctx, client.NewRequest(), &response, client.OptPath("provider")); err != nil {
		return nil, err
	}

	// Return the response
	return &response, nil
}
