package manager

import (
	"context"
	"slices"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListProviders returns the providers served, in canonical order
func (m *Manager) ListProviders(ctx context.Context) (result *schema.ListProvidersResponse, err error) {
	// Otel span
	_, endSpan := otel.StartSpan(m.tracer, ctx, "ListProviders")
	defer func() { endSpan(err) }()

	// Return the providers
	return &schema.ListProvidersResponse{
		Count: uint(len(m.providers)),
		Body:  slices.Clone(m.providers),
	}, nil
}
