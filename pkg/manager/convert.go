package manager

import (
	"context"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	toolschema "github.com/mutablelogic/go-toolschema"
	provider "github.com/mutablelogic/go-toolschema/pkg/provider"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Convert returns the payloads of the tool definitions for one provider
func (m *Manager) Convert(ctx context.Context, req schema.ConvertRequest) (result *schema.ConvertResponse, err error) {
	// Otel span
	_, endSpan := otel.StartSpan(m.tracer, ctx, "Convert",
		attribute.String("provider", req.Provider),
		attribute.Int("tools", len(req.Tools)),
	)
	defer func() { endSpan(err) }()

	// Check the provider is served
	if !m.serves(req.Provider) {
		return nil, toolschema.NewUnknownProviderError(req.Provider, m.providers)
	}

	// Convert the tools
	return m.convert(req.Provider, req.Tools)
}

// ConvertMany returns the payloads of the tool definitions for several
// providers, in the order of the providers in the request. When the request
// names no providers, all served providers are used. Every provider is checked
// before any conversion is made.
func (m *Manager) ConvertMany(ctx context.Context, req schema.ConvertManyRequest) (result *schema.ConvertManyResponse, err error) {
	// Otel span
	ctx, endSpan := otel.StartSpan(m.tracer, ctx, "ConvertMany",
		attribute.StringSlice("providers", req.Providers),
		attribute.Int("tools", len(req.Tools)),
	)
	defer func() { endSpan(err) }()

	// Check the providers are served
	providers := req.Providers
	if len(providers) == 0 {
		providers = m.providers
	}
	for _, id := range providers {
		if !m.serves(id) {
			return nil, toolschema.NewUnknownProviderError(id, m.providers)
		}
	}

	// Convert for each provider in parallel
	body := make([]schema.ConvertResponse, len(providers))
	wg, ctx := errgroup.WithContext(ctx)
	for i, id := range providers {
		wg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			response, err := m.convert(id, req.Tools)
			if err != nil {
				return err
			}
			body[i] = *response
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}

	// Return success
	return &schema.ConvertManyResponse{Body: body}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (m *Manager) convert(id string, tools []schema.ToolDefinition) (*schema.ConvertResponse, error) {
	result, err := provider.ConvertAll(tools, id)
	if err != nil {
		return nil, err
	}
	return &schema.ConvertResponse{
		Provider: id,
		Tools:    result,
	}, nil
}
