package main

import (
	"context"
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpclient "github.com/mutablelogic/go-toolschema/pkg/httpclient"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// service converts tool definitions, either in-process or on a server
type service interface {
	ListProviders(ctx context.Context) (*schema.ListProvidersResponse, error)
	Convert(ctx context.Context, provider string, tools []schema.ToolDefinition) (*schema.ConvertResponse, error)
	ConvertMany(ctx context.Context, providers []string, tools []schema.ToolDefinition) (*schema.ConvertManyResponse, error)
}

type local struct {
	*manager.Manager
}

var _ service = (*local)(nil)
var _ service = (*httpclient.Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Service returns a client for the remote server when one is set, or
// an in-process manager otherwise
func (g *Globals) Service() (service, error) {
	if g.Remote == "" {
		manager, err := g.Manager()
		if err != nil {
			return nil, err
		}
		return &local{manager}, nil
	}

	opts := []client.ClientOpt{}
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.HTTP.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.HTTP.Timeout))
	}
	return httpclient.New(g.Remote, opts...)
}

func (l *local) Convert(ctx context.Context, provider string, tools []schema.ToolDefinition) (*schema.ConvertResponse, error) {
	return l.Manager.Convert(ctx, schema.ConvertRequest{Provider: provider, Tools: tools})
}

func (l *local) ConvertMany(ctx context.Context, providers []string, tools []schema.ToolDefinition) (*schema.ConvertManyResponse, error) {
	return l.Manager.ConvertMany(ctx, schema.ConvertManyRequest{Providers: providers, Tools: tools})
}
