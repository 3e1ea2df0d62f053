package manager

import (
	"slices"

	// Packages
	provider "github.com/mutablelogic/go-toolschema/pkg/provider"
	version "github.com/mutablelogic/go-toolschema/pkg/version"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Manager converts tool definitions for the providers it serves
type Manager struct {
	tracer    trace.Tracer
	providers []string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a manager which serves all registered providers, unless
// restricted with WithProviders
func New(opts ...Opt) (*Manager, error) {
	// Create the manager
	m := new(Manager)

	// Apply options
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	// Default to all providers, and keep a restricted set in canonical order
	if m.providers == nil {
		m.providers = provider.Providers()
	} else {
		m.providers = slices.DeleteFunc(provider.Providers(), func(id string) bool {
			return !slices.Contains(m.providers, id)
		})
	}

	// Default to a tracer which records nothing
	if m.tracer == nil {
		m.tracer = noop.NewTracerProvider().Tracer(version.ExecName())
	}

	// Return success
	return m, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// serves returns true if the provider is served by the manager
func (m *Manager) serves(id string) bool {
	return slices.Contains(m.providers, id)
}
