package manager

import (
	"slices"

	// Packages
	toolschema "github.com/mutablelogic/go-toolschema"
	provider "github.com/mutablelogic/go-toolschema/pkg/provider"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the manager
type Opt func(*Manager) error

///////////////////////////////////////////////////////////////////////////////
// MANAGER OPTIONS

// WithTracer sets the tracer used for spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(m *Manager) error {
		if tracer == nil {
			return toolschema.ErrBadParameter.With("tracer is required")
		}
		m.tracer = tracer
		return nil
	}
}

// WithProviders restricts the manager to the named providers. The option
// can be repeated.
func WithProviders(ids ...string) Opt {
	return func(m *Manager) error {
		for _, id := range ids {
			if _, err := provider.Lookup(id); err != nil {
				return err
			} else if slices.Contains(m.providers, id) {
				return toolschema.ErrBadParameter.Withf("duplicate provider %q", id)
			}
			m.providers = append(m.providers, id)
		}

		// Return success
		return nil
	}
}
