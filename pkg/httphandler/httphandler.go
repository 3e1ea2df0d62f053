package httphandler

import (
	"errors"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	jsonschema "github.com/mutablelogic/go-server/pkg/jsonschema"
	toolschema "github.com/mutablelogic/go-toolschema"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Router registers path items relative to its prefix. It is satisfied by
// *httprouter.Router, which wraps every handler in its middleware chain.
type Router interface {
	RegisterPath(path string, params *jsonschema.Schema, pathitem httprequest.PathItem) error
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the provider and conversion handlers with the
// router
func RegisterHandlers(manager *manager.Manager, router Router) error {
	var result error

	// Check arguments
	if manager == nil {
		return toolschema.ErrInternalServerError.With("manager is required")
	} else if router == nil {
		return toolschema.ErrInternalServerError.With("router is required")
	}

	// Convenience function to register a path item and accumulate any errors
	register := func(path string, item httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, item))
	}

	// Register handlers
	register(ProviderListHandler(manager))
	register(ConvertHandler(manager))
	register(ConvertManyHandler(manager))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts a toolschema error to an httpresponse.Err, preserving the
// original error message. Other errors are returned unchanged.
func httpErr(err error) error {
	switch {
	case errors.Is(err, toolschema.ErrNotFound):
		return httpresponse.ErrNotFound.With(err)
	case errors.Is(err, toolschema.ErrBadParameter):
		return httpresponse.ErrBadRequest.With(err)
	case errors.Is(err, toolschema.ErrNotImplemented):
		return httpresponse.ErrNotImplemented.With(err)
	case errors.Is(err, toolschema.ErrInternalServerError):
		return httpresponse.ErrInternalError.With(err)
	}
	var code toolschema.Err
	if errors.As(err, &code) {
		return httpresponse.ErrInternalError.With(err)
	}
	return err
}
