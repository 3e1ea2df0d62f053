package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: convert/{provider}
func ConvertHandler(manager *manager.Manager) (string, httprequest.PathItem) {
	return "convert/{provider}", httprequest.NewPathItem(
		"Convert",
		"Convert tool definitions for a provider",
		"convert",
	).Post(func(w http.ResponseWriter, r *http.Request) {
		var req schema.ConvertRequest
		if err := httprequest.Read(r, &req); err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}

		// The provider in the path takes precedence over the body
		req.Provider = r.PathValue("provider")
		resp, err := manager.Convert(r.Context(), req)
		if err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
	}, "Convert tools for one provider",
		openapi.WithErrorResponse(http.StatusBadRequest, "Invalid tool definition"),
		openapi.WithErrorResponse(http.StatusNotFound, "Unknown provider"),
	)
}

// Path: convert
func ConvertManyHandler(manager *manager.Manager) (string, httprequest.PathItem) {
	return "convert", httprequest.NewPathItem(
		"Convert",
		"Convert tool definitions for several providers, or all providers when none are named",
		"convert",
	).Post(func(w http.ResponseWriter, r *http.Request) {
		var req schema.ConvertManyRequest
		if err := httprequest.Read(r, &req); err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}
		resp, err := manager.ConvertMany(r.Context(), req)
		if err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
	}, "Convert tools for several providers",
		openapi.WithErrorResponse(http.StatusBadRequest, "Invalid tool definition"),
		openapi.WithErrorResponse(http.StatusNotFound, "Unknown provider"),
	)
}
