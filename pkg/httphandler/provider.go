package httphandler

import (
	"net/http"

	// Packages
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	openapi "github.com/mutablelogic/go-server/pkg/openapi"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: provider
func ProviderListHandler(manager *manager.Manager) (string, httprequest.PathItem) {
	return "provider", httprequest.NewPathItem(
		"Providers",
		"List the providers which tool definitions can be converted for",
		"provider",
	).Get(func(w http.ResponseWriter, r *http.Request) {
		resp, err := manager.ListProviders(r.Context())
		if err != nil {
			_ = httpresponse.Error(w, httpErr(err))
			return
		}
		_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
	}, "List providers", openapi.WithErrorResponse(http.StatusInternalServerError))
}
