package httpclient

import (
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	toolschema "github.com/mutablelogic/go-toolschema"
	version "github.com/mutablelogic/go-toolschema/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls a conversion server. Each method maps to one endpoint and
// decodes the server response into the schema types.
type Client struct {
	*client.Client
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a client for the server at endpoint, which includes the path
// prefix, e.g. "http://localhost:8085/api/v1". Options are applied after
// the default user agent.
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if u, err := url.Parse(endpoint); err != nil {
		return nil, toolschema.ErrBadParameter.With(err)
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return nil, toolschema.ErrBadParameter.Withf("endpoint %q is not an http or https URL", endpoint)
	}

	defaults := []client.ClientOpt{
		client.OptUserAgent(version.ExecName() + "/" + version.Version()),
	}
	c, err := client.New(append(append(defaults, opts...), client.OptEndpoint(endpoint))...)
	if err != nil {
		return nil, err
	}
	return &Client{c}, nil
}
