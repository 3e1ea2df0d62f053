package main

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"os"

	// Packages
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	openapihandler "github.com/mutablelogic/go-server/pkg/openapi/httphandler"
	httphandler "github.com/mutablelogic/go-toolschema/pkg/httphandler"
	version "github.com/mutablelogic/go-toolschema/pkg/version"
	log "github.com/rs/zerolog/log"
)

type ServerCommands struct {
	// Commands
	RunServer RunServer `cmd:"" name:"run" help:"Run the conversion server." group:"SERVER"`
}

type RunServer struct {
	Providers []string `name:"provider" short:"p" help:"Provider to serve, can be repeated. All providers when not set"`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" help:"TLS certificate file"`
		KeyFile    string `name:"key" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	manager, err := ctx.Manager(cmd.Providers...)
	if err != nil {
		return err
	}

	// Create the TLS config if TLS options are provided
	tlsConfig, err := cmd.tlsConfig()
	if err != nil {
		return err
	}

	// Create the HTTP router, with request logging and panic recovery
	// applied to every route
	versionTag := version.Version()
	router, err := httprouter.NewRouter(ctx.ctx, http.NewServeMux(), ctx.HTTP.Prefix, ctx.HTTP.Origin, "Tool Schema Server", versionTag, httphandler.Middleware(log.Logger))
	if err != nil {
		return err
	} else if err := httphandler.RegisterHandlers(manager, router); err != nil {
		return err
	} else if err := openapihandler.RegisterHandler(router); err != nil {
		return err
	}

	// Create the server, and mount the router under its prefix
	server, err := httpserver.New(ctx.HTTP.Addr, tlsConfig)
	if err != nil {
		return err
	}
	server.Router().Handle(mountPath(router.Prefix()), router)

	// Run the server
	log.Info().Str("addr", ctx.HTTP.Addr).Str("prefix", ctx.HTTP.Prefix).Msgf("%s@%s started", ctx.execName, versionTag)
	if err := server.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	log.Info().Msgf("%s@%s stopped", ctx.execName, versionTag)
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// mountPath returns the subtree pattern which matches every path under prefix
func mountPath(prefix string) string {
	if prefix == "/" {
		return prefix
	}
	return prefix + "/"
}

func (cmd *RunServer) tlsConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read TLS file: %w", err)
		}
		pemData = append(pemData, data)
	}
	config, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return config, nil
}
