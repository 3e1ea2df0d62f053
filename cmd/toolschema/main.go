package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	manager "github.com/mutablelogic/go-toolschema/pkg/manager"
	version "github.com/mutablelogic/go-toolschema/pkg/version"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Remote conversion server
	Remote string `name:"remote" env:"TOOLSCHEMA_URL" help:"Base URL of a conversion server to use, e.g. http://localhost:8085/api/v1"`

	// HTTP server options
	HTTP struct {
		Prefix  string        `name:"prefix" help:"HTTP path prefix" default:"/api/v1"`
		Addr    string        `name:"addr" env:"TOOLSCHEMA_ADDR" help:"HTTP listen address" default:"localhost:8085"`
		Timeout time.Duration `name:"timeout" help:"Client timeout when calling a remote server" default:"30s"`
		Origin  string        `name:"origin" help:"Cross-origin protection (CSRF) origin. Empty string for same-origin only, '*' to allow all" default:""`
	} `embed:"" prefix:"http."`

	// Context
	ctx      context.Context
	execName string
	tracer   trace.Tracer
	stdout   io.Writer
}

type CLI struct {
	Globals

	// Commands
	Providers ProvidersCmd `cmd:"" help:"List the providers tool definitions can be converted for"`
	Inspect   InspectCmd   `cmd:"" help:"Show the parameters of tool definitions in JSON or YAML files"`
	Convert   ConvertCmd   `cmd:"" help:"Convert tool definitions in JSON or YAML files to provider payloads"`
	ServerCommands
	Version VersionCmd `cmd:"" help:"Print the version"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(version.ExecName()),
		kong.Description("Convert tool definitions into LLM provider function-calling payloads"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = version.ExecName()
	cli.Globals.stdout = os.Stdout

	// Set up logging
	level := zerolog.InfoLevel
	switch {
	case cli.Debug && cli.Verbose:
		level = zerolog.TraceLevel
	case cli.Debug:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// The tracer comes from the global provider, which records nothing
	// unless an exporter is installed
	cli.Globals.tracer = otel.Tracer(cli.Globals.execName)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Manager returns a manager for the named providers, or all providers
func (g *Globals) Manager(providers ...string) (*manager.Manager, error) {
	opts := []manager.Opt{}
	if g.tracer != nil {
		opts = append(opts, manager.WithTracer(g.tracer))
	}
	if len(providers) > 0 {
		opts = append(opts, manager.WithProviders(providers...))
	}
	return manager.New(opts...)
}

// writeJSON writes a value as JSON to stdout, optionally indented
func (g *Globals) writeJSON(v any, indent bool) error {
	enc := json.NewEncoder(g.stdout)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
