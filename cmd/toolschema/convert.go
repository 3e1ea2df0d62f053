package main

import (
	"os"

	// Packages
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	table "github.com/mutablelogic/go-toolschema/pkg/ui/table"
	log "github.com/rs/zerolog/log"
	errgroup "golang.org/x/sync/errgroup"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ConvertCmd struct {
	Files    []string `arg:"" type:"existingfile" help:"JSON or YAML files of tool definitions"`
	Provider []string `name:"provider" short:"p" help:"Provider to convert for, can be repeated. All providers when not set"`
	Indent   bool     `name:"indent" help:"Indent the output, which is the default for a terminal"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ConvertCmd) Run(ctx *Globals) error {
	tools, err := readFiles(cmd.Files)
	if err != nil {
		return err
	}

	service, err := ctx.Service()
	if err != nil {
		return err
	}
	indent := cmd.Indent || table.IsTerminal(os.Stdout)

	// With a single provider, output the payloads only
	if len(cmd.Provider) == 1 {
		response, err := service.Convert(ctx.ctx, cmd.Provider[0], tools)
		if err != nil {
			return err
		}
		return ctx.writeJSON(response.Tools, indent)
	}

	// Otherwise output the payloads for each provider
	response, err := service.ConvertMany(ctx.ctx, cmd.Provider, tools)
	if err != nil {
		return err
	}
	return ctx.writeJSON(response, indent)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readFiles reads tool definitions from files in parallel, returning them
// in file order
func readFiles(files []string) ([]schema.ToolDefinition, error) {
	results := make([][]schema.ToolDefinition, len(files))
	var wg errgroup.Group
	for i, path := range files {
		wg.Go(func() error {
			tools, err := schema.ReadFile(path)
			if err != nil {
				return err
			}
			log.Debug().Str("path", path).Int("tools", len(tools)).Msg("read")
			results[i] = tools
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}

	// Flatten in file order
	var tools []schema.ToolDefinition
	for _, v := range results {
		tools = append(tools, v...)
	}
	return tools, nil
}
