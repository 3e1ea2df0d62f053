package main

import (
	"fmt"
	"os"
	"slices"

	// Packages
	provider "github.com/mutablelogic/go-toolschema/pkg/provider"
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
	table "github.com/mutablelogic/go-toolschema/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ProvidersCmd struct {
	Format string `name:"format" enum:"table,markdown,json" default:"table" help:"Output format (table, markdown, json)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ProvidersCmd) Run(ctx *Globals) error {
	service, err := ctx.Service()
	if err != nil {
		return err
	}
	response, err := service.ListProviders(ctx.ctx)
	if err != nil {
		return err
	}

	// Output JSON
	if cmd.Format == "json" {
		return ctx.writeJSON(response, true)
	}

	// Describe the providers served
	var meta schema.ProviderTable
	for _, m := range provider.Meta() {
		if slices.Contains(response.Body, m.Name) {
			meta = append(meta, m)
		}
	}
	return writeTable(ctx, cmd.Format, meta)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeTable writes table data to stdout as a terminal or Markdown table
func writeTable(ctx *Globals, format string, data table.TableData) error {
	var out string
	if format == "markdown" {
		out = table.RenderMarkdown(data)
	} else {
		out = table.Render(data, table.Width(os.Stdout))
	}
	_, err := fmt.Fprintln(ctx.stdout, out)
	return err
}
