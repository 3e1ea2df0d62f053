package main

import (
	"fmt"

	// Packages
	schema "github.com/mutablelogic/go-toolschema/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type InspectCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"JSON or YAML files of tool definitions"`
	Format string   `name:"format" enum:"table,markdown,json" default:"table" help:"Output format (table, markdown, json)"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *InspectCmd) Run(ctx *Globals) error {
	tools, err := readFiles(cmd.Files)
	if err != nil {
		return err
	}

	// Output JSON
	if cmd.Format == "json" {
		return ctx.writeJSON(tools, true)
	}

	// Output a table of parameters per tool
	for i, tool := range tools {
		if i > 0 {
			if _, err := fmt.Fprintln(ctx.stdout); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(ctx.stdout, "%s: %s\n", tool.Name, tool.Description); err != nil {
			return err
		}
		if len(tool.Parameters) == 0 {
			continue
		}
		if err := writeTable(ctx, cmd.Format, schema.ParameterTable(tool)); err != nil {
			return err
		}
	}

	// Return success
	return nil
}
