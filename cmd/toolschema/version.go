package main

import (
	// Packages
	version "github.com/mutablelogic/go-toolschema/pkg/version"
)

type VersionCmd struct{}

func (cmd *VersionCmd) Run(ctx *Globals) error {
	data, err := version.JSON(ctx.execName)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = ctx.stdout.Write(data)
	return err
}
