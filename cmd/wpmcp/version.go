package main

import (
	"fmt"
	"os"

	// Packages
	version "github.com/mutablelogic/go-wpmcp/pkg/version"
	yaml "gopkg.in/yaml.v3"
)

type VersionCommands struct {
	Version VersionCommand `cmd:"" name:"version" help:"Print the version." group:"MISC"`
}

type VersionCommand struct {
	Long bool `name:"long" short:"l" help:"Print build details as YAML"`
}

func (cmd *VersionCommand) Run(ctx *Globals) error {
	build := version.Get(ctx.execName)
	if !cmd.Long {
		_, err := fmt.Fprintln(os.Stdout, build)
		return err
	}
	return yaml.NewEncoder(os.Stdout).Encode(build)
}
