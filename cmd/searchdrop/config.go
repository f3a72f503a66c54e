package main

import (
	"fmt"

	"github.com/fwojciec/searchdrop"
	"github.com/fwojciec/searchdrop/toml"
)

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	if c.Write {
		if err := toml.Save(deps.ConfigPath, deps.Config); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", searchdrop.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", deps.ConfigPath)
		return nil
	}
	return toml.Write(deps.Stdout, deps.Config)
}
