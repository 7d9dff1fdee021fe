package main

import (
	"context"

	"github.com/desertthunder/taskman/internal/shared"
	"github.com/urfave/cli/v3"
)

// Login authenticates the given email, registering it on first use.
func (r *Runner) Login(ctx context.Context, cmd *cli.Command) error {
	email := cmd.String("email")
	_, known := r.auth.Lookup(email)

	identity, err := r.authenticate(cmd)
	if err != nil {
		return err
	}

	if known {
		return r.writePlainln("Welcome back, %s!", identity.Name)
	}
	return r.writePlainln("✓ Registration successful! Welcome, %s.", identity.Name)
}

// SetupConfig writes the example configuration file.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("wrote config file", "path", path)
	return r.writePlainln("✓ Wrote %s — fill in the [smtp] section to enable digests", path)
}
