package main

import (
	"context"
	"os"

	"github.com/savaki/gcp-bootstrap/cmd/gcp-bootstrap/commands"
	"github.com/savaki/gcp-bootstrap/internal/di"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := di.ProvideLogger()

	container, err := di.New(logger)
	if err != nil {
		logger.Error().Err(err).Msg("Container error")
		os.Exit(1)
	}
	ctx := di.MustGet[context.Context](container)

	app := &cli.App{
		Name:  "gcp-bootstrap",
		Usage: "GCP project bootstrap toolkit for Terraform",
		Description: `A unified CLI tool for preparing Terraform runs against a GCP project.

This tool provides commands for:
  - Validating the TF_VAR_* bootstrap variables before Terraform runs
  - Rendering validated variables as tfvars or shell exports
  - Inspecting the resolved configuration and the service APIs it enables`,
		Commands: []*cli.Command{
			commands.PreflightCommand(&logger),
			commands.RenderCommand(&logger),
			commands.DescribeCommand(&logger),
			commands.APIsCommand(&logger),
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error().Err(err).Msg("Application error")
		os.Exit(1)
	}
}
