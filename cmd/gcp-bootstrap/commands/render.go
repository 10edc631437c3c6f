package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/savaki/gcp-bootstrap/internal/config"
	apperrors "github.com/savaki/gcp-bootstrap/internal/errors"
	"github.com/savaki/gcp-bootstrap/internal/render"
	"github.com/urfave/cli/v2"
)

// RenderCommand returns the render command for emitting validated variables
func RenderCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "render",
		Aliases: []string{"emit"},
		Usage:   "Render the validated variables for hand-off to Terraform",
		Description: `Render the bootstrap variables in a machine-readable format.

Validation runs first and nothing is emitted unless every required variable is
present. The rendered output carries the real variable values, including the
GitHub personal access token, so treat it with the same care as the variables
themselves. Logs never include the token.

Formats:
  tfvars  JSON suitable for terraform -var-file (default)
  env     POSIX shell export lines suitable for eval

Examples:
  # Write a tfvars file for terraform plan
  gcp-bootstrap render --format tfvars --file bootstrap.auto.tfvars.json

  # Load the variables into the current shell
  eval "$(gcp-bootstrap render --format env)"`,
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: tfvars or env",
				Value:   "tfvars",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"o"},
				Usage:   "Write output to this file instead of stdout (created with mode 0600)",
			},
		),
		Action: renderAction,
	}
}

// renderAction validates the input and emits it in the requested format
func renderAction(c *cli.Context) error {
	logger := zerolog.Ctx(c.Context)

	in := inputFromFlags(c)
	format := c.String("format")
	file := c.String("file")

	// Nothing is rendered unless the input validates
	if _, err := config.Load(in); err != nil {
		return err
	}

	var out []byte
	switch format {
	case "tfvars":
		b, err := render.Tfvars(in)
		if err != nil {
			return fmt.Errorf("failed to render tfvars: %w", err)
		}
		out = b
	case "env":
		out = render.EnvExports(in)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownFormat, format)
	}

	if file == "" {
		fmt.Print(string(out))
		return nil
	}

	if err := os.WriteFile(file, out, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}

	logger.Info().
		Str("file", file).
		Str("format", format).
		Msg("Rendered bootstrap variables")

	return nil
}
