package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/savaki/gcp-bootstrap/internal/config"
	apperrors "github.com/savaki/gcp-bootstrap/internal/errors"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// DescribeCommand returns the describe command for inspecting the resolved configuration
func DescribeCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "describe",
		Aliases: []string{"show"},
		Usage:   "Show the resolved bootstrap configuration with secrets redacted",
		Description: `Show the configuration a successful bootstrap run would use.

All output is safe to share: the GitHub personal access token is redacted in
every format. Use the render command when the real values are needed.

Examples:
  # Human readable summary
  gcp-bootstrap describe

  # Machine readable formats
  gcp-bootstrap describe --format json
  gcp-bootstrap describe --format yaml`,
		Flags: append(configFlags(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, json, or yaml",
				Value:   "text",
			},
		),
		Action: describeAction,
	}
}

// describeAction resolves the configuration and prints it in the requested format
func describeAction(c *cli.Context) error {
	logger := zerolog.Ctx(c.Context)

	in := inputFromFlags(c)
	format := c.String("format")

	cfg, err := config.Load(in)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal configuration: %w", err)
		}
		fmt.Print(string(data))
	case "text":
		displayConfig(cfg)
	default:
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownFormat, format)
	}

	logger.Info().
		Str("project_id", cfg.ProjectID).
		Str("format", format).
		Msg("Described bootstrap configuration")

	return nil
}

// displayConfig prints the resolved configuration in a readable format
func displayConfig(cfg *config.Config) {
	fmt.Println()
	fmt.Printf("Bootstrap configuration for project: %s\n", cfg.ProjectID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Printf("Project ID: %s\n", cfg.ProjectID)
	fmt.Printf("Region:     %s\n", cfg.Region)
	fmt.Println()
	fmt.Println("GitHub registry access:")
	fmt.Printf("  Username: %s\n", cfg.Github.Username)
	fmt.Printf("  PAT:      %s\n", cfg.Github.PAT)
	fmt.Println()
	fmt.Printf("Service APIs to enable (%d):\n", len(cfg.APIs))
	for _, api := range cfg.APIs {
		fmt.Printf("  • %s\n", api)
	}
}
