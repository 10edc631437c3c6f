package commands

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/savaki/gcp-bootstrap/internal/config"
	apperrors "github.com/savaki/gcp-bootstrap/internal/errors"
	"github.com/savaki/gcp-bootstrap/internal/policy"
	"github.com/savaki/gox/slicex"
	"github.com/urfave/cli/v2"
)

// PreflightCommand returns the preflight command for validating bootstrap variables
func PreflightCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:    "preflight",
		Aliases: []string{"validate"},
		Usage:   "Validate the bootstrap variables before running Terraform",
		Description: `Validate the TF_VAR_* bootstrap variables and stop before anything touches the project.

Every required variable is checked and all failures are reported in a single run,
each with the environment variable to set. The GitHub personal access token is
checked for presence only and never appears in any output.

On success the resolved configuration is printed with sensitive values redacted,
and the variable values are checked against the well-formedness guardrails.

Examples:
  # Validate the variables Terraform would see
  gcp-bootstrap preflight

  # Validate explicit values without touching the environment
  gcp-bootstrap preflight --project_id tasky-demo-project --region us-central1 \
    --github_username alice --github_pat "$GITHUB_PAT" --project_number 123456789012

  # Skip the guardrail checks (presence validation still applies)
  gcp-bootstrap preflight --skip-policy`,
		Flags: append(configFlags(),
			&cli.BoolFlag{
				Name:  "skip-policy",
				Usage: "Skip the guardrail policy checks (presence validation still applies)",
			},
		),
		Action: preflightAction,
	}
}

// preflightAction validates the bootstrap variables and reports every failure
func preflightAction(c *cli.Context) error {
	logger := zerolog.Ctx(c.Context)

	in := inputFromFlags(c)

	cfg, err := config.Load(in)
	if err != nil {
		failures := config.ValidationErrors(err)
		fmt.Println()
		for _, failure := range failures {
			fmt.Printf("✗ %s\n", failure.Error())
		}
		logger.Error().
			Strs("fields", slicex.Map(failures, func(f *config.ValidationError) string { return f.Field })).
			Msg("Bootstrap variables failed validation")
		return apperrors.ErrInvalidConfig
	}

	fmt.Println()
	fmt.Printf("Bootstrap configuration for project: %s\n", cfg.ProjectID)
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()
	fmt.Printf("✓ project_id:      %s\n", cfg.ProjectID)
	fmt.Printf("✓ region:          %s\n", cfg.Region)
	fmt.Printf("✓ github_username: %s\n", cfg.Github.Username)
	fmt.Printf("✓ github_pat:      %s\n", cfg.Github.PAT)
	fmt.Printf("✓ project_number:  %s\n", in.ProjectNumber)
	fmt.Println()
	fmt.Printf("Service APIs to enable (%d):\n", len(cfg.APIs))
	for _, api := range cfg.APIs {
		fmt.Printf("  • %s\n", api)
	}

	if !c.Bool("skip-policy") {
		validator, err := policy.NewValidator()
		if err != nil {
			return fmt.Errorf("failed to create policy validator: %w", err)
		}

		result, err := validator.Validate(c.Context, in)
		if err != nil {
			return fmt.Errorf("failed to evaluate guardrail policy: %w", err)
		}

		if !result.Allowed {
			fmt.Println()
			for _, violation := range result.Violations {
				fmt.Printf("✗ %s\n", violation)
			}
			logger.Error().
				Int("violations", len(result.Violations)).
				Msg("Bootstrap variables rejected by guardrail policy")
			return apperrors.ErrPolicyViolation
		}

		fmt.Println()
		fmt.Printf("✓ Guardrail policy checks passed\n")
	}

	logger.Info().
		Str("project_id", cfg.ProjectID).
		Str("region", cfg.Region).
		Int("api_count", len(cfg.APIs)).
		Msg("Preflight checks passed")

	fmt.Println()
	fmt.Printf("✓ All bootstrap variables are set\n")
	fmt.Printf("ℹ️  Terraform can now be run against this configuration\n")

	return nil
}
