package commands

import (
	"github.com/savaki/gcp-bootstrap/internal/config"
	"github.com/savaki/gcp-bootstrap/internal/constants"
	"github.com/urfave/cli/v2"
)

// configFlags declares one flag per bootstrap variable. Values come from the
// same TF_VAR_* environment variables Terraform reads, so the CLI validates
// exactly what a terraform run would see. None of the flags are marked
// required: presence is checked by validation so that a single run can report
// every missing variable with its remediation.
func configFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    constants.VarProjectID,
			Aliases: []string{"p"},
			Usage:   "Target GCP project id",
			EnvVars: []string{constants.EnvProjectID},
		},
		&cli.StringFlag{
			Name:    constants.VarRegion,
			Aliases: []string{"r"},
			Usage:   "Primary GCP region for regional resources",
			EnvVars: []string{constants.EnvRegion},
		},
		&cli.StringFlag{
			Name:    constants.VarGithubUsername,
			Aliases: []string{"u"},
			Usage:   "GitHub username used to pull container images from GHCR",
			EnvVars: []string{constants.EnvGithubUsername},
		},
		&cli.StringFlag{
			Name:    constants.VarGithubPAT,
			Usage:   "GitHub personal access token for GHCR (prefer the environment variable over the flag)",
			EnvVars: []string{constants.EnvGithubPAT},
		},
		&cli.StringFlag{
			Name:    constants.VarProjectNumber,
			Aliases: []string{"n"},
			Usage:   "Numeric project number of the target project",
			EnvVars: []string{constants.EnvProjectNumber},
		},
	}
}

// inputFromFlags assembles the bootstrap input from parsed CLI flags.
func inputFromFlags(c *cli.Context) config.Input {
	return config.Input{
		ProjectID:      c.String(constants.VarProjectID),
		Region:         c.String(constants.VarRegion),
		GithubUsername: c.String(constants.VarGithubUsername),
		GithubPAT:      config.Secret(c.String(constants.VarGithubPAT)),
		ProjectNumber:  c.String(constants.VarProjectNumber),
	}
}
