package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/savaki/gcp-bootstrap/internal/config"
	"github.com/urfave/cli/v2"
)

// APIsCommand returns the apis command listing the service APIs enabled during bootstrap
func APIsCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "apis",
		Usage: "List the service APIs enabled during bootstrap",
		Description: `List the fixed set of service APIs the bootstrap enables on the project.

The list is part of the tool itself and does not depend on the bootstrap
variables, so this command works without any configuration.

Examples:
  # Human readable list
  gcp-bootstrap apis

  # JSON array for scripting
  gcp-bootstrap apis --json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
		},
		Action: apisAction,
	}
}

// apisAction prints the service API list
func apisAction(c *cli.Context) error {
	apis := config.ServiceAPIs()

	if c.Bool("json") {
		data, err := json.MarshalIndent(apis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal APIs: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Service APIs enabled during bootstrap (%d):\n", len(apis))
	for i, api := range apis {
		fmt.Printf("  %d. %s\n", i+1, api)
	}

	return nil
}
