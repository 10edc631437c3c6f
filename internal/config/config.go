// Package config loads and validates the input variables that drive a
// bootstrap run and composes them into the configuration the provisioning
// engine consumes.
package config

// Input holds the raw externally sourced values for a bootstrap run.
// Values normally arrive through the TF_VAR_* environment variables so this
// tool and the provisioning engine read the same inputs.
type Input struct {
	ProjectID      string
	Region         string
	GithubUsername string
	GithubPAT      Secret
	ProjectNumber  string
}

// GithubConfig carries the GHCR credentials the provisioning engine wires
// into the cluster image pull secret.
type GithubConfig struct {
	Username string `json:"username" yaml:"username"`
	PAT      Secret `json:"pat" yaml:"pat"`
}

// Config is the validated, composed configuration for a bootstrap run.
// Load creates it once per invocation; treat it as read-only afterwards.
type Config struct {
	ProjectID string       `json:"project_id" yaml:"project_id"`
	Region    string       `json:"region" yaml:"region"`
	APIs      []string     `json:"apis" yaml:"apis"`
	Github    GithubConfig `json:"github_config" yaml:"github_config"`
}

// Load validates in and composes the bootstrap configuration. It performs no
// I/O; sourcing happens before this call. Validation failures for every unset
// field are reported together in the returned error.
func Load(in Input) (*Config, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		ProjectID: in.ProjectID,
		Region:    in.Region,
		APIs:      ServiceAPIs(),
		Github: GithubConfig{
			Username: in.GithubUsername,
			PAT:      in.GithubPAT,
		},
	}, nil
}
