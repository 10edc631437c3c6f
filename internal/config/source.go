package config

import (
	"os"

	"github.com/savaki/gcp-bootstrap/internal/constants"
)

// Source supplies raw variable values by environment variable name.
type Source interface {
	Get(name string) string
}

// EnvSource reads values from the process environment.
type EnvSource struct{}

func (EnvSource) Get(name string) string { return os.Getenv(name) }

// StaticSource is a fixed in-memory Source for tests and for callers that
// resolve values elsewhere.
type StaticSource map[string]string

func (s StaticSource) Get(name string) string { return s[name] }

// FromSource builds an Input by reading each TF_VAR_* name from src. No
// validation happens here; call Load on the result.
func FromSource(src Source) Input {
	return Input{
		ProjectID:      src.Get(constants.EnvProjectID),
		Region:         src.Get(constants.EnvRegion),
		GithubUsername: src.Get(constants.EnvGithubUsername),
		GithubPAT:      Secret(src.Get(constants.EnvGithubPAT)),
		ProjectNumber:  src.Get(constants.EnvProjectNumber),
	}
}

// FromEnv builds an Input from the process environment.
func FromEnv() Input {
	return FromSource(EnvSource{})
}
