// Package render turns validated input variables into the artifacts the
// provisioning engine consumes. Output from this package carries real values,
// including revealed secrets; it is the hand-off to the engine, not
// diagnostics.
package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"al.essio.dev/pkg/shellescape"
	"github.com/savaki/gcp-bootstrap/internal/config"
	"github.com/savaki/gcp-bootstrap/internal/constants"
	"github.com/savaki/gcp-bootstrap/internal/models"
	"github.com/savaki/gcp-bootstrap/internal/utils"
)

// Vars converts in to the variable set the provisioning engine declares.
// This is the one place the PAT is revealed.
func Vars(in config.Input) models.TerraformVars {
	return models.TerraformVars{
		ProjectID:      in.ProjectID,
		Region:         in.Region,
		GithubUsername: in.GithubUsername,
		GithubPAT:      in.GithubPAT.Reveal(),
		ProjectNumber:  in.ProjectNumber,
	}
}

// Tfvars renders in as terraform.tfvars.json content.
func Tfvars(in config.Input) ([]byte, error) {
	out, err := json.MarshalIndent(Vars(in), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tfvars: %w", err)
	}
	return append(out, '\n'), nil
}

// EnvExports renders in as shell export statements, one per variable, sorted
// by variable name and quoted for eval.
func EnvExports(in config.Input) []byte {
	vars := Vars(in)

	merged := utils.MergeEnv(map[string]string{
		constants.EnvProjectID:      vars.ProjectID,
		constants.EnvRegion:         vars.Region,
		constants.EnvGithubUsername: vars.GithubUsername,
		constants.EnvGithubPAT:      vars.GithubPAT,
		constants.EnvProjectNumber:  vars.ProjectNumber,
	})

	var b strings.Builder
	for _, v := range merged {
		fmt.Fprintf(&b, "export %s=%s\n", v.Key, shellescape.Quote(v.Value))
	}
	return []byte(b.String())
}
