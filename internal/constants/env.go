package constants

// TFVarPrefix is the prefix the provisioning engine uses to read its input
// variables from the environment.
const TFVarPrefix = "TF_VAR_"

// Input variable names as the provisioning engine declares them
const (
	// VarProjectID is the id of the project being bootstrapped
	VarProjectID = "project_id"

	// VarRegion is the primary region for regional resources
	VarRegion = "region"

	// VarGithubUsername is the GHCR username for the image pull secret
	VarGithubUsername = "github_username"

	// VarGithubPAT is the GHCR personal access token for the image pull secret
	VarGithubPAT = "github_pat"

	// VarProjectNumber is the numeric project number used in IAM bindings
	VarProjectNumber = "project_number"
)

// Environment variable names that supply each input variable
const (
	EnvProjectID      = TFVarPrefix + VarProjectID
	EnvRegion         = TFVarPrefix + VarRegion
	EnvGithubUsername = TFVarPrefix + VarGithubUsername
	EnvGithubPAT      = TFVarPrefix + VarGithubPAT
	EnvProjectNumber  = TFVarPrefix + VarProjectNumber
)
