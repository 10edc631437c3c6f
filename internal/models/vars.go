package models

type TerraformVars struct {
	ProjectID      string `json:"project_id"`      // Target project id
	Region         string `json:"region"`          // Primary region for regional resources
	GithubUsername string `json:"github_username"` // GHCR username
	GithubPAT      string `json:"github_pat"`      // GHCR personal access token
	ProjectNumber  string `json:"project_number"`  // Numeric project number
}
