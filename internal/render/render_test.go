package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/savaki/gcp-bootstrap/internal/config"
)

func testInput() config.Input {
	return config.Input{
		ProjectID:      "tasky-demo-project",
		Region:         "us-central1",
		GithubUsername: "alice",
		GithubPAT:      "ghp_supersecret",
		ProjectNumber:  "123456789012",
	}
}

func TestVars(t *testing.T) {
	vars := Vars(testInput())

	if vars.ProjectID != "tasky-demo-project" {
		t.Errorf("ProjectID = %v, want tasky-demo-project", vars.ProjectID)
	}
	if vars.GithubPAT != "ghp_supersecret" {
		t.Errorf("GithubPAT = %v, want the revealed value", vars.GithubPAT)
	}
}

func TestTfvars(t *testing.T) {
	out, err := Tfvars(testInput())
	if err != nil {
		t.Fatalf("Tfvars() unexpected error: %v", err)
	}

	var got map[string]string
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Tfvars() produced invalid JSON: %v", err)
	}

	want := map[string]string{
		"project_id":      "tasky-demo-project",
		"region":          "us-central1",
		"github_username": "alice",
		"github_pat":      "ghp_supersecret",
		"project_number":  "123456789012",
	}
	if len(got) != len(want) {
		t.Fatalf("Tfvars() keys = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("Tfvars() %s = %v, want %v", k, got[k], v)
		}
	}

	if !strings.HasSuffix(string(out), "\n") {
		t.Error("Tfvars() output missing trailing newline")
	}
}

func TestEnvExports(t *testing.T) {
	out := string(EnvExports(testInput()))

	wantLines := []string{
		"export TF_VAR_github_pat=ghp_supersecret",
		"export TF_VAR_github_username=alice",
		"export TF_VAR_project_id=tasky-demo-project",
		"export TF_VAR_project_number=123456789012",
		"export TF_VAR_region=us-central1",
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != len(wantLines) {
		t.Fatalf("EnvExports() produced %d lines, want %d:\n%s", len(lines), len(wantLines), out)
	}
	for i, want := range wantLines {
		if lines[i] != want {
			t.Errorf("EnvExports() line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestEnvExports_QuotesSpecialCharacters(t *testing.T) {
	in := testInput()
	in.GithubPAT = "ghp_with space"

	out := string(EnvExports(in))

	if strings.Contains(out, "export TF_VAR_github_pat=ghp_with space") {
		t.Errorf("EnvExports() did not quote the PAT: %s", out)
	}
	if !strings.Contains(out, "export TF_VAR_github_pat='ghp_with space'") {
		t.Errorf("EnvExports() expected single-quoted PAT: %s", out)
	}
}
