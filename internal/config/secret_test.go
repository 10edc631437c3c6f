package config

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestSecret_Redacts(t *testing.T) {
	s := Secret("ghp_supersecret")

	assert.Equal(t, Redacted, s.String())
	assert.Equal(t, Redacted, fmt.Sprintf("%v", s))
	assert.Equal(t, Redacted, fmt.Sprintf("%s", s))
	assert.NotContains(t, fmt.Sprintf("%#v", s), "ghp_supersecret")

	out, err := json.Marshal(s)
	assert.NoError(t, err)
	assert.Equal(t, `"`+Redacted+`"`, string(out))

	y, err := yaml.Marshal(s)
	assert.NoError(t, err)
	assert.NotContains(t, string(y), "ghp_supersecret")
	assert.Contains(t, string(y), Redacted)
}

func TestSecret_Reveal(t *testing.T) {
	assert.Equal(t, "ghp_supersecret", Secret("ghp_supersecret").Reveal())
	assert.Equal(t, "", Secret("").Reveal())
}

func TestSecret_EmptyRendersEmpty(t *testing.T) {
	var s Secret

	assert.Equal(t, "", s.String())

	out, err := json.Marshal(s)
	assert.NoError(t, err)
	assert.Equal(t, `""`, string(out))
}

func TestConfig_MarshalRedactsPAT(t *testing.T) {
	cfg, err := Load(Input{
		ProjectID:      "tasky-demo-project",
		Region:         "us-central1",
		GithubUsername: "alice",
		GithubPAT:      "ghp_supersecret",
		ProjectNumber:  "123456789012",
	})
	assert.NoError(t, err)

	out, err := json.Marshal(cfg)
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"username":"alice"`)
	assert.Contains(t, string(out), Redacted)
	assert.NotContains(t, string(out), "ghp_supersecret")

	y, err := yaml.Marshal(cfg)
	assert.NoError(t, err)
	assert.NotContains(t, string(y), "ghp_supersecret")
}
