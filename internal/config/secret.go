package config

import "encoding/json"

// Redacted replaces sensitive values wherever they would otherwise appear in
// output.
const Redacted = "***REDACTED***"

// Secret holds a sensitive string such as a personal access token. fmt, json,
// and yaml rendering all emit the redaction placeholder instead of the value,
// so a Secret cannot leak through logs or diagnostic output. Reveal returns
// the raw value for the hand-off to the provisioning engine.
type Secret string

// Reveal returns the underlying value.
func (s Secret) Reveal() string { return string(s) }

// String implements fmt.Stringer. Empty secrets render empty; anything else
// renders as the placeholder.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return Redacted
}

// GoString keeps the value out of %#v output.
func (s Secret) GoString() string { return "config.Secret(" + s.String() + ")" }

// MarshalJSON writes the placeholder instead of the value.
func (s Secret) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// MarshalYAML writes the placeholder instead of the value.
func (s Secret) MarshalYAML() (interface{}, error) { return s.String(), nil }
