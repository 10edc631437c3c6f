package policy

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
	"github.com/savaki/gcp-bootstrap/internal/config"
)

//go:embed bootstrap.rego
var policyContent string

type Validator struct {
	allow      rego.PreparedEvalQuery
	violations rego.PreparedEvalQuery
}

type ValidationResult struct {
	Allowed    bool     `json:"allowed"`
	Violations []string `json:"violations,omitempty"`
}

func NewValidator() (*Validator, error) {
	ctx := context.Background()

	allow, err := rego.New(
		rego.Query("data.bootstrap.allow"),
		rego.Module("bootstrap.rego", policyContent),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare policy query: %w", err)
	}

	violations, err := rego.New(
		rego.Query("data.bootstrap.violations"),
		rego.Module("bootstrap.rego", policyContent),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare violations query: %w", err)
	}

	return &Validator{
		allow:      allow,
		violations: violations,
	}, nil
}

// Validate applies the bootstrap guardrails to the raw input variables.
// The PAT is never part of the policy input.
func (v *Validator) Validate(ctx context.Context, in config.Input) (*ValidationResult, error) {
	input := map[string]interface{}{
		"project_id":      in.ProjectID,
		"region":          in.Region,
		"github_username": in.GithubUsername,
		"project_number":  in.ProjectNumber,
	}

	results, err := v.allow.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 {
		return &ValidationResult{
			Allowed:    false,
			Violations: []string{"policy evaluation returned no results"},
		}, nil
	}

	allowed, ok := results[0].Expressions[0].Value.(bool)
	if !ok {
		return &ValidationResult{
			Allowed:    false,
			Violations: []string{"policy evaluation returned non-boolean result"},
		}, nil
	}

	result := &ValidationResult{
		Allowed: allowed,
	}

	// If not allowed, get violations
	if !allowed {
		violations, err := v.getViolations(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to get violations: %w", err)
		}
		result.Violations = violations
	}

	return result, nil
}

func (v *Validator) getViolations(ctx context.Context, input map[string]interface{}) ([]string, error) {
	results, err := v.violations.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate violations: %w", err)
	}

	if len(results) == 0 {
		return []string{"unknown policy violation"}, nil
	}

	violationsInterface := results[0].Expressions[0].Value
	if violationsInterface == nil {
		return []string{"unknown policy violation"}, nil
	}

	// Convert the violations to strings
	var violations []string
	switch v := violationsInterface.(type) {
	case []interface{}:
		for _, violation := range v {
			if str, ok := violation.(string); ok {
				violations = append(violations, str)
			}
		}
	case map[string]interface{}:
		// Handle set type from Rego
		for violation := range v {
			violations = append(violations, violation)
		}
	}

	if len(violations) == 0 {
		return []string{"policy validation failed but no specific violations found"}, nil
	}

	return violations, nil
}
