package config

import (
	"errors"
	"fmt"

	"github.com/savaki/gcp-bootstrap/internal/constants"
	apperrors "github.com/savaki/gcp-bootstrap/internal/errors"
)

// ValidationError reports a required input variable that was missing or
// empty. Field is the variable name the provisioning engine declares; EnvVar
// is the environment variable expected to supply it. The message never
// contains input values, so secrets cannot leak through validation output.
type ValidationError struct {
	Field  string
	EnvVar string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required (set %s)", e.Field, e.EnvVar)
}

// Validate checks that every required field is non-empty. Missing and empty
// are the same condition. Failures accumulate in field declaration order so a
// single run reports every unset variable; the returned error matches
// ErrInvalidConfig with errors.Is.
func (in Input) Validate() error {
	var errs []error

	if in.ProjectID == "" {
		errs = append(errs, &ValidationError{Field: constants.VarProjectID, EnvVar: constants.EnvProjectID})
	}
	if in.Region == "" {
		errs = append(errs, &ValidationError{Field: constants.VarRegion, EnvVar: constants.EnvRegion})
	}
	if in.GithubUsername == "" {
		errs = append(errs, &ValidationError{Field: constants.VarGithubUsername, EnvVar: constants.EnvGithubUsername})
	}
	if in.GithubPAT == "" {
		errs = append(errs, &ValidationError{Field: constants.VarGithubPAT, EnvVar: constants.EnvGithubPAT})
	}
	if in.ProjectNumber == "" {
		errs = append(errs, &ValidationError{Field: constants.VarProjectNumber, EnvVar: constants.EnvProjectNumber})
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(apperrors.ErrInvalidConfig, errors.Join(errs...))
}

// ValidationErrors extracts every ValidationError contained in err, in the
// order they were recorded. Returns nil when err carries none.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError

	var visit func(error)
	visit = func(err error) {
		switch e := err.(type) {
		case nil:
		case *ValidationError:
			out = append(out, e)
		case interface{ Unwrap() []error }:
			for _, nested := range e.Unwrap() {
				visit(nested)
			}
		case interface{ Unwrap() error }:
			visit(e.Unwrap())
		}
	}
	visit(err)

	return out
}
