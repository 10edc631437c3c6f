package di

import "github.com/savaki/gcp-bootstrap/internal/config"

// Option is a function that configures the dependency injection container.
type Option func(*options)

// WithInput overrides the bootstrap input registered in the container.
// Without this option, the input is read from the TF_VAR_* environment
// variables when first requested.
func WithInput(in config.Input) Option {
	return func(opts *options) {
		opts.input = &in
	}
}

// WithProviders adds constructor functions to the dependency injection container.
// Each provider should be a constructor function that returns one or more values.
// Providers can declare dependencies as function parameters, which will be
// automatically resolved by the container.
//
// Example:
//
//	WithProviders(
//	    func() *Database { return &Database{} },
//	    func(db *Database) *Service { return &Service{DB: db} },
//	)
func WithProviders(providers ...any) Option {
	return func(opts *options) {
		opts.providers = append(opts.providers, providers...)
	}
}

type options struct {
	input     *config.Input
	providers []any
}
