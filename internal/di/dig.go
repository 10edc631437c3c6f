// Package di provides a lightweight wrapper around uber's dig dependency injection framework.
// It simplifies container setup and provides type-safe dependency retrieval with generics.
package di

import (
	"github.com/rs/zerolog"
	"github.com/savaki/gcp-bootstrap/internal/config"
	"github.com/savaki/gcp-bootstrap/internal/policy"
	"go.uber.org/dig"
)

// Container defines a dependency injection container based on uber's dig.
// This interface allows for easy testing and mocking of the DI container.
type Container interface {
	// Invoke executes a function, injecting its dependencies from the container.
	Invoke(function any, opts ...dig.InvokeOption) error

	// Provide registers a constructor function in the container.
	Provide(constructor any, opts ...dig.ProvideOption) error

	// Scope creates a scoped sub-container with its own set of values.
	Scope(name string, opts ...dig.ScopeOption) *dig.Scope
}

// MustGet returns an instance constructed via dependency injection or panics.
// This is a convenience function for retrieving a dependency from the container
// when you're certain it exists. If the dependency cannot be resolved, it will panic.
//
// Example:
//
//	cfg := MustGet[*config.Config](container)
func MustGet[T any](container Container) (want T) {
	callback := func(got T) {
		want = got
	}
	if err := container.Invoke(callback); err != nil {
		panic(err)
	}
	return want
}

// New creates a new dependency injection container around the given logger.
// Bootstrap input is read from the TF_VAR_* environment variables unless
// overridden with WithInput. Constructors are lazy, so nothing is validated
// until a *config.Config is actually requested from the container.
//
// Example:
//
//	container, err := New(logger,
//	    WithProviders(
//	        func(cfg *config.Config) *Planner { return &Planner{Config: cfg} },
//	    ),
//	)
func New(logger zerolog.Logger, opts ...Option) (Container, error) {
	// Build options
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Create dig container
	container := dig.New()
	if err := container.Provide(func() zerolog.Logger { return logger }); err != nil {
		return nil, err
	}
	if err := container.Provide(func() config.Input {
		if o.input != nil {
			return *o.input
		}
		return config.FromEnv()
	}); err != nil {
		return nil, err
	}

	// Register core constructors
	for _, provider := range core {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	// Register all provided constructors
	for _, provider := range o.providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

var core = []any{
	ProvideRunID,
	ProvideContext,
	ProvideConfig,
	policy.NewValidator,
}
