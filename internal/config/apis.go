package config

import "slices"

// serviceAPIs lists the service APIs enabled on every bootstrapped project,
// in enablement order. Compute comes first; the remaining services depend on
// its service agent.
var serviceAPIs = [7]string{
	"compute.googleapis.com",
	"container.googleapis.com",
	"storage.googleapis.com",
	"iam.googleapis.com",
	"cloudresourcemanager.googleapis.com",
	"logging.googleapis.com",
	"monitoring.googleapis.com",
}

// ServiceAPIs returns the fixed, ordered API list. The result is a copy;
// callers cannot alter the canonical order through it.
func ServiceAPIs() []string {
	return slices.Clone(serviceAPIs[:])
}
