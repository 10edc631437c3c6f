package utils

import (
	"maps"
	"slices"
)

// EnvVar is a single environment variable assignment.
type EnvVar struct {
	Key   string
	Value string
}

// MergeEnv merges multiple variable maps with later maps having higher precedence
// Returns the merged assignments sorted by key for deterministic output
func MergeEnv(pp ...map[string]string) []EnvVar {
	m := map[string]string{}
	for _, p := range pp {
		maps.Copy(m, p)
	}

	var results []EnvVar
	for _, k := range slices.Sorted(maps.Keys(m)) {
		results = append(results, EnvVar{Key: k, Value: m[k]})
	}

	return results
}
