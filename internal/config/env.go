// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Environment overrides applied by Resolve.
const (
	EnvWorkers  = "GRIDPATROL_WORKERS"
	EnvLogLevel = "GRIDPATROL_LOG_LEVEL"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

var refPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-[^}]*|:\?[^}]*)?\}`)

// Expand replaces ${VAR}, ${VAR:-default} and ${VAR:?message} references.
// Unset plain references expand to the empty string; unset required
// references fail with ErrMissingEnvVar.
func Expand(input string, lookup LookupFunc) (string, error) {
	var missing []string
	out := refPattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := refPattern.FindStringSubmatch(match)
		name, mod := sub[1], sub[2]
		value, ok := lookup(name)
		switch {
		case strings.HasPrefix(mod, ":-"):
			if !ok || value == "" {
				return mod[2:]
			}
		case strings.HasPrefix(mod, ":?"):
			if !ok || value == "" {
				missing = append(missing, fmt.Sprintf("%s: %s", name, mod[2:]))
				return match
			}
		}
		return value
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: %s", ErrMissingEnvVar, strings.Join(missing, ", "))
	}
	return out, nil
}

// ApplyEnv overlays GRIDPATROL_* variables onto cfg.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvWorkers, v, err)
		}
		cfg.Search.Workers = n
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	return nil
}
