// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment through the `env` and
// `envPrefix` tags of [StructuredConfig]. Comma-separated origins are
// trimmed, so "a, b" and "a,b" are the same list.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	cfg.Server.AllowedOrigins = trimList(cfg.Server.AllowedOrigins)
	return nil
}

// trimList drops blank items and surrounding spaces; nil stays nil so that
// mergo keeps lower-priority values.
func trimList(items []string) []string {
	if items == nil {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
