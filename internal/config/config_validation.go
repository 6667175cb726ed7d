// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults have been applied, so empty fields here mean a source supplied
// an explicitly unusable value.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.AuthToken) == "" {
		return ErrInvalidAppConfigs
	}

	if !strings.Contains(cfg.Server.HTTPAddress, ":") {
		return ErrInvalidServerConfigs
	}

	return nil
}
