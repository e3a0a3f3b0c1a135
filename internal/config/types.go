/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"context"
	"strings"
)

// Provider defines the interface for loading and resolving deployment settings
type Provider interface {
	// LoadSettings returns fully resolved settings for an environment.
	// An empty environment name selects the base scope.
	LoadSettings(ctx context.Context, environment string) (*Settings, error)

	// ListEnvironments returns all environment names declared in the configuration
	ListEnvironments() ([]string, error)

	// Validate checks the configuration for consistency and errors
	Validate() error
}

// Settings is the effective configuration for one environment, with all
// override and default rules already applied
type Settings struct {
	Project      string
	Environment  string // "" for the base scope
	StackName    string
	Region       string
	TemplateDir  string
	Parameters   map[string]string
	Capabilities []string
}

// DeriveStackName returns the stack name for a project in an environment:
// "<environment>-<project>" for named environments, the normalised project
// name alone for the base scope.
func DeriveStackName(environment, project string) string {
	name := NormalizeName(project)
	if environment == "" {
		return name
	}
	return environment + "-" + name
}

// NormalizeName lowercases a project name and collapses any run of
// characters outside [a-z0-9-] into a single hyphen.
func NormalizeName(name string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
