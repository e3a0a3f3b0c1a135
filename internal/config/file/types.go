/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package file contains the file-based configuration provider. The types
// here mirror the raw YAML structure before environment resolution and
// inheritance are applied.
package file

// Config represents the raw YAML configuration file structure
type Config struct {
	Project      string                  `yaml:"project"`
	Region       string                  `yaml:"region"`
	StackName    string                  `yaml:"stack_name"`
	Templates    *Templates              `yaml:"templates"`
	Parameters   map[string]string       `yaml:"parameters"`
	Capabilities []string                `yaml:"capabilities"`
	Environments map[string]*Environment `yaml:"environments"`
}

// Templates represents template discovery configuration
type Templates struct {
	Directory string `yaml:"directory"`
}

// Environment represents environment-scoped overrides as they appear in
// YAML. Every field is optional; unset fields inherit from the base scope.
type Environment struct {
	Region       string            `yaml:"region"`
	StackName    string            `yaml:"stack_name"`
	Templates    *Templates        `yaml:"templates"`
	Parameters   map[string]string `yaml:"parameters"`
	Capabilities []string          `yaml:"capabilities"`
}
