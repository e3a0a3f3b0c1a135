/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/sullis/cfnbuild/internal/config"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the configuration file looked up when --config is not given
	DefaultFileName = "cfnbuild.yml"

	// DefaultTemplateDir is where templates are discovered unless configured otherwise
	DefaultTemplateDir = "src/main/aws"

	// regionEnvVar supplies the default region when no region setting is present
	regionEnvVar = "AWS_DEFAULT_REGION"
)

// Provider implements config.Provider by reading a YAML file. The raw
// configuration is loaded lazily on first access; resolved settings are
// cached per environment for the rest of the invocation.
type Provider struct {
	filename  string
	rawConfig *Config
	resolved  map[string]*config.Settings
}

// NewProvider creates a file-based Provider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
		resolved: make(map[string]*config.Settings),
	}
}

// LoadSettings resolves settings for the requested environment by layering
// global defaults, base-scope values, and environment overrides
func (fp *Provider) LoadSettings(ctx context.Context, environment string) (*config.Settings, error) {
	if settings, ok := fp.resolved[environment]; ok {
		return settings, nil
	}

	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	if fp.rawConfig.Project == "" {
		return nil, fmt.Errorf("config file %s does not declare a project name", fp.filename)
	}

	var override *Environment
	if environment != "" {
		var ok bool
		override, ok = fp.rawConfig.Environments[environment]
		if !ok {
			return nil, fmt.Errorf("environment %q not found in %s", environment, fp.filename)
		}
		if override == nil {
			override = &Environment{}
		}
	}

	settings := &config.Settings{
		Project:      fp.rawConfig.Project,
		Environment:  environment,
		StackName:    fp.resolveStackName(environment, override),
		Region:       fp.resolveRegion(override),
		TemplateDir:  fp.resolveTemplateDir(override),
		Parameters:   fp.resolveParameters(override),
		Capabilities: fp.resolveCapabilities(override),
	}

	fp.resolved[environment] = settings
	return settings, nil
}

// ListEnvironments returns all environment names declared in the configuration
func (fp *Provider) ListEnvironments() ([]string, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	environments := make([]string, 0, len(fp.rawConfig.Environments))
	for name := range fp.rawConfig.Environments {
		environments = append(environments, name)
	}
	sort.Strings(environments)

	return environments, nil
}

// Validate checks the configuration for consistency and errors
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	if fp.rawConfig.Project == "" {
		return fmt.Errorf("config file %s does not declare a project name", fp.filename)
	}

	for name := range fp.rawConfig.Environments {
		if name == "" {
			return fmt.Errorf("config file %s declares an environment with an empty name", fp.filename)
		}
	}

	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil
	}

	data, err := os.ReadFile(fp.filename)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// resolveStackName applies the naming rules: an explicit override wins,
// otherwise the name is derived from the environment and project name
func (fp *Provider) resolveStackName(environment string, override *Environment) string {
	if override != nil && override.StackName != "" {
		return override.StackName
	}
	if fp.rawConfig.StackName != "" {
		return fp.rawConfig.StackName
	}
	return config.DeriveStackName(environment, fp.rawConfig.Project)
}

// resolveRegion layers environment override, base setting, and the
// AWS_DEFAULT_REGION environment variable
func (fp *Provider) resolveRegion(override *Environment) string {
	if override != nil && override.Region != "" {
		return override.Region
	}
	if fp.rawConfig.Region != "" {
		return fp.rawConfig.Region
	}
	return os.Getenv(regionEnvVar)
}

// resolveTemplateDir returns the template directory, resolved relative to
// the config file's directory when not absolute
func (fp *Provider) resolveTemplateDir(override *Environment) string {
	dir := DefaultTemplateDir
	if fp.rawConfig.Templates != nil && fp.rawConfig.Templates.Directory != "" {
		dir = fp.rawConfig.Templates.Directory
	}
	if override != nil && override.Templates != nil && override.Templates.Directory != "" {
		dir = override.Templates.Directory
	}

	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(filepath.Dir(fp.filename), dir)
}

// resolveParameters merges base parameters with environment overrides,
// override wins per key
func (fp *Provider) resolveParameters(override *Environment) map[string]string {
	merged := make(map[string]string, len(fp.rawConfig.Parameters))
	for k, v := range fp.rawConfig.Parameters {
		merged[k] = v
	}
	if override != nil {
		for k, v := range override.Parameters {
			merged[k] = v
		}
	}
	return merged
}

// resolveCapabilities replaces the base capability list wholesale when the
// environment declares its own
func (fp *Provider) resolveCapabilities(override *Environment) []string {
	source := fp.rawConfig.Capabilities
	if override != nil && override.Capabilities != nil {
		source = override.Capabilities
	}
	if source == nil {
		return nil
	}

	capabilities := make([]string, len(source))
	copy(capabilities, source)
	return capabilities
}
