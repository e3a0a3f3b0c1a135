/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package resolve

import (
	"context"
	"fmt"

	"github.com/sullis/cfnbuild/internal/config"
	"github.com/sullis/cfnbuild/internal/model"
	"github.com/sullis/cfnbuild/internal/template"
)

// Resolver composes configuration and templates into deployment-ready stacks
type Resolver interface {
	// ResolveStack resolves the stack for an environment, loading and
	// processing the default template
	ResolveStack(ctx context.Context, environment string) (*model.Stack, error)

	// ResolveStackInfo resolves the stack for an environment without
	// touching the template directory. Used by operations that only need
	// the stack name and region.
	ResolveStackInfo(ctx context.Context, environment string) (*model.Stack, error)

	// ResolveTemplates returns every discovered template for an
	// environment, processed and ready for validation
	ResolveTemplates(ctx context.Context, environment string) ([]template.File, error)
}

// StackResolver implements Resolver
type StackResolver struct {
	configProvider config.Provider
	loader         template.Loader
	processor      template.Processor
}

// NewStackResolver creates a resolver with the default loader and processor
func NewStackResolver(configProvider config.Provider) *StackResolver {
	return &StackResolver{
		configProvider: configProvider,
		loader:         template.NewDirLoader(),
		processor:      template.NewSprigProcessor(),
	}
}

// SetLoader allows injecting a custom template loader (for testing)
func (r *StackResolver) SetLoader(loader template.Loader) {
	r.loader = loader
}

// SetProcessor allows injecting a custom template processor (for testing)
func (r *StackResolver) SetProcessor(processor template.Processor) {
	r.processor = processor
}

// ResolveStack resolves settings, loads the default template, and processes it
func (r *StackResolver) ResolveStack(ctx context.Context, environment string) (*model.Stack, error) {
	settings, err := r.configProvider.LoadSettings(ctx, environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	file, err := r.loader.Default(settings.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to locate default template: %w", err)
	}

	body, err := r.processor.Process(file.Body, templateVariables(settings))
	if err != nil {
		return nil, fmt.Errorf("failed to process template %s: %w", file.Path, err)
	}

	stack := stackFromSettings(settings)
	stack.TemplateBody = body
	return stack, nil
}

// ResolveStackInfo resolves settings into a stack without a template body
func (r *StackResolver) ResolveStackInfo(ctx context.Context, environment string) (*model.Stack, error) {
	settings, err := r.configProvider.LoadSettings(ctx, environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return stackFromSettings(settings), nil
}

// ResolveTemplates loads and processes every template in the environment's
// template directory
func (r *StackResolver) ResolveTemplates(ctx context.Context, environment string) ([]template.File, error) {
	settings, err := r.configProvider.LoadSettings(ctx, environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	files, err := r.loader.List(settings.TemplateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}

	processed := make([]template.File, 0, len(files))
	for _, file := range files {
		body, err := r.processor.Process(file.Body, templateVariables(settings))
		if err != nil {
			return nil, fmt.Errorf("failed to process template %s: %w", file.Path, err)
		}
		processed = append(processed, template.File{Path: file.Path, Body: body})
	}

	return processed, nil
}

// stackFromSettings copies resolved settings into a stack value
func stackFromSettings(settings *config.Settings) *model.Stack {
	parameters := make(map[string]string, len(settings.Parameters))
	for k, v := range settings.Parameters {
		parameters[k] = v
	}

	capabilities := make([]string, len(settings.Capabilities))
	copy(capabilities, settings.Capabilities)

	return &model.Stack{
		Name:         settings.StackName,
		Environment:  settings.Environment,
		Region:       settings.Region,
		Parameters:   parameters,
		Capabilities: capabilities,
	}
}

// templateVariables exposes resolved settings to template preprocessing
func templateVariables(settings *config.Settings) map[string]interface{} {
	return map[string]interface{}{
		"Project":     settings.Project,
		"Environment": settings.Environment,
		"StackName":   settings.StackName,
		"Region":      settings.Region,
		"Parameters":  settings.Parameters,
	}
}
