/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/config"
	"github.com/sullis/cfnbuild/internal/logging"
	"github.com/sullis/cfnbuild/internal/resolve"
)

// Validator orchestrates template validation
type Validator interface {
	// ValidateTemplates validates every discovered template for an
	// environment. Each file is attempted regardless of earlier failures;
	// a *BatchError is returned iff any file failed.
	ValidateTemplates(ctx context.Context, environment string) error
}

// Result is the per-file outcome of a validation run
type Result struct {
	Path          string
	Valid         bool
	ParameterKeys []string
	Error         string
}

// BatchError aggregates per-file validation failures. It carries every
// result, so successful files remain reportable after a failed batch.
type BatchError struct {
	Results []Result
}

func (e *BatchError) Error() string {
	failed := e.Failed()
	names := make([]string, len(failed))
	for i, r := range failed {
		names[i] = r.Path
	}
	return fmt.Sprintf("validation failed for %d of %d template(s): %s",
		len(failed), len(e.Results), strings.Join(names, ", "))
}

// Failed returns the results for files that failed validation
func (e *BatchError) Failed() []Result {
	var failed []Result
	for _, r := range e.Results {
		if !r.Valid {
			failed = append(failed, r)
		}
	}
	return failed
}

var (
	validMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("✓")
	invalidMark = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("✗")
)

// TemplateValidator implements Validator against the CloudFormation API
type TemplateValidator struct {
	clientFactory  aws.ClientFactory
	configProvider config.Provider
	resolver       resolve.Resolver
	regionOverride string
}

// NewTemplateValidator creates a new validator
func NewTemplateValidator(
	clientFactory aws.ClientFactory,
	configProvider config.Provider,
	resolver resolve.Resolver,
) *TemplateValidator {
	return &TemplateValidator{
		clientFactory:  clientFactory,
		configProvider: configProvider,
		resolver:       resolver,
	}
}

// SetRegionOverride forces validation against a region regardless of the
// resolved settings
func (v *TemplateValidator) SetRegionOverride(region string) {
	v.regionOverride = region
}

// ValidateTemplates submits every discovered template to the CloudFormation
// validation endpoint, best-effort per file
func (v *TemplateValidator) ValidateTemplates(ctx context.Context, environment string) error {
	settings, err := v.configProvider.LoadSettings(ctx, environment)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	files, err := v.resolver.ResolveTemplates(ctx, environment)
	if err != nil {
		return fmt.Errorf("failed to resolve templates: %w", err)
	}

	if len(files) == 0 {
		fmt.Printf("No template files found in %s\n", settings.TemplateDir)
		return nil
	}

	region := settings.Region
	if v.regionOverride != "" {
		region = v.regionOverride
	}

	cfnOps, err := v.clientFactory.GetCloudFormationOperations(ctx, region)
	if err != nil {
		return fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	log := logging.L()
	results := make([]Result, 0, len(files))
	hasErrors := false

	for _, file := range files {
		validation, err := cfnOps.ValidateTemplate(ctx, file.Body)
		if err != nil {
			log.Errorf("validation failed for %s: %v", file.Path, err)
			results = append(results, Result{
				Path:  file.Path,
				Valid: false,
				Error: err.Error(),
			})
			hasErrors = true
			continue
		}

		log.Debugf("validation result for %s: %+v", file.Path, validation)
		log.Infof("template %s is valid", file.Path)
		results = append(results, Result{
			Path:          file.Path,
			Valid:         true,
			ParameterKeys: validation.ParameterKeys,
		})
	}

	v.printSummary(results)

	if hasErrors {
		return &BatchError{Results: results}
	}
	return nil
}

// printSummary prints the per-file validation outcome
func (v *TemplateValidator) printSummary(results []Result) {
	validCount := 0
	invalidCount := 0

	fmt.Println()
	for _, result := range results {
		if result.Valid {
			validCount++
			fmt.Printf("%s %s\n", validMark, result.Path)
			if len(result.ParameterKeys) > 0 {
				fmt.Printf("  Parameters: %s\n", strings.Join(result.ParameterKeys, ", "))
			}
		} else {
			invalidCount++
			fmt.Printf("%s %s\n", invalidMark, result.Path)
			fmt.Printf("  Error: %s\n", result.Error)
		}
	}

	fmt.Printf("\nTotal: %d  Valid: %d  Invalid: %d\n", len(results), validCount, invalidCount)
}
