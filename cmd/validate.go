/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/sullis/cfnbuild/internal/validate"
)

var (
	// validator can be injected for testing
	validator validate.Validator
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [environment]",
	Short: "Validate CloudFormation templates",
	Long: `Validate every template in the template directory using the AWS
CloudFormation API.

Each template is submitted independently; a failure in one file does not
prevent validation of the others. After all files are attempted, the
command fails if any template was invalid, listing each failure.

Examples:
  cfnbuild validate             # Validate with base-scope settings
  cfnbuild validate staging     # Validate with staging settings`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		configFile, _ := cmd.Flags().GetString("config")
		region, _ := cmd.Flags().GetString("region")

		v := getValidator(configFile, region)
		return v.ValidateTemplates(ctx, environmentArg(args))
	},
}

// getValidator returns the validator instance, creating a default one if none is set
func getValidator(configFile, regionOverride string) validate.Validator {
	if validator != nil {
		return validator
	}

	provider, resolver := createResolver(configFile)
	v := validate.NewTemplateValidator(getClientFactory(), provider, resolver)
	if regionOverride != "" {
		v.SetRegionOverride(regionOverride)
	}
	validator = v
	return v
}

// SetValidator allows injection of a validator (for testing)
func SetValidator(v validate.Validator) {
	validator = v
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
