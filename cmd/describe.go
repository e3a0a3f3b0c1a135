/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sullis/cfnbuild/internal/describe"
)

var (
	// describer can be injected for testing
	describer describe.Describer
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe [environment]",
	Short: "Display detailed information about a CloudFormation stack",
	Long: `Display the full description of the deployed stack for an environment,
including status, parameters, outputs, and tags.

Examples:
  cfnbuild describe             # Describe the base-scope stack
  cfnbuild describe production  # Describe the production stack`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stack, err := resolveTargetStack(ctx, cmd, args, false)
		if err != nil {
			return fmt.Errorf("failed to resolve stack: %w", err)
		}

		stacks, err := getDescriber().DescribeStack(ctx, stack)
		if err != nil {
			return err
		}

		for _, s := range stacks {
			fmt.Print(describe.FormatStackDescription(s))
		}
		return nil
	},
}

// getDescriber returns the describer instance, creating a default one if none is set
func getDescriber() describe.Describer {
	if describer != nil {
		return describer
	}

	describer = describe.NewStackDescriber(getClientFactory())
	return describer
}

// SetDescriber allows injection of a describer (for testing)
func SetDescriber(d describe.Describer) {
	describer = d
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
