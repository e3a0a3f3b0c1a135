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

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status [environment]",
	Short: "Display the status of a CloudFormation stack",
	Long: `Display just the status and status reason of the deployed stack for an
environment.

Examples:
  cfnbuild status               # Status of the base-scope stack
  cfnbuild status staging       # Status of the staging stack`,
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
			fmt.Print(describe.FormatStackStatus(s))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
