/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update [environment]",
	Short: "Update a CloudFormation stack",
	Long: `Update an existing CloudFormation stack from the default template.

The resolved template body, parameters, and capabilities for the chosen
environment are submitted as an update request. The stack's identifier is
printed on success.

Examples:
  cfnbuild update               # Update the base-scope stack
  cfnbuild update production    # Update the production stack`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stack, err := resolveTargetStack(ctx, cmd, args, true)
		if err != nil {
			return fmt.Errorf("failed to resolve stack: %w", err)
		}

		id, err := getDeployer().UpdateStack(ctx, stack)
		if err != nil {
			return err
		}

		fmt.Println(id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
}
