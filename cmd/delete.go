/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"

	deletepkg "github.com/sullis/cfnbuild/internal/delete"
	"github.com/spf13/cobra"
)

var (
	// deleter can be injected for testing
	deleter deletepkg.Deleter
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete [environment]",
	Short: "Delete a CloudFormation stack",
	Long: `Delete the CloudFormation stack for an environment.

The command prompts for confirmation before issuing the delete request;
pass --yes to skip the prompt. Remote errors, including attempts to delete
a stack that does not exist, are reported as-is.

CAUTION: Deletion is destructive and cannot be undone.

Examples:
  cfnbuild delete staging           # Delete with confirmation
  cfnbuild delete staging --yes     # Delete without prompting`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stack, err := resolveTargetStack(ctx, cmd, args, false)
		if err != nil {
			return fmt.Errorf("failed to resolve stack: %w", err)
		}

		autoApprove, _ := cmd.Flags().GetBool("yes")
		return getDeleter(autoApprove).DeleteStack(ctx, stack)
	},
}

// getDeleter returns the deleter instance, creating a default one if none is set
func getDeleter(autoApprove bool) deletepkg.Deleter {
	if deleter != nil {
		return deleter
	}

	d := deletepkg.NewStackDeleter(getClientFactory())
	d.SetAutoApprove(autoApprove)
	deleter = d
	return d
}

// SetDeleter allows injection of a deleter (for testing)
func SetDeleter(d deletepkg.Deleter) {
	deleter = d
}

func init() {
	deleteCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
