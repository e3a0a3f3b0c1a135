/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sullis/cfnbuild/internal/deploy"
)

var (
	// deployer can be injected for testing
	deployer deploy.Deployer
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create [environment]",
	Short: "Create a CloudFormation stack",
	Long: `Create a new CloudFormation stack from the default template.

The default template is the first *.template file discovered in the
template directory. Its body is submitted together with the resolved
parameters and capabilities for the chosen environment. The new stack's
identifier is printed on success.

Examples:
  cfnbuild create               # Create the base-scope stack
  cfnbuild create staging       # Create the staging stack`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		stack, err := resolveTargetStack(ctx, cmd, args, true)
		if err != nil {
			return fmt.Errorf("failed to resolve stack: %w", err)
		}

		id, err := getDeployer().CreateStack(ctx, stack)
		if err != nil {
			return err
		}

		fmt.Println(id)
		return nil
	},
}

// getDeployer returns the deployer instance, creating a default one if none is set
func getDeployer() deploy.Deployer {
	if deployer != nil {
		return deployer
	}

	deployer = deploy.NewStackDeployer(getClientFactory())
	return deployer
}

// SetDeployer allows injection of a deployer (for testing)
func SetDeployer(d deploy.Deployer) {
	deployer = d
}

func init() {
	rootCmd.AddCommand(createCmd)
}
