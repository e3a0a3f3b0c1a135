/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/sullis/cfnbuild/internal/config/file"
	"github.com/sullis/cfnbuild/internal/logging"
	"github.com/sullis/cfnbuild/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cfnbuild",
	Short: "Drive AWS CloudFormation stack lifecycles from your project's build configuration",
	Long: `cfnbuild binds local template files and per-environment parameters to named
deployment environments and executes stack operations against CloudFormation.

• Template discovery and validation against the CloudFormation API
• Per-environment parameter, capability, and region settings
• Stack create, update, delete, describe, and status operations

Settings are declared once in ` + file.DefaultFileName + ` and layered per
environment: environment values override base values, which override
global defaults.`,
	Version:       version.Short(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.Configure(verbose)
	},
}

// Execute runs the root command through fang. Called by main.main().
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", file.DefaultFileName, "configuration file")
	rootCmd.PersistentFlags().String("region", "", "AWS region (overrides resolved settings)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
