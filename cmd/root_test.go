/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplateBody = `{"AWSTemplateFormatVersion": "2010-09-09", "Resources": {}}`

// writeTestConfig lays out a project directory with a config file and one
// template, returning the config file path
func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "templates", "app.template"),
		[]byte(testTemplateBody), 0o644))

	config := `project: myapp
region: us-east-1
templates:
  directory: templates
parameters:
  Env: base
capabilities:
  - CAPABILITY_IAM
environments:
  staging:
    parameters:
      Env: staging
`
	path := filepath.Join(dir, "cfnbuild.yml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))
	return path
}

// resetSeams clears injected collaborators and sticky flag values after a test
func resetSeams(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		SetValidator(nil)
		SetDeployer(nil)
		SetDeleter(nil)
		SetDescriber(nil)
		SetClientFactory(nil)
		_ = rootCmd.PersistentFlags().Set("region", "")
		_ = deleteCmd.Flags().Set("yes", "false")
	})
}

// executeCommand runs the root command with the given arguments
func executeCommand(args ...string) error {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// findCommand locates a direct subcommand by name
func findCommand(t *testing.T, name string) *cobra.Command {
	t.Helper()
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return c
		}
	}
	t.Fatalf("command %q not registered", name)
	return nil
}

func TestRootCommand(t *testing.T) {
	assert.Equal(t, "cfnbuild", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.True(t, rootCmd.SilenceUsage)
	assert.True(t, rootCmd.SilenceErrors)
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	for _, name := range []string{"validate", "create", "update", "delete", "describe", "status"} {
		cmd := findCommand(t, name)
		assert.NotEmpty(t, cmd.Short, "command %s has no short description", name)
	}
}

func TestRootCommand_GlobalFlags(t *testing.T) {
	configFlag := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "cfnbuild.yml", configFlag.DefValue)

	regionFlag := rootCmd.PersistentFlags().Lookup("region")
	require.NotNil(t, regionFlag)
	assert.Equal(t, "", regionFlag.DefValue)

	verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
}

func TestEnvironmentArg(t *testing.T) {
	assert.Equal(t, "", environmentArg(nil))
	assert.Equal(t, "", environmentArg([]string{}))
	assert.Equal(t, "staging", environmentArg([]string{"staging"}))
}
