/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/config"
	"github.com/sullis/cfnbuild/internal/config/file"
	"github.com/sullis/cfnbuild/internal/model"
	"github.com/sullis/cfnbuild/internal/resolve"
)

var (
	// clientFactory can be injected for testing
	clientFactory aws.ClientFactory
)

// createResolver creates a configuration provider and resolver
func createResolver(configFile string) (config.Provider, resolve.Resolver) {
	provider := file.NewProvider(configFile)
	resolver := resolve.NewStackResolver(provider)
	return provider, resolver
}

// getClientFactory returns the client factory, creating a default one if none is set
func getClientFactory() aws.ClientFactory {
	if clientFactory != nil {
		return clientFactory
	}

	factory, err := aws.NewClientFactory(context.Background())
	if err != nil {
		// This shouldn't happen in normal operation, but if it does,
		// we'll handle it in the command execution
		panic(fmt.Sprintf("failed to create AWS client factory: %v", err))
	}

	clientFactory = factory
	return factory
}

// SetClientFactory allows injection of a client factory (for testing)
func SetClientFactory(f aws.ClientFactory) {
	clientFactory = f
}

// environmentArg returns the optional environment argument, "" selecting
// the base scope
func environmentArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// resolveTargetStack resolves the stack the command operates on. Operations
// that submit a template body need it loaded and processed; the others
// resolve from settings alone.
func resolveTargetStack(ctx context.Context, cmd *cobra.Command, args []string, withTemplate bool) (*model.Stack, error) {
	configFile, _ := cmd.Flags().GetString("config")
	environment := environmentArg(args)

	_, resolver := createResolver(configFile)

	var stack *model.Stack
	var err error
	if withTemplate {
		stack, err = resolver.ResolveStack(ctx, environment)
	} else {
		stack, err = resolver.ResolveStackInfo(ctx, environment)
	}
	if err != nil {
		return nil, err
	}

	if region, _ := cmd.Flags().GetString("region"); region != "" {
		stack.Region = region
	}

	return stack, nil
}
