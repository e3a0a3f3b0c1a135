/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// ClientFactory creates region-bound CloudFormation operations
type ClientFactory interface {
	// GetCloudFormationOperations returns CloudFormation operations bound to
	// the given region. Fails before any remote call when region is empty.
	GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error)

	// GetBaseConfig returns the shared AWS configuration (for debugging)
	GetBaseConfig() aws.Config
}

// DefaultClientFactory implements ClientFactory with credentials shared
// across environments. Each call builds a fresh client: environments get
// their own client even when their regions coincide.
type DefaultClientFactory struct {
	baseConfig aws.Config
}

// NewClientFactory creates a client factory, loading credentials from the
// default chain once per invocation
func NewClientFactory(ctx context.Context) (ClientFactory, error) {
	baseConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &DefaultClientFactory{baseConfig: baseConfig}, nil
}

// GetCloudFormationOperations returns CloudFormation operations for the specified region
func (f *DefaultClientFactory) GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error) {
	if region == "" {
		return nil, fmt.Errorf("region must be configured before a CloudFormation client can be created")
	}

	regionConfig := f.baseConfig.Copy()
	regionConfig.Region = region

	cfnClient := cloudformation.NewFromConfig(regionConfig)
	return NewCloudFormationOperationsWithClient(cfnClient), nil
}

// GetBaseConfig returns the shared AWS configuration
func (f *DefaultClientFactory) GetBaseConfig() aws.Config {
	return f.baseConfig
}
