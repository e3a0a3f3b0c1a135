/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package describe

import (
	"context"
	"fmt"

	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/model"
)

// Describer defines the interface for retrieving deployed stack information
type Describer interface {
	// DescribeStack fetches every stack matching the resolved stack's name
	DescribeStack(ctx context.Context, stack *model.Stack) ([]*aws.Stack, error)
}

// StackDescriber implements Describer using AWS CloudFormation
type StackDescriber struct {
	clientFactory aws.ClientFactory
}

// NewStackDescriber creates a new StackDescriber
func NewStackDescriber(clientFactory aws.ClientFactory) *StackDescriber {
	return &StackDescriber{clientFactory: clientFactory}
}

// DescribeStack retrieves stack descriptions from AWS
func (d *StackDescriber) DescribeStack(ctx context.Context, stack *model.Stack) ([]*aws.Stack, error) {
	cfnOps, err := d.clientFactory.GetCloudFormationOperations(ctx, stack.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	return cfnOps.DescribeStacks(ctx, stack.Name)
}
