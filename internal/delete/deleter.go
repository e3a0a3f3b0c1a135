/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package delete

import (
	"context"
	"fmt"

	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/logging"
	"github.com/sullis/cfnbuild/internal/model"
	"github.com/sullis/cfnbuild/internal/prompt"
)

// Deleter defines the interface for stack deletion operations
type Deleter interface {
	DeleteStack(ctx context.Context, stack *model.Stack) error
}

// StackDeleter implements Deleter using AWS CloudFormation. Remote errors,
// including "stack does not exist", propagate to the caller uninterpreted.
type StackDeleter struct {
	clientFactory aws.ClientFactory
	autoApprove   bool
}

// NewStackDeleter creates a new StackDeleter
func NewStackDeleter(clientFactory aws.ClientFactory) *StackDeleter {
	return &StackDeleter{clientFactory: clientFactory}
}

// SetAutoApprove skips the confirmation prompt when enabled
func (d *StackDeleter) SetAutoApprove(autoApprove bool) {
	d.autoApprove = autoApprove
}

// DeleteStack deletes a CloudFormation stack after confirmation
func (d *StackDeleter) DeleteStack(ctx context.Context, stack *model.Stack) error {
	if !d.autoApprove {
		confirmed, err := prompt.ConfirmDeletion(stack.Name)
		if err != nil {
			return fmt.Errorf("failed to get user confirmation: %w", err)
		}
		if !confirmed {
			fmt.Printf("Deletion of stack %s cancelled\n", stack.Name)
			return nil
		}
	}

	cfnOps, err := d.clientFactory.GetCloudFormationOperations(ctx, stack.Region)
	if err != nil {
		return fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	if err := cfnOps.DeleteStack(ctx, aws.DeleteStackInput{StackName: stack.Name}); err != nil {
		return err
	}

	logging.L().Infof("deletion of stack %s initiated", stack.Name)
	fmt.Printf("Deletion of stack %s initiated\n", stack.Name)
	return nil
}
