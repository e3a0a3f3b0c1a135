/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package deploy

import (
	"context"
	"fmt"
	"sort"

	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/logging"
	"github.com/sullis/cfnbuild/internal/model"
)

// Deployer defines the stack create and update operations
type Deployer interface {
	// CreateStack submits a create request and returns the new stack's identifier
	CreateStack(ctx context.Context, stack *model.Stack) (string, error)

	// UpdateStack submits an update request and returns the stack's identifier
	UpdateStack(ctx context.Context, stack *model.Stack) (string, error)
}

// StackDeployer implements Deployer using AWS CloudFormation
type StackDeployer struct {
	clientFactory aws.ClientFactory
}

// NewStackDeployer creates a new StackDeployer
func NewStackDeployer(clientFactory aws.ClientFactory) *StackDeployer {
	return &StackDeployer{clientFactory: clientFactory}
}

// CreateStack creates the stack and returns its identifier
func (d *StackDeployer) CreateStack(ctx context.Context, stack *model.Stack) (string, error) {
	cfnOps, err := d.clientFactory.GetCloudFormationOperations(ctx, stack.Region)
	if err != nil {
		return "", fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	id, err := cfnOps.CreateStack(ctx, aws.CreateStackInput{
		StackName:    stack.Name,
		TemplateBody: stack.TemplateBody,
		Parameters:   apiParameters(stack.Parameters),
		Capabilities: stack.Capabilities,
	})
	if err != nil {
		return "", err
	}

	logging.L().Infof("created stack %s: %s", stack.Name, id)
	return id, nil
}

// UpdateStack updates the stack and returns its identifier
func (d *StackDeployer) UpdateStack(ctx context.Context, stack *model.Stack) (string, error) {
	cfnOps, err := d.clientFactory.GetCloudFormationOperations(ctx, stack.Region)
	if err != nil {
		return "", fmt.Errorf("failed to get CloudFormation operations: %w", err)
	}

	id, err := cfnOps.UpdateStack(ctx, aws.UpdateStackInput{
		StackName:    stack.Name,
		TemplateBody: stack.TemplateBody,
		Parameters:   apiParameters(stack.Parameters),
		Capabilities: stack.Capabilities,
	})
	if err != nil {
		return "", err
	}

	logging.L().Infof("updated stack %s: %s", stack.Name, id)
	return id, nil
}

// apiParameters converts the parameter mapping into the API's request
// parameter list, sorted by key for deterministic requests
func apiParameters(parameters map[string]string) []aws.Parameter {
	keys := make([]string, 0, len(parameters))
	for key := range parameters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := make([]aws.Parameter, 0, len(keys))
	for _, key := range keys {
		params = append(params, aws.Parameter{Key: key, Value: parameters[key]})
	}
	return params
}
