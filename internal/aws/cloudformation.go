/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
)

// StackStatus represents the status of a CloudFormation stack
type StackStatus string

const (
	StackStatusCreateInProgress         StackStatus = "CREATE_IN_PROGRESS"
	StackStatusCreateComplete           StackStatus = "CREATE_COMPLETE"
	StackStatusCreateFailed             StackStatus = "CREATE_FAILED"
	StackStatusDeleteInProgress         StackStatus = "DELETE_IN_PROGRESS"
	StackStatusDeleteComplete           StackStatus = "DELETE_COMPLETE"
	StackStatusDeleteFailed             StackStatus = "DELETE_FAILED"
	StackStatusUpdateInProgress         StackStatus = "UPDATE_IN_PROGRESS"
	StackStatusUpdateComplete           StackStatus = "UPDATE_COMPLETE"
	StackStatusUpdateFailed             StackStatus = "UPDATE_FAILED"
	StackStatusUpdateRollbackInProgress StackStatus = "UPDATE_ROLLBACK_IN_PROGRESS"
	StackStatusUpdateRollbackComplete   StackStatus = "UPDATE_ROLLBACK_COMPLETE"
	StackStatusUpdateRollbackFailed     StackStatus = "UPDATE_ROLLBACK_FAILED"
	StackStatusRollbackInProgress       StackStatus = "ROLLBACK_IN_PROGRESS"
	StackStatusRollbackComplete         StackStatus = "ROLLBACK_COMPLETE"
	StackStatusRollbackFailed           StackStatus = "ROLLBACK_FAILED"
	StackStatusReviewInProgress         StackStatus = "REVIEW_IN_PROGRESS"
)

// Stack represents a CloudFormation stack with the fields this tool reports
type Stack struct {
	Name         string
	ID           string
	Status       StackStatus
	StatusReason string
	CreatedTime  *time.Time
	UpdatedTime  *time.Time
	Description  string
	Parameters   map[string]string
	Outputs      map[string]string
	Tags         map[string]string
}

// Parameter represents a CloudFormation stack parameter
type Parameter struct {
	Key   string
	Value string
}

// TemplateValidation holds the result of a successful template validation
type TemplateValidation struct {
	Description   string
	ParameterKeys []string
}

// CreateStackInput contains parameters for creating a stack
type CreateStackInput struct {
	StackName    string
	TemplateBody string
	Parameters   []Parameter
	Capabilities []string
}

// UpdateStackInput contains parameters for updating a stack
type UpdateStackInput struct {
	StackName    string
	TemplateBody string
	Parameters   []Parameter
	Capabilities []string
}

// DeleteStackInput contains parameters for deleting a stack
type DeleteStackInput struct {
	StackName string
}

// DefaultCloudFormationOperations provides CloudFormation-specific operations
type DefaultCloudFormationOperations struct {
	client CloudFormationClient
}

// NewCloudFormationOperationsWithClient creates operations with a custom client (for testing)
func NewCloudFormationOperationsWithClient(client CloudFormationClient) *DefaultCloudFormationOperations {
	return &DefaultCloudFormationOperations{
		client: client,
	}
}

// ValidateTemplate validates a template body and returns the parameter keys
// the template declares
func (cf *DefaultCloudFormationOperations) ValidateTemplate(ctx context.Context, templateBody string) (*TemplateValidation, error) {
	result, err := cf.client.ValidateTemplate(ctx, &cloudformation.ValidateTemplateInput{
		TemplateBody: aws.String(templateBody),
	})

	if err != nil {
		return nil, fmt.Errorf("template validation failed: %w", err)
	}

	keys := make([]string, 0, len(result.Parameters))
	for _, param := range result.Parameters {
		keys = append(keys, aws.ToString(param.ParameterKey))
	}

	return &TemplateValidation{
		Description:   aws.ToString(result.Description),
		ParameterKeys: keys,
	}, nil
}

// CreateStack creates a new CloudFormation stack and returns its identifier
func (cf *DefaultCloudFormationOperations) CreateStack(ctx context.Context, input CreateStackInput) (string, error) {
	result, err := cf.client.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(input.StackName),
		TemplateBody: aws.String(input.TemplateBody),
		Parameters:   apiParameters(input.Parameters),
		Capabilities: apiCapabilities(input.Capabilities),
	})

	if err != nil {
		return "", fmt.Errorf("failed to create stack %s: %w", input.StackName, err)
	}

	return aws.ToString(result.StackId), nil
}

// UpdateStack updates an existing CloudFormation stack and returns its identifier
func (cf *DefaultCloudFormationOperations) UpdateStack(ctx context.Context, input UpdateStackInput) (string, error) {
	result, err := cf.client.UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:    aws.String(input.StackName),
		TemplateBody: aws.String(input.TemplateBody),
		Parameters:   apiParameters(input.Parameters),
		Capabilities: apiCapabilities(input.Capabilities),
	})

	if err != nil {
		return "", fmt.Errorf("failed to update stack %s: %w", input.StackName, err)
	}

	return aws.ToString(result.StackId), nil
}

// DeleteStack deletes a CloudFormation stack
func (cf *DefaultCloudFormationOperations) DeleteStack(ctx context.Context, input DeleteStackInput) error {
	_, err := cf.client.DeleteStack(ctx, &cloudformation.DeleteStackInput{
		StackName: aws.String(input.StackName),
	})

	if err != nil {
		return fmt.Errorf("failed to delete stack %s: %w", input.StackName, err)
	}

	return nil
}

// DescribeStacks retrieves every stack matching the given name
func (cf *DefaultCloudFormationOperations) DescribeStacks(ctx context.Context, stackName string) ([]*Stack, error) {
	result, err := cf.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(stackName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to describe stack %s: %w", stackName, err)
	}

	stacks := make([]*Stack, 0, len(result.Stacks))
	for i := range result.Stacks {
		stacks = append(stacks, fromAPIStack(&result.Stacks[i]))
	}

	return stacks, nil
}

// apiParameters converts the parameter list into the API's request type
func apiParameters(parameters []Parameter) []types.Parameter {
	params := make([]types.Parameter, len(parameters))
	for i, p := range parameters {
		params[i] = types.Parameter{
			ParameterKey:   aws.String(p.Key),
			ParameterValue: aws.String(p.Value),
		}
	}
	return params
}

// apiCapabilities converts capability names into the API's request type
func apiCapabilities(capabilities []string) []types.Capability {
	caps := make([]types.Capability, len(capabilities))
	for i, c := range capabilities {
		caps[i] = types.Capability(c)
	}
	return caps
}

// fromAPIStack converts an SDK stack into this tool's representation
func fromAPIStack(cfnStack *types.Stack) *Stack {
	stack := &Stack{
		Name:         aws.ToString(cfnStack.StackName),
		ID:           aws.ToString(cfnStack.StackId),
		Status:       StackStatus(cfnStack.StackStatus),
		StatusReason: aws.ToString(cfnStack.StackStatusReason),
		CreatedTime:  cfnStack.CreationTime,
		UpdatedTime:  cfnStack.LastUpdatedTime,
		Description:  aws.ToString(cfnStack.Description),
		Parameters:   make(map[string]string),
		Outputs:      make(map[string]string),
		Tags:         make(map[string]string),
	}

	for _, param := range cfnStack.Parameters {
		stack.Parameters[aws.ToString(param.ParameterKey)] = aws.ToString(param.ParameterValue)
	}

	for _, output := range cfnStack.Outputs {
		stack.Outputs[aws.ToString(output.OutputKey)] = aws.ToString(output.OutputValue)
	}

	for _, tag := range cfnStack.Tags {
		stack.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}

	return stack
}
