/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// CloudFormationClient defines the subset of the AWS SDK client this tool
// uses. It exists so operations can be tested against mock implementations.
type CloudFormationClient interface {
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
	DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error)
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error)
}

// Ensure that the actual CloudFormation client implements our interface
var _ CloudFormationClient = (*cloudformation.Client)(nil)

// Ensure that DefaultCloudFormationOperations implements CloudFormationOperations
var _ CloudFormationOperations = (*DefaultCloudFormationOperations)(nil)

// Ensure that DefaultClientFactory implements ClientFactory
var _ ClientFactory = (*DefaultClientFactory)(nil)

// CloudFormationOperations defines the stack operations this tool issues.
// Each call is a single unretried round trip; remote failures are wrapped,
// never interpreted or classified.
type CloudFormationOperations interface {
	ValidateTemplate(ctx context.Context, templateBody string) (*TemplateValidation, error)
	CreateStack(ctx context.Context, input CreateStackInput) (string, error)
	UpdateStack(ctx context.Context, input UpdateStackInput) (string, error)
	DeleteStack(ctx context.Context, input DeleteStackInput) error
	DescribeStacks(ctx context.Context, stackName string) ([]*Stack, error)
}
