/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/stretchr/testify/mock"
)

// MockClientFactory implements ClientFactory for testing
type MockClientFactory struct {
	mock.Mock
}

func (m *MockClientFactory) GetCloudFormationOperations(ctx context.Context, region string) (CloudFormationOperations, error) {
	args := m.Called(ctx, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(CloudFormationOperations), args.Error(1)
}

func (m *MockClientFactory) GetBaseConfig() aws.Config {
	args := m.Called()
	return args.Get(0).(aws.Config)
}

// NewMockClientFactoryForRegion wires a factory that hands out the returned
// operations mock for the given region
func NewMockClientFactoryForRegion(region string) (*MockClientFactory, *MockCloudFormationOperations) {
	ops := &MockCloudFormationOperations{}
	factory := &MockClientFactory{}
	factory.On("GetCloudFormationOperations", mock.Anything, region).Return(ops, nil)
	return factory, ops
}

// MockCloudFormationOperations implements CloudFormationOperations for testing
type MockCloudFormationOperations struct {
	mock.Mock
}

func (m *MockCloudFormationOperations) ValidateTemplate(ctx context.Context, templateBody string) (*TemplateValidation, error) {
	args := m.Called(ctx, templateBody)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TemplateValidation), args.Error(1)
}

func (m *MockCloudFormationOperations) CreateStack(ctx context.Context, input CreateStackInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCloudFormationOperations) UpdateStack(ctx context.Context, input UpdateStackInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockCloudFormationOperations) DeleteStack(ctx context.Context, input DeleteStackInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockCloudFormationOperations) DescribeStacks(ctx context.Context, stackName string) ([]*Stack, error) {
	args := m.Called(ctx, stackName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Stack), args.Error(1)
}

// MockCloudFormationClient implements the AWS CloudFormation service client interface for testing
type MockCloudFormationClient struct {
	mock.Mock
}

func (m *MockCloudFormationClient) CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.CreateStackOutput), args.Error(1)
}

func (m *MockCloudFormationClient) UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.UpdateStackOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DeleteStack(ctx context.Context, params *cloudformation.DeleteStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DeleteStackOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DeleteStackOutput), args.Error(1)
}

func (m *MockCloudFormationClient) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}

func (m *MockCloudFormationClient) ValidateTemplate(ctx context.Context, params *cloudformation.ValidateTemplateInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ValidateTemplateOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.ValidateTemplateOutput), args.Error(1)
}
