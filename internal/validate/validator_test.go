/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/config"
	"github.com/sullis/cfnbuild/internal/resolve"
	"github.com/sullis/cfnbuild/internal/template"
)

func newValidatorFixture(t *testing.T, files []template.File) (*TemplateValidator, *aws.MockCloudFormationOperations) {
	t.Helper()

	mockProvider := &config.MockProvider{}
	mockProvider.On("LoadSettings", mock.Anything, "staging").Return(&config.Settings{
		Project:     "myapp",
		Environment: "staging",
		StackName:   "staging-myapp",
		Region:      "us-east-1",
		TemplateDir: "/work/templates",
	}, nil)

	mockResolver := &resolve.MockResolver{}
	mockResolver.On("ResolveTemplates", mock.Anything, "staging").Return(files, nil)

	factory, ops := aws.NewMockClientFactoryForRegion("us-east-1")
	return NewTemplateValidator(factory, mockProvider, mockResolver), ops
}

func TestValidateTemplates_AllValid(t *testing.T) {
	validator, ops := newValidatorFixture(t, []template.File{
		{Path: "a.template", Body: "body-a"},
		{Path: "b.template", Body: "body-b"},
	})

	ops.On("ValidateTemplate", mock.Anything, "body-a").Return(&aws.TemplateValidation{
		ParameterKeys: []string{"Env"},
	}, nil)
	ops.On("ValidateTemplate", mock.Anything, "body-b").Return(&aws.TemplateValidation{}, nil)

	err := validator.ValidateTemplates(context.Background(), "staging")

	require.NoError(t, err)
	ops.AssertExpectations(t)
}

func TestValidateTemplates_EveryFileAttempted(t *testing.T) {
	validator, ops := newValidatorFixture(t, []template.File{
		{Path: "a.template", Body: "body-a"},
		{Path: "b.template", Body: "body-b"},
		{Path: "c.template", Body: "body-c"},
	})

	// The first file fails but the remaining files are still validated
	ops.On("ValidateTemplate", mock.Anything, "body-a").Return(nil, errors.New("Template format error"))
	ops.On("ValidateTemplate", mock.Anything, "body-b").Return(&aws.TemplateValidation{}, nil)
	ops.On("ValidateTemplate", mock.Anything, "body-c").Return(&aws.TemplateValidation{}, nil)

	err := validator.ValidateTemplates(context.Background(), "staging")

	require.Error(t, err)
	ops.AssertNumberOfCalls(t, "ValidateTemplate", 3)

	var batchErr *BatchError
	require.True(t, errors.As(err, &batchErr))
	assert.Len(t, batchErr.Results, 3)
	require.Len(t, batchErr.Failed(), 1)
	assert.Equal(t, "a.template", batchErr.Failed()[0].Path)
	assert.Contains(t, batchErr.Error(), "validation failed for 1 of 3 template(s)")
	assert.Contains(t, batchErr.Error(), "a.template")
}

func TestValidateTemplates_SuccessfulResultsCarryParameterKeys(t *testing.T) {
	validator, ops := newValidatorFixture(t, []template.File{
		{Path: "a.template", Body: "body-a"},
		{Path: "b.template", Body: "body-b"},
	})

	ops.On("ValidateTemplate", mock.Anything, "body-a").Return(nil, errors.New("unsupported structure"))
	ops.On("ValidateTemplate", mock.Anything, "body-b").Return(&aws.TemplateValidation{
		ParameterKeys: []string{"Env", "InstanceType"},
	}, nil)

	err := validator.ValidateTemplates(context.Background(), "staging")

	var batchErr *BatchError
	require.True(t, errors.As(err, &batchErr))

	// Successful files remain reportable after a failed batch
	require.Len(t, batchErr.Results, 2)
	assert.False(t, batchErr.Results[0].Valid)
	assert.Contains(t, batchErr.Results[0].Error, "unsupported structure")
	assert.True(t, batchErr.Results[1].Valid)
	assert.Equal(t, []string{"Env", "InstanceType"}, batchErr.Results[1].ParameterKeys)
}

func TestValidateTemplates_NoFiles(t *testing.T) {
	validator, ops := newValidatorFixture(t, []template.File{})

	err := validator.ValidateTemplates(context.Background(), "staging")

	// An empty template directory is not a failure, and no client is used
	require.NoError(t, err)
	ops.AssertNotCalled(t, "ValidateTemplate", mock.Anything, mock.Anything)
}

func TestValidateTemplates_RegionOverride(t *testing.T) {
	mockProvider := &config.MockProvider{}
	mockProvider.On("LoadSettings", mock.Anything, "staging").Return(&config.Settings{
		Project:     "myapp",
		Environment: "staging",
		Region:      "us-east-1",
		TemplateDir: "/work/templates",
	}, nil)

	mockResolver := &resolve.MockResolver{}
	mockResolver.On("ResolveTemplates", mock.Anything, "staging").Return([]template.File{
		{Path: "a.template", Body: "body-a"},
	}, nil)

	factory, ops := aws.NewMockClientFactoryForRegion("eu-west-1")
	ops.On("ValidateTemplate", mock.Anything, "body-a").Return(&aws.TemplateValidation{}, nil)

	validator := NewTemplateValidator(factory, mockProvider, mockResolver)
	validator.SetRegionOverride("eu-west-1")

	err := validator.ValidateTemplates(context.Background(), "staging")

	require.NoError(t, err)
	factory.AssertCalled(t, "GetCloudFormationOperations", mock.Anything, "eu-west-1")
}

func TestValidateTemplates_ClientFactoryFailure(t *testing.T) {
	mockProvider := &config.MockProvider{}
	mockProvider.On("LoadSettings", mock.Anything, "staging").Return(&config.Settings{
		Project:     "myapp",
		Environment: "staging",
		TemplateDir: "/work/templates",
	}, nil)

	mockResolver := &resolve.MockResolver{}
	mockResolver.On("ResolveTemplates", mock.Anything, "staging").Return([]template.File{
		{Path: "a.template", Body: "body-a"},
	}, nil)

	factory := &aws.MockClientFactory{}
	factory.On("GetCloudFormationOperations", mock.Anything, "").
		Return(nil, errors.New("region must be configured before a CloudFormation client can be created"))

	validator := NewTemplateValidator(factory, mockProvider, mockResolver)

	err := validator.ValidateTemplates(context.Background(), "staging")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "region must be configured")
}

func TestValidateTemplates_ResolveFailure(t *testing.T) {
	mockProvider := &config.MockProvider{}
	mockProvider.On("LoadSettings", mock.Anything, "staging").Return(&config.Settings{
		Project:     "myapp",
		Environment: "staging",
		TemplateDir: "/work/templates",
	}, nil)

	mockResolver := &resolve.MockResolver{}
	mockResolver.On("ResolveTemplates", mock.Anything, "staging").
		Return(nil, errors.New("failed to list templates"))

	factory := &aws.MockClientFactory{}
	validator := NewTemplateValidator(factory, mockProvider, mockResolver)

	err := validator.ValidateTemplates(context.Background(), "staging")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve templates")
}
