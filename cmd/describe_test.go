/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/describe"
	"github.com/sullis/cfnbuild/internal/model"
)

func TestDescribeCommand(t *testing.T) {
	resetSeams(t)
	configPath := writeTestConfig(t)

	mockDescriber := &describe.MockDescriber{}
	mockDescriber.On("DescribeStack", mock.Anything, mock.MatchedBy(func(stack *model.Stack) bool {
		return stack.Name == "staging-myapp" && stack.TemplateBody == ""
	})).Return([]*aws.Stack{
		{Name: "staging-myapp", Status: aws.StackStatusCreateComplete},
	}, nil)
	SetDescriber(mockDescriber)

	err := executeCommand("describe", "staging", "-c", configPath)

	require.NoError(t, err)
	mockDescriber.AssertExpectations(t)
}

func TestDescribeCommand_RemoteFailure(t *testing.T) {
	resetSeams(t)
	configPath := writeTestConfig(t)

	mockDescriber := &describe.MockDescriber{}
	mockDescriber.On("DescribeStack", mock.Anything, mock.Anything).
		Return(nil, errors.New("ValidationError: Stack with id staging-myapp does not exist"))
	SetDescriber(mockDescriber)

	err := executeCommand("describe", "staging", "-c", configPath)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestDescribeCommand_UnknownEnvironment(t *testing.T) {
	resetSeams(t)
	configPath := writeTestConfig(t)

	mockDescriber := &describe.MockDescriber{}
	SetDescriber(mockDescriber)

	err := executeCommand("describe", "qa", "-c", configPath)

	require.Error(t, err)
	mockDescriber.AssertNotCalled(t, "DescribeStack", mock.Anything, mock.Anything)
}
