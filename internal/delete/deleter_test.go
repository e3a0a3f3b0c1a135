/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package delete

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/model"
	"github.com/sullis/cfnbuild/internal/prompt"
)

type stubPrompter struct {
	confirm bool
	err     error
	calls   int
}

func (s *stubPrompter) ConfirmDeletion(stackName string) (bool, error) {
	s.calls++
	return s.confirm, s.err
}

func setPrompter(t *testing.T, p prompt.Prompter) {
	t.Helper()
	prompt.SetPrompter(p)
	t.Cleanup(func() { prompt.SetPrompter(prompt.NewStdinPrompter()) })
}

func stagingStack() *model.Stack {
	return &model.Stack{
		Name:        "staging-myapp",
		Environment: "staging",
		Region:      "us-east-1",
	}
}

func TestDeleteStack_Confirmed(t *testing.T) {
	setPrompter(t, &stubPrompter{confirm: true})

	factory, ops := aws.NewMockClientFactoryForRegion("us-east-1")
	ops.On("DeleteStack", mock.Anything, aws.DeleteStackInput{StackName: "staging-myapp"}).Return(nil)

	deleter := NewStackDeleter(factory)
	err := deleter.DeleteStack(context.Background(), stagingStack())

	require.NoError(t, err)
	ops.AssertExpectations(t)
}

func TestDeleteStack_Declined(t *testing.T) {
	prompter := &stubPrompter{confirm: false}
	setPrompter(t, prompter)

	factory := &aws.MockClientFactory{}
	deleter := NewStackDeleter(factory)

	err := deleter.DeleteStack(context.Background(), stagingStack())

	// Declining is not an error and no remote call is made
	require.NoError(t, err)
	assert.Equal(t, 1, prompter.calls)
	factory.AssertNotCalled(t, "GetCloudFormationOperations", mock.Anything, mock.Anything)
}

func TestDeleteStack_AutoApproveSkipsPrompt(t *testing.T) {
	prompter := &stubPrompter{confirm: false}
	setPrompter(t, prompter)

	factory, ops := aws.NewMockClientFactoryForRegion("us-east-1")
	ops.On("DeleteStack", mock.Anything, mock.Anything).Return(nil)

	deleter := NewStackDeleter(factory)
	deleter.SetAutoApprove(true)

	err := deleter.DeleteStack(context.Background(), stagingStack())

	require.NoError(t, err)
	assert.Equal(t, 0, prompter.calls)
	ops.AssertExpectations(t)
}

func TestDeleteStack_PromptFailure(t *testing.T) {
	setPrompter(t, &stubPrompter{err: errors.New("input closed")})

	factory := &aws.MockClientFactory{}
	deleter := NewStackDeleter(factory)

	err := deleter.DeleteStack(context.Background(), stagingStack())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get user confirmation")
	factory.AssertNotCalled(t, "GetCloudFormationOperations", mock.Anything, mock.Anything)
}

func TestDeleteStack_StackDoesNotExist(t *testing.T) {
	setPrompter(t, &stubPrompter{confirm: true})

	factory, ops := aws.NewMockClientFactoryForRegion("us-east-1")
	apiError := errors.New("ValidationError: Stack with id staging-myapp does not exist")
	ops.On("DeleteStack", mock.Anything, mock.Anything).Return(apiError)

	deleter := NewStackDeleter(factory)
	err := deleter.DeleteStack(context.Background(), stagingStack())

	// The remote error propagates uninterpreted
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apiError))
}

func TestDeleteStack_MissingRegion(t *testing.T) {
	setPrompter(t, &stubPrompter{confirm: true})

	factory := &aws.MockClientFactory{}
	factory.On("GetCloudFormationOperations", mock.Anything, "").
		Return(nil, errors.New("region must be configured before a CloudFormation client can be created"))

	deleter := NewStackDeleter(factory)
	stack := stagingStack()
	stack.Region = ""

	err := deleter.DeleteStack(context.Background(), stack)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "region must be configured")
}
