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

	"github.com/sullis/cfnbuild/internal/validate"
)

func TestValidateCommand(t *testing.T) {
	resetSeams(t)
	configPath := writeTestConfig(t)

	mockValidator := &validate.MockValidator{}
	mockValidator.On("ValidateTemplates", mock.Anything, "staging").Return(nil)
	SetValidator(mockValidator)

	err := executeCommand("validate", "staging", "-c", configPath)

	require.NoError(t, err)
	mockValidator.AssertExpectations(t)
}

func TestValidateCommand_BaseScope(t *testing.T) {
	resetSeams(t)
	configPath := writeTestConfig(t)

	mockValidator := &validate.MockValidator{}
	mockValidator.On("ValidateTemplates", mock.Anything, "").Return(nil)
	SetValidator(mockValidator)

	err := executeCommand("validate", "-c", configPath)

	require.NoError(t, err)
	mockValidator.AssertExpectations(t)
}

func TestValidateCommand_BatchFailure(t *testing.T) {
	resetSeams(t)
	configPath := writeTestConfig(t)

	batchErr := &validate.BatchError{Results: []validate.Result{
		{Path: "a.template", Valid: false, Error: "Template format error"},
		{Path: "b.template", Valid: true},
	}}
	mockValidator := &validate.MockValidator{}
	mockValidator.On("ValidateTemplates", mock.Anything, "staging").Return(batchErr)
	SetValidator(mockValidator)

	err := executeCommand("validate", "staging", "-c", configPath)

	require.Error(t, err)
	var got *validate.BatchError
	require.True(t, errors.As(err, &got))
	assert.Contains(t, err.Error(), "a.template")
}

func TestValidateCommand_TooManyArgs(t *testing.T) {
	resetSeams(t)

	err := executeCommand("validate", "staging", "extra")

	assert.Error(t, err)
}
