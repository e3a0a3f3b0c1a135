/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package template

import (
	"github.com/stretchr/testify/mock"
)

// MockLoader implements Loader for testing
type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) List(dir string) ([]File, error) {
	args := m.Called(dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]File), args.Error(1)
}

func (m *MockLoader) Default(dir string) (File, error) {
	args := m.Called(dir)
	return args.Get(0).(File), args.Error(1)
}

// MockProcessor implements Processor for testing
type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Process(body string, variables map[string]interface{}) (string, error) {
	args := m.Called(body, variables)
	return args.String(0), args.Error(1)
}
