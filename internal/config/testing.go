/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) LoadSettings(ctx context.Context, environment string) (*Settings, error) {
	args := m.Called(ctx, environment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Settings), args.Error(1)
}

func (m *MockProvider) ListEnvironments() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProvider) Validate() error {
	args := m.Called()
	return args.Error(0)
}
