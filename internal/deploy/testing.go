/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package deploy

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sullis/cfnbuild/internal/model"
)

// MockDeployer implements Deployer for testing
type MockDeployer struct {
	mock.Mock
}

func (m *MockDeployer) CreateStack(ctx context.Context, stack *model.Stack) (string, error) {
	args := m.Called(ctx, stack)
	return args.String(0), args.Error(1)
}

func (m *MockDeployer) UpdateStack(ctx context.Context, stack *model.Stack) (string, error) {
	args := m.Called(ctx, stack)
	return args.String(0), args.Error(1)
}
