/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package resolve

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sullis/cfnbuild/internal/model"
	"github.com/sullis/cfnbuild/internal/template"
)

// MockResolver implements Resolver for testing
type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) ResolveStack(ctx context.Context, environment string) (*model.Stack, error) {
	args := m.Called(ctx, environment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stack), args.Error(1)
}

func (m *MockResolver) ResolveStackInfo(ctx context.Context, environment string) (*model.Stack, error) {
	args := m.Called(ctx, environment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stack), args.Error(1)
}

func (m *MockResolver) ResolveTemplates(ctx context.Context, environment string) ([]template.File, error) {
	args := m.Called(ctx, environment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]template.File), args.Error(1)
}
