/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package describe

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sullis/cfnbuild/internal/aws"
	"github.com/sullis/cfnbuild/internal/model"
)

// MockDescriber implements Describer for testing
type MockDescriber struct {
	mock.Mock
}

func (m *MockDescriber) DescribeStack(ctx context.Context, stack *model.Stack) ([]*aws.Stack, error) {
	args := m.Called(ctx, stack)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*aws.Stack), args.Error(1)
}
