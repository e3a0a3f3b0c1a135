/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package delete

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/sullis/cfnbuild/internal/model"
)

// MockDeleter implements Deleter for testing
type MockDeleter struct {
	mock.Mock
}

func (m *MockDeleter) DeleteStack(ctx context.Context, stack *model.Stack) error {
	args := m.Called(ctx, stack)
	return args.Error(0)
}
