/*
Copyright © 2025 cfnbuild contributors
SPDX-License-Identifier: Apache-2.0
*/
package validate

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockValidator implements Validator for testing
type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateTemplates(ctx context.Context, environment string) error {
	args := m.Called(ctx, environment)
	return args.Error(0)
}
