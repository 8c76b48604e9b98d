// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package mock provides a testify mock of adapter.Executor.
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/elastic/monitoring-adapter/internal/pkg/es"
)

// MockExecutor implements adapter.Executor
type MockExecutor struct {
	mock.Mock
}

func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

func (m *MockExecutor) Execute(ctx context.Context, q *es.Query) (*es.Response, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*es.Response), args.Error(1)
}
