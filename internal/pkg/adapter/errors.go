// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package adapter

import (
	"fmt"
)

// ValidationError is bad caller input, reported before any query is built.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ExecutorError wraps a failure returned by the Executor. The cause is kept
// as is; backend details stay reachable with errors.As.
type ExecutorError struct {
	Message string
	Cause   error
}

func (e *ExecutorError) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *ExecutorError) Unwrap() error {
	return e.Cause
}
