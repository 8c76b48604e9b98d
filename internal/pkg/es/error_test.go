// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package es

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorTranslation(t *testing.T) {
	testCases := []struct {
		Status          int
		Name            string
		Payload         []byte
		IsErrorExpected bool
		ExpectedType    string
		ExpectedReason  string
	}{
		{200, "ok error", []byte("this is ignored"), false, "", ""},
		{500, "nil error", nil, true, "", ""},
		{500, "empty error", []byte{}, true, "", ""},
		{
			500,
			"unknown error",
			[]byte(`"this will be unknown"`),
			true,
			unknownErrorType,
			"this will be unknown",
		},
		{
			404,
			"index not found error",
			[]byte("this will have index not found included"),
			true,
			indexNotFoundErrorType,
			"this will have index not found included",
		},
		{
			400,
			"detailed error",
			[]byte(`{"type":"parsing_exception","reason":"unknown key [colapse]","caused_by":{"type":"x_content_parse_exception","reason":"bad"}}`),
			true,
			parsingErrorType,
			"unknown key [colapse]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			err := TranslateError(tc.Status, tc.Payload)
			if !tc.IsErrorExpected {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)

			var esErr *ErrElastic
			require.True(t, errors.As(err, &esErr))
			assert.Equal(t, tc.Status, esErr.Status)
			assert.Equal(t, tc.ExpectedType, esErr.Type)
			assert.Equal(t, tc.ExpectedReason, esErr.Reason)
		})
	}
}

func TestErrElasticUnwrap(t *testing.T) {
	err := TranslateError(404, []byte(`{"type":"index_not_found_exception","reason":"no such index [.monitoring-es-*]"}`))
	assert.ErrorIs(t, err, ErrIndexNotFound)

	err = TranslateError(400, []byte(`{"type":"parsing_exception","reason":"bad"}`))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, "elastic fail 400: parsing_exception: bad", err.Error())
}
