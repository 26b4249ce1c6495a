// Copyright 2022-2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package errorchain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathrouter/internal/x/errorchain"
)

var (
	errTest1 = errors.New("test error 1")
	errTest2 = errors.New("test error 2")
)

type testError struct{ reason string }

func (e *testError) Error() string { return e.reason }

func TestErrorChainNew(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.New(errTest1)

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error(), err.Error())
}

func TestErrorChainNewWithFormattedMessage(t *testing.T) {
	t.Parallel()

	// WHEN
	err := errorchain.NewWithMessagef(errTest1, "%s%s", "foo", "bar")

	// THEN
	require.ErrorIs(t, err, errTest1)
	assert.Equal(t, errTest1.Error()+": foobar", err.Error())
}

func TestErrorChainCausedBy(t *testing.T) {
	t.Parallel()

	// GIVEN
	cause := &testError{reason: "broken"}

	// WHEN
	err := errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2).CausedBy(cause)

	// THEN
	require.ErrorIs(t, err, errTest1)
	require.ErrorIs(t, err, errTest2)
	assert.Equal(t, "test error 1: foo: test error 2: broken", err.Error())
	assert.Equal(t, []error{errTest1, errTest2, cause}, err.Errors())

	var te *testError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "broken", te.reason)
}

func TestErrorChainWrappedByFmt(t *testing.T) {
	t.Parallel()

	// WHEN
	err := fmt.Errorf("outer: %w", errorchain.New(errTest1).CausedBy(errTest2))

	// THEN
	require.ErrorIs(t, err, errTest1)
	require.ErrorIs(t, err, errTest2)
}

func TestErrorChainJSONMarshal(t *testing.T) {
	t.Parallel()

	// GIVEN
	err := errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2)

	// WHEN
	res, mErr := err.MarshalJSON()

	// THEN
	require.NoError(t, mErr)
	assert.Equal(t, "testError1", err.Code())
	assert.JSONEq(t, `{"code":"testError1","message":"foo","causes":["test error 2"]}`, string(res))
}
