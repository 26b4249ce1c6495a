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

package watcher

import (
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

type ChangeListenerMock struct {
	mock.Mock
}

type ChangeListenerMock_Expecter struct { // nolint: revive, stylecheck
	mock *mock.Mock
}

func (_m *ChangeListenerMock) EXPECT() *ChangeListenerMock_Expecter {
	return &ChangeListenerMock_Expecter{mock: &_m.Mock}
}

func (_m *ChangeListenerMock) OnChanged(logger zerolog.Logger) {
	_m.Called(logger)
}

type ChangeListenerMock_OnChanged_Call struct { // nolint: revive, stylecheck
	*mock.Call
}

func (_e *ChangeListenerMock_Expecter) OnChanged(logger any) *ChangeListenerMock_OnChanged_Call {
	return &ChangeListenerMock_OnChanged_Call{Call: _e.mock.On("OnChanged", logger)}
}

func NewChangeListenerMock(t interface {
	mock.TestingT
	Cleanup(fn func())
},
) *ChangeListenerMock {
	m := &ChangeListenerMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
