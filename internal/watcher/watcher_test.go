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
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathrouter/internal/pathrouter"
)

func TestWatcherLifecycle(t *testing.T) {
	t.Parallel()

	// GIVEN
	cw, err := newWatcher(zerolog.Nop())
	require.NoError(t, err)

	cw.start(context.TODO())
	defer cw.stop(context.TODO())

	testDir := t.TempDir()
	f1, err := os.Create(filepath.Join(testDir, "file1"))
	require.NoError(t, err)

	f2, err := os.Create(filepath.Join(testDir, "file2"))
	require.NoError(t, err)

	f3, err := os.Create(filepath.Join(testDir, "file3"))
	require.NoError(t, err)

	cl1 := NewChangeListenerMock(t)
	cl2 := NewChangeListenerMock(t)
	cl3 := NewChangeListenerMock(t)
	cl4 := NewChangeListenerMock(t)

	cl1.EXPECT().OnChanged(mock.Anything).Times(2)
	cl2.EXPECT().OnChanged(mock.Anything).Once()
	cl3.EXPECT().OnChanged(mock.Anything).Once()

	require.NoError(t, cw.Add(f1.Name(), cl1))
	require.NoError(t, cw.Add(f2.Name(), cl2))
	require.NoError(t, cw.Add(f2.Name(), cl3))
	require.NoError(t, cw.Add(f3.Name(), cl4))

	// WHEN
	_, err = f1.WriteString("foo")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	_, err = f1.WriteString("bar")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	_, err = f2.WriteString("baz")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	// THEN
	cl1.AssertExpectations(t)
	cl2.AssertExpectations(t)
	cl3.AssertExpectations(t)
	cl4.AssertExpectations(t)
}

func TestWatcherAddNotExistingFile(t *testing.T) {
	t.Parallel()

	// GIVEN
	cw, err := newWatcher(zerolog.Nop())
	require.NoError(t, err)

	defer cw.stop(context.TODO())

	// WHEN
	err = cw.Add(filepath.Join(t.TempDir(), "missing"), NewChangeListenerMock(t))

	// THEN
	require.Error(t, err)
	require.ErrorIs(t, err, pathrouter.ErrInternal)
	require.Contains(t, err.Error(), "listener registration")
}

func TestNoopWatcher(t *testing.T) {
	t.Parallel()

	var w Watcher = &NoopWatcher{}

	require.NoError(t, w.Add("foo", NewChangeListenerMock(t)))
}
