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

package match

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathrouter/cmd/flags"
	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/routing"
	"github.com/dadrus/pathrouter/internal/x/testsupport"
)

func decodeResolutions(t *testing.T, out string) []routing.Resolution {
	t.Helper()

	var resolutions []routing.Resolution

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		var res routing.Resolution

		require.NoError(t, json.Unmarshal(scanner.Bytes(), &res))

		resolutions = append(resolutions, res)
	}

	return resolutions
}

func TestMatchPaths(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		args   []string
		paths  []string
		assert func(t *testing.T, out string, err error)
	}{
		{
			uc:    "matching and not matching paths",
			args:  []string{"--" + flags.Config, "test_data/config.yaml"},
			paths: []string{"/posts/42", "/comments/1"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.NoError(t, err)

				resolutions := decodeResolutions(t, out)
				require.Len(t, resolutions, 2)

				assert.True(t, resolutions[0].Matched)
				assert.Equal(t, "post", resolutions[0].Route)
				assert.Equal(t, "post-handler", resolutions[0].Value)
				require.Len(t, resolutions[0].Parameters, 1)
				assert.Equal(t, "id", resolutions[0].Parameters[0].Name)
				assert.Equal(t, "42", resolutions[0].Parameters[0].Value)

				assert.False(t, resolutions[1].Matched)
				assert.Empty(t, resolutions[1].Route)
				assert.Equal(t, "fallback", resolutions[1].Value)
				assert.Empty(t, resolutions[1].Parameters)
			},
		},
		{
			uc:    "strict mode with not matching path",
			args:  []string{"--" + flags.Config, "test_data/config.yaml", "--" + strictFlag},
			paths: []string{"/users/1", "/comments/1"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathrouter.ErrNoRouteFound)
				assert.Contains(t, err.Error(), "1 of 2 paths")
				assert.Len(t, decodeResolutions(t, out), 2)
			},
		},
		{
			uc:    "strict mode with matching paths only",
			args:  []string{"--" + flags.Config, "test_data/config.yaml", "--" + strictFlag},
			paths: []string{"/users/1"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.NoError(t, err)
				assert.Len(t, decodeResolutions(t, out), 1)
			},
		},
		{
			uc:    "not existing config",
			args:  []string{"--" + flags.Config, "test_data/missing.yaml"},
			paths: []string{"/users/1"},
			assert: func(t *testing.T, out string, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathrouter.ErrConfiguration)
				assert.Empty(t, out)
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			cmd := NewMatchCommand()
			flags.RegisterGlobalFlags(cmd)

			buf := &bytes.Buffer{}
			cmd.SetOut(buf)

			require.NoError(t, cmd.ParseFlags(tc.args))

			// WHEN
			err := matchPaths(cmd, tc.paths)

			// THEN
			tc.assert(t, buf.String(), err)
		})
	}
}

// nolint: paralleltest
func TestRunMatchCommand(t *testing.T) {
	// GIVEN
	exit, err := testsupport.PatchOSExit(t, func(int) {})
	require.NoError(t, err)

	cmd := NewMatchCommand()
	flags.RegisterGlobalFlags(cmd)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, cmd.ParseFlags([]string{"--" + flags.Config, "test_data/config.yaml", "--" + strictFlag}))

	// WHEN
	cmd.Run(cmd, []string{"/unknown/path"})

	// THEN
	assert.True(t, exit.Called)
	assert.Equal(t, 1, exit.Code)
	assert.Contains(t, buf.String(), `"matched":false`)
	assert.Contains(t, buf.String(), "did not match any route")
}
