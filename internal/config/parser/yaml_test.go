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

package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathrouter/internal/pathrouter"
)

func TestKoanfFromYaml(t *testing.T) {
	t.Setenv("YAML_TEST_PATTERN", "/users/{uuid}")

	for _, tc := range []struct {
		uc     string
		config []byte
		assert func(t *testing.T, err error, konf *koanf.Koanf)
	}{
		{
			uc: "valid content",
			config: []byte(`
matcher:
  default: none
routes:
  - id: user
    pattern: /users/{uuid}
  - id: post
    pattern: /posts/{id}
`),
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Equal(t, "none", konf.Get("matcher.default"))
				assert.Len(t, konf.Get("routes"), 2)
				assert.Contains(t, konf.Get("routes"), map[string]any{"id": "post", "pattern": "/posts/{id}"})
			},
		},
		{
			uc: "content referencing environment variables",
			config: []byte(`
routes:
  - id: user
    pattern: ${YAML_TEST_PATTERN}
    value: ${YAML_TEST_UNSET_VALUE:-fallback}
`),
			assert: func(t *testing.T, err error, konf *koanf.Koanf) {
				t.Helper()

				require.NoError(t, err)
				assert.Contains(t, konf.Get("routes"),
					map[string]any{"id": "user", "pattern": "/users/{uuid}", "value": "fallback"})
			},
		},
		{
			uc:     "invalid content",
			config: []byte("foobar"),
			assert: func(t *testing.T, err error, _ *koanf.Koanf) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathrouter.ErrConfiguration)
				assert.Contains(t, err.Error(), "failed to load")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			fileName := filepath.Join(t.TempDir(), "config.yaml")

			err := os.WriteFile(fileName, tc.config, 0o600)
			require.NoError(t, err)

			// WHEN
			konf, err := koanfFromYaml(fileName)

			// THEN
			tc.assert(t, err, konf)
		})
	}
}

func TestKoanfFromYamlWithMissingFile(t *testing.T) {
	t.Parallel()

	// WHEN
	_, err := koanfFromYaml(filepath.Join(t.TempDir(), "missing.yaml"))

	// THEN
	require.ErrorIs(t, err, pathrouter.ErrConfiguration)
	require.ErrorIs(t, err, os.ErrNotExist)
}
