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

package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dadrus/pathrouter/internal/pathrouter"
)

func TestModuleProvidesCollectorAndGatherer(t *testing.T) {
	t.Parallel()

	var (
		collector *Collector
		gatherer  prometheus.Gatherer
	)

	app := fxtest.New(t, Module, fx.Populate(&collector, &gatherer))
	app.RequireStart()
	defer app.RequireStop()

	collector.ResolutionObserved(false)

	families, err := gatherer.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}

	assert.Contains(t, names, "pathrouter_resolutions_total")
	assert.Contains(t, names, "go_goroutines")
}

func TestWriteToTextfile(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		path   func(t *testing.T) string
		assert func(t *testing.T, path string, err error)
	}{
		{
			uc: "successful",
			path: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "pathrouter.prom")
			},
			assert: func(t *testing.T, path string, err error) {
				t.Helper()

				require.NoError(t, err)

				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Contains(t, string(data), `pathrouter_resolutions_total{result="matched"} 1`)
			},
		},
		{
			uc: "not existing directory",
			path: func(t *testing.T) string {
				t.Helper()

				return filepath.Join(t.TempDir(), "missing", "pathrouter.prom")
			},
			assert: func(t *testing.T, _ string, err error) {
				t.Helper()

				require.Error(t, err)
				require.ErrorIs(t, err, pathrouter.ErrInternal)
				assert.Contains(t, err.Error(), "failed writing metrics")
			},
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			reg := prometheus.NewRegistry()
			NewCollector(WithRegisterer(reg)).ResolutionObserved(true)
			path := tc.path(t)

			// WHEN
			err := WriteToTextfile(path, reg)

			// THEN
			tc.assert(t, path, err)
		})
	}
}
