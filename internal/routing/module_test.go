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

package routing

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/dadrus/pathrouter/internal/config"
	"github.com/dadrus/pathrouter/internal/metrics"
	"github.com/dadrus/pathrouter/internal/watcher"
)

type recordingWatcher struct {
	paths []string
}

func (w *recordingWatcher) Add(path string, _ watcher.ChangeListener) error {
	w.paths = append(w.paths, path)

	return nil
}

func TestModule(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc    string
		path  config.ConfigurationPath
		paths []string
	}{
		{uc: "with config file", path: "/etc/pathrouter/routes.yaml", paths: []string{"/etc/pathrouter/routes.yaml"}},
		{uc: "without config file", path: ""},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var router *Router

			conf := testConfiguration(config.RouteConfig{ID: "post", Pattern: "/posts/{id}", Value: "post"})
			rw := &recordingWatcher{}

			app := fxtest.New(t,
				fx.NopLogger,
				fx.Supply(
					conf,
					tc.path,
					ConfigSource(func() (*config.Configuration, error) { return conf, nil }),
					fx.Annotate(rw, fx.As(new(watcher.Watcher))),
					zerolog.Nop(),
				),
				metrics.Module,
				Module,
				fx.Populate(&router),
			)

			// WHEN
			app.RequireStart()
			defer app.RequireStop()

			// THEN
			require.NotNil(t, router)
			assert.Equal(t, tc.paths, rw.paths)

			result, ok := router.Resolve("/posts/1")
			assert.True(t, ok)
			assert.Equal(t, "post", result.Value)
		})
	}
}
