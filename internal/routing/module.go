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
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathrouter/internal/config"
	"github.com/dadrus/pathrouter/internal/metrics"
	"github.com/dadrus/pathrouter/internal/watcher"
)

// Module provides the router and registers it for changes of the configuration file.
// It expects a ConfigSource, the configuration and its path to be provided.
// nolint: gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		func(collector *metrics.Collector) Observer { return collector },
		NewRouter,
	),
	fx.Invoke(registerRouter),
)

func registerRouter(
	w watcher.Watcher,
	path config.ConfigurationPath,
	router *Router,
	logger zerolog.Logger,
) error {
	logger.Info().Int("_routes", router.Table().Len()).Msg("Route table loaded")

	if len(path) == 0 {
		return nil
	}

	return w.Add(string(path), router)
}
