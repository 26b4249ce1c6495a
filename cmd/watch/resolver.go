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

package watch

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/routing"
	"github.com/dadrus/pathrouter/internal/x/errorchain"
)

type (
	input  struct{ io.Reader }
	output struct{ io.Writer }
)

// lineResolver resolves every non empty line read from in and writes the resolution
// as JSON document to out. The application is shut down once in is exhausted.
type lineResolver struct {
	in         io.Reader
	out        io.Writer
	router     *routing.Router
	shutdowner fx.Shutdowner
	logger     zerolog.Logger
}

func (r *lineResolver) run() {
	enc := json.NewEncoder(r.out)
	scanner := bufio.NewScanner(r.in)

	for scanner.Scan() {
		path := strings.TrimSpace(scanner.Text())
		if len(path) == 0 {
			continue
		}

		result, ok := r.router.Resolve(path)
		if err := enc.Encode(routing.NewResolution(path, result, ok)); err != nil {
			r.logger.Error().Err(errorchain.NewWithMessage(pathrouter.ErrInternal,
				"failed to write resolution").CausedBy(err)).Msg("Stopping")

			break
		}
	}

	if err := scanner.Err(); err != nil {
		r.logger.Error().Err(err).Msg("Failed reading paths")
	}

	r.logger.Debug().Msg("Input exhausted")

	if err := r.shutdowner.Shutdown(); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to initiate shutdown")
	}
}

func registerLineResolver(
	lc fx.Lifecycle,
	in input,
	out output,
	router *routing.Router,
	shutdowner fx.Shutdowner,
	logger zerolog.Logger,
) {
	resolver := &lineResolver{
		in:         in.Reader,
		out:        out.Writer,
		router:     router,
		shutdowner: shutdowner,
		logger:     logger,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info().Msg("Resolving paths read from input")

			go resolver.run()

			return nil
		},
	})
}
