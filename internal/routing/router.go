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
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/dadrus/pathrouter/internal/config"
)

// ConfigSource loads the current configuration, e.g. from the config file.
type ConfigSource func() (*config.Configuration, error)

type Observer interface {
	ResolutionObserved(matched bool)
	ReloadObserved(err error)
	RoutesLoaded(count int)
}

type noopObserver struct{}

func (noopObserver) ResolutionObserved(bool) {}
func (noopObserver) ReloadObserved(error)    {}
func (noopObserver) RoutesLoaded(int)        {}

type snapshot struct {
	table *Table
	cache *resolutionCache
}

// Router resolves paths against the active route table. Reloads build a new table and
// swap it in together with an empty cache, so resolutions never see a partially built
// table or results of a previous one.
type Router struct {
	current  atomic.Pointer[snapshot]
	source   ConfigSource
	observer Observer

	mut sync.Mutex
}

func NewRouter(conf *config.Configuration, source ConfigSource, observer Observer) (*Router, error) {
	table, err := NewTable(conf.Matcher, conf.Routes)
	if err != nil {
		return nil, err
	}

	if observer == nil {
		observer = noopObserver{}
	}

	router := &Router{source: source, observer: observer}
	router.current.Store(&snapshot{table: table, cache: newResolutionCache(conf.Cache)})
	observer.RoutesLoaded(table.Len())

	return router, nil
}

func (r *Router) Resolve(path string) (Result, bool) {
	snap := r.current.Load()

	result, ok, cached := snap.cache.get(path)
	if !cached {
		result, ok = snap.table.Resolve(path)
		snap.cache.set(path, result, ok)
	}

	r.observer.ResolutionObserved(ok)

	return result, ok
}

// Table returns the active route table.
func (r *Router) Table() *Table { return r.current.Load().table }

// Reload loads the configuration from the source and replaces the active table. The
// active table is kept if loading or compiling fails.
func (r *Router) Reload() error {
	r.mut.Lock()
	defer r.mut.Unlock()

	err := r.reload()

	r.observer.ReloadObserved(err)

	return err
}

func (r *Router) reload() error {
	conf, err := r.source()
	if err != nil {
		return err
	}

	table, err := NewTable(conf.Matcher, conf.Routes)
	if err != nil {
		return err
	}

	r.current.Store(&snapshot{table: table, cache: newResolutionCache(conf.Cache)})
	r.observer.RoutesLoaded(table.Len())

	return nil
}

func (r *Router) OnChanged(logger zerolog.Logger) {
	if err := r.Reload(); err != nil {
		logger.Warn().Err(err).Msg("Route table reload failed, keeping the previous one")

		return
	}

	logger.Info().Int("_routes", r.Table().Len()).Msg("Route table reloaded")
}
