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
	"github.com/dadrus/pathrouter/internal/config"
	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/x/errorchain"
	"github.com/dadrus/pathrouter/internal/x/pathtrie"
)

type Route struct {
	ID      string
	Pattern string
	Value   string
}

// Result describes the outcome of a resolution. Route is nil if no pattern matched,
// in which case Value holds the configured default.
type Result struct {
	Route      *Route
	Value      string
	Parameters *pathtrie.Parameters
}

// Table is an immutable set of routes compiled into a pattern trie. It is safe for
// concurrent use.
type Table struct {
	trie         *pathtrie.Trie[*Route]
	routes       []*Route
	defaultValue string
}

func NewTable(conf config.MatcherConfig, routes []config.RouteConfig) (*Table, error) {
	for _, delim := range []struct{ name, value string }{
		{name: "wildcard_open", value: conf.WildcardOpen},
		{name: "wildcard_close", value: conf.WildcardClose},
		{name: "trailing_delimiter", value: conf.TrailingDelimiter},
	} {
		if len(delim.value) != 1 {
			return nil, errorchain.NewWithMessagef(pathrouter.ErrConfiguration,
				"%s must be exactly one character, got %q", delim.name, delim.value)
		}
	}

	open, closing, trailing := conf.Delimiters()

	table := &Table{
		trie: pathtrie.New[*Route](nil,
			pathtrie.WithWildcardDelimiters[*Route](open, closing),
			pathtrie.WithTrailingDelimiter[*Route](trailing),
		),
		routes:       make([]*Route, 0, len(routes)),
		defaultValue: conf.Default,
	}

	for _, rc := range routes {
		route := &Route{ID: rc.ID, Pattern: rc.Pattern, Value: rc.Value}

		if err := table.trie.Add(route.Pattern, route); err != nil {
			return nil, errorchain.NewWithMessagef(pathrouter.ErrConfiguration,
				"failed to register route %s", route.ID).CausedBy(err)
		}

		table.routes = append(table.routes, route)
	}

	return table, nil
}

func (t *Table) Resolve(path string) (Result, bool) {
	route, params, ok := t.trie.Lookup(path)
	if !ok {
		return Result{Value: t.defaultValue, Parameters: params}, false
	}

	return Result{Route: route, Value: route.Value, Parameters: params}, true
}

// Len returns the number of routes in the table.
func (t *Table) Len() int { return len(t.routes) }

// Routes returns the routes in registration order.
func (t *Table) Routes() []Route {
	routes := make([]Route, len(t.routes))
	for i, route := range t.routes {
		routes[i] = *route
	}

	return routes
}
