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
	"regexp"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/x/errorchain"
	"github.com/dadrus/pathrouter/internal/x/stringx"
)

var isNumRegex = regexp.MustCompile(`^\d+$`)

func toRealType(val string) any {
	var parsed map[string]any

	// the yaml parser "guesses" the type of the given string. Only scalars are taken
	// over, everything else, like "{" or "[a]", stays a string.
	if err := yaml.Unmarshal(stringx.ToBytes("val: "+val), &parsed); err != nil {
		return val
	}

	switch typed := parsed["val"].(type) {
	case bool, int, float64:
		return typed
	default:
		return val
	}
}

// normalizeKey turns FOO_BAR__BAZ into foo.bar_baz.
func normalizeKey(key, prefix string) string {
	tmp := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "__", `\:\`)
	tmp = strings.ReplaceAll(tmp, "_", ".")

	return strings.ReplaceAll(tmp, `\:\`, "_")
}

// toSlices replaces maps having only numeric keys by slices, so that e.g.
// routes.0.pattern ends up as the pattern of the first route.
func toSlices(val any) any {
	entries, ok := val.(map[string]any)
	if !ok {
		return val
	}

	maxIdx := -1

	for key := range entries {
		if !isNumRegex.MatchString(key) {
			maxIdx = -1

			break
		}

		idx, _ := strconv.Atoi(key)
		maxIdx = max(maxIdx, idx)
	}

	if maxIdx == -1 {
		for key, entry := range entries {
			entries[key] = toSlices(entry)
		}

		return entries
	}

	slice := make([]any, maxIdx+1)
	for key, entry := range entries {
		idx, _ := strconv.Atoi(key)
		slice[idx] = toSlices(entry)
	}

	return slice
}

func koanfFromEnv(prefix string) (*koanf.Koanf, error) {
	raw := koanf.New(".")

	provider := env.Provider(".", env.Opt{
		Prefix: prefix,
		TransformFunc: func(key, val string) (string, any) {
			return normalizeKey(key, prefix), toRealType(val)
		},
	})

	if err := raw.Load(provider, nil); err != nil {
		return nil, errorchain.NewWithMessage(pathrouter.ErrConfiguration,
			"failed to parse environment variables to config").CausedBy(err)
	}

	converted, _ := toSlices(raw.Raw()).(map[string]any)

	parser := koanf.New(".")
	if err := parser.Load(confmap.Provider(converted, ""), nil); err != nil {
		return nil, errorchain.NewWithMessage(pathrouter.ErrConfiguration,
			"failed to convert environment variables to config").CausedBy(err)
	}

	return parser, nil
}
