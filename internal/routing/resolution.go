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

import "github.com/dadrus/pathrouter/internal/x/pathtrie"

// Resolution is the reportable form of a single resolution.
type Resolution struct {
	Path       string               `json:"path"`
	Matched    bool                 `json:"matched"`
	Route      string               `json:"route,omitempty"`
	Value      string               `json:"value"`
	Parameters []pathtrie.Parameter `json:"parameters"`
}

func NewResolution(path string, result Result, matched bool) Resolution {
	res := Resolution{
		Path:       path,
		Matched:    matched,
		Value:      result.Value,
		Parameters: []pathtrie.Parameter{},
	}

	if result.Route != nil {
		res.Route = result.Route.ID
	}

	if result.Parameters != nil {
		for name, value := range result.Parameters.All() {
			res.Parameters = append(res.Parameters, pathtrie.Parameter{Name: name, Value: value})
		}
	}

	return res
}
