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

package pathtrie

import (
	"iter"
	"slices"
)

type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Parameters is an insertion ordered list of captured wildcard values. Names are
// not required to be unique. The zero value is ready to use.
type Parameters struct {
	entries []Parameter
}

// Add appends a captured value.
func (p *Parameters) Add(name, value string) {
	p.entries = append(p.entries, Parameter{Name: name, Value: value})
}

// Find returns the value of the first entry named name, or def if there is none.
func (p *Parameters) Find(name, def string) string {
	for _, entry := range p.entries {
		if entry.Name == name {
			return entry.Value
		}
	}

	return def
}

// Clear removes all entries, keeping the allocated capacity.
func (p *Parameters) Clear() { p.entries = p.entries[:0] }

func (p *Parameters) Len() int { return len(p.entries) }

func (p *Parameters) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, entry := range p.entries {
			if !yield(entry.Name, entry.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy. Cloning nil returns an empty collection.
func (p *Parameters) Clone() *Parameters {
	if p == nil {
		return &Parameters{}
	}

	return &Parameters{entries: slices.Clone(p.entries)}
}

func (p *Parameters) truncate(size int) {
	if size < len(p.entries) {
		p.entries = p.entries[:size]
	}
}
