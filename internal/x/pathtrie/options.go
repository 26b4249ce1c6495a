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

type Option[V any] func(t *Trie[V])

// WithWildcardDelimiters configures the characters enclosing a wildcard name.
// Equal characters are ignored.
func WithWildcardDelimiters[V any](open, closing byte) Option[V] {
	return func(t *Trie[V]) {
		if open != closing {
			t.wildcardOpen = open
			t.wildcardClose = closing
		}
	}
}

// WithTrailingDelimiter configures the character terminating a captured wildcard value.
func WithTrailingDelimiter[V any](delim byte) Option[V] {
	return func(t *Trie[V]) {
		t.trailingDelimiter = delim
	}
}
