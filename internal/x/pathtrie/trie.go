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
	"errors"
	"fmt"
	"strings"

	"github.com/ccoveille/go-safecast"
)

var (
	ErrInvalidPattern    = errors.New("invalid pattern")
	ErrDuplicatePattern  = errors.New("duplicate pattern")
	ErrAmbiguousWildcard = errors.New("ambiguous wildcard")
)

const (
	noNode int32 = -1

	minPatternLen = 2
)

type (
	node[V any] struct {
		char     byte
		children []int32

		value    V
		hasValue bool
	}

	// Trie is a character trie mapping path patterns to values. Wildcard segments
	// are stored as ordinary nodes: the wildcard open character, followed by the
	// characters of the wildcard name, followed by the wildcard close character.
	//
	// Nodes are kept in an arena and addressed by index. A Trie is not safe for
	// concurrent use if Add is called while matching.
	Trie[V any] struct {
		nodes []node[V]
		roots []int32

		defaultValue V

		wildcardOpen      byte
		wildcardClose     byte
		trailingDelimiter byte
	}
)

// New creates an empty trie returning defaultValue for paths no pattern matches.
// Without options, wildcards are enclosed in '{' and '}' and '/' is the trailing
// delimiter.
func New[V any](defaultValue V, opts ...Option[V]) *Trie[V] {
	trie := &Trie[V]{
		defaultValue:      defaultValue,
		wildcardOpen:      '{',
		wildcardClose:     '}',
		trailingDelimiter: '/',
	}

	for _, opt := range opts {
		opt(trie)
	}

	return trie
}

// Add registers pattern with the given value.
func (t *Trie[V]) Add(pattern string, value V) error {
	if err := t.validatePattern(pattern); err != nil {
		return err
	}

	if err := t.verifyWildcardNames(pattern); err != nil {
		return err
	}

	parent := noNode

	for pos := range len(pattern) {
		child, _ := t.findChild(pattern[pos], t.childrenOf(parent), false)
		if child == noNode {
			child = t.addChild(parent, pattern[pos])
		}

		parent = child
	}

	leaf := &t.nodes[parent]
	if leaf.hasValue {
		return fmt.Errorf("%w: %s", ErrDuplicatePattern, pattern)
	}

	leaf.value = value
	leaf.hasValue = true

	return nil
}

// MustAdd is like Add but panics if the pattern cannot be registered.
func (t *Trie[V]) MustAdd(pattern string, value V) {
	if err := t.Add(pattern, value); err != nil {
		panic(err)
	}
}

// Match resolves path to the value of the matching pattern and appends the captured
// wildcard values to params. If nothing matches, the default value is returned and
// params is left as it was.
func (t *Trie[V]) Match(path string, params *Parameters) V {
	value, _ := t.lookup(path, params)

	return value
}

// Lookup is like Match, but allocates the parameters and reports whether a pattern
// matched.
func (t *Trie[V]) Lookup(path string) (V, *Parameters, bool) {
	params := &Parameters{}
	value, ok := t.lookup(path, params)

	return value, params, ok
}

// Len returns the number of nodes in the trie.
func (t *Trie[V]) Len() int { return len(t.nodes) }

// Empty reports whether no pattern is registered.
func (t *Trie[V]) Empty() bool { return len(t.roots) == 0 }

// Reset drops all registered patterns.
func (t *Trie[V]) Reset() {
	t.nodes = nil
	t.roots = nil
}

func (t *Trie[V]) lookup(path string, params *Parameters) (V, bool) {
	if params == nil {
		params = &Parameters{}
	}

	if len(path) < minPatternLen {
		return t.defaultValue, false
	}

	size := params.Len()

	idx := t.match(path, params)
	if idx == noNode || !t.nodes[idx].hasValue {
		params.truncate(size)

		return t.defaultValue, false
	}

	return t.nodes[idx].value, true
}

// match walks the trie character by character. Literal children take precedence.
// Only the most recently seen wildcard is remembered and the scan backtracks to it
// once the literal path is exhausted. A wildcard value must not span the trailing
// delimiter.
//
//nolint:cyclop
func (t *Trie[V]) match(path string, params *Parameters) int32 {
	step, _ := t.findChild(path[0], t.roots, false)
	if step == noNode {
		return noNode
	}

	last := len(path) - 1
	lastWildcard := noNode
	lastWildcardPos := 0

	for pos := 1; pos < last && step != noNode; pos++ {
		var wildcard int32

		step, wildcard = t.findChild(path[pos], t.nodes[step].children, true)

		if wildcard != noNode && wildcard != lastWildcard {
			lastWildcard = wildcard
			lastWildcardPos = pos
		}

		if path[pos] == t.trailingDelimiter {
			lastWildcard = noNode
		}

		if step == noNode && lastWildcard != noNode {
			name, closing := t.wildcardName(lastWildcard)

			var value string

			value, pos = t.wildcardValue(path, lastWildcardPos)
			params.Add(name, value)

			if pos == last {
				return closing
			}

			step = closing
			lastWildcard = noNode
		}
	}

	if step == noNode {
		return noNode
	}

	child, wildcard := t.findChild(path[last], t.nodes[step].children, true)
	if child != noNode && t.nodes[child].hasValue {
		return child
	}

	if wildcard != noNode {
		name, closing := t.wildcardName(wildcard)
		if !t.nodes[closing].hasValue {
			return noNode
		}

		params.Add(name, path[last:])

		return closing
	}

	return noNode
}

// findChild searches siblings for a node matching char and, if withWildcard is set,
// for a wildcard open node.
func (t *Trie[V]) findChild(char byte, siblings []int32, withWildcard bool) (int32, int32) {
	child, wildcard := noNode, noNode

	for _, idx := range siblings {
		switch t.nodes[idx].char {
		case char:
			child = idx
		case t.wildcardOpen:
			if withWildcard {
				wildcard = idx
			}
		}

		if child != noNode && (!withWildcard || wildcard != noNode) {
			break
		}
	}

	return child, wildcard
}

// wildcardName follows the chain of name nodes below the given wildcard open node
// and returns the name together with the wildcard close node.
func (t *Trie[V]) wildcardName(open int32) (string, int32) {
	var name strings.Builder

	current := open

	for len(t.nodes[current].children) != 0 {
		current = t.nodes[current].children[0]
		if t.nodes[current].char == t.wildcardClose {
			break
		}

		name.WriteByte(t.nodes[current].char)
	}

	return name.String(), current
}

// wildcardValue returns the value starting at begin and the position of its last
// character.
func (t *Trie[V]) wildcardValue(path string, begin int) (string, int) {
	idx := strings.IndexByte(path[begin+1:], t.trailingDelimiter)
	if idx == -1 {
		return path[begin:], len(path) - 1
	}

	end := begin + 1 + idx

	return path[begin:end], end - 1
}

func (t *Trie[V]) childrenOf(parent int32) []int32 {
	if parent == noNode {
		return t.roots
	}

	return t.nodes[parent].children
}

func (t *Trie[V]) addChild(parent int32, char byte) int32 {
	idx := safecast.MustConvert[int32](len(t.nodes))

	t.nodes = append(t.nodes, node[V]{char: char})

	if parent == noNode {
		t.roots = append(t.roots, idx)
	} else {
		t.nodes[parent].children = append(t.nodes[parent].children, idx)
	}

	return idx
}

//nolint:cyclop
func (t *Trie[V]) validatePattern(pattern string) error {
	if len(pattern) < minPatternLen {
		return fmt.Errorf("%w: %q is too short", ErrInvalidPattern, pattern)
	}

	if pattern[0] == t.wildcardOpen {
		return fmt.Errorf("%w: %s starts with a wildcard", ErrInvalidPattern, pattern)
	}

	open := -1

	for pos := range len(pattern) {
		switch char := pattern[pos]; {
		case char == t.wildcardOpen:
			if open != -1 {
				return fmt.Errorf("%w: %s has nested wildcards", ErrInvalidPattern, pattern)
			}

			open = pos
		case char == t.wildcardClose && open != -1:
			if pos == open+1 {
				return fmt.Errorf("%w: %s has an unnamed wildcard", ErrInvalidPattern, pattern)
			}

			open = -1
		case char == t.trailingDelimiter && open != -1:
			return fmt.Errorf("%w: wildcard name in %s contains %q",
				ErrInvalidPattern, pattern, t.trailingDelimiter)
		}
	}

	if open != -1 {
		return fmt.Errorf("%w: %s has an unterminated wildcard", ErrInvalidPattern, pattern)
	}

	return nil
}

// verifyWildcardNames ensures a wildcard in pattern does not occupy a position
// already taken by a differently named one. It does not modify the trie.
func (t *Trie[V]) verifyWildcardNames(pattern string) error {
	parent := noNode

	for pos := range len(pattern) {
		child, _ := t.findChild(pattern[pos], t.childrenOf(parent), false)
		if child == noNode {
			return nil
		}

		if pattern[pos] == t.wildcardOpen {
			existing, _ := t.wildcardName(child)
			end := pos + 1 + strings.IndexByte(pattern[pos+1:], t.wildcardClose)

			if name := pattern[pos+1 : end]; name != existing {
				return fmt.Errorf("%w: %q in %s conflicts with already registered %q",
					ErrAmbiguousWildcard, name, pattern, existing)
			}
		}

		parent = child
	}

	return nil
}
