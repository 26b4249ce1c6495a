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
	"github.com/jellydator/ttlcache/v3"

	"github.com/dadrus/pathrouter/internal/config"
)

type cachedResolution struct {
	result  Result
	matched bool
}

// resolutionCache keeps recent resolutions of a single table. A nil cache caches nothing.
// Parameters are copied on the way in and out, so callers may modify their results.
type resolutionCache struct {
	c *ttlcache.Cache[string, cachedResolution]
}

func newResolutionCache(conf config.CacheConfig) *resolutionCache {
	if !conf.Enabled() {
		return nil
	}

	return &resolutionCache{
		c: ttlcache.New[string, cachedResolution](
			ttlcache.WithTTL[string, cachedResolution](conf.TTL),
			ttlcache.WithCapacity[string, cachedResolution](conf.MaxEntries),
			ttlcache.WithDisableTouchOnHit[string, cachedResolution](),
		),
	}
}

func (c *resolutionCache) get(path string) (Result, bool, bool) {
	if c == nil {
		return Result{}, false, false
	}

	item := c.c.Get(path)
	if item == nil || item.IsExpired() {
		return Result{}, false, false
	}

	entry := item.Value()
	result := entry.result
	result.Parameters = result.Parameters.Clone()

	return result, entry.matched, true
}

func (c *resolutionCache) set(path string, result Result, matched bool) {
	if c == nil {
		return
	}

	result.Parameters = result.Parameters.Clone()

	c.c.Set(path, cachedResolution{result: result, matched: matched}, ttlcache.DefaultTTL)
}

func (c *resolutionCache) len() int {
	if c == nil {
		return 0
	}

	return c.c.Len()
}
