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

package config

import "time"

// CacheConfig configures caching of resolutions. Caching is disabled if MaxEntries is 0.
type CacheConfig struct {
	TTL        time.Duration `koanf:"ttl"         validate:"gt=0"`
	MaxEntries uint64        `koanf:"max_entries"`
}

func (c CacheConfig) Enabled() bool { return c.MaxEntries != 0 }
