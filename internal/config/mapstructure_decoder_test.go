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

import (
	"testing"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func decodeTestConfig(t *testing.T, data []byte) map[string]any {
	t.Helper()

	var conf map[string]any

	require.NoError(t, yaml.Unmarshal(data, &conf))

	return conf
}

func TestDecodeLogLevel(t *testing.T) {
	t.Parallel()

	type Type struct {
		Level zerolog.Level `mapstructure:"level"`
	}

	for _, tc := range []struct {
		uc     string
		config []byte
		level  zerolog.Level
	}{
		{uc: "debug level", config: []byte(`level: debug`), level: zerolog.DebugLevel},
		{uc: "info level", config: []byte(`level: info`), level: zerolog.InfoLevel},
		{uc: "warn level", config: []byte(`level: warn`), level: zerolog.WarnLevel},
		{uc: "error level", config: []byte(`level: error`), level: zerolog.ErrorLevel},
		{uc: "fatal level", config: []byte(`level: fatal`), level: zerolog.FatalLevel},
		{uc: "panic level", config: []byte(`level: panic`), level: zerolog.PanicLevel},
		{uc: "no level", config: []byte(`level: no`), level: zerolog.NoLevel},
		{uc: "disabled level", config: []byte(`level: disabled`), level: zerolog.Disabled},
		{uc: "trace level", config: []byte(`level: trace`), level: zerolog.TraceLevel},
		{uc: "unknown level with info as fallback", config: []byte(`level: foo`), level: zerolog.InfoLevel},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logLevelDecodeHookFunc,
				Result:     &typ,
			})
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(decodeTestConfig(t, tc.config))

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.level, typ.Level)
		})
	}
}

func TestDecodeLogFormat(t *testing.T) {
	t.Parallel()

	type Type struct {
		Format LogFormat `mapstructure:"format"`
	}

	for _, tc := range []struct {
		uc     string
		config []byte
		format LogFormat
	}{
		{uc: "gelf format", config: []byte(`format: gelf`), format: LogGelfFormat},
		{uc: "text format", config: []byte(`format: text`), format: LogTextFormat},
		{uc: "unknown format with text as fallback", config: []byte(`format: foo`), format: LogTextFormat},
	} {
		t.Run("case="+tc.uc, func(t *testing.T) {
			t.Parallel()

			// GIVEN
			var typ Type

			dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
				DecodeHook: logFormatDecodeHookFunc,
				Result:     &typ,
			})
			require.NoError(t, err)

			// WHEN
			err = dec.Decode(decodeTestConfig(t, tc.config))

			// THEN
			require.NoError(t, err)
			assert.Equal(t, tc.format, typ.Format)
		})
	}
}
