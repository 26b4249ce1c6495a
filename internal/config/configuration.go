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
	"os"
	"path/filepath"

	"github.com/dadrus/pathrouter/internal/config/parser"
	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/validation"
	"github.com/dadrus/pathrouter/internal/x/errorchain"
)

type (
	EnvVarPrefix      string
	ConfigurationPath string
)

type Configuration struct {
	Log     LoggingConfig `koanf:"log"`
	Matcher MatcherConfig `koanf:"matcher"`
	Cache   CacheConfig   `koanf:"cache"`
	Routes  []RouteConfig `koanf:"routes"  validate:"unique=ID,dive"`
}

// NewConfiguration loads the configuration from the given file and the environment
// variables starting with envPrefix, which take precedence. Without a file, pathrouter.yaml
// is looked up in the working directory, $HOME/.config and /etc/pathrouter. The file is
// validated against the JSON schema before loading, the result by the given validator.
func NewConfiguration(
	envPrefix EnvVarPrefix,
	configFile ConfigurationPath,
	validator validation.Validator,
) (*Configuration, error) {
	// copy defaults
	result := defaultConfig

	opts := []parser.Option{
		parser.WithDecodeHookFunc(logLevelDecodeHookFunc),
		parser.WithDecodeHookFunc(logFormatDecodeHookFunc),
		parser.WithConfigFile(string(configFile)),
		parser.WithConfigLookupDir("."),
		parser.WithConfigLookupDir(filepath.Join(os.Getenv("HOME"), ".config")),
		parser.WithConfigLookupDir("/etc/pathrouter"),
		parser.WithEnvPrefix(string(envPrefix)),
		parser.WithConfigValidator(ValidateConfig),
	}

	if err := parser.New(opts...).Load(&result); err != nil {
		return nil, errorchain.NewWithMessage(pathrouter.ErrConfiguration,
			"failed loading configuration").CausedBy(err)
	}

	if err := validator.ValidateStruct(result); err != nil {
		return nil, errorchain.NewWithMessage(pathrouter.ErrConfiguration,
			"configuration is invalid").CausedBy(err)
	}

	return &result, nil
}

func LogConfiguration(configuration *Configuration) LoggingConfig { return configuration.Log }
