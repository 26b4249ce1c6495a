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

package match

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dadrus/pathrouter/cmd/flags"
	"github.com/dadrus/pathrouter/internal/config"
	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/routing"
	"github.com/dadrus/pathrouter/internal/x/errorchain"
)

const strictFlag = "strict"

// NewMatchCommand represents the "match" command.
func NewMatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "match PATH...",
		Short:   "Resolves the given paths against the configured routes",
		Example: "pathrouter match -c routes.yaml /posts/42 /users/7",
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := matchPaths(cmd, args); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.Flags().Bool(strictFlag, false, "Fail if at least one of the given paths does not match any route")

	return cmd
}

func matchPaths(cmd *cobra.Command, paths []string) error {
	envPrefix, _ := cmd.Flags().GetString(flags.EnvironmentConfigPrefix)
	configPath, _ := cmd.Flags().GetString(flags.Config)
	strict, _ := cmd.Flags().GetBool(strictFlag)

	validator, err := config.NewValidator()
	if err != nil {
		return err
	}

	conf, err := config.NewConfiguration(
		config.EnvVarPrefix(envPrefix),
		config.ConfigurationPath(configPath),
		validator,
	)
	if err != nil {
		return err
	}

	table, err := routing.NewTable(conf.Matcher, conf.Routes)
	if err != nil {
		return err
	}

	var unmatched int

	enc := json.NewEncoder(cmd.OutOrStdout())

	for _, path := range paths {
		result, ok := table.Resolve(path)
		if !ok {
			unmatched++
		}

		if err = enc.Encode(routing.NewResolution(path, result, ok)); err != nil {
			return errorchain.NewWithMessage(pathrouter.ErrInternal, "failed to write resolution").
				CausedBy(err)
		}
	}

	if strict && unmatched != 0 {
		return errorchain.NewWithMessagef(pathrouter.ErrNoRouteFound,
			"%d of %d paths did not match any route", unmatched, len(paths))
	}

	return nil
}
