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

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dadrus/pathrouter/cmd/flags"
	"github.com/dadrus/pathrouter/cmd/match"
	"github.com/dadrus/pathrouter/cmd/watch"
	"github.com/dadrus/pathrouter/version"
)

// RootCmd represents the base command when called without any subcommands.
// nolint: gochecknoglobals
var RootCmd = &cobra.Command{
	Use:          "pathrouter",
	Short:        "Resolves paths against routing patterns with named wildcards",
	Version:      version.Version,
	SilenceUsage: true,
}

// nolint: gochecknoinits
func init() {
	flags.RegisterGlobalFlags(RootCmd)

	RootCmd.AddCommand(match.NewMatchCommand())
	RootCmd.AddCommand(watch.NewWatchCommand())
}

// Execute adds all child commands to the root command sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErr(err)
		os.Exit(-1)
	}
}
