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

package watch

import (
	"os"

	"github.com/spf13/cobra"
)

const (
	metricsFileFlag     = "metrics-file"
	metricsIntervalFlag = "metrics-interval"
)

// NewWatchCommand represents the "watch" command.
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Resolves paths read from stdin and reloads the routes on configuration changes",
		Example: "  tail -f access.log | awk '{print $7}' | pathrouter watch -c routes.yaml\n" +
			"  pathrouter watch -c routes.yaml --metrics-file /var/lib/node_exporter/pathrouter.prom < paths.txt",
		Run: func(cmd *cobra.Command, _ []string) {
			app, err := createApp(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				cmd.PrintErrf("Failed to initialize pathrouter: %v\n", err)

				os.Exit(1)
			}

			app.Run()
		},
	}

	cmd.Flags().String(metricsFileFlag, "",
		"File to write prometheus metrics to on shutdown, using the text exposition format")
	cmd.Flags().Duration(metricsIntervalFlag, 0,
		"Interval to additionally write the metrics file in while running, disabled if 0")

	return cmd
}
