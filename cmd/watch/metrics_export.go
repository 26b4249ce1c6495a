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
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/dadrus/pathrouter/internal/metrics"
	"github.com/dadrus/pathrouter/internal/pathrouter"
	"github.com/dadrus/pathrouter/internal/x/errorchain"
)

type (
	metricsFile     string
	metricsInterval time.Duration
)

type metricsExporter struct {
	file     string
	gatherer prometheus.Gatherer
	logger   zerolog.Logger
}

func (e *metricsExporter) export() {
	if err := metrics.WriteToTextfile(e.file, e.gatherer); err != nil {
		e.logger.Warn().Err(err).Msg("Periodic metrics export failed")
	}
}

// registerMetricsExport writes the metrics to the given file on shutdown and, if an
// interval is set, periodically while running.
func registerMetricsExport(
	lc fx.Lifecycle,
	file metricsFile,
	interval metricsInterval,
	gatherer prometheus.Gatherer,
	logger zerolog.Logger,
) error {
	if len(file) == 0 {
		return nil
	}

	exporter := &metricsExporter{file: string(file), gatherer: gatherer, logger: logger}

	if interval > 0 {
		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return errorchain.NewWithMessage(pathrouter.ErrInternal,
				"failed to create metrics export scheduler").CausedBy(err)
		}

		if _, err = scheduler.NewJob(
			gocron.DurationJob(time.Duration(interval)),
			gocron.NewTask(exporter.export),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		); err != nil {
			return errorchain.NewWithMessage(pathrouter.ErrInternal,
				"failed to schedule metrics export").CausedBy(err)
		}

		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				logger.Debug().Dur("_interval", time.Duration(interval)).Msg("Exporting metrics periodically")

				scheduler.Start()

				return nil
			},
			OnStop: func(_ context.Context) error { return scheduler.Shutdown() },
		})
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if err := metrics.WriteToTextfile(exporter.file, gatherer); err != nil {
				return err
			}

			logger.Info().Str("_file", exporter.file).Msg("Metrics written")

			return nil
		},
	})

	return nil
}
