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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultMatched   = "matched"
	resultUnmatched = "unmatched"
	resultSuccess   = "success"
	resultFailure   = "failure"
)

// Collector counts path resolutions and route table reloads.
type Collector struct {
	resolutions *prometheus.CounterVec
	reloads     *prometheus.CounterVec
	routes      prometheus.Gauge
}

func NewCollector(options ...Option) *Collector {
	conf := opts{
		registerer: prometheus.DefaultRegisterer,
		namespace:  "pathrouter",
		labels:     make(prometheus.Labels),
	}

	for _, opt := range options {
		opt(&conf)
	}

	factory := promauto.With(conf.registerer)

	return &Collector{
		resolutions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "resolutions_total"),
				Help:        "Count all path resolutions by result.",
				ConstLabels: conf.labels,
			},
			[]string{"result"},
		),
		reloads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "reloads_total"),
				Help:        "Count all route table reloads by result.",
				ConstLabels: conf.labels,
			},
			[]string{"result"},
		),
		routes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name:        prometheus.BuildFQName(conf.namespace, conf.subsystem, "routes"),
				Help:        "Number of routes in the active route table.",
				ConstLabels: conf.labels,
			},
		),
	}
}

func (c *Collector) ResolutionObserved(matched bool) {
	result := resultUnmatched
	if matched {
		result = resultMatched
	}

	c.resolutions.WithLabelValues(result).Inc()
}

func (c *Collector) ReloadObserved(err error) {
	result := resultSuccess
	if err != nil {
		result = resultFailure
	}

	c.reloads.WithLabelValues(result).Inc()
}

func (c *Collector) RoutesLoaded(count int) {
	c.routes.Set(float64(count))
}
