// Copyright 2026 The OIP Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package exec

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus instrumentation for query execution.
type Metrics struct {
	ExecutionDuration prometheus.Histogram
}

// NewMetrics builds Metrics registered against reg. A nil reg skips
// registration, which keeps tests that don't care about metrics free
// of global-registry side effects.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		ExecutionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "oip",
			Subsystem: "query",
			Name:      "execution_duration_seconds",
			Help:      "Time taken to execute a boolean query plan against the indexes.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.ExecutionDuration)
	}
	return m
}
