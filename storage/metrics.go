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

package storage

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the page-cache counters exposed on the admin HTTP
// surface (package web). A nil *prometheus.Registry is accepted so
// that tests and the REPL can construct storage without a live
// metrics endpoint.
type Metrics struct {
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter
	Evictions   prometheus.Counter
}

// NewMetrics registers (or, if reg is nil, simply allocates) the page
// cache counters.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oip_storage_page_cache_hits_total",
			Help: "Number of page cache hits in FilePageStorage.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oip_storage_page_cache_misses_total",
			Help: "Number of page cache misses (disk loads) in FilePageStorage.",
		}),
		Evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oip_storage_page_cache_evictions_total",
			Help: "Number of FIFO page cache evictions in FilePageStorage.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.CacheHits, m.CacheMisses, m.Evictions)
	}
	return m
}
