// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metercacher

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const resultLabel = "result"

var (
	hitLabels  = prometheus.Labels{resultLabel: "hit"}
	missLabels = prometheus.Labels{resultLabel: "miss"}
)

type cacheMetrics struct {
	getCount *prometheus.CounterVec
	getTime  *prometheus.CounterVec

	putCount prometheus.Counter
	putTime  prometheus.Counter

	invalidatedCount prometheus.Counter

	len           prometheus.Gauge
	portionFilled prometheus.Gauge
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*cacheMetrics, error) {
	m := &cacheMetrics{
		getCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_count",
				Help:      "number of get calls",
			},
			[]string{resultLabel},
		),
		getTime: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "get_time",
				Help:      "time spent in get calls in seconds",
			},
			[]string{resultLabel},
		),
		putCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "put_count",
			Help:      "number of put calls",
		}),
		putTime: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "put_time",
			Help:      "time spent in put calls in seconds",
		}),
		invalidatedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invalidated_count",
			Help:      "number of entries removed by predicate invalidation",
		}),
		len: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "len",
			Help:      "number of entries in the cache",
		}),
		portionFilled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "portion_filled",
			Help:      "fraction of the cache currently filled",
		}),
	}

	err := errors.Join(
		registerer.Register(m.getCount),
		registerer.Register(m.getTime),
		registerer.Register(m.putCount),
		registerer.Register(m.putTime),
		registerer.Register(m.invalidatedCount),
		registerer.Register(m.len),
		registerer.Register(m.portionFilled),
	)
	return m, err
}
