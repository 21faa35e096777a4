// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"sync"

	"github.com/aristanetworks/chainmap/hashmap"
	"github.com/prometheus/client_golang/prometheus"
)

// StatsSource is implemented by *hashmap.Map of any key and value types.
type StatsSource interface {
	Stats() hashmap.Stats
}

const namespace = "chainmap"

type statMetric struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
	value     func(*hashmap.Stats) float64
}

// Collector exports the table statistics of a map as prometheus metrics,
// labelled with the map's name. Stats are read at scrape time with lock held,
// so the owner of the map can serialize scrapes with its own writes.
type Collector struct {
	src     StatsSource
	lock    sync.Locker
	metrics []statMetric
}

// NewCollector returns a collector for src. lock may be nil when src is not
// written concurrently with scrapes.
func NewCollector(name string, src StatsSource, lock sync.Locker) *Collector {
	labels := prometheus.Labels{"map": name}
	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", metric), help, nil, labels)
	}
	return &Collector{
		src:  src,
		lock: lock,
		metrics: []statMetric{{
			desc:      desc("entries", "Number of mappings."),
			valueType: prometheus.GaugeValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.Len) },
		}, {
			desc:      desc("buckets", "Length of the bucket table."),
			valueType: prometheus.GaugeValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.Capacity) },
		}, {
			desc:      desc("threshold", "Size at which the table next doubles."),
			valueType: prometheus.GaugeValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.Threshold) },
		}, {
			desc:      desc("load_factor", "Configured load factor."),
			valueType: prometheus.GaugeValue,
			value:     func(s *hashmap.Stats) float64 { return s.LoadFactor },
		}, {
			desc:      desc("used_buckets", "Number of non-empty buckets."),
			valueType: prometheus.GaugeValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.UsedBuckets) },
		}, {
			desc:      desc("longest_chain", "Length of the longest bucket chain."),
			valueType: prometheus.GaugeValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.LongestChain) },
		}, {
			desc:      desc("resizes_total", "Number of times the table doubled."),
			valueType: prometheus.CounterValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.Resizes) },
		}, {
			desc:      desc("modifications_total", "Number of structural modifications."),
			valueType: prometheus.CounterValue,
			value:     func(s *hashmap.Stats) float64 { return float64(s.ModCount) },
		}},
	}
}

func (c *Collector) stats() hashmap.Stats {
	if c.lock != nil {
		c.lock.Lock()
		defer c.lock.Unlock()
	}
	return c.src.Stats()
}

// Describe implements prometheus.Collector interface
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.metrics {
		ch <- m.desc
	}
}

// Collect implements prometheus.Collector interface
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	for _, m := range c.metrics {
		ch <- prometheus.MustNewConstMetric(m.desc, m.valueType, m.value(&s))
	}
}

var _ prometheus.Collector = (*Collector)(nil)
