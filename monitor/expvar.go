// Copyright (c) 2021 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package monitor

import (
	"expvar"
	"fmt"
	"strings"
	"sync"
)

// Publish exports the statistics of src as the expvar variable name, read
// with lock held on every access. Like expvar.Publish, it panics if name is
// already in use.
func Publish(name string, src StatsSource, lock sync.Locker) {
	c := &Collector{src: src, lock: lock}
	expvar.Publish(name, expvar.Func(func() interface{} {
		return c.stats()
	}))
}

// VarsToString gives a string with all exported variables
// the returned string is in a pretty format.
func VarsToString() string {
	sb := strings.Builder{}
	sb.WriteString("{\n")
	first := true
	expvar.Do(func(kv expvar.KeyValue) {
		if !first {
			sb.WriteString(",\n")
		}
		first = false
		fmt.Fprintf(&sb, "\t%q: %s", kv.Key, kv.Value)
	})
	sb.WriteString("\n}")
	return sb.String()
}
