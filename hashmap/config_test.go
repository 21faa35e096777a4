// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/aristanetworks/chainmap/test"
	"gopkg.in/yaml.v2"
)

func TestParseConfig(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want *Config
		err  string
	}{
		"empty": {
			in:   "",
			want: &Config{InitialCapacity: 16, LoadFactor: 0.75},
		},
		"full": {
			in: `initial-capacity: 64
load-factor: 0.5
seed: 7
order: access
max-entries: 1000
`,
			want: &Config{InitialCapacity: 64, LoadFactor: 0.5, Seed: 7,
				Order: AccessOrder, MaxEntries: 1000},
		},
		"partial": {
			in:   "order: insertion\n",
			want: &Config{InitialCapacity: 16, LoadFactor: 0.75, Order: InsertionOrder},
		},
		"random seed": {
			in:   "random-seed: true\n",
			want: &Config{InitialCapacity: 16, LoadFactor: 0.75, RandomSeed: true},
		},
		"unknown field": {
			in:  "capacity: 3\n",
			err: "field capacity not found",
		},
		"unknown order": {
			in:  "order: sorted\n",
			err: `unknown order "sorted"`,
		},
		"bad load factor": {
			in:  "load-factor: 0\n",
			err: "illegal argument: load factor 0",
		},
		"unbounded unordered": {
			in:  "max-entries: 10\n",
			err: "max entries requires an ordered map",
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tc.in))
			if tc.err != "" {
				if err == nil || !strings.Contains(err.Error(), tc.err) {
					t.Fatalf("expected error containing %q, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if d := test.Diff(tc.want, got); d != "" {
				t.Errorf("unexpected config: %s", d)
			}
		})
	}
}

func TestParseConfigValidationIsIllegalArgument(t *testing.T) {
	_, err := ParseConfig([]byte("initial-capacity: -1\n"))
	if !errors.Is(err, ErrIllegalArgument) {
		t.Errorf("expected ErrIllegalArgument, got %v", err)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{InitialCapacity: 8, LoadFactor: 1.5, Order: InsertionOrder, MaxEntries: 4}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "order: insertion") {
		t.Errorf("order not marshalled by name:\n%s", b)
	}
	got, err := ParseConfig(b)
	if err != nil {
		t.Fatal(err)
	}
	if d := test.Diff(&cfg, got); d != "" {
		t.Errorf("config changed through YAML: %s", d)
	}
}

func TestWithConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte("initial-capacity: 4\norder: insertion\nmax-entries: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	m := newStringMap(t, WithConfig(*cfg))
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	if len(m.table) != 4 || m.order != InsertionOrder {
		t.Errorf("config not applied: %d buckets, order %s", len(m.table), m.order)
	}
	if d := test.Diff([]string{"b", "c"}, keysOf(m)); d != "" {
		t.Errorf("unexpected entries: %s", d)
	}
}

func TestOrderNames(t *testing.T) {
	for _, o := range []Order{Unordered, InsertionOrder, AccessOrder} {
		got, err := ParseOrder(o.String())
		if err != nil || got != o {
			t.Errorf("ParseOrder(%q) = %v, %v", o.String(), got, err)
		}
	}
	if s := Order(9).String(); s != "Order(9)" {
		t.Errorf("String() = %s", s)
	}
	if _, err := ParseOrder("lru"); err == nil {
		t.Errorf("ParseOrder accepted an unknown name")
	}
}

func TestRandomSeed(t *testing.T) {
	// Two random draws colliding is possible but vanishingly unlikely over
	// several tries.
	seeds := make(map[uint32]struct{})
	for i := 0; i < 4; i++ {
		m := newStringMap(t, WithRandomSeed())
		seeds[m.seed] = struct{}{}
	}
	if len(seeds) < 2 {
		t.Errorf("random seeds are all equal: %v", seeds)
	}
	m := newStringMap(t, WithRandomSeed(), WithSeed(3))
	if m.seed != 3 {
		t.Errorf("WithSeed did not override WithRandomSeed: %d", m.seed)
	}
}
