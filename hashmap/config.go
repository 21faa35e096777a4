// Copyright (c) 2026 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package hashmap

import (
	"fmt"
	"math"
	"time"

	"github.com/aristanetworks/chainmap/logger"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v2"
)

const (
	// DefaultInitialCapacity is the table length used when none is configured.
	DefaultInitialCapacity = 16

	// DefaultLoadFactor is the load factor used when none is configured.
	DefaultLoadFactor = 0.75

	// MaximumCapacity is the largest table length. Requested capacities above
	// it are silently clamped.
	MaximumCapacity = 1 << 30
)

// Order selects the iteration order of a map.
type Order int

const (
	// Unordered maps iterate in bucket order.
	Unordered Order = iota
	// InsertionOrder maps iterate in the order keys were first inserted.
	// Overwriting the value of a key does not move it.
	InsertionOrder
	// AccessOrder maps iterate from least to most recently accessed. Get and
	// Put on an existing key move it to the end, and count as structural
	// modifications.
	AccessOrder
)

var orderNames = map[Order]string{
	Unordered:      "unordered",
	InsertionOrder: "insertion",
	AccessOrder:    "access",
}

func (o Order) String() string {
	if s, ok := orderNames[o]; ok {
		return s
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder parses the name of an Order as returned by String.
func ParseOrder(s string) (Order, error) {
	for o, name := range orderNames {
		if name == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("hashmap: unknown order %q", s)
}

// MarshalYAML implements yaml.Marshaler.
func (o Order) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Order) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Config holds the construction parameters of a map. It can be written by hand,
// built with Options, or loaded from YAML with ParseConfig:
//
//	initial-capacity: 64
//	load-factor: 0.5
//	order: access
//	max-entries: 1000
type Config struct {
	// InitialCapacity is rounded up to a power of two when the table is first
	// allocated. Zero is legal and yields a single bucket.
	InitialCapacity int `yaml:"initial-capacity"`

	// LoadFactor bounds size/capacity before the table doubles.
	LoadFactor float64 `yaml:"load-factor"`

	// Seed is mixed into every key hash before spreading.
	Seed uint32 `yaml:"seed,omitempty"`

	// RandomSeed replaces Seed with a random value at construction.
	RandomSeed bool `yaml:"random-seed,omitempty"`

	// Order selects the iteration order.
	Order Order `yaml:"order,omitempty"`

	// MaxEntries, when positive, evicts the eldest entry whenever an insert
	// makes the map larger than MaxEntries. Only ordered maps have an eldest
	// entry.
	MaxEntries int `yaml:"max-entries,omitempty"`
}

// DefaultConfig returns the configuration used by New when no option is given.
func DefaultConfig() Config {
	return Config{
		InitialCapacity: DefaultInitialCapacity,
		LoadFactor:      DefaultLoadFactor,
	}
}

// ParseConfig parses a YAML configuration. Fields missing from the document
// keep their DefaultConfig value.
func ParseConfig(b []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return nil, fmt.Errorf("hashmap: failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns an error wrapping ErrIllegalArgument if c cannot be used to
// build a map.
func (c *Config) Validate() error {
	if c.InitialCapacity < 0 {
		return illegalArgument("initial capacity %d", c.InitialCapacity)
	}
	if c.LoadFactor <= 0 || math.IsNaN(c.LoadFactor) || math.IsInf(c.LoadFactor, 0) {
		return illegalArgument("load factor %v", c.LoadFactor)
	}
	if _, ok := orderNames[c.Order]; !ok {
		return illegalArgument("order %v", c.Order)
	}
	if c.MaxEntries < 0 {
		return illegalArgument("max entries %d", c.MaxEntries)
	}
	if c.MaxEntries > 0 && c.Order == Unordered {
		return illegalArgument("max entries requires an ordered map")
	}
	return nil
}

var seeds = func() *rand.Rand {
	src := &rand.LockedSource{}
	src.Seed(uint64(time.Now().UnixNano()))
	return rand.New(src)
}()

type options struct {
	Config
	log logger.Logger
}

// Option configures a map at construction.
type Option func(*options)

// WithConfig replaces the whole configuration with cfg. Options that follow it
// still apply.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.Config = cfg
	}
}

// WithInitialCapacity sets the number of buckets allocated by the first insert.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.InitialCapacity = n
	}
}

// WithLoadFactor sets the load factor.
func WithLoadFactor(f float64) Option {
	return func(o *options) {
		o.LoadFactor = f
	}
}

// WithSeed sets the hash seed.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.Seed = seed
		o.RandomSeed = false
	}
}

// WithRandomSeed draws a random hash seed at construction.
func WithRandomSeed() Option {
	return func(o *options) {
		o.RandomSeed = true
	}
}

// WithOrder sets the iteration order.
func WithOrder(order Order) Option {
	return func(o *options) {
		o.Order = order
	}
}

// WithMaxEntries bounds the size of an ordered map by evicting its eldest entry.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.MaxEntries = n
	}
}

// WithLogger sets the logger that table growth and evictions are reported to.
func WithLogger(l logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.Validate(); err != nil {
		return o, err
	}
	if o.InitialCapacity > MaximumCapacity {
		o.InitialCapacity = MaximumCapacity
	}
	if o.RandomSeed {
		o.Seed = seeds.Uint32()
	}
	o.log = logger.OrDiscard(o.log)
	return o, nil
}
