// Package config describes the demo scenarios run by cmd/algorithms.
//
// A Config is read from YAML. Load starts from Default, overlays the file
// (unknown keys are rejected), applies ALGORITHMS_* environment overrides
// and validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Naxaes/Algorithms/prim_kruskal"
	"github.com/Naxaes/Algorithms/sorting"
	"github.com/Naxaes/Algorithms/unionfind"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "ALGORITHMS"

// Script operation names.
const (
	OpEnqueue = "enqueue"
	OpDequeue = "dequeue"
	OpPush    = "push"
	OpPop     = "pop"
)

// Config is the root document.
type Config struct {
	LogLevel string `yaml:"log_level" json:"log_level"`
	Timings  bool   `yaml:"timings" json:"timings"`

	Sorting   SortingConfig   `yaml:"sorting" json:"sorting"`
	Heap      HeapConfig      `yaml:"heap" json:"heap"`
	Queue     ScriptConfig    `yaml:"queue" json:"queue"`
	Stack     ScriptConfig    `yaml:"stack" json:"stack"`
	UnionFind UnionFindConfig `yaml:"union_find" json:"union_find"`
	Graph     GraphConfig     `yaml:"graph" json:"graph"`
	Network   NetworkConfig   `yaml:"network" json:"network"`
}

// SortingConfig lists the input every named algorithm sorts.
type SortingConfig struct {
	Input      []int    `yaml:"input" json:"input"`
	Algorithms []string `yaml:"algorithms" json:"algorithms"`
}

// HeapConfig fills a heap of Capacity with Values and then removes PopIndex.
type HeapConfig struct {
	Capacity int   `yaml:"capacity" json:"capacity"`
	Values   []int `yaml:"values" json:"values"`
	PopIndex int   `yaml:"pop_index" json:"pop_index"`
}

// Op is one step of a queue or stack script. Value is ignored by removals.
type Op struct {
	Op    string `yaml:"op" json:"op"`
	Value int    `yaml:"value,omitempty" json:"value,omitempty"`
}

// ScriptConfig replays Script against a bounded container of Capacity.
type ScriptConfig struct {
	Capacity int  `yaml:"capacity" json:"capacity"`
	Script   []Op `yaml:"script" json:"script"`
}

// UnionFindConfig applies Unions to every variant in Kinds and answers Queries.
type UnionFindConfig struct {
	Size    int      `yaml:"size" json:"size"`
	Kinds   []string `yaml:"kinds" json:"kinds"`
	Unions  [][]int  `yaml:"unions" json:"unions"`
	Queries [][]int  `yaml:"queries" json:"queries"`
}

// GraphConfig is an adjacency-list graph searched from Start.
// Target selects the vertex whose BFS and DFS paths are reported.
type GraphConfig struct {
	Adjacency [][]int `yaml:"adjacency" json:"adjacency"`
	Directed  bool    `yaml:"directed" json:"directed"`
	Start     int     `yaml:"start" json:"start"`
	Target    int     `yaml:"target" json:"target"`
}

// WeightedEdge is one undirected edge of a NetworkConfig.
type WeightedEdge struct {
	From   int   `yaml:"from" json:"from"`
	To     int   `yaml:"to" json:"to"`
	Weight int64 `yaml:"weight" json:"weight"`
}

// NetworkConfig is a weighted undirected graph used for the minimum
// spanning tree and shortest-path scenarios.
type NetworkConfig struct {
	Vertices int            `yaml:"vertices" json:"vertices"`
	Edges    []WeightedEdge `yaml:"edges" json:"edges"`
	Source   int            `yaml:"source" json:"source"`
	Method   string         `yaml:"method" json:"method"`
}

// Default returns the built-in scenarios.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Sorting: SortingConfig{
			Input:      []int{6, 3, 2, 0, 1, 5, 8, 7, 9, 4},
			Algorithms: sorting.Names(),
		},
		Heap: HeapConfig{
			Capacity: 20,
			Values:   []int{1, 2, 3, 7, 17, 19, 25, 36, 100},
			PopIndex: 0,
		},
		Queue: ScriptConfig{
			Capacity: 5,
			Script: []Op{
				{Op: OpEnqueue, Value: 0}, {Op: OpEnqueue, Value: 1},
				{Op: OpEnqueue, Value: 2}, {Op: OpEnqueue, Value: 3},
				{Op: OpDequeue}, {Op: OpDequeue},
				{Op: OpEnqueue, Value: 4}, {Op: OpEnqueue, Value: 0},
				{Op: OpDequeue}, {Op: OpDequeue}, {Op: OpDequeue}, {Op: OpDequeue},
			},
		},
		Stack: ScriptConfig{
			Capacity: 5,
			Script: []Op{
				{Op: OpPush, Value: 1}, {Op: OpPush, Value: 2}, {Op: OpPush, Value: 3},
				{Op: OpPop},
				{Op: OpPush, Value: 4}, {Op: OpPush, Value: 5},
				{Op: OpPop}, {Op: OpPop}, {Op: OpPop}, {Op: OpPop},
			},
		},
		UnionFind: UnionFindConfig{
			Size: 10,
			Kinds: []string{
				string(unionfind.KindQuickFind), string(unionfind.KindQuickUnion),
				string(unionfind.KindWeighted), string(unionfind.KindPathCompressed),
			},
			Unions:  [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {6, 7}, {7, 8}, {8, 9}},
			Queries: [][]int{{0, 3}, {0, 5}, {2, 3}, {6, 7}, {6, 9}, {0, 9}, {3, 7}, {5, 6}},
		},
		Graph: GraphConfig{
			Adjacency: [][]int{
				{1, 7, 4}, {0}, {4, 8, 5}, {5}, {0, 2, 7, 8},
				{2, 8, 3, 6, 9}, {6}, {0, 4}, {4, 2, 5}, {5},
			},
			Directed: true,
			Start:    0,
			Target:   9,
		},
		Network: NetworkConfig{
			Vertices: 5,
			Edges: []WeightedEdge{
				{From: 0, To: 1, Weight: 2}, {From: 0, To: 3, Weight: 6},
				{From: 1, To: 2, Weight: 3}, {From: 1, To: 3, Weight: 8},
				{From: 1, To: 4, Weight: 5}, {From: 2, To: 4, Weight: 7},
				{From: 3, To: 4, Weight: 9},
			},
			Source: 0,
			Method: prim_kruskal.MethodKruskal,
		},
	}
}

// Load reads path over Default, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default, applies environment
// overrides and validates. An empty document yields the defaults.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides LogLevel and Timings from ALGORITHMS_LOG_LEVEL and
// ALGORITHMS_TIMINGS as reported by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if val, ok := lookup(EnvPrefix + "_LOG_LEVEL"); ok && val != "" {
		c.LogLevel = val
	}
	if val, ok := lookup(EnvPrefix + "_TIMINGS"); ok && val != "" {
		on, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: %s_TIMINGS=%q: %w", ErrInvalidConfig, EnvPrefix, val, err)
		}
		c.Timings = on
	}

	return nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}

// Validate reports the first inconsistency found, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	checks := []func() error{
		c.validateSorting,
		c.validateHeap,
		func() error { return validateScript("queue", c.Queue, OpEnqueue, OpDequeue) },
		func() error { return validateScript("stack", c.Stack, OpPush, OpPop) },
		c.validateUnionFind,
		c.validateGraph,
		c.validateNetwork,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func (c *Config) validateSorting() error {
	if len(c.Sorting.Input) == 0 {
		return invalid("sorting.input is empty")
	}
	if len(c.Sorting.Algorithms) == 0 {
		return invalid("sorting.algorithms is empty")
	}
	for _, name := range c.Sorting.Algorithms {
		if _, err := sorting.Lookup(name); err != nil {
			return fmt.Errorf("%w: sorting.algorithms: %w", ErrInvalidConfig, err)
		}
	}

	return nil
}

func (c *Config) validateHeap() error {
	h := c.Heap
	if h.Capacity <= 0 {
		return invalid("heap.capacity must be positive, got %d", h.Capacity)
	}
	if len(h.Values) == 0 || len(h.Values) > h.Capacity {
		return invalid("heap.values must hold 1..%d values, got %d", h.Capacity, len(h.Values))
	}
	if h.PopIndex < 0 || h.PopIndex >= len(h.Values) {
		return invalid("heap.pop_index %d outside [0, %d)", h.PopIndex, len(h.Values))
	}

	return nil
}

// validateScript checks op names only; overflow and underflow are reported
// by the containers when the script runs.
func validateScript(section string, s ScriptConfig, add, remove string) error {
	if s.Capacity <= 0 {
		return invalid("%s.capacity must be positive, got %d", section, s.Capacity)
	}
	for i, op := range s.Script {
		if op.Op != add && op.Op != remove {
			return invalid("%s.script[%d]: unknown op %q (want %s or %s)", section, i, op.Op, add, remove)
		}
	}

	return nil
}

func (c *Config) validateUnionFind() error {
	u := c.UnionFind
	if u.Size <= 0 {
		return invalid("union_find.size must be positive, got %d", u.Size)
	}
	if len(u.Kinds) == 0 {
		return invalid("union_find.kinds is empty")
	}
	for _, kind := range u.Kinds {
		if _, err := unionfind.New(unionfind.Kind(kind), 1); err != nil {
			return fmt.Errorf("%w: union_find.kinds: %w", ErrInvalidConfig, err)
		}
	}
	if err := validatePairs("union_find.unions", u.Unions, u.Size); err != nil {
		return err
	}

	return validatePairs("union_find.queries", u.Queries, u.Size)
}

func validatePairs(field string, pairs [][]int, n int) error {
	for i, p := range pairs {
		if len(p) != 2 {
			return invalid("%s[%d]: want 2 elements, got %d", field, i, len(p))
		}
		for _, v := range p {
			if v < 0 || v >= n {
				return invalid("%s[%d]: element %d outside [0, %d)", field, i, v, n)
			}
		}
	}

	return nil
}

func (c *Config) validateGraph() error {
	g := c.Graph
	n := len(g.Adjacency)
	if n == 0 {
		return invalid("graph.adjacency is empty")
	}
	for v, heads := range g.Adjacency {
		for _, to := range heads {
			if to < 0 || to >= n {
				return invalid("graph.adjacency[%d]: vertex %d outside [0, %d)", v, to, n)
			}
		}
	}
	if g.Start < 0 || g.Start >= n {
		return invalid("graph.start %d outside [0, %d)", g.Start, n)
	}
	if g.Target < 0 || g.Target >= n {
		return invalid("graph.target %d outside [0, %d)", g.Target, n)
	}

	return nil
}

func (c *Config) validateNetwork() error {
	nw := c.Network
	if nw.Vertices <= 0 {
		return invalid("network.vertices must be positive, got %d", nw.Vertices)
	}
	for i, e := range nw.Edges {
		if e.From < 0 || e.From >= nw.Vertices || e.To < 0 || e.To >= nw.Vertices {
			return invalid("network.edges[%d]: %d-%d outside [0, %d)", i, e.From, e.To, nw.Vertices)
		}
		if e.From == e.To {
			return invalid("network.edges[%d]: self-loop on %d", i, e.From)
		}
		if e.Weight < 0 {
			return invalid("network.edges[%d]: negative weight %d", i, e.Weight)
		}
	}
	if nw.Source < 0 || nw.Source >= nw.Vertices {
		return invalid("network.source %d outside [0, %d)", nw.Source, nw.Vertices)
	}
	switch nw.Method {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return fmt.Errorf("%w: network.method: %w: %q", ErrInvalidConfig, prim_kruskal.ErrUnknownMethod, nw.Method)
	}

	return nil
}
