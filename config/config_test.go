package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naxaes/Algorithms/config"
	"github.com/Naxaes/Algorithms/prim_kruskal"
	"github.com/Naxaes/Algorithms/sorting"
	"github.com/Naxaes/Algorithms/unionfind"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []int{6, 3, 2, 0, 1, 5, 8, 7, 9, 4}, cfg.Sorting.Input)
	assert.Equal(t, sorting.Names(), cfg.Sorting.Algorithms)
	assert.Equal(t, []int{1, 2, 3, 7, 17, 19, 25, 36, 100}, cfg.Heap.Values)
	assert.Equal(t, 5, cfg.Queue.Capacity)
	assert.Len(t, cfg.UnionFind.Kinds, len(unionfind.Kinds()))
	assert.Len(t, cfg.Graph.Adjacency, 10)
	assert.Equal(t, prim_kruskal.MethodKruskal, cfg.Network.Method)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestParse_EmptyDocumentYieldsDefaults(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_OverlaysDefaults(t *testing.T) {
	doc := `
log_level: debug
timings: true
sorting:
  input: [3, 1, 2]
  algorithms: [quick, radix]
heap:
  values: [5, 4]
  pop_index: 1
queue:
  capacity: 2
  script:
    - {op: enqueue, value: 7}
    - {op: dequeue}
`
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Timings)
	assert.Equal(t, []int{3, 1, 2}, cfg.Sorting.Input)
	assert.Equal(t, []string{"quick", "radix"}, cfg.Sorting.Algorithms)
	assert.Equal(t, []int{5, 4}, cfg.Heap.Values)
	assert.Equal(t, 20, cfg.Heap.Capacity, "unset keys keep their defaults")
	assert.Equal(t, []config.Op{{Op: config.OpEnqueue, Value: 7}, {Op: config.OpDequeue}}, cfg.Queue.Script)
	assert.Equal(t, config.Default().Stack, cfg.Stack)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := config.Parse(strings.NewReader("sortin:\n  input: [1]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sortin")
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("ALGORITHMS_LOG_LEVEL", "warn")
	t.Setenv("ALGORITHMS_TIMINGS", "true")

	cfg, err := config.Parse(strings.NewReader("log_level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Timings)

	t.Setenv("ALGORITHMS_TIMINGS", "maybe")
	_, err = config.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("graph:\n  start: 2\n  target: 3\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Graph.Start)
	assert.Equal(t, 3, cfg.Graph.Target)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{"bad log level", func(c *config.Config) { c.LogLevel = "loud" }},
		{"empty sort input", func(c *config.Config) { c.Sorting.Input = nil }},
		{"no sort algorithms", func(c *config.Config) { c.Sorting.Algorithms = nil }},
		{"unknown sort", func(c *config.Config) { c.Sorting.Algorithms = []string{"bogo"} }},
		{"heap capacity", func(c *config.Config) { c.Heap.Capacity = 0 }},
		{"heap overfull", func(c *config.Config) { c.Heap.Capacity = 2 }},
		{"heap pop index", func(c *config.Config) { c.Heap.PopIndex = 9 }},
		{"queue capacity", func(c *config.Config) { c.Queue.Capacity = -1 }},
		{"queue op", func(c *config.Config) { c.Queue.Script = []config.Op{{Op: config.OpPush}} }},
		{"stack op", func(c *config.Config) { c.Stack.Script = []config.Op{{Op: config.OpEnqueue}} }},
		{"union-find size", func(c *config.Config) { c.UnionFind.Size = 0 }},
		{"union-find kinds", func(c *config.Config) { c.UnionFind.Kinds = nil }},
		{"union-find kind", func(c *config.Config) { c.UnionFind.Kinds = []string{"fancy"} }},
		{"union pair arity", func(c *config.Config) { c.UnionFind.Unions = [][]int{{1}} }},
		{"query range", func(c *config.Config) { c.UnionFind.Queries = [][]int{{0, 10}} }},
		{"graph empty", func(c *config.Config) { c.Graph.Adjacency = nil }},
		{"graph head", func(c *config.Config) { c.Graph.Adjacency[0] = []int{42} }},
		{"graph start", func(c *config.Config) { c.Graph.Start = -1 }},
		{"graph target", func(c *config.Config) { c.Graph.Target = 10 }},
		{"network vertices", func(c *config.Config) { c.Network.Vertices = 0 }},
		{"network edge range", func(c *config.Config) { c.Network.Edges[0].To = 5 }},
		{"network loop", func(c *config.Config) { c.Network.Edges[0].To = 0 }},
		{"network weight", func(c *config.Config) { c.Network.Edges[0].Weight = -1 }},
		{"network source", func(c *config.Config) { c.Network.Source = 5 }},
		{"network method", func(c *config.Config) { c.Network.Method = "boruvka" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
