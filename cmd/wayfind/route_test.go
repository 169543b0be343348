package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vkomarov/wayfind/astar"
)

// writeGraph writes a YAML graph file into a temp dir and returns its path.
func writeGraph(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadGraphFile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeGraph(t, `
directed: true
vertices: [X]
edges:
  - from: S
    to: A
    weight: 2.5
    attrs:
      toll: 1.5
`)
		gf, err := loadGraphFile(path)
		require.NoError(t, err)
		require.True(t, gf.Directed)
		require.Equal(t, []string{"X"}, gf.Vertices)
		require.Len(t, gf.Edges, 1)
		require.Equal(t, "S", gf.Edges[0].From)
		require.Equal(t, 2.5, gf.Edges[0].Weight)
		require.Equal(t, 1.5, gf.Edges[0].Attrs["toll"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadGraphFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed YAML", func(t *testing.T) {
		path := writeGraph(t, "edges: [\n")
		_, err := loadGraphFile(path)
		require.ErrorContains(t, err, "parse graph file")
	})

	t.Run("empty description", func(t *testing.T) {
		path := writeGraph(t, "directed: true\n")
		_, err := loadGraphFile(path)
		require.ErrorContains(t, err, "no vertices or edges")
	})
}

func TestBuildGraph(t *testing.T) {
	gf := &graphFile{
		Directed: true,
		Vertices: []string{"isolated"},
		Edges: []edgeSpec{
			{From: "S", To: "A", Weight: 2},
			{From: "A", To: "T", Weight: 3, Attrs: map[string]float64{"toll": 1}},
		},
	}
	g, err := buildGraph(gf)
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.True(t, g.HasVertex("isolated"))
	require.Equal(t, 2, g.EdgeCount())

	data, err := g.EdgeData("A", "T")
	require.NoError(t, err)
	require.Equal(t, 3.0, data["weight"])
	require.Equal(t, 1.0, data["toll"])

	// Duplicate edges are rejected unless multi is set.
	gf.Edges = append(gf.Edges, edgeSpec{From: "S", To: "A", Weight: 9})
	_, err = buildGraph(gf)
	require.Error(t, err)
	gf.Multi = true
	_, err = buildGraph(gf)
	require.NoError(t, err)
}

// execRoute runs "wayfind route" with the given extra args and returns stdout.
func execRoute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flag values persist across Execute calls on the shared command tree,
	// so restore every bound value to its default before each run.
	routeFlags.graphPath = ""
	routeFlags.from = ""
	routeFlags.to = ""
	routeFlags.attr = astar.DefaultWeightAttr
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append([]string{"route"}, args...))
	err := rootCmd.Execute()

	return buf.String(), err
}

func TestRouteCommand(t *testing.T) {
	path := writeGraph(t, `
directed: true
edges:
  - from: S
    to: A
    weight: 2
    attrs: {toll: 10}
  - from: A
    to: T
    weight: 3
    attrs: {toll: 1}
  - from: S
    to: T
    weight: 6
    attrs: {toll: 2}
`)

	t.Run("weight mode", func(t *testing.T) {
		out, err := execRoute(t, "--graph", path, "--from", "S", "--to", "T")
		require.NoError(t, err)
		require.Contains(t, out, "path: S → A → T")
		require.Contains(t, out, "cost: 5")
	})

	t.Run("attr mode", func(t *testing.T) {
		out, err := execRoute(t, "--graph", path, "--from", "S", "--to", "T", "--attr", "toll")
		require.NoError(t, err)
		require.Contains(t, out, "path: S → T")
		require.Contains(t, out, "cost: 2")
	})

	t.Run("unknown vertex", func(t *testing.T) {
		_, err := execRoute(t, "--graph", path, "--from", "S", "--to", "Z")
		require.True(t, errors.Is(err, astar.ErrVertexNotFound))
	})

	t.Run("no path", func(t *testing.T) {
		p := writeGraph(t, `
directed: true
vertices: [Z]
edges:
  - {from: S, to: T, weight: 1}
`)
		_, err := execRoute(t, "--graph", p, "--from", "T", "--to", "S")
		require.True(t, errors.Is(err, astar.ErrNoPath))
	})
}
