package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vkomarov/wayfind/astar"
	"github.com/vkomarov/wayfind/core"
)

var routeFlags struct {
	graphPath string
	from      string
	to        string
	attr      string
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find the cheapest path between two vertices",
	Long: `Route loads a graph description from a YAML file and runs an A* search
between the given vertices.

The graph file lists edges with weights and optional named attributes:

  directed: true
  edges:
    - from: S
      to: A
      weight: 2.5
      attrs:
        toll: 1.5

By default the edge "weight" drives the search; --attr selects a named
attribute instead.`,
	Args: cobra.NoArgs,
	RunE: runRoute,
}

func init() {
	f := routeCmd.Flags()
	f.StringVar(&routeFlags.graphPath, "graph", "", "Path to the YAML graph file (required)")
	f.StringVar(&routeFlags.from, "from", "", "Source vertex ID (required)")
	f.StringVar(&routeFlags.to, "to", "", "Target vertex ID (required)")
	f.StringVar(&routeFlags.attr, "attr", astar.DefaultWeightAttr, "Edge attribute holding the traversal cost")
	_ = routeCmd.MarkFlagRequired("graph")
	_ = routeCmd.MarkFlagRequired("from")
	_ = routeCmd.MarkFlagRequired("to")
}

// graphFile is the YAML schema for --graph.
type graphFile struct {
	Directed bool       `yaml:"directed"`
	Multi    bool       `yaml:"multi"`
	Loops    bool       `yaml:"loops"`
	Vertices []string   `yaml:"vertices"`
	Edges    []edgeSpec `yaml:"edges"`
}

type edgeSpec struct {
	From   string             `yaml:"from"`
	To     string             `yaml:"to"`
	Weight float64            `yaml:"weight"`
	Attrs  map[string]float64 `yaml:"attrs"`
}

// loadGraphFile reads and parses a YAML graph description.
func loadGraphFile(path string) (*graphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph file: %w", err)
	}
	var gf graphFile
	if err := yaml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse graph file %q: %w", path, err)
	}
	if len(gf.Edges) == 0 && len(gf.Vertices) == 0 {
		return nil, fmt.Errorf("graph file %q describes no vertices or edges", path)
	}

	return &gf, nil
}

// buildGraph materializes a graphFile into a core.Graph.
func buildGraph(gf *graphFile) (*core.Graph, error) {
	opts := []core.GraphOption{core.WithWeighted(), core.WithDirected(gf.Directed)}
	if gf.Multi {
		opts = append(opts, core.WithMultiEdges())
	}
	if gf.Loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)

	for _, id := range gf.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("vertex %q: %w", id, err)
		}
	}
	for _, e := range gf.Edges {
		var eopts []core.EdgeOption
		if len(e.Attrs) > 0 {
			eopts = append(eopts, core.WithEdgeAttrs(e.Attrs))
		}
		if _, err := g.AddEdge(e.From, e.To, e.Weight, eopts...); err != nil {
			return nil, fmt.Errorf("edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	gf, err := loadGraphFile(routeFlags.graphPath)
	if err != nil {
		return err
	}
	g, err := buildGraph(gf)
	if err != nil {
		return err
	}

	if routeFlags.attr == "" {
		return fmt.Errorf("--attr must not be empty")
	}
	var searchOpts []astar.Option
	if routeFlags.attr != astar.DefaultWeightAttr {
		searchOpts = append(searchOpts, astar.WithWeightAttr(routeFlags.attr))
	}

	path, err := astar.Path(g, routeFlags.from, routeFlags.to, searchOpts...)
	if err != nil {
		return err
	}
	length, err := astar.PathLength(g, routeFlags.from, routeFlags.to, searchOpts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "path: %s\n", strings.Join(path, " → "))
	fmt.Fprintf(out, "cost: %g\n", length)

	return nil
}
