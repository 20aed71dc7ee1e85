package neograph

import (
	"fmt"
	"sort"
)

// Node is one vertex of the in-memory graph. The name is its natural key,
// unique within the graph; the label is the database category it will be
// stored under. Props carries open-ended supplementary attributes and must
// not contain the structural keys "name" or "label".
type Node struct {
	Name  string
	Label string
	Props map[string]interface{}
}

// Edge is one directed edge of the in-memory graph, identified by the ordered
// (From, To) node-name pair plus its relationship label. Parallel edges with
// the same label between the same ordered pair are duplicates and collapse to
// a single persisted relationship.
type Edge struct {
	From  string
	To    string
	Label string
	Props map[string]interface{}
}

// GraphSource is the read interface the Engine needs from a graph container.
// Both enumerations must be repeat-stable within a single Synchronize call.
type GraphSource interface {
	// Nodes returns every node in the graph.
	Nodes() []Node

	// Edges returns every edge in the graph.
	Edges() []Edge

	// Node looks up a node by name. Used to resolve endpoint labels during
	// edge synchronization.
	Node(name string) (Node, bool)
}

//---

// DiGraph is a minimal directed property graph satisfying GraphSource. It is
// a plain value owned by the caller and passed into the Engine; the Engine
// never mutates it. Every edge's endpoints must already be present in the
// node set.
type DiGraph struct {
	nodes map[string]Node
	edges map[edgeKey]Edge
}

type edgeKey struct {
	from, to, label string
}

// NewDiGraph creates an empty graph.
func NewDiGraph() *DiGraph {
	return &DiGraph{
		nodes: make(map[string]Node),
		edges: make(map[edgeKey]Edge),
	}
}

// AddNode adds a node or, if a node with the same name exists, replaces its
// label and properties.
func (g *DiGraph) AddNode(name, label string, props map[string]interface{}) {
	g.nodes[name] = Node{Name: name, Label: label, Props: props}
}

// AddEdge adds a directed edge between two existing nodes. Re-adding an edge
// with the same (from, to, label) triple replaces its properties rather than
// creating a parallel duplicate. An edge referencing an absent endpoint is
// rejected.
func (g *DiGraph) AddEdge(from, to, label string, props map[string]interface{}) error {
	if _, ok := g.nodes[from]; !ok {
		return fmt.Errorf("edge references unknown from-node %q", from)
	}
	if _, ok := g.nodes[to]; !ok {
		return fmt.Errorf("edge references unknown to-node %q", to)
	}
	g.edges[edgeKey{from: from, to: to, label: label}] = Edge{From: from, To: to, Label: label, Props: props}
	return nil
}

// Node returns the node with the given name.
func (g *DiGraph) Node(name string) (Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns all nodes sorted by name, so iteration is stable across
// repeated calls.
func (g *DiGraph) Nodes() []Node {
	names := make([]string, 0, len(g.nodes))
	for name := range g.nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]Node, 0, len(names))
	for _, name := range names {
		nodes = append(nodes, g.nodes[name])
	}
	return nodes
}

// Edges returns all edges sorted by (from, to, label).
func (g *DiGraph) Edges() []Edge {
	keys := make([]edgeKey, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		if keys[i].to != keys[j].to {
			return keys[i].to < keys[j].to
		}
		return keys[i].label < keys[j].label
	})

	edges := make([]Edge, 0, len(keys))
	for _, k := range keys {
		edges = append(edges, g.edges[k])
	}
	return edges
}
