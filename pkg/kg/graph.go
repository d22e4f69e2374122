// Package kg folds the extraction outputs into a directed attributed
// graph and serializes it as GEXF, GraphML, and an interactive HTML page.
package kg

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/biokg/go-biokg/pkg/types"
)

// Node is a graph node keyed by display name. Trait scores are attached
// as numeric attributes when personality estimates exist for the node.
type Node struct {
	Name   string
	Label  types.EntityLabel
	Scores map[string]float64
}

// Edge is a directed labeled edge between two node names.
type Edge struct {
	ID     string
	Source string
	Target string
	Label  string
}

// Graph is a directed attributed graph with insertion-ordered nodes.
type Graph struct {
	nodes map[string]*Node
	order []string
	Edges []*Edge
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// AddNode inserts a node if absent. An existing node keeps its original
// label; re-adding never downgrades a PERSON to UNKNOWN.
func (g *Graph) AddNode(name string, label types.EntityLabel) *Node {
	if n, ok := g.nodes[name]; ok {
		return n
	}
	n := &Node{Name: name, Label: label, Scores: make(map[string]float64)}
	g.nodes[name] = n
	g.order = append(g.order, name)
	return n
}

// Node returns the node with the given name, if present.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.nodes[name]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.nodes[name])
	}
	return out
}

// AddEdge appends a directed labeled edge, creating endpoint nodes as
// UNKNOWN when they are missing.
func (g *Graph) AddEdge(source, target, label string) *Edge {
	g.AddNode(source, types.LabelUnknown)
	g.AddNode(target, types.LabelUnknown)
	e := &Edge{
		ID:     uuid.NewString(),
		Source: source,
		Target: target,
		Label:  label,
	}
	g.Edges = append(g.Edges, e)
	return e
}

// Builder merges entity annotations, extracted relations, and trait
// estimates into one graph.
type Builder struct {
	logger *log.Logger
}

// NewBuilder creates a graph construction stage.
func NewBuilder(logger *log.Logger) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{logger: logger.With("stage", "graph")}
}

// Build assembles the unified graph. Documents are processed in filename
// order so repeated runs over the same inputs produce the same structure.
func (b *Builder) Build(
	entities map[string]types.DocAnnotation,
	relations map[string]types.DocRelations,
	traits map[string]map[string]types.TraitEstimate,
) *Graph {
	g := NewGraph()

	for _, docName := range sortedKeys(entities) {
		for _, span := range entities[docName].Entities {
			g.AddNode(span.Text, span.Label)
		}
	}

	for _, docName := range sortedKeys(relations) {
		for _, rel := range relations[docName].Relations {
			subject := rel.Subject
			// A pronoun subject that survived filtering resolves to the
			// document's first PERSON span.
			if isPronoun(subject) {
				if persons := entities[docName].PersonSpans(); len(persons) > 0 {
					subject = persons[0]
				}
			}
			g.AddEdge(subject, rel.Object, rel.Predicate)
		}
	}

	for _, docName := range sortedKeys(traits) {
		docTraits := traits[docName]
		for _, person := range sortedKeys(docTraits) {
			estimate := docTraits[person]
			node := g.AddNode(person, types.LabelPerson)

			values := estimate.BigFive.Values()
			for i, dim := range types.BigFiveDimensions {
				node.Scores[dim] = values[i]
			}

			for _, word := range estimate.Traits {
				g.AddNode(word, types.LabelTrait)
				g.AddEdge(person, word, "has_trait")
			}
		}
	}

	b.logger.Info("knowledge graph built", "nodes", len(g.order), "edges", len(g.Edges))
	return g
}

func isPronoun(s string) bool {
	switch strings.ToLower(s) {
	case "he", "she":
		return true
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
