package kg

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/biokg/go-biokg/pkg/types"
)

// Default export filenames within the graph output directory.
const (
	GEXFFile    = "knowledge_graph.gexf"
	GraphMLFile = "knowledge_graph.graphml"
	HTMLFile    = "knowledge_graph.html"
)

// Export writes the GEXF and GraphML serializations of the graph into
// dir. The two files describe the same directed attributed graph.
func (g *Graph) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create graph dir: %w", err)
	}
	if err := g.WriteGEXF(filepath.Join(dir, GEXFFile)); err != nil {
		return err
	}
	return g.WriteGraphML(filepath.Join(dir, GraphMLFile))
}

// --- GEXF ---

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfAttValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttValue `xml:"attvalues>attvalue,omitempty"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Label  string `xml:"label,attr"`
}

type gexfGraph struct {
	DefaultEdgeType string          `xml:"defaultedgetype,attr"`
	Attributes      []gexfAttribute `xml:"attributes>attribute"`
	Nodes           []gexfNode      `xml:"nodes>node"`
	Edges           []gexfEdge      `xml:"edges>edge"`
}

type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

// WriteGEXF serializes the graph in GEXF 1.2 format.
func (g *Graph) WriteGEXF(path string) error {
	doc := gexfDoc{
		XMLNS:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			DefaultEdgeType: "directed",
			Attributes: []gexfAttribute{
				{ID: "0", Title: "type", Type: "string"},
			},
		},
	}
	for i, dim := range types.BigFiveDimensions {
		doc.Graph.Attributes = append(doc.Graph.Attributes, gexfAttribute{
			ID:    strconv.Itoa(i + 1),
			Title: dim,
			Type:  "double",
		})
	}

	for _, node := range g.Nodes() {
		n := gexfNode{
			ID:    node.Name,
			Label: node.Name,
			AttValues: []gexfAttValue{
				{For: "0", Value: string(node.Label)},
			},
		}
		for i, dim := range types.BigFiveDimensions {
			if score, ok := node.Scores[dim]; ok {
				n.AttValues = append(n.AttValues, gexfAttValue{
					For:   strconv.Itoa(i + 1),
					Value: strconv.FormatFloat(score, 'g', -1, 64),
				})
			}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}

	for _, edge := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     edge.ID,
			Source: edge.Source,
			Target: edge.Target,
			Label:  edge.Label,
		})
	}

	return writeXML(path, doc)
}

// --- GraphML ---

type graphmlKey struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
	AttrType string `xml:"attr.type,attr"`
}

type graphmlData struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

type graphmlNode struct {
	ID   string        `xml:"id,attr"`
	Data []graphmlData `xml:"data"`
}

type graphmlEdge struct {
	Source string        `xml:"source,attr"`
	Target string        `xml:"target,attr"`
	Data   []graphmlData `xml:"data"`
}

type graphmlGraph struct {
	EdgeDefault string        `xml:"edgedefault,attr"`
	Nodes       []graphmlNode `xml:"node"`
	Edges       []graphmlEdge `xml:"edge"`
}

type graphmlDoc struct {
	XMLName xml.Name     `xml:"graphml"`
	XMLNS   string       `xml:"xmlns,attr"`
	Keys    []graphmlKey `xml:"key"`
	Graph   graphmlGraph `xml:"graph"`
}

// WriteGraphML serializes the graph in GraphML format, isomorphic to the
// GEXF export.
func (g *Graph) WriteGraphML(path string) error {
	doc := graphmlDoc{
		XMLNS: "http://graphml.graphdrawing.org/xmlns",
		Keys: []graphmlKey{
			{ID: "d0", For: "node", AttrName: "type", AttrType: "string"},
		},
		Graph: graphmlGraph{EdgeDefault: "directed"},
	}
	for i, dim := range types.BigFiveDimensions {
		doc.Keys = append(doc.Keys, graphmlKey{
			ID:       fmt.Sprintf("d%d", i+1),
			For:      "node",
			AttrName: dim,
			AttrType: "double",
		})
	}
	edgeLabelKey := fmt.Sprintf("d%d", len(types.BigFiveDimensions)+1)
	doc.Keys = append(doc.Keys, graphmlKey{
		ID: edgeLabelKey, For: "edge", AttrName: "label", AttrType: "string",
	})

	for _, node := range g.Nodes() {
		n := graphmlNode{
			ID:   node.Name,
			Data: []graphmlData{{Key: "d0", Value: string(node.Label)}},
		}
		for i, dim := range types.BigFiveDimensions {
			if score, ok := node.Scores[dim]; ok {
				n.Data = append(n.Data, graphmlData{
					Key:   fmt.Sprintf("d%d", i+1),
					Value: strconv.FormatFloat(score, 'g', -1, 64),
				})
			}
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}

	for _, edge := range g.Edges {
		doc.Graph.Edges = append(doc.Graph.Edges, graphmlEdge{
			Source: edge.Source,
			Target: edge.Target,
			Data:   []graphmlData{{Key: edgeLabelKey, Value: edge.Label}},
		})
	}

	return writeXML(path, doc)
}

func writeXML(path string, doc any) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	payload := append([]byte(xml.Header), data...)
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
