package kg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/biokg/go-biokg/pkg/types"
)

// labelColors is the base palette per node label.
var labelColors = map[types.EntityLabel]string{
	types.LabelPerson:   "#FFB74D", // orange
	types.LabelOrg:      "#64B5F6", // blue
	types.LabelLocation: "#81C784", // green
	types.LabelGPE:      "#81C784", // green
	types.LabelTrait:    "#BA68C8", // purple
	types.LabelUnknown:  "#E0E0E0", // gray
}

// DefaultHighlightTrait drives person node size and brightness in the
// HTML view.
const DefaultHighlightTrait = "extraversion"

type vizNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Title string  `json:"title"`
	Color string  `json:"color"`
	Shape string  `json:"shape"`
	Size  float64 `json:"size"`
}

type vizEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// WriteHTML renders a self-contained interactive page: directed graph,
// colored by node label, person nodes sized and brightened by the
// highlight trait, and click-to-filter showing only a node's neighbors.
func (g *Graph) WriteHTML(path, highlightTrait string) error {
	if highlightTrait == "" {
		highlightTrait = DefaultHighlightTrait
	}

	var nodes []vizNode
	for _, node := range g.Nodes() {
		base := labelColors[node.Label]
		if base == "" {
			base = labelColors[types.LabelUnknown]
		}

		brightness := 1.0
		size := 90.0
		if node.Label == types.LabelPerson {
			size = 120.0
			if val, ok := node.Scores[highlightTrait]; ok {
				brightness = 0.5 + val*0.7
				size = 90 + val*80
			}
		}

		nodes = append(nodes, vizNode{
			ID:    node.Name,
			Label: node.Name,
			Title: nodeTooltip(node),
			Color: adjustColor(base, brightness),
			Shape: "dot",
			Size:  size,
		})
	}

	var edges []vizEdge
	for _, edge := range g.Edges {
		edges = append(edges, vizEdge{From: edge.Source, To: edge.Target, Label: edge.Label})
	}

	nodesJSON, err := json.Marshal(nodes)
	if err != nil {
		return fmt.Errorf("failed to marshal viz nodes: %w", err)
	}
	edgesJSON, err := json.Marshal(edges)
	if err != nil {
		return fmt.Errorf("failed to marshal viz edges: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create viz dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	return vizTemplate.Execute(f, map[string]any{
		"Nodes": string(nodesJSON),
		"Edges": string(edgesJSON),
	})
}

func nodeTooltip(node *Node) string {
	lines := []string{node.Name, "Type: " + string(node.Label)}
	for _, dim := range types.BigFiveDimensions {
		if score, ok := node.Scores[dim]; ok {
			lines = append(lines, fmt.Sprintf("%s%s: %.2f", strings.ToUpper(dim[:1]), dim[1:], score))
		}
	}
	return strings.Join(lines, "\n")
}

// adjustColor scales a #rrggbb color by a brightness factor, clamping
// each channel at 255.
func adjustColor(hexColor string, factor float64) string {
	if len(hexColor) != 7 || factor == 1.0 {
		return hexColor
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hexColor, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return hexColor
	}
	scale := func(c int) int {
		v := int(float64(c) * factor)
		if v > 255 {
			return 255
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b))
}

var vizTemplate = template.Must(template.New("viz").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Knowledge Graph</title>
  <script src="https://unpkg.com/vis-network/standalone/umd/vis-network.min.js"></script>
  <style>
    #graph { width: 100%; height: 1960px; border: 1px solid #ddd; }
  </style>
</head>
<body>
<div id="graph"></div>
<script type="text/javascript">
  var nodes = new vis.DataSet({{.Nodes}});
  var edges = new vis.DataSet({{.Edges}});
  var container = document.getElementById("graph");
  var network = new vis.Network(container, { nodes: nodes, edges: edges }, {
    physics: { barnesHut: { gravitationalConstant: -8000 } },
    edges: { arrows: "to", color: "#888", width: 6, font: { size: 40, strokeWidth: 3, strokeColor: "#ffffff" } },
    nodes: { font: { size: 40 } }
  });

  var hiddenNodes = [];
  network.on("click", function (params) {
    if (params.nodes.length > 0) {
      var selectedNode = params.nodes[0];
      var connectedNodes = network.getConnectedNodes(selectedNode);
      connectedNodes.push(selectedNode);

      var allNodes = nodes.get({ returnType: "Object" });
      hiddenNodes = [];
      for (var nodeId in allNodes) {
        if (connectedNodes.indexOf(nodeId) == -1) {
          hiddenNodes.push(nodeId);
        }
      }
      nodes.update(hiddenNodes.map(function (id) { return { id: id, hidden: true }; }));
    } else if (hiddenNodes.length > 0) {
      nodes.update(hiddenNodes.map(function (id) { return { id: id, hidden: false }; }));
      hiddenNodes = [];
    }
  });
</script>
</body>
</html>
`))
