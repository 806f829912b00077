package skills

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	flowBlockLanguage = "mermaid"
	edgeArrow         = "-->"

	beginMarker = "BEGIN"
	endMarker   = "END"
)

// NodeShape records how a flowchart node was drawn. Stadium-shaped
// nodes mark flow terminals.
type NodeShape string

const (
	ShapeDefault NodeShape = "default"
	ShapeRect    NodeShape = "rect"
	ShapeRound   NodeShape = "round"
	ShapeStadium NodeShape = "stadium"
)

// FlowNode is a single node of a flowchart. IDs are case-sensitive
// opaque strings.
type FlowNode struct {
	ID    string
	Label string
	Shape NodeShape
}

// FlowEdge is a directed edge between two nodes. Edges are not
// deduplicated; the graph is a multigraph.
type FlowEdge struct {
	From  string
	To    string
	Label string
}

// FlowGraph holds every node and edge declared in a flow block.
type FlowGraph struct {
	Nodes map[string]FlowNode
	Edges []FlowEdge
}

// FlowDefinition is the parsed flow of a flow skill. It exists only
// when the chart declared exactly one begin node and at least one end
// node.
type FlowDefinition struct {
	BeginID string
	Graph   FlowGraph
}

var nodeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// parseFlow locates the first mermaid-tagged fenced block in body and
// parses it. It returns (nil, nil) when no block is present and an
// error when the block does not satisfy the begin/end requirements;
// callers treat both as "no flow".
func parseFlow(body string) (*FlowDefinition, error) {
	block, found := extractFlowBlock(body)
	if !found {
		return nil, nil
	}
	return parseFlowGraph(block)
}

// extractFlowBlock walks the markdown AST and returns the content of
// the first fenced code block whose language tag is mermaid.
func extractFlowBlock(body string) (string, bool) {
	src := []byte(body)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	var block string
	found := false
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(fenced.Language(src)) != flowBlockLanguage {
			return ast.WalkContinue, nil
		}

		var sb strings.Builder
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			sb.Write(seg.Value(src))
		}
		block = sb.String()
		found = true
		return ast.WalkStop, nil
	})

	return block, found
}

// parseFlowGraph parses the line-oriented flowchart grammar: an
// optional `flowchart`/`graph` header, `%%` comments, standalone node
// declarations and `A --> B` edge chains. Lines that fit none of these
// are skipped rather than failing the parse.
func parseFlowGraph(block string) (*FlowDefinition, error) {
	graph := FlowGraph{Nodes: make(map[string]FlowNode)}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "", strings.HasPrefix(line, "%%"):
			continue
		case strings.HasPrefix(line, "flowchart"), strings.HasPrefix(line, "graph"):
			continue
		case strings.Contains(line, edgeArrow):
			parseEdgeChain(&graph, line)
		default:
			if node, ok := parseNodeDecl(line); ok {
				declareNode(&graph, node)
			}
		}
	}

	begin, err := findBeginNode(graph)
	if err != nil {
		return nil, err
	}
	if !hasEndNode(graph) {
		return nil, errors.New("flow block declares no end node")
	}

	return &FlowDefinition{BeginID: begin.ID, Graph: graph}, nil
}

// parseEdgeChain handles `A --> B --> C` chains, where each segment
// after the first may carry an edge label written as `|label|`. Nodes
// referenced by a chain are declared inline.
func parseEdgeChain(graph *FlowGraph, line string) {
	segments := strings.Split(line, edgeArrow)

	var prev string
	havePrev := false
	for i, segment := range segments {
		label := ""
		segment = strings.TrimSpace(segment)
		if i > 0 && strings.HasPrefix(segment, "|") {
			if end := strings.Index(segment[1:], "|"); end >= 0 {
				label = strings.TrimSpace(segment[1 : end+1])
				segment = strings.TrimSpace(segment[end+2:])
			}
		}

		node, ok := parseNodeDecl(segment)
		if !ok {
			havePrev = false
			continue
		}
		declareNode(graph, node)

		if havePrev {
			graph.Edges = append(graph.Edges, FlowEdge{From: prev, To: node.ID, Label: label})
		}
		prev = node.ID
		havePrev = true
	}
}

// parseNodeDecl parses a node reference: a bare id, `ID[label]`,
// `ID(label)` or the stadium form `ID([label])`.
func parseNodeDecl(decl string) (FlowNode, bool) {
	decl = strings.TrimSpace(decl)

	type shapeDelims struct {
		open  string
		close string
		shape NodeShape
	}
	for _, d := range []shapeDelims{
		{"([", "])", ShapeStadium},
		{"[", "]", ShapeRect},
		{"(", ")", ShapeRound},
	} {
		open := strings.Index(decl, d.open)
		if open <= 0 || !strings.HasSuffix(decl, d.close) {
			continue
		}
		id := strings.TrimSpace(decl[:open])
		if !nodeIDPattern.MatchString(id) {
			return FlowNode{}, false
		}
		label := decl[open+len(d.open) : len(decl)-len(d.close)]
		return FlowNode{ID: id, Label: strings.TrimSpace(label), Shape: d.shape}, true
	}

	if !nodeIDPattern.MatchString(decl) {
		return FlowNode{}, false
	}
	return FlowNode{ID: decl, Shape: ShapeDefault}, true
}

// declareNode inserts a node into the graph. Shaped declarations
// overwrite earlier ones; a bare reference never erases an existing
// shaped declaration.
func declareNode(graph *FlowGraph, node FlowNode) {
	if node.Shape == ShapeDefault {
		if _, exists := graph.Nodes[node.ID]; exists {
			return
		}
	}
	graph.Nodes[node.ID] = node
}

// findBeginNode returns the single begin-marked node, erroring when
// none or several exist.
func findBeginNode(graph FlowGraph) (FlowNode, error) {
	var begin FlowNode
	count := 0
	for _, node := range graph.Nodes {
		if isMarked(node, beginMarker) {
			begin = node
			count++
		}
	}
	switch count {
	case 0:
		return FlowNode{}, errors.New("flow block declares no begin node")
	case 1:
		return begin, nil
	default:
		return FlowNode{}, errors.Errorf("flow block declares %d begin nodes", count)
	}
}

func hasEndNode(graph FlowGraph) bool {
	for _, node := range graph.Nodes {
		if isMarked(node, endMarker) {
			return true
		}
	}
	return false
}

// isMarked reports whether a node carries the given terminal marker,
// either as its id or as the label of a stadium-shaped node. Matching
// is case-sensitive.
func isMarked(node FlowNode, marker string) bool {
	if node.ID == marker {
		return true
	}
	return node.Shape == ShapeStadium && node.Label == marker
}
