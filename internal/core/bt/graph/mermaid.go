// Package graph renders built behavior trees as Mermaid flowcharts.
package graph

import (
	"fmt"
	"strings"

	"github.com/zeusync/btree/internal/core/bt"
)

// GenerateMermaid produces a top-down Mermaid flowchart of tree.
// Shapes follow the node kind:
// - Root: ((Circle))
// - Selector: {Rhombus}, edges labelled with the signal that picks them
// - RandomSelector: {{Hexagon}}
// - Sequence: [[Subroutine]]
// - Action: [Rectangle] with its success probability
func GenerateMermaid(tree *bt.Tree) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if tree == nil {
		return sb.String()
	}

	r := renderer{sb: &sb}
	root := r.next()
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", root, escape(tree.Name())))
	if child := tree.Root().Child(); child != nil {
		id := r.node(child)
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", root, id))
	}
	return sb.String()
}

type renderer struct {
	sb  *strings.Builder
	seq int
}

// Declared ids are not unique across a tree, so every node gets a positional id.
func (r *renderer) next() string {
	id := fmt.Sprintf("n%d", r.seq)
	r.seq++
	return id
}

func (r *renderer) node(n bt.Node) string {
	id := r.next()
	var children []bt.Node
	var labels []string

	switch v := n.(type) {
	case *bt.Selector:
		r.line("%s{\"%s #%d\"}", id, escape(v.Name()), v.ID())
		children = v.Children()
		labels = selectorLabels(len(children))
	case *bt.RandomSelector:
		r.line("%s{{\"random #%d\"}}", id, v.ID())
		children = v.Children()
	case *bt.Sequence:
		r.line("%s[[\"sequence #%d\"]]", id, v.ID())
		children = v.Children()
	case *bt.Action:
		r.line("%s[\"%s #%d <br/> p=%g\"]", id, escape(v.Description()), v.ID(), v.Probability())
	default:
		r.line("%s[\"%T\"]", id, n)
	}

	for i, c := range children {
		cid := r.node(c)
		if i < len(labels) {
			r.line("%s -- \"%s\" --> %s", id, labels[i], cid)
			continue
		}
		r.line("%s --> %s", id, cid)
	}
	return id
}

func (r *renderer) line(format string, args ...any) {
	r.sb.WriteString("    ")
	r.sb.WriteString(fmt.Sprintf(format, args...))
	r.sb.WriteString("\n")
}

// Selectors with unsupported child counts never dispatch, so their edges stay
// unlabelled.
func selectorLabels(n int) []string {
	switch n {
	case 2:
		return []string{"0", "else"}
	case 3:
		return []string{"0", "1", "else"}
	default:
		return nil
	}
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
