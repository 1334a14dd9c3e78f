package diagram

import (
	"fmt"
	"strings"
)

// DOT renders g as a Graphviz digraph.
func DOT(g Graph, overlay *Overlay) string {
	highlighted, current := overlay.path(g)

	var sb strings.Builder
	sb.WriteString("digraph morse {\n")
	sb.WriteString("    rankdir=LR;\n")
	for _, n := range g.Nodes {
		attrs := []string{fmt.Sprintf("label=%s", quote(n.Label))}
		switch n.Kind {
		case NodeStart:
			attrs = append(attrs, "shape=circle", "style=filled", "fillcolor=lightblue")
		case NodeAccept:
			fill := "yellow"
			if n.ID == current {
				fill = "orange"
			}
			attrs = append(attrs, "shape=doublecircle", "style=filled", "fillcolor="+fill)
		}
		sb.WriteString(fmt.Sprintf("    %s [%s];\n", quote(n.ID), strings.Join(attrs, ", ")))
	}
	for _, e := range g.Edges {
		color := "black"
		extra := ""
		if highlighted[e] {
			color = "red"
			extra = ", penwidth=2"
		}
		sb.WriteString(fmt.Sprintf("    %s -> %s [label=%s, color=%s%s];\n", quote(e.From), quote(e.To), quote(e.Label), color, extra))
	}
	sb.WriteString("}\n")
	return sb.String()
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
