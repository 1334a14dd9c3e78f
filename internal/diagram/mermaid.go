package diagram

import (
	"fmt"
	"strings"
)

// Mermaid renders g as a Mermaid flowchart.
// Node shapes:
// - Start: ((Circle))
// - Accept: (((Double circle)))
// - Prefix: [Rectangle]
// Highlighted edges are styled with linkStyle, the current accept node with classDef.
func Mermaid(g Graph, overlay *Overlay) string {
	highlighted, current := overlay.path(g)

	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for _, n := range g.Nodes {
		opener, closer := "[", "]"
		switch n.Kind {
		case NodeStart:
			opener, closer = "((", "))"
		case NodeAccept:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", sanitizeMermaidID(n.ID), opener, n.Label, closer))
	}

	var links []string
	for i, e := range g.Edges {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", sanitizeMermaidID(e.From), e.Label, sanitizeMermaidID(e.To)))
		if highlighted[e] {
			links = append(links, fmt.Sprint(i))
		}
	}

	if len(links) > 0 || current != "" {
		sb.WriteString("\n    %% Overlay Styles\n")
		if len(links) > 0 {
			sb.WriteString(fmt.Sprintf("    linkStyle %s stroke:red,stroke-width:2px;\n", strings.Join(links, ",")))
		}
		if current != "" {
			sb.WriteString("    classDef current fill:orange,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
			sb.WriteString(fmt.Sprintf("    class %s current;\n", sanitizeMermaidID(current)))
		}
	}
	return sb.String()
}

// sanitizeMermaidID spells dots and dashes as letters so keys are valid IDs.
func sanitizeMermaidID(id string) string {
	if id == StartID {
		return id
	}
	var b strings.Builder
	b.WriteString("k_")
	for _, r := range id {
		switch r {
		case '.':
			b.WriteByte('d')
		case '-':
			b.WriteByte('h')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
