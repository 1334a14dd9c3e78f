// Package diagram renders the Morse code table as a state diagram.
package diagram

import (
	"strings"

	"github.com/verte-zerg/morsetrace/internal/morse"
)

// StartID is the identifier of the initial node.
const StartID = "START"

// NodeKind distinguishes the three node shapes of the diagram.
type NodeKind int

const (
	NodeStart NodeKind = iota
	NodePrefix
	NodeAccept
)

// Node is a diagram node. Prefix nodes are identified by their key prefix,
// accept nodes by the full key followed by "_decoded".
type Node struct {
	ID    string
	Label string
	Kind  NodeKind
}

// Edge is a labelled transition between two nodes.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is the trie of code table keys.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Overlay highlights the path taken by Key. Characters other than dots
// and dashes are ignored.
type Overlay struct {
	Key string
}

// Build constructs the diagram for the whole code table.
func Build() Graph {
	g := Graph{Nodes: []Node{{ID: StartID, Label: StartID, Kind: NodeStart}}}
	seen := map[string]bool{StartID: true}
	for _, entry := range morse.Entries() {
		from := StartID
		for i := 1; i <= len(entry.Key); i++ {
			prefix := entry.Key[:i]
			mark := entry.Key[i-1 : i]
			if !seen[prefix] {
				seen[prefix] = true
				g.Nodes = append(g.Nodes, Node{ID: prefix, Label: prefix + " (" + mark + ")", Kind: NodePrefix})
				g.Edges = append(g.Edges, Edge{From: from, To: prefix, Label: mark})
			}
			from = prefix
		}
		accept := acceptID(entry.Key)
		g.Nodes = append(g.Nodes, Node{ID: accept, Label: string(entry.Char), Kind: NodeAccept})
		g.Edges = append(g.Edges, Edge{From: from, To: accept, Label: "Decode: " + string(entry.Char)})
	}
	g.Edges = append(g.Edges,
		Edge{From: StartID, To: StartID, Label: "/ (word)"},
		Edge{From: StartID, To: StartID, Label: "space"},
	)
	return g
}

func acceptID(key string) string {
	return key + "_decoded"
}

// path returns the highlighted edges and the current accept node, if any.
func (o *Overlay) path(g Graph) (map[Edge]bool, string) {
	edges := map[Edge]bool{}
	if o == nil {
		return edges, ""
	}
	var key strings.Builder
	for _, r := range o.Key {
		if morse.Classify(r) == morse.Dot || morse.Classify(r) == morse.Dash {
			key.WriteRune(r)
		}
	}
	index := make(map[[2]string]Edge, len(g.Edges))
	for _, e := range g.Edges {
		index[[2]string{e.From, e.To}] = e
	}
	k := key.String()
	from := StartID
	for i := 1; i <= len(k); i++ {
		e, ok := index[[2]string{from, k[:i]}]
		if !ok {
			return edges, ""
		}
		edges[e] = true
		from = k[:i]
	}
	if k == "" {
		return edges, ""
	}
	if _, ok := morse.Lookup(k); !ok {
		return edges, ""
	}
	if e, ok := index[[2]string{from, acceptID(k)}]; ok {
		edges[e] = true
	}
	return edges, acceptID(k)
}
