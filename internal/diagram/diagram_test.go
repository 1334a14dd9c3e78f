package diagram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/morsetrace/internal/diagram"
)

func TestBuildShape(t *testing.T) {
	g := diagram.Build()
	counts := map[diagram.NodeKind]int{}
	ids := map[string]bool{}
	for _, n := range g.Nodes {
		require.False(t, ids[n.ID], "duplicate node %s", n.ID)
		ids[n.ID] = true
		counts[n.Kind]++
	}
	assert.Equal(t, 1, counts[diagram.NodeStart])
	assert.Equal(t, 36, counts[diagram.NodeAccept])
	// Every key is a prefix node, plus "----", "..--" and "---." which only lead to digits.
	assert.Equal(t, 39, counts[diagram.NodePrefix])
	assert.Len(t, g.Edges, 39+36+2)

	for _, e := range g.Edges {
		assert.True(t, ids[e.From], "edge from unknown node %s", e.From)
		assert.True(t, ids[e.To], "edge to unknown node %s", e.To)
	}
}

func TestDOT(t *testing.T) {
	tests := []struct {
		name     string
		overlay  *diagram.Overlay
		contains []string
		excludes []string
	}{
		{
			name: "Plain",
			contains: []string{
				"rankdir=LR;",
				`"START" [label="START", shape=circle, style=filled, fillcolor=lightblue];`,
				`".-_decoded" [label="A", shape=doublecircle, style=filled, fillcolor=yellow];`,
				`".-" -> ".-_decoded" [label="Decode: A", color=black];`,
				`"START" -> "START" [label="space", color=black];`,
			},
			excludes: []string{"color=red", "orange"},
		},
		{
			name:    "Path",
			overlay: &diagram.Overlay{Key: ".-"},
			contains: []string{
				`"START" -> "." [label=".", color=red, penwidth=2];`,
				`"." -> ".-" [label="-", color=red, penwidth=2];`,
				`".-" -> ".-_decoded" [label="Decode: A", color=red, penwidth=2];`,
				`".-_decoded" [label="A", shape=doublecircle, style=filled, fillcolor=orange];`,
			},
		},
		{
			name:    "Unknown key stops at last prefix",
			overlay: &diagram.Overlay{Key: "..--"},
			contains: []string{
				`"..-" -> "..--" [label="-", color=red, penwidth=2];`,
			},
			excludes: []string{"orange"},
		},
		{
			name:     "Separators ignored",
			overlay:  &diagram.Overlay{Key: "- x"},
			contains: []string{`"-_decoded" [label="T", shape=doublecircle, style=filled, fillcolor=orange];`},
		},
	}
	g := diagram.Build()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diagram.DOT(g, tt.overlay)
			assert.True(t, strings.HasPrefix(got, "digraph morse {\n"))
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
		})
	}
}

func TestMermaid(t *testing.T) {
	g := diagram.Build()

	got := diagram.Mermaid(g, nil)
	assert.True(t, strings.HasPrefix(got, "graph LR\n"))
	assert.Contains(t, got, `START(("START"))`)
	assert.Contains(t, got, `k_dh["`+`.- (-)"]`)
	assert.Contains(t, got, `k_dh_decoded((("A")))`)
	assert.Contains(t, got, `k_d -- "-" --> k_dh`)
	assert.NotContains(t, got, "Overlay Styles")

	got = diagram.Mermaid(g, &diagram.Overlay{Key: "..."})
	assert.Contains(t, got, "linkStyle ")
	assert.Contains(t, got, "class k_ddd_decoded current;")
}

func TestDeterministic(t *testing.T) {
	overlay := &diagram.Overlay{Key: "-.-."}
	assert.Equal(t, diagram.DOT(diagram.Build(), overlay), diagram.DOT(diagram.Build(), overlay))
	assert.Equal(t, diagram.Mermaid(diagram.Build(), overlay), diagram.Mermaid(diagram.Build(), overlay))
}
