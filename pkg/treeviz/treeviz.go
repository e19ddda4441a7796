// Package treeviz renders the configured tab tree as a diagram.
//
// # Overview
//
// The tree view is a diagnostic aid for large run configurations: it
// shows every tab, its variant, and its parent/child wiring at a glance.
// [ToDOT] produces Graphviz DOT source; [RenderSVG] renders it in
// process via [github.com/goccy/go-graphviz].
//
//	dot := treeviz.ToDOT(roots)
//	svg, err := treeviz.RenderSVG(dot)
package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/duncanmmacleod/gwsumm/pkg/tabs"
)

// ToDOT converts a tab tree to Graphviz DOT source. Tabs render as
// rounded boxes labelled with the tab name and variant; state tabs list
// their states. Edges run parent to child in tree order.
func ToDOT(roots []tabs.Tab) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tabs {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=rounded, fontname=\"Helvetica\"];\n")

	ids := map[tabs.Tab]string{}
	n := 0
	var walk func(t tabs.Tab)
	walk = func(t tabs.Tab) {
		id := fmt.Sprintf("tab%d", n)
		n++
		ids[t] = id
		fmt.Fprintf(&buf, "  %s [label=%q];\n", id, label(t))
		for _, c := range t.Children() {
			walk(c)
			fmt.Fprintf(&buf, "  %s -> %s;\n", id, ids[c])
		}
	}
	for _, t := range roots {
		walk(t)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// label builds the node label for one tab.
func label(t tabs.Tab) string {
	parts := []string{t.Name()}
	switch v := t.(type) {
	case *tabs.StateTab:
		names := make([]string, len(v.States()))
		for i, s := range v.States() {
			names[i] = s.String()
		}
		parts = append(parts, "states: "+strings.Join(names, ", "))
	case *tabs.PlotTab:
		parts = append(parts, fmt.Sprintf("%d plots", len(v.Plots())))
	case *tabs.ExternalTab:
		parts = append(parts, "external")
	case *tabs.StaticTab:
		parts = append(parts, "static")
	}
	if s := t.Span(); s != nil {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
