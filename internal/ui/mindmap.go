package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/catalog"
)

// mindMapModel renders mind maps as indented trees.
type mindMapModel struct {
	maps  []catalog.MindMap
	index int
}

func newMindMapModel(maps []catalog.MindMap) mindMapModel {
	return mindMapModel{maps: maps}
}

func (m mindMapModel) update(key tea.KeyMsg) mindMapModel {
	if len(m.maps) == 0 {
		return m
	}
	switch key.String() {
	case "right":
		m.index = (m.index + 1) % len(m.maps)
	case "left":
		m.index = (m.index + len(m.maps) - 1) % len(m.maps)
	}
	return m
}

func (m mindMapModel) view(noColor bool) string {
	if len(m.maps) == 0 {
		return stylize("No mind maps in the catalog.", noColor, colorMuted)
	}
	mindMap := m.maps[m.index]
	var builder strings.Builder
	for _, node := range mindMap.Nodes {
		writeMindMapNode(&builder, node, 0)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(fmt.Sprintf("Map %d of %d | %s", m.index+1, len(m.maps), mindMap.Subject), noColor, colorMuted),
		"",
		stylizeBold(mindMap.Topic, noColor, colorAccent),
		"",
		strings.TrimRight(builder.String(), "\n"),
	)
}

func writeMindMapNode(builder *strings.Builder, node catalog.MindMapNode, depth int) {
	builder.WriteString(strings.Repeat("  ", depth))
	builder.WriteString("- ")
	builder.WriteString(node.Label)
	builder.WriteString("\n")
	for _, child := range node.Children {
		writeMindMapNode(builder, child, depth+1)
	}
}
