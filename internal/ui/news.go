package ui

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/catalog"
)

// newsModel lists current-affairs digests, newest first.
type newsModel struct {
	items  []catalog.NewsItem
	cursor int
}

func newNewsModel(items []catalog.NewsItem) newsModel {
	sorted := make([]catalog.NewsItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return newsModel{items: sorted}
}

func (m newsModel) update(key tea.KeyMsg) newsModel {
	if len(m.items) == 0 {
		return m
	}
	switch key.String() {
	case "down", "right":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "up", "left":
		if m.cursor > 0 {
			m.cursor--
		}
	}
	return m
}

func (m newsModel) view(noColor bool) string {
	if len(m.items) == 0 {
		return stylize("No current-affairs items in the catalog.", noColor, colorMuted)
	}
	lines := make([]string, 0, len(m.items)*2)
	for i, item := range m.items {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		header := fmt.Sprintf("%s%s | %s | %s", marker, item.Date, item.Category, item.Title)
		if i == m.cursor {
			lines = append(lines, stylizeBold(header, noColor, colorAccent))
			lines = append(lines, stylize("    "+item.Summary, noColor, colorMuted))
		} else {
			lines = append(lines, header)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
