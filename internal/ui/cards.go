package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/catalog"
)

// cardsModel is the knowledge-card reel feed.
type cardsModel struct {
	cards []catalog.Card
	index int
}

func newCardsModel(cards []catalog.Card) cardsModel {
	return cardsModel{cards: cards}
}

func (m cardsModel) update(key tea.KeyMsg) cardsModel {
	if len(m.cards) == 0 {
		return m
	}
	switch key.String() {
	case "right", "down":
		m.index = (m.index + 1) % len(m.cards)
	case "left", "up":
		m.index = (m.index + len(m.cards) - 1) % len(m.cards)
	}
	return m
}

func (m cardsModel) view(noColor bool) string {
	if len(m.cards) == 0 {
		return stylize("No cards in the catalog.", noColor, colorMuted)
	}
	card := m.cards[m.index]
	accent := colorAccent
	if card.Accent != "" {
		accent = lipgloss.Color(card.Accent)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(fmt.Sprintf("Card %d of %d | %s", m.index+1, len(m.cards), card.Subject), noColor, colorMuted),
		"",
		stylizeBold(card.Title, noColor, accent),
		"",
		card.Body,
	)
}
