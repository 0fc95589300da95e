package ui

import (
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/catalog"
	"prepdeck/internal/session"
	"prepdeck/internal/store"
)

// flashModel is the flashcard player plus an optional generated quiz run.
// The quiz is practice over questions derived from the cards; its score is
// ephemeral, so it runs against an in-memory store.
type flashModel struct {
	cards   []catalog.Flashcard
	index   int
	flipped bool
	rng     *rand.Rand
	quiz    *session.Practice
}

func newFlashModel(cards []catalog.Flashcard, rng *rand.Rand) flashModel {
	return flashModel{cards: cards, rng: rng}
}

func (m flashModel) update(key tea.KeyMsg) flashModel {
	if m.quiz != nil {
		return m.updateQuiz(key)
	}
	if len(m.cards) == 0 {
		return m
	}
	switch key.String() {
	case " ", "space":
		m.flipped = !m.flipped
	case "right":
		m.index = (m.index + 1) % len(m.cards)
		m.flipped = false
	case "left":
		m.index = (m.index + len(m.cards) - 1) % len(m.cards)
		m.flipped = false
	case "g":
		generated := catalog.GeneratedQuiz(m.cards, m.rng)
		if len(generated) > 0 {
			m.quiz = session.NewPractice(generated, store.NewMemoryStore(), m.rng)
		}
	}
	return m
}

func (m flashModel) updateQuiz(key tea.KeyMsg) flashModel {
	switch key.String() {
	case "esc":
		m.quiz = nil
		return m
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.quiz.SelectOption(int(key.String()[0]-'0') - 1)
	case "enter":
		if m.quiz.Phase() == session.PhaseRevealed {
			m.quiz.Advance()
		} else {
			m.quiz.ConfirmAnswer()
		}
	}
	return m
}

func (m flashModel) view(noColor bool) string {
	if m.quiz != nil {
		return m.viewQuiz(noColor)
	}
	if len(m.cards) == 0 {
		return stylize("No flashcards in the catalog.", noColor, colorMuted)
	}
	card := m.cards[m.index]
	side := "Front"
	text := card.Front
	if m.flipped {
		side = "Back"
		text = card.Back
	}
	header := fmt.Sprintf("Card %d of %d | %s | %s", m.index+1, len(m.cards), card.Subject, side)
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(header, noColor, colorMuted),
		renderProgressBar(m.index+1, len(m.cards), noColor),
		"",
		text,
	)
}

func (m flashModel) viewQuiz(noColor bool) string {
	view := m.quiz.View()
	if view.Empty {
		return stylize("Not enough flashcards to build a quiz.", noColor, colorWarn)
	}
	header := fmt.Sprintf("Flashcard quiz | Question %d/%d | Score: %d", view.Position, view.Total, view.Score)
	lines := []string{stylize(header, noColor, colorMuted), "", view.Prompt, ""}
	for i, option := range view.Options {
		lines = append(lines, renderOption(i, option, noColor))
	}
	if view.Revealed {
		verdict := "Incorrect"
		color := colorWrong
		if view.Correct {
			verdict = "Correct"
			color = colorCorrect
		}
		lines = append(lines, "", stylizeBold(verdict, noColor, color))
	}
	lines = append(lines, "", stylize("esc back to cards", noColor, colorMuted))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderProgressBar renders a simple position bar.
func renderProgressBar(position, total int, noColor bool) string {
	const width = 30
	if total <= 0 {
		return ""
	}
	filled := position * width / total
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "="
		} else {
			bar += "-"
		}
	}
	return stylize("["+bar+"]", noColor, colorAccent)
}
