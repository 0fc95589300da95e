package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/catalog"
)

const noOpen = -1

// interviewModel is an accordion over interview questions: at most one
// answer expanded at a time.
type interviewModel struct {
	questions []catalog.InterviewQuestion
	cursor    int
	open      int
}

func newInterviewModel(questions []catalog.InterviewQuestion) interviewModel {
	return interviewModel{questions: questions, open: noOpen}
}

func (m interviewModel) update(key tea.KeyMsg) interviewModel {
	if len(m.questions) == 0 {
		return m
	}
	switch key.String() {
	case "down":
		if m.cursor < len(m.questions)-1 {
			m.cursor++
		}
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if m.open == m.cursor {
			m.open = noOpen
		} else {
			m.open = m.cursor
		}
	}
	return m
}

func (m interviewModel) view(noColor bool) string {
	if len(m.questions) == 0 {
		return stylize("No interview questions in the catalog.", noColor, colorMuted)
	}
	lines := make([]string, 0, len(m.questions)*2)
	for i, question := range m.questions {
		marker := "  "
		if i == m.cursor {
			marker = "> "
		}
		line := fmt.Sprintf("%s[%s] %s", marker, question.Category, question.Question)
		if i == m.cursor {
			line = stylizeBold(line, noColor, colorAccent)
		}
		lines = append(lines, line)
		if i == m.open {
			lines = append(lines, stylize("    "+question.Guidance, noColor, colorMuted))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
