package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"prepdeck/internal/catalog"
	"prepdeck/internal/session"
	"prepdeck/internal/store"
)

func (m mcqModel) view(noColor bool) string {
	if m.exam != nil {
		return m.viewExam(noColor)
	}
	return m.viewPractice(noColor)
}

func (m mcqModel) viewPractice(noColor bool) string {
	view := m.practice.View()
	header := fmt.Sprintf("Practice | Filter: %s%s | Score: %d",
		difficultyLabel(m.practice.Filter().Difficulty),
		bookmarkLabel(m.practice.Filter().BookmarkOnly),
		view.Score)
	lines := []string{stylize(header, noColor, colorMuted)}

	if view.Empty {
		lines = append(lines, "", stylize("No questions match the current filter.", noColor, colorWarn),
			stylize("Press f or o to widen the filter.", noColor, colorMuted))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	counter := fmt.Sprintf("Question %d/%d | %s | %s%s%s",
		view.Position, view.Total, view.Subject, view.Difficulty,
		markLabel(view.Bookmarked), feedbackLabel(view.Feedback))
	lines = append(lines, stylize(counter, noColor, colorMuted), "", view.Prompt, "")
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
		if view.Explanation != "" {
			lines = append(lines, stylize("Explanation: "+view.Explanation, noColor, colorMuted))
		}
	}
	if m.status != "" {
		lines = append(lines, "", stylize(m.status, noColor, colorWarn))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m mcqModel) viewExam(noColor bool) string {
	view := m.exam.View()
	if view.Finished {
		summary := fmt.Sprintf("Exam finished | Score: %d/%d | Time left: %s", view.Score, view.Total, view.Clock)
		return lipgloss.JoinVertical(lipgloss.Left,
			stylizeBold(summary, noColor, colorAccent),
			m.review.View(),
			stylize("esc back to practice | e new exam", noColor, colorMuted),
		)
	}
	header := fmt.Sprintf("Exam | Question %d/%d | Answered %d/%d | Time: %s",
		view.Position, view.Total, view.Answered, view.Total, view.Clock)
	lines := []string{stylizeBold(header, noColor, colorAccent), "", view.Prompt, ""}
	for i, option := range view.Options {
		lines = append(lines, renderOption(i, option, noColor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// renderOption renders one option with its display class.
func renderOption(index int, option session.OptionView, noColor bool) string {
	line := fmt.Sprintf("%d. %s", index+1, option.Text)
	switch option.Class {
	case session.OptionSelected:
		return stylizeBold("> "+line, noColor, colorSelected)
	case session.OptionCorrect:
		return stylizeBold("+ "+line, noColor, colorCorrect)
	case session.OptionIncorrect:
		return stylizeBold("x "+line, noColor, colorWrong)
	default:
		return "  " + line
	}
}

func difficultyLabel(difficulty catalog.Difficulty) string {
	if difficulty == "" {
		return "All"
	}
	return string(difficulty)
}

func bookmarkLabel(bookmarkOnly bool) string {
	if bookmarkOnly {
		return " (bookmarked only)"
	}
	return ""
}

func markLabel(bookmarked bool) string {
	if bookmarked {
		return " | bookmarked"
	}
	return ""
}

func feedbackLabel(feedback store.Feedback) string {
	switch feedback {
	case store.FeedbackLiked:
		return " | liked"
	case store.FeedbackDisliked:
		return " | disliked"
	default:
		return ""
	}
}
