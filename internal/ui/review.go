package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"prepdeck/internal/session"
)

// newReviewTable builds the results table shown after an exam finishes.
func newReviewTable(rows []session.ReviewRow) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Question", Width: 44},
		{Title: "Your answer", Width: 24},
		{Title: "Correct answer", Width: 24},
		{Title: "Result", Width: 10},
	}
	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		chosen := "-"
		result := "Unanswered"
		if row.Answered {
			chosen = truncate(row.ChosenText, 24)
			if row.Right {
				result = "Correct"
			} else {
				result = "Incorrect"
			}
		}
		tableRows[i] = table.Row{
			strconv.Itoa(row.Index),
			truncate(row.Prompt, 44),
			chosen,
			truncate(row.CorrectText, 24),
			result,
		}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(minInt(len(tableRows)+1, 12)),
	)
	return t
}

// truncate shortens a string for table display.
func truncate(text string, limit int) string {
	normalized := strings.Join(strings.Fields(text), " ")
	if len(normalized) <= limit {
		return normalized
	}
	if limit <= 3 {
		return normalized[:limit]
	}
	return normalized[:limit-3] + "..."
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
