package ui

import "github.com/charmbracelet/lipgloss"

// Palette used across the shell.
var (
	colorAccent   = lipgloss.Color("39")
	colorMuted    = lipgloss.Color("242")
	colorSelected = lipgloss.Color("33")
	colorCorrect  = lipgloss.Color("34")
	colorWrong    = lipgloss.Color("160")
	colorWarn     = lipgloss.Color("214")
)

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// stylizeBold applies optional bold color styling.
func stylizeBold(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Bold(true).Foreground(color).Render(text)
}

// renderTabs renders the page tab bar with the active page highlighted.
func renderTabs(active Page, noColor bool) string {
	line := ""
	for page := Page(0); page < pageCount; page++ {
		title := " " + pageTitles[page] + " "
		if page == active {
			line += stylizeBold("["+pageTitles[page]+"]", noColor, colorAccent)
		} else {
			line += stylize(title, noColor, colorMuted)
		}
	}
	return line
}

// renderFooter renders the contextual key help line.
func renderFooter(page Page, examActive bool, noColor bool) string {
	help := "tab switch page | q quit"
	switch {
	case page == PageMCQ && examActive:
		help = "1-9 answer | left/right navigate | s submit | esc exit exam"
	case page == PageMCQ:
		help = "1-9 select | enter confirm/next | f difficulty | o bookmarked | b mark | l/d feedback | y copy | e exam | r reset | tab page | q quit"
	case page == PageFlashcards:
		help = "space flip | left/right navigate | g quiz | tab page | q quit"
	case page == PageInterview:
		help = "up/down move | enter expand | tab page | q quit"
	case page == PageMindMaps:
		help = "left/right map | tab page | q quit"
	case page == PageCards, page == PageNews:
		help = "left/right or up/down navigate | tab page | q quit"
	}
	return stylize(help, noColor, colorMuted)
}
