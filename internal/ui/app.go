// Package ui renders the tabbed study shell with Bubble Tea. All quiz
// logic lives in the session package; the UI translates key presses into
// session operations and renders pure projections.
package ui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"prepdeck/internal/catalog"
	"prepdeck/internal/store"
)

// Page identifies one tab of the shell.
type Page int

// Shell pages, in tab order.
const (
	PageNews Page = iota
	PageCards
	PageMCQ
	PageFlashcards
	PageMindMaps
	PageInterview
	pageCount
)

var pageTitles = [pageCount]string{"News", "Cards", "MCQs", "Flashcards", "Mind Maps", "Interview"}

// Options configures the shell.
type Options struct {
	NoColor      bool
	ExamLength   int
	ExamDuration int
	Rand         *rand.Rand
	Logger       *zap.Logger
}

// Model is the root Bubble Tea model.
type Model struct {
	page    Page
	width   int
	height  int
	noColor bool
	log     *zap.Logger

	mcq       mcqModel
	flash     flashModel
	cards     cardsModel
	mindMaps  mindMapModel
	interview interviewModel
	news      newsModel
}

// New builds the shell over a catalog and a persistence store.
func New(cat catalog.Catalog, st store.Store, opts Options) Model {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return Model{
		page:      PageNews,
		noColor:   opts.NoColor,
		log:       log,
		mcq:       newMCQModel(cat.Questions, st, opts.ExamLength, opts.ExamDuration, rng, log),
		flash:     newFlashModel(cat.Flashcards, rng),
		cards:     newCardsModel(cat.Cards),
		mindMaps:  newMindMapModel(cat.MindMaps),
		interview: newInterviewModel(cat.Interview),
		news:      newNewsModel(cat.News),
	}
}

// Init starts the shell; nothing runs until the first key or tick.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update routes messages to the active page.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case examTickMsg:
		var cmd tea.Cmd
		m.mcq, cmd = m.mcq.handleTick(typed)
		return m, cmd
	case tea.KeyMsg:
		switch typed.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// The MCQ page uses plain keys inside an exam; only quit
			// from elsewhere.
			if m.page != PageMCQ || !m.mcq.examActive() {
				return m, tea.Quit
			}
		case "tab":
			if !m.mcq.examActive() || m.page != PageMCQ {
				m.page = (m.page + 1) % pageCount
				return m, nil
			}
		case "shift+tab":
			if !m.mcq.examActive() || m.page != PageMCQ {
				m.page = (m.page + pageCount - 1) % pageCount
				return m, nil
			}
		}
		return m.updatePage(typed)
	}
	return m, nil
}

func (m Model) updatePage(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.page {
	case PageMCQ:
		m.mcq, cmd = m.mcq.update(key)
	case PageFlashcards:
		m.flash = m.flash.update(key)
	case PageCards:
		m.cards = m.cards.update(key)
	case PageMindMaps:
		m.mindMaps = m.mindMaps.update(key)
	case PageInterview:
		m.interview = m.interview.update(key)
	case PageNews:
		m.news = m.news.update(key)
	}
	return m, cmd
}

// View renders the header, the active page, and the footer.
func (m Model) View() string {
	var body string
	switch m.page {
	case PageMCQ:
		body = m.mcq.view(m.noColor)
	case PageFlashcards:
		body = m.flash.view(m.noColor)
	case PageCards:
		body = m.cards.view(m.noColor)
	case PageMindMaps:
		body = m.mindMaps.view(m.noColor)
	case PageInterview:
		body = m.interview.view(m.noColor)
	case PageNews:
		body = m.news.view(m.noColor)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTabs(m.page, m.noColor),
		body,
		renderFooter(m.page, m.mcq.examActive(), m.noColor),
	)
}
